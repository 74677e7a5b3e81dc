package acknowledgedone

import (
	"context"
	"errors"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
	"tasknotes/internal/core/domain/user"
	"tasknotes/internal/core/services"
)

type Input struct {
	UserID     user.ID
	ReminderID reminder.ID
	TaskID     task.ID
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
	tasks              task.Provider
	taskOwners         task.OwnershipResolver
	eventPublisher     reminder.EventPublisher
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
	tasks task.Provider,
	taskOwners task.OwnershipResolver,
	eventPublisher reminder.EventPublisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if tasks == nil {
		panic(e.NewNilArgumentError("tasks"))
	}
	if taskOwners == nil {
		panic(e.NewNilArgumentError("taskOwners"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		tasks:              tasks,
		taskOwners:         taskOwners,
		eventPublisher:     eventPublisher,
	}
}

// Run completes the task, then dismisses the reminder. The two writes are
// deliberately not transactional: when the completion write fails the dismiss
// is not attempted, so the reminder stays visible and the user can retry.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem, err := s.reminderRepository.GetByID(ctx, input.ReminderID)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderDoesNotExist) {
			s.log.Info(ctx, "Reminder not found.", logging.Entry("input", input))
		} else {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	owner, err := s.taskOwners.ResolveOwner(ctx, rem.TaskID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if owner != input.UserID {
		s.log.Info(ctx, "Reminder belongs to another user.", logging.Entry("input", input))
		return result, reminder.ErrReminderPermission
	}

	if err := s.tasks.SetDone(ctx, input.TaskID, true); err != nil {
		if errors.Is(err, task.ErrTaskDoesNotExist) {
			s.log.Info(ctx, "Task not found.", logging.Entry("input", input))
		} else {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	if !rem.Dismissed {
		rem, err = s.reminderRepository.Update(ctx, reminder.UpdateInput{
			ID:                rem.ID,
			DoDismissedUpdate: true,
			Dismissed:         true,
		})
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
			return result, err
		}
		if err := s.eventPublisher.PublishDismissed(ctx, rem); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		}
	}

	s.log.Info(
		ctx,
		"Reminder acknowledged and task completed.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("taskID", input.TaskID),
	)
	result.Reminder = rem
	return result, nil
}
