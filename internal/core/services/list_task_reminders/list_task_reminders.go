package listtaskreminders

import (
	"context"
	"errors"
	c "tasknotes/internal/core/domain/common"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
	"tasknotes/internal/core/domain/user"
	"tasknotes/internal/core/services"
)

type Input struct {
	UserID user.ID
	TaskID task.ID
}

type Result struct {
	Reminders []reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
	taskOwners         task.OwnershipResolver
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
	taskOwners task.OwnershipResolver,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if taskOwners == nil {
		panic(e.NewNilArgumentError("taskOwners"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		taskOwners:         taskOwners,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	owner, err := s.taskOwners.ResolveOwner(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskDoesNotExist) {
			s.log.Info(ctx, "Task not found.", logging.Entry("input", input))
		} else {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}
	if owner != input.UserID {
		s.log.Info(ctx, "Task belongs to another user.", logging.Entry("input", input))
		return result, task.ErrTaskPermission
	}

	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		TaskIDEquals: c.NewOptional(input.TaskID, true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	result.Reminders = reminders
	return result, nil
}
