package upsertreminder

import (
	"context"
	"errors"
	"fmt"
	c "tasknotes/internal/core/domain/common"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
	uow "tasknotes/internal/core/domain/unit_of_work"
	"tasknotes/internal/core/domain/user"
	"tasknotes/internal/core/services"
	"time"
)

type Input struct {
	UserID   user.ID
	TaskID   task.ID
	RemindAt time.Time
}

func (i Input) Validate() error {
	if i.RemindAt.Location() != time.UTC {
		return reminder.ErrRemindAtTimeIsNotUTC
	}
	return nil
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("reminders::write::%d", i.UserID)
}

type Result struct {
	Reminder   reminder.Reminder
	WasCreated bool
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	eventPublisher reminder.EventPublisher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	eventPublisher reminder.EventPublisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		eventPublisher: eventPublisher,
		now:            now,
	}
}

// Run updates the task's first undismissed reminder in place, or creates one
// if none exists. This is the path the task editor calls on every due-date
// edit and the only place the one-live-reminder-per-task invariant is
// maintained.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	if _, err := uow.Tasks().GetByID(ctx, input.TaskID); err != nil {
		if errors.Is(err, task.ErrTaskDoesNotExist) {
			s.log.Info(ctx, "Task not found.", logging.Entry("input", input))
		} else {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}
	owner, err := uow.TaskOwners().ResolveOwner(ctx, input.TaskID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if owner != input.UserID {
		s.log.Info(ctx, "Task belongs to another user.", logging.Entry("input", input))
		return result, task.ErrTaskPermission
	}

	existing, err := uow.Reminders().Read(ctx, reminder.ReadOptions{
		TaskIDEquals:    c.NewOptional(input.TaskID, true),
		DismissedEquals: c.NewOptional(false, true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	var rem reminder.Reminder
	if len(existing) > 0 {
		target := existing[0]
		if err := uow.Reminders().Lock(ctx, target.ID); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
			return result, err
		}
		rem, err = uow.Reminders().Update(ctx, reminder.UpdateInput{
			ID:               target.ID,
			DoRemindAtUpdate: true,
			RemindAt:         input.RemindAt,
		})
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
			return result, err
		}
	} else {
		rem, err = uow.Reminders().Create(ctx, reminder.CreateInput{
			TaskID:    input.TaskID,
			RemindAt:  input.RemindAt,
			CreatedAt: s.now(),
		})
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
			return result, err
		}
		result.WasCreated = true
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if result.WasCreated {
		if err := s.eventPublisher.PublishCreated(ctx, rem); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		}
	}

	s.log.Info(
		ctx,
		"Reminder successfully upserted.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("taskID", rem.TaskID),
		logging.Entry("remindAt", rem.RemindAt),
		logging.Entry("wasCreated", result.WasCreated),
	)
	result.Reminder = rem
	return result, nil
}
