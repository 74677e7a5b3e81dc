package createreminder

import (
	"context"
	"errors"
	"fmt"
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
	Reminder reminder.Reminder
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

// Run creates a reminder without any uniqueness check: a second create for
// the same task makes a second row. Upsert is the path that maintains the
// one-live-reminder-per-task invariant.
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

	createdReminder, err := uow.Reminders().Create(ctx, reminder.CreateInput{
		TaskID:    input.TaskID,
		RemindAt:  input.RemindAt,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := s.eventPublisher.PublishCreated(ctx, createdReminder); err != nil {
		// Best-effort, the reminder itself is already persisted.
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", createdReminder.ID))
	}

	s.log.Info(
		ctx,
		"Reminder successfully created.",
		logging.Entry("reminderID", createdReminder.ID),
		logging.Entry("taskID", createdReminder.TaskID),
		logging.Entry("remindAt", createdReminder.RemindAt),
	)
	result.Reminder = createdReminder
	return result, nil
}
