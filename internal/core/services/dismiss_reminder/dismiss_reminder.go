package dismissreminder

import (
	"context"
	"errors"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	uow "tasknotes/internal/core/domain/unit_of_work"
	"tasknotes/internal/core/domain/user"
	"tasknotes/internal/core/services"
)

type Input struct {
	UserID     user.ID
	ReminderID reminder.ID
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	eventPublisher reminder.EventPublisher
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	eventPublisher reminder.EventPublisher,
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
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		eventPublisher: eventPublisher,
	}
}

// Run marks the reminder dismissed. Dismissing an already dismissed reminder
// succeeds without touching the row.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	reminderRepository := uow.Reminders()
	if err := reminderRepository.Lock(ctx, input.ReminderID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	rem, err := reminderRepository.GetByID(ctx, input.ReminderID)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderDoesNotExist) {
			s.log.Info(ctx, "Reminder not found.", logging.Entry("input", input))
		} else {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	owner, err := uow.TaskOwners().ResolveOwner(ctx, rem.TaskID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if owner != input.UserID {
		s.log.Info(ctx, "Reminder belongs to another user.", logging.Entry("input", input))
		return result, reminder.ErrReminderPermission
	}

	if rem.Dismissed {
		result.Reminder = rem
		return result, nil
	}

	rem, err = reminderRepository.Update(ctx, reminder.UpdateInput{
		ID:                rem.ID,
		DoDismissedUpdate: true,
		Dismissed:         true,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := s.eventPublisher.PublishDismissed(ctx, rem); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
	}

	s.log.Info(
		ctx,
		"Reminder has been dismissed.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("taskID", rem.TaskID),
	)
	result.Reminder = rem
	return result, nil
}
