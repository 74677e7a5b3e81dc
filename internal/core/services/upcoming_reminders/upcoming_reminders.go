package upcomingreminders

import (
	"context"
	c "tasknotes/internal/core/domain/common"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/user"
	"tasknotes/internal/core/services"
	"time"
)

type Input struct {
	UserID user.ID
	From   time.Time
	To     time.Time
}

func (i Input) Validate() error {
	if i.From.Location() != time.UTC || i.To.Location() != time.UTC {
		return reminder.ErrRemindAtTimeIsNotUTC
	}
	if i.To.Before(i.From) {
		return reminder.ErrInvalidTimeRange
	}
	return nil
}

type Result struct {
	Reminders []reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
	}
}

// Run is the calendar/agenda range query: both bounds inclusive, dismissed
// reminders included.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		OwnerEquals:   c.NewOptional(input.UserID, true),
		RemindAtFrom:  c.NewOptional(input.From, true),
		RemindAtUntil: c.NewOptional(input.To, true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	result.Reminders = reminders
	return result, nil
}
