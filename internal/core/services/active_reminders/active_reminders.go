package activereminders

import (
	"context"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/user"
	"tasknotes/internal/core/services"
	"time"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	Reminders []reminder.ActiveReminder
	At        time.Time
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		now:                now,
	}
}

// Run answers "which reminders must surface right now". The wall clock is
// read once per call; a reminder due exactly at that instant is included.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	reminders, err := s.reminderRepository.ReadActive(ctx, input.UserID, now)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	result.Reminders = reminders
	result.At = now
	return result, nil
}
