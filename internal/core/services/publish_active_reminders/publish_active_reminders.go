package publishactivereminders

import (
	"context"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/services"
	"time"
)

type Input struct{}

type Result struct {
	PublishedCount int
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.ReminderRepository
	broadcaster        reminder.Broadcaster
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.ReminderRepository,
	broadcaster reminder.Broadcaster,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if broadcaster == nil {
		panic(e.NewNilArgumentError("broadcaster"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		broadcaster:        broadcaster,
		now:                now,
	}
}

// Run is one notifier tick: recompute every subscribed user's active set and
// push it on their stream. A failing user is skipped, the next tick retries;
// connected clients keep their previous list in the meantime.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	for _, userID := range s.broadcaster.Subscribed() {
		reminders, err := s.reminderRepository.ReadActive(ctx, userID, now)
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("userID", userID))
			continue
		}
		if err := s.broadcaster.PublishActiveSet(ctx, userID, reminders); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("userID", userID))
			continue
		}
		result.PublishedCount++
	}
	return result, nil
}
