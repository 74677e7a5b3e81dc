package notifier

import (
	"context"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/services"
	publishactivereminders "tasknotes/internal/core/services/publish_active_reminders"
	"time"
)

// Notifier periodically pushes every subscribed user's active reminder set
// over their event stream. It runs inside the HTTP process because the
// stream subscriptions live there.
type Notifier struct {
	log      logging.Logger
	service  services.Service[publishactivereminders.Input, publishactivereminders.Result]
	interval time.Duration
}

func New(
	log logging.Logger,
	service services.Service[publishactivereminders.Input, publishactivereminders.Result],
	interval time.Duration,
) *Notifier {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Notifier{log: log, service: service, interval: interval}
}

func (n *Notifier) Run(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	n.log.Info(
		ctx,
		"Starting active reminder notifier.",
		logging.Entry("intervalSeconds", n.interval.Seconds()),
	)

	for {
		select {
		case <-ctx.Done():
			n.log.Info(ctx, "Stopping active reminder notifier.")
			return
		case <-ticker.C:
			result, err := n.service.Run(ctx, publishactivereminders.Input{})
			if err != nil {
				n.log.Error(ctx, "Notifier tick returned an error.", logging.Entry("err", err))
				continue
			}
			n.log.Debug(
				ctx,
				"Notifier tick finished.",
				logging.Entry("publishedCount", result.PublishedCount),
			)
		}
	}
}
