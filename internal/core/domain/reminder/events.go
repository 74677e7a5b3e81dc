package reminder

import "context"

// EventPublisher announces reminder lifecycle changes to the rest of the
// application. Publishing is best-effort: callers log failures and never fail
// the user-facing operation because of them.
type EventPublisher interface {
	PublishCreated(ctx context.Context, r Reminder) error
	PublishDismissed(ctx context.Context, r Reminder) error
}
