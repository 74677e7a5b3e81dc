package reminder

import (
	"context"
	"tasknotes/internal/core/domain/user"
)

// Broadcaster pushes refreshed active sets to connected clients. A user is
// subscribed while at least one of their clients holds an open stream.
type Broadcaster interface {
	Subscribe(userID user.ID)
	Unsubscribe(userID user.ID)
	Subscribed() []user.ID
	PublishActiveSet(ctx context.Context, userID user.ID, reminders []ActiveReminder) error
}
