package reminder

import (
	"context"
	c "tasknotes/internal/core/domain/common"
	"tasknotes/internal/core/domain/task"
	"tasknotes/internal/core/domain/user"
	"time"
)

type CreateInput struct {
	TaskID    task.ID
	RemindAt  time.Time
	CreatedAt time.Time
}

type UpdateInput struct {
	ID                ID
	DoRemindAtUpdate  bool
	RemindAt          time.Time
	DoSentUpdate      bool
	Sent              bool
	DoDismissedUpdate bool
	Dismissed         bool
}

// ReadOptions combine into a conjunction; absent fields do not filter.
// RemindAtFrom and RemindAtUntil are both inclusive.
type ReadOptions struct {
	TaskIDEquals    c.Optional[task.ID]
	OwnerEquals     c.Optional[user.ID]
	DismissedEquals c.Optional[bool]
	RemindAtFrom    c.Optional[time.Time]
	RemindAtUntil   c.Optional[time.Time]
}

type ReminderRepository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	Lock(ctx context.Context, id ID) error
	GetByID(ctx context.Context, id ID) (Reminder, error)
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	// ReadActive returns the due undismissed reminders of one user, joined
	// with the owning task's current content and completion flag.
	ReadActive(ctx context.Context, owner user.ID, now time.Time) ([]ActiveReminder, error)
	Update(ctx context.Context, input UpdateInput) (Reminder, error)
	Delete(ctx context.Context, id ID) error
}
