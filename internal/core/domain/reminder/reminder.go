package reminder

import (
	"tasknotes/internal/core/domain/task"
	"time"
)

type ID int64

// Reminder ties one task to a target time. Dismissal removes it from the
// active set permanently; the row itself stays until deleted or the task is
// deleted (cascade). Sent is part of the schema shared with the surrounding
// application but no operation here ever sets it.
type Reminder struct {
	ID        ID
	TaskID    task.ID
	RemindAt  time.Time
	Sent      bool
	Dismissed bool
	CreatedAt time.Time
}

// IsActiveAt reports whether the reminder is due and undismissed at the given
// instant. The bound is closed: RemindAt == now counts as due.
func (r *Reminder) IsActiveAt(now time.Time) bool {
	return !r.Dismissed && !r.RemindAt.After(now)
}

// ActiveReminder is one row of the notification surface: the reminder joined
// with the current task state at read time, never cached.
type ActiveReminder struct {
	ReminderID  ID
	TaskID      task.ID
	RemindAt    time.Time
	TaskContent string
	TaskIsDone  bool
}
