package task

import (
	c "tasknotes/internal/core/domain/common"
	"tasknotes/internal/core/domain/user"
	"time"
)

type ID int64

type NoteID int64

// Task is a read-only view of a task owned by the surrounding application.
// A task is owned either directly (UserID set) or through its parent note
// (NoteID set); at least one of the two is always present.
type Task struct {
	ID        ID
	UserID    c.Optional[user.ID]
	NoteID    c.Optional[NoteID]
	Content   string
	IsDone    bool
	DueDate   c.Optional[time.Time]
	CreatedAt time.Time
}
