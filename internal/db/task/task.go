package task

import (
	"context"
	"errors"
	c "tasknotes/internal/core/domain/common"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/task"
	"tasknotes/internal/core/domain/user"
	"tasknotes/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const getTaskByID = `
SELECT id, user_id, note_id, content, is_done, due_date, created_at
FROM task
WHERE id = $1
`

const setTaskDone = `
UPDATE task
SET is_done = $2
WHERE id = $1
RETURNING id
`

const resolveTaskOwner = `
SELECT COALESCE(t.user_id, n.user_id)
FROM task t
LEFT JOIN note n ON n.id = t.note_id
WHERE t.id = $1
`

// PgxTaskRepository reads the task table owned by the surrounding
// application; the only write it is allowed is the completion flag.
type PgxTaskRepository struct {
	db db.DBTX
}

func NewPgxTaskRepository(db db.DBTX) *PgxTaskRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxTaskRepository{db: db}
}

func (r *PgxTaskRepository) GetByID(ctx context.Context, id task.ID) (t task.Task, err error) {
	var userID, noteID pgtype.Int8
	var dueDate pgtype.Timestamptz
	row := r.db.QueryRow(ctx, getTaskByID, int64(id))
	err = row.Scan(&t.ID, &userID, &noteID, &t.Content, &t.IsDone, &dueDate, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return t, task.ErrTaskDoesNotExist
		}
		return t, err
	}
	t.UserID = c.NewOptional(user.ID(userID.Int), userID.Status == pgtype.Present)
	t.NoteID = c.NewOptional(task.NoteID(noteID.Int), noteID.Status == pgtype.Present)
	t.DueDate = c.NewOptional(dueDate.Time, dueDate.Status == pgtype.Present)
	return t, nil
}

func (r *PgxTaskRepository) SetDone(ctx context.Context, id task.ID, isDone bool) error {
	var updatedID int64
	err := r.db.QueryRow(ctx, setTaskDone, int64(id), isDone).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return task.ErrTaskDoesNotExist
	}
	return err
}

func (r *PgxTaskRepository) ResolveOwner(ctx context.Context, id task.ID) (user.ID, error) {
	var owner pgtype.Int8
	err := r.db.QueryRow(ctx, resolveTaskOwner, int64(id)).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, task.ErrTaskDoesNotExist
		}
		return 0, err
	}
	if owner.Status != pgtype.Present {
		// The schema guarantees one of the two ownership paths is set.
		return 0, e.NewInvalidStateError("task has neither a user nor a note owner")
	}
	return user.ID(owner.Int), nil
}
