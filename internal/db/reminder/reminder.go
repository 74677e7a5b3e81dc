package reminder

import (
	"context"
	"errors"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
	"tasknotes/internal/core/domain/user"
	"tasknotes/internal/db"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_FOREIGN_KEY_ERR_CODE = "23503"
const TASK_FK_CONSTRAINT_NAME = "reminder_task_id_fkey"

const createReminder = `
INSERT INTO reminder (task_id, remind_at, sent, dismissed, created_at)
VALUES ($1, $2, FALSE, FALSE, $3)
RETURNING id, task_id, remind_at, sent, dismissed, created_at
`

const lockReminder = `
SELECT id FROM reminder WHERE id = $1 FOR UPDATE
`

const getReminderByID = `
SELECT id, task_id, remind_at, sent, dismissed, created_at
FROM reminder
WHERE id = $1
`

// Absent filters collapse to TRUE through the "any" flags, one statement
// serves every ReadOptions combination.
const readReminders = `
SELECT r.id, r.task_id, r.remind_at, r.sent, r.dismissed, r.created_at
FROM reminder r
JOIN task t ON t.id = r.task_id
LEFT JOIN note n ON n.id = t.note_id
WHERE ($1 OR r.task_id = $2)
  AND ($3 OR COALESCE(t.user_id, n.user_id) = $4)
  AND ($5 OR r.dismissed = $6)
  AND ($7 OR r.remind_at >= $8)
  AND ($9 OR r.remind_at <= $10)
ORDER BY r.id
`

const readActiveReminders = `
SELECT r.id, r.task_id, r.remind_at, t.content, t.is_done
FROM reminder r
JOIN task t ON t.id = r.task_id
LEFT JOIN note n ON n.id = t.note_id
WHERE NOT r.dismissed
  AND r.remind_at <= $2
  AND COALESCE(t.user_id, n.user_id) = $1
ORDER BY r.id
`

const updateReminder = `
UPDATE reminder
SET remind_at = CASE WHEN $2 THEN $3 ELSE remind_at END,
    sent      = CASE WHEN $4 THEN $5 ELSE sent END,
    dismissed = CASE WHEN $6 THEN $7 ELSE dismissed END
WHERE id = $1
RETURNING id, task_id, remind_at, sent, dismissed, created_at
`

const deleteReminder = `
DELETE FROM reminder WHERE id = $1 RETURNING id
`

type PgxReminderRepository struct {
	db db.DBTX
}

func NewPgxReminderRepository(db db.DBTX) *PgxReminderRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxReminderRepository{db: db}
}

func (r *PgxReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(ctx, createReminder, int64(input.TaskID), input.RemindAt, input.CreatedAt)
	rem, err = scanReminder(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == PG_FOREIGN_KEY_ERR_CODE &&
		pgErr.ConstraintName == TASK_FK_CONSTRAINT_NAME {
		return rem, task.ErrTaskDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Lock(ctx context.Context, id reminder.ID) error {
	// Meaningful only within a transaction.
	_, err := r.db.Exec(ctx, lockReminder, int64(id))
	return err
}

func (r *PgxReminderRepository) GetByID(
	ctx context.Context,
	id reminder.ID,
) (rem reminder.Reminder, err error) {
	rem, err = scanReminder(r.db.QueryRow(ctx, getReminderByID, int64(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) (reminders []reminder.Reminder, err error) {
	rows, err := r.db.Query(
		ctx,
		readReminders,
		!options.TaskIDEquals.IsPresent,
		int64(options.TaskIDEquals.Value),
		!options.OwnerEquals.IsPresent,
		int64(options.OwnerEquals.Value),
		!options.DismissedEquals.IsPresent,
		options.DismissedEquals.Value,
		!options.RemindAtFrom.IsPresent,
		options.RemindAtFrom.Value,
		!options.RemindAtUntil.IsPresent,
		options.RemindAtUntil.Value,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders = make([]reminder.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *PgxReminderRepository) ReadActive(
	ctx context.Context,
	owner user.ID,
	now time.Time,
) (reminders []reminder.ActiveReminder, err error) {
	rows, err := r.db.Query(ctx, readActiveReminders, int64(owner), now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders = make([]reminder.ActiveReminder, 0)
	for rows.Next() {
		var rem reminder.ActiveReminder
		err := rows.Scan(&rem.ReminderID, &rem.TaskID, &rem.RemindAt, &rem.TaskContent, &rem.TaskIsDone)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *PgxReminderRepository) Update(
	ctx context.Context,
	input reminder.UpdateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		updateReminder,
		int64(input.ID),
		input.DoRemindAtUpdate,
		input.RemindAt,
		input.DoSentUpdate,
		input.Sent,
		input.DoDismissedUpdate,
		input.Dismissed,
	)
	rem, err = scanReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Delete(ctx context.Context, id reminder.ID) error {
	var deletedID int64
	err := r.db.QueryRow(ctx, deleteReminder, int64(id)).Scan(&deletedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return reminder.ErrReminderDoesNotExist
	}
	return err
}

func scanReminder(row pgx.Row) (rem reminder.Reminder, err error) {
	err = row.Scan(&rem.ID, &rem.TaskID, &rem.RemindAt, &rem.Sent, &rem.Dismissed, &rem.CreatedAt)
	return rem, err
}
