package uow

import (
	"context"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
	uow "tasknotes/internal/core/domain/unit_of_work"
	dbreminder "tasknotes/internal/db/reminder"
	dbtask "tasknotes/internal/db/task"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxUnitOfWorkContext struct {
	tx pgx.Tx
}

func newPgxUnitOfWorkContext(tx pgx.Tx) *pgxUnitOfWorkContext {
	return &pgxUnitOfWorkContext{tx: tx}
}

func (c *pgxUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

func (c *pgxUnitOfWorkContext) Rollback(ctx context.Context) error {
	return c.tx.Rollback(ctx)
}

func (c *pgxUnitOfWorkContext) Reminders() reminder.ReminderRepository {
	return dbreminder.NewPgxReminderRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Tasks() task.Provider {
	return dbtask.NewPgxTaskRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) TaskOwners() task.OwnershipResolver {
	return dbtask.NewPgxTaskRepository(c.tx)
}

type PgxUnitOfWork struct {
	db *pgxpool.Pool
}

func NewPgxUnitOfWork(db *pgxpool.Pool) *PgxUnitOfWork {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUnitOfWork{db: db}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newPgxUnitOfWorkContext(tx), nil
}
