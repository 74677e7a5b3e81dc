package uow

import (
	"context"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Reminders() reminder.ReminderRepository
	Tasks() task.Provider
	TaskOwners() task.OwnershipResolver
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
