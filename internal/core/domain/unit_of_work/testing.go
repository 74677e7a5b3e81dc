package uow

import (
	"context"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
)

type FakeUnitOfWorkContext struct {
	ReminderRepository *reminder.TestReminderRepository
	TaskProvider       *task.FakeTaskProvider
	WasRollbackCalled  bool
	WasCommitCalled    bool
	CommitError        error
}

func NewFakeUnitOfWorkContext(
	reminderRepository *reminder.TestReminderRepository,
	taskProvider *task.FakeTaskProvider,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		ReminderRepository: reminderRepository,
		TaskProvider:       taskProvider,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	if c.CommitError != nil {
		return c.CommitError
	}
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Reminders() reminder.ReminderRepository {
	return c.ReminderRepository
}

func (c *FakeUnitOfWorkContext) Tasks() task.Provider {
	return c.TaskProvider
}

func (c *FakeUnitOfWorkContext) TaskOwners() task.OwnershipResolver {
	return c.TaskProvider
}

type FakeUnitOfWork struct {
	Context    *FakeUnitOfWorkContext
	BeginError error
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	taskProvider := task.NewFakeTaskProvider()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			reminder.NewTestReminderRepository(taskProvider),
			taskProvider,
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.BeginError != nil {
		return nil, u.BeginError
	}
	return u.Context, nil
}

func (u *FakeUnitOfWork) Reminders() *reminder.TestReminderRepository {
	return u.Context.ReminderRepository
}

func (u *FakeUnitOfWork) Tasks() *task.FakeTaskProvider {
	return u.Context.TaskProvider
}
