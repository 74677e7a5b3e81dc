package task

import (
	"context"
	"tasknotes/internal/core/domain/user"
)

// Provider is the narrow surface of the task collaborator this service is
// allowed to touch. Task CRUD lives elsewhere.
type Provider interface {
	GetByID(ctx context.Context, id ID) (Task, error)
	SetDone(ctx context.Context, id ID, isDone bool) error
}

// OwnershipResolver answers who owns a task, following either ownership path
// (task.user_id or the parent note's user_id).
type OwnershipResolver interface {
	ResolveOwner(ctx context.Context, id ID) (user.ID, error)
}
