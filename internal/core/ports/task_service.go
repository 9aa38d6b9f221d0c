package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task. OwnerID is
// always the authenticated caller; any client-supplied owner is ignored
// upstream.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	OwnerID     string
}

// ListTasksInput carries the raw query parameters of a task listing.
type ListTasksInput struct {
	OwnerID   string
	Status    string
	CreatedAt string // YYYY-MM-DD, matches the whole UTC calendar day
	Sort      string // comma/space separated, "-" prefix = descending
}

// TaskService defines owner-scoped task CRUD use cases.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Task, error)
	List(ctx context.Context, input ListTasksInput) ([]*domain.Task, error)
	Update(ctx context.Context, id, ownerID string, update TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID string) (*domain.Task, error)
}
