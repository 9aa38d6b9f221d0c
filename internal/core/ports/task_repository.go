package ports

import (
	"context"
	"time"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// SortField is a single ordering directive for task listings. Field names
// are domain names (title, status, createdAt, updatedAt); the repository
// maps them to store columns.
type SortField struct {
	Field      string
	Descending bool
}

// ListTasksFilter carries all query parameters for listing tasks.
// OwnerID is always set by the service layer; a task query without an
// owner never reaches the store.
type ListTasksFilter struct {
	OwnerID     string
	Status      domain.TaskStatus // optional: exact match
	CreatedFrom time.Time         // optional: created_at >= CreatedFrom
	CreatedTo   time.Time         // optional: created_at <= CreatedTo
	Sort        []SortField
}

// TaskUpdate carries the fields of a partial task update. Nil pointers
// mean "leave unchanged".
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskRepository defines persistence operations for tasks. Every lookup
// that takes an ownerID filters by (id, created_by) jointly.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Task, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	// Update applies a partial update scoped by owner and returns the
	// updated record, or domain.ErrTaskNotFound if no row matched.
	Update(ctx context.Context, id, ownerID string, update TaskUpdate) (*domain.Task, error)
	// Delete removes a task scoped by owner and returns the deleted record.
	Delete(ctx context.Context, id, ownerID string) (*domain.Task, error)
	// DeleteByOwner removes every task owned by ownerID and returns the
	// number of deleted documents.
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
