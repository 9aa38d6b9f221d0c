package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// UserUpdate carries the fields of a partial profile update. Nil pointers
// mean "leave unchanged".
type UserUpdate struct {
	Name     *string
	LastName *string
	Email    *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
