package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// UserService defines profile operations for the authenticated user.
type UserService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	// Update applies a partial profile update. An update with no fields
	// set fails with domain.ErrEmptyUpdate.
	Update(ctx context.Context, userID string, update UserUpdate) (*domain.User, error)
	// Delete removes the account after confirming password, cascading to
	// all tasks owned by the user. Returns the pre-deletion snapshot.
	Delete(ctx context.Context, userID, password string) (*domain.User, error)
}
