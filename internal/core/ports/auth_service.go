package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	LastName string
	Email    string
	Password string
}

// AuthService defines registration and login use cases. Both return a
// signed bearer token alongside the user.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// TokenService issues and verifies stateless identity tokens.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the user ID encoded in token, or an error if the
	// token is tampered, malformed or expired.
	Verify(token string) (string, error)
}
