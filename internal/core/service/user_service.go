package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// UserService implements profile operations for the authenticated user.
type UserService struct {
	users  ports.UserRepository
	tasks  ports.TaskRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, tasks ports.TaskRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, tasks: tasks, logger: logger}
}

func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Update applies a partial profile update with validation re-run at the
// store layer (unique email index).
func (s *UserService) Update(ctx context.Context, userID string, update ports.UserUpdate) (*domain.User, error) {
	if update.Name == nil && update.LastName == nil && update.Email == nil {
		return nil, domain.ErrEmptyUpdate
	}
	return s.users.Update(ctx, userID, update)
}

// Delete removes the account after password confirmation, cascading to all
// tasks owned by the user. The cascade is not atomic: tasks are removed
// first, so a crash between the two deletes leaves the account intact with
// its tasks already gone.
func (s *UserService) Delete(ctx context.Context, userID, password string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	removed, err := s.tasks.DeleteByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Int64("tasks_removed", removed).Msg("account deleted")
	return user, nil
}
