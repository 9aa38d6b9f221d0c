package handler

import (
	"time"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	LastName string `json:"lastName" validate:"omitempty,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authUser is the minimal user view returned alongside a token.
type authUser struct {
	Name string `json:"name"`
}

type authResponse struct {
	User  authUser `json:"user"`
	Token string   `json:"token"`
}

// --- User ---

type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,max=50"`
	LastName *string `json:"lastName" validate:"omitempty,max=50"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

type deleteUserRequest struct {
	Password string `json:"password" validate:"required"`
}

// userResponse is the profile view. LastName defaults to the empty string
// rather than being omitted.
type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
	}
}

// --- Tasks ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toTaskListResponse(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}
