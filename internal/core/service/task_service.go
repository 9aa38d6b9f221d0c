package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// sortableFields whitelists the fields a client may order by, so query
// input cannot probe arbitrary document fields.
var sortableFields = map[string]bool{
	"title":     true,
	"status":    true,
	"createdAt": true,
	"updatedAt": true,
}

// TaskService implements owner-scoped task CRUD.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create stores a new task owned by input.OwnerID. The owner always comes
// from the authenticated caller, never from the request body.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	status := domain.TaskStatus(input.Status)
	if input.Status == "" {
		status = domain.StatusPending
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedBy:   input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id, ownerID)
}

// List translates raw query parameters into a repository filter. The
// createdAt parameter selects a whole UTC calendar day.
func (s *TaskService) List(ctx context.Context, input ports.ListTasksInput) ([]*domain.Task, error) {
	filter := ports.ListTasksFilter{OwnerID: input.OwnerID}

	if input.Status != "" {
		status := domain.TaskStatus(input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = status
	}

	if input.CreatedAt != "" {
		day, err := time.ParseInLocation("2006-01-02", input.CreatedAt, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: createdAt must be YYYY-MM-DD", domain.ErrInvalidDate)
		}
		filter.CreatedFrom = day
		filter.CreatedTo = day.Add(24*time.Hour - time.Millisecond)
	}

	filter.Sort = parseSort(input.Sort)

	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, id, ownerID string, update ports.TaskUpdate) (*domain.Task, error) {
	if update.Status != nil && !update.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.Update(ctx, id, ownerID, update)
}

func (s *TaskService) Delete(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	return s.repo.Delete(ctx, id, ownerID)
}

// parseSort splits a comma- or space-separated sort expression into
// ordering directives. A leading "-" means descending. Fields outside the
// whitelist are dropped.
func parseSort(expr string) []ports.SortField {
	if expr == "" {
		return nil
	}

	var out []ports.SortField
	for _, part := range strings.FieldsFunc(expr, func(r rune) bool { return r == ',' || r == ' ' }) {
		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")
		if !sortableFields[field] {
			continue
		}
		out = append(out, ports.SortField{Field: field, Descending: desc})
	}
	return out
}
