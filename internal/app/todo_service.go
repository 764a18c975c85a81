// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of the todo store. It
// handles validation, normalization, and structured logging; persistence
// details stay behind the store port.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService. A nil logger is replaced with a
// no-op logger.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// List returns the owner's todos matching the filter criteria.
func (s *TodoService) List(ctx context.Context, ownerID string, filter todo.Filter) ([]todo.Todo, error) {
	todos, err := s.store.List(ctx, ownerID, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// Get returns a single todo by ID.
func (s *TodoService) Get(ctx context.Context, ownerID, id string) (*todo.Todo, error) {
	t, err := s.store.Get(ctx, ownerID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "Get"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// Create validates, normalizes, and stores a new todo.
func (s *TodoService) Create(ctx context.Context, ownerID string, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.String("priority", t.Priority.String()))

	t.OwnerID = ownerID
	t.Categories = todo.NormalizeCategories(t.Categories)
	if t.Priority == "" {
		t.Priority = todo.PriorityMedium
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// Update validates, normalizes, and replaces an existing todo's fields.
func (s *TodoService) Update(ctx context.Context, ownerID, id string, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.String("id", id))

	t.OwnerID = ownerID
	t.Categories = todo.NormalizeCategories(t.Categories)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, ownerID, id, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "Update"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// SetCompleted flips the completion flag.
func (s *TodoService) SetCompleted(ctx context.Context, ownerID, id string, completed bool) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "setting todo completion",
		slog.String("id", id),
		slog.Bool("completed", completed),
	)

	updated, err := s.store.SetCompleted(ctx, ownerID, id, completed)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to set todo completion",
			slog.String("operation", "SetCompleted"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// Delete removes a todo.
func (s *TodoService) Delete(ctx context.Context, ownerID, id string) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.String("id", id))

	if err := s.store.Delete(ctx, ownerID, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Delete"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
