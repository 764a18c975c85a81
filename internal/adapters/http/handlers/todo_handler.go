package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/ports"
)

// TodoHandler handles HTTP requests for owner-scoped todo CRUD operations.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /api/v1/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	filter, err := parseTodoFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.service.List(r.Context(), owner, filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Create(r.Context(), owner, mapCreateTodoRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	t, err := h.service.Get(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// UpdateTodo handles PATCH /api/v1/todos/{id}. Unset fields keep their
// current values; the handler loads the record first and applies the patch
// on top of it.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	current, err := h.service.Get(r.Context(), owner, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	applyTodoPatch(current, &req)

	updated, err := h.service.Update(r.Context(), owner, id, current)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// SetCompleted handles PATCH /api/v1/todos/{id}/complete.
func (h *TodoHandler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dto.SetCompletedRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.service.SetCompleted(r.Context(), owner, chi.URLParam(r, "id"), req.Completed)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// mapCreateTodoRequest converts a CreateTodoRequest DTO to a domain Todo
// entity. Date strings were validated by the DTO; a failed parse here means
// a bug in that validation and surfaces as a nil due date.
func mapCreateTodoRequest(req *dto.CreateTodoRequest) *todo.Todo {
	t := &todo.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    todo.Priority(req.Priority),
		Categories:  req.Categories,
	}
	if req.DueDate != nil {
		if due, err := dto.ParseDueDate(*req.DueDate); err == nil {
			t.DueDate = &due
		}
	}
	return t
}

// applyTodoPatch overlays the provided UpdateTodoRequest fields onto an
// existing todo.
func applyTodoPatch(t *todo.Todo, req *dto.UpdateTodoRequest) {
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Priority != nil {
		t.Priority = todo.Priority(*req.Priority)
	}
	if req.Categories != nil {
		t.Categories = *req.Categories
	}
	if req.ClearDue {
		t.DueDate = nil
	} else if req.DueDate != nil {
		if due, err := dto.ParseDueDate(*req.DueDate); err == nil {
			t.DueDate = &due
		}
	}
}
