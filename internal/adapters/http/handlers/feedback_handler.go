package handlers

import (
	"net/http"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/domain/feedback"
	"github.com/taskmind/taskmind/internal/ports"
)

// FeedbackHandler handles HTTP requests for user feedback entries.
type FeedbackHandler struct {
	service ports.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler with the given service port.
func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// ListFeedback handles GET /api/v1/feedback.
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	entries, err := h.service.List(r.Context(), owner)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFeedbackListResponse(entries))
}

// CreateFeedback handles POST /api/v1/feedback.
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Create(r.Context(), owner, &feedback.Feedback{
		Type:        feedback.Type(req.Type),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToFeedbackResponse(created))
}
