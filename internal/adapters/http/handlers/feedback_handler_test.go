package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/adapters/http/handlers"
	"github.com/taskmind/taskmind/internal/domain/feedback"
)

func TestListFeedback_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeFeedbackService{
		listFn: func(_ context.Context, ownerID string) ([]feedback.Feedback, error) {
			if ownerID != testOwnerID {
				t.Errorf("ownerID = %q, want %q", ownerID, testOwnerID)
			}
			return []feedback.Feedback{validFeedback()}, nil
		},
	}
	h := handlers.NewFeedbackHandler(svc)

	rec := httptest.NewRecorder()
	h.ListFeedback(rec, asOwner(httptest.NewRequest(http.MethodGet, "/api/v1/feedback", nil)))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.FeedbackListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
	if resp.Feedback[0].Status != "pending" {
		t.Errorf("Status = %q, want %q", resp.Feedback[0].Status, "pending")
	}
}

func TestCreateFeedback_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeFeedbackService{
		createFn: func(_ context.Context, _ string, fb *feedback.Feedback) (*feedback.Feedback, error) {
			if fb.Type != feedback.TypeFeature {
				t.Errorf("Type = %q, want %q", fb.Type, feedback.TypeFeature)
			}
			created := validFeedback()
			created.Type = fb.Type
			created.Title = fb.Title
			return &created, nil
		},
	}
	h := handlers.NewFeedbackHandler(svc)

	body := jsonBody(t, dto.CreateFeedbackRequest{
		Type:        "feature",
		Title:       "다크 모드",
		Description: "야간에 쓰기 편하게요",
	})
	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodPost, "/api/v1/feedback", body))
	h.CreateFeedback(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateFeedback_InvalidType(t *testing.T) {
	t.Parallel()

	h := handlers.NewFeedbackHandler(&fakeFeedbackService{})

	body := jsonBody(t, dto.CreateFeedbackRequest{
		Type:        "complaint",
		Title:       "제목",
		Description: "설명",
	})
	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodPost, "/api/v1/feedback", body))
	h.CreateFeedback(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateFeedback_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := handlers.NewFeedbackHandler(&fakeFeedbackService{})

	body := jsonBody(t, dto.CreateFeedbackRequest{Type: "bug", Title: "제목", Description: "설명"})
	rec := httptest.NewRecorder()
	h.CreateFeedback(rec, httptest.NewRequest(http.MethodPost, "/api/v1/feedback", body))

	requireStatus(t, rec, http.StatusUnauthorized)
}
