package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskmind/taskmind/internal/domain/assist"
)

// AssistSuccess is the success envelope of the AI endpoints.
type AssistSuccess struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// AssistError is the error envelope of the AI endpoints: a localized
// message plus a stable machine-readable code.
type AssistError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// WriteAssistSuccess writes the {success, data} envelope with a 200 status.
func WriteAssistSuccess(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AssistSuccess{Success: true, Data: data}); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// WriteAssistError writes the {error, code} envelope for a pipeline error.
// Errors that are not an *assist.Error are reported under the given
// fallback code with a 500 status.
func WriteAssistError(w http.ResponseWriter, r *http.Request, err error, fallback assist.Code) {
	var aerr *assist.Error
	if !errors.As(err, &aerr) {
		aerr = assist.NewError(fallback, err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(aerr.Code.HTTPStatus())
	if encErr := json.NewEncoder(w).Encode(AssistError{Error: aerr.Message, Code: string(aerr.Code)}); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}
