package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/domain/assist"
	"github.com/taskmind/taskmind/internal/ports"
)

// AssistHandler handles the two AI endpoints. Unlike the CRUD surface,
// both respond with the {success, data} / {error, code} envelopes.
type AssistHandler struct {
	service ports.AssistService
}

// NewAssistHandler creates a new AssistHandler with the given service port.
func NewAssistHandler(service ports.AssistService) *AssistHandler {
	return &AssistHandler{service: service}
}

// parseTodoRequest is the JSON body of the parse endpoint. Input stays raw
// so an absent, null, or non-string value can be reported as missing input
// rather than a malformed body.
type parseTodoRequest struct {
	Input json.RawMessage `json:"input"`
}

// inputString unpacks the raw input field. Absent, null, empty, and
// non-string values all count as missing.
func inputString(raw json.RawMessage) (string, bool) {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil || s == "" {
		return "", false
	}
	return s, true
}

// analyzeTodosRequest is the JSON body of the analyze endpoint. Todos stays
// nil when the field is absent, which is rejected before the period check.
type analyzeTodosRequest struct {
	Todos  []assist.Snapshot `json:"todos"`
	Period assist.Period     `json:"period"`
}

// ParseTodo handles POST /api/v1/ai/parse-todo.
func (h *AssistHandler) ParseTodo(w http.ResponseWriter, r *http.Request) {
	var req parseTodoRequest
	if !decodeAssistBody(w, r, &req) {
		return
	}

	input, ok := inputString(req.Input)
	if !ok {
		writeAssistCode(w, r, assist.CodeMissingInput, "입력 텍스트가 필요합니다.")
		return
	}

	draft, err := h.service.ParseTodo(r.Context(), input)
	if err != nil {
		dto.WriteAssistError(w, r, err, assist.CodeParseError)
		return
	}

	dto.WriteAssistSuccess(w, r, draft)
}

// AnalyzeTodos handles POST /api/v1/ai/analyze-todos.
func (h *AssistHandler) AnalyzeTodos(w http.ResponseWriter, r *http.Request) {
	var req analyzeTodosRequest
	if !decodeAssistBody(w, r, &req) {
		return
	}

	if req.Todos == nil {
		writeAssistCode(w, r, assist.CodeMissingTodos, "할 일 목록이 필요합니다.")
		return
	}

	analysis, err := h.service.AnalyzeTodos(r.Context(), req.Todos, req.Period)
	if err != nil {
		dto.WriteAssistError(w, r, err, assist.CodeAnalysisError)
		return
	}

	dto.WriteAssistSuccess(w, r, analysis)
}

// decodeAssistBody decodes the request body, rejecting malformed JSON with
// the coded envelope instead of problem+json.
func decodeAssistBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeAssistCode(w, r, assist.CodeInvalidRequestFormat, "잘못된 요청 형식입니다.")
		return false
	}
	return true
}

func writeAssistCode(w http.ResponseWriter, r *http.Request, code assist.Code, message string) {
	dto.WriteAssistError(w, r, assist.NewError(code, message), code)
}
