// Package handlers contains the inbound HTTP handlers: auth, todo and
// feedback CRUD, the two AI endpoints, the cron-triggered overdue sweep,
// and health probes.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/adapters/http/middleware"
	"github.com/taskmind/taskmind/internal/domain"
	"github.com/taskmind/taskmind/internal/domain/todo"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// ownerID extracts the authenticated user's ID placed in the context by the
// auth middleware. An empty ID means the route was wired without the
// middleware; the handler responds 401 rather than serving cross-owner data.
func ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := middleware.OwnerIDFromContext(r.Context())
	if id == "" {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthorized)
		return "", false
	}
	return id, true
}

// parseTodoFilter builds a todo.Filter from list query parameters:
// search, priority, category, status (comma-separated or repeated),
// sort_by and order=asc|desc.
func parseTodoFilter(r *http.Request) (todo.Filter, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	filter := todo.Filter{
		Search:     strings.TrimSpace(q.Get("search")),
		Categories: splitParam(q["category"]),
	}

	for _, raw := range splitParam(q["priority"]) {
		p := todo.Priority(raw)
		if !p.IsValid() {
			fields["priority"] = "invalid: " + raw
			continue
		}
		filter.Priorities = append(filter.Priorities, p)
	}

	for _, raw := range splitParam(q["status"]) {
		s := todo.StatusFilter(raw)
		if !s.IsValid() {
			fields["status"] = "invalid: " + raw
			continue
		}
		filter.Statuses = append(filter.Statuses, s)
	}

	if raw := q.Get("sort_by"); raw != "" {
		s := todo.SortBy(raw)
		if !s.IsValid() {
			fields["sort_by"] = "invalid: " + raw
		}
		filter.SortBy = s
	}
	filter.Ascending = q.Get("order") == "asc"

	if len(fields) > 0 {
		return todo.Filter{}, &domain.ValidationError{Fields: fields}
	}
	return filter, nil
}

// splitParam flattens repeated query parameters and comma-separated values
// into one list, dropping blanks.
func splitParam(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
