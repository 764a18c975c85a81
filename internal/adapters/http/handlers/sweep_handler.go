package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/ports"
)

// SweepHandler handles the cron-triggered overdue sweep endpoint. The
// scheduler authenticates with a bearer secret, not a user token.
type SweepHandler struct {
	service ports.SweepService
	secret  string
}

// NewSweepHandler creates a new SweepHandler guarding the sweep with the
// given shared secret.
func NewSweepHandler(service ports.SweepService, secret string) *SweepHandler {
	return &SweepHandler{service: service, secret: secret}
}

// CheckOverdue handles GET|POST /api/v1/cron/check-overdue.
func (h *SweepHandler) CheckOverdue(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	result, err := h.service.CheckOverdue(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "할 일 확인 중 오류가 발생했습니다.",
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSweepResponse(result))
}

// authorized compares the bearer credential against the configured secret
// in constant time. An unconfigured secret rejects every request.
func (h *SweepHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return false
	}
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
