package handlers

import (
	"net/http"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/domain/user"
	"github.com/taskmind/taskmind/internal/ports"
)

// AuthHandler handles signup, login, and the authenticated account surface:
// current profile, profile update, and account deletion.
type AuthHandler struct {
	auth     ports.AuthService
	accounts ports.AccountService
}

// NewAuthHandler creates a new AuthHandler with the given service ports.
func NewAuthHandler(auth ports.AuthService, accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{auth: auth, accounts: accounts}
}

// Register handles POST /api/v1/auth/signup.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, token, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToAuthResponse(u, token))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAuthResponse(u, token))
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless, so there
// is nothing to revoke server-side; clients discard the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	u, err := h.accounts.Profile(r.Context(), owner)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// UpdateProfile handles PATCH /api/v1/auth/profile. Unset fields keep
// their current values.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	current, err := h.accounts.Profile(r.Context(), owner)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	applyProfilePatch(current, &req)

	updated, err := h.accounts.UpdateProfile(r.Context(), owner, current)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(updated))
}

// DeleteAccount handles DELETE /api/v1/account. Owned todos and feedback
// go first, the credentials last, so a partial failure leaves a usable
// account the user can retry from.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	if err := h.accounts.DeleteAccount(r.Context(), owner); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// applyProfilePatch overlays the provided UpdateProfileRequest fields onto
// an existing profile.
func applyProfilePatch(u *user.User, req *dto.UpdateProfileRequest) {
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.EmailNotifications != nil {
		u.EmailNotifications = *req.EmailNotifications
	}
}
