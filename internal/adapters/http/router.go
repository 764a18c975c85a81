// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskmind/taskmind/internal/adapters/http/handlers"
	"github.com/taskmind/taskmind/internal/adapters/http/middleware"
	"github.com/taskmind/taskmind/internal/ports"
)

// Handlers bundles every inbound handler the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Todo     *handlers.TodoHandler
	Feedback *handlers.FeedbackHandler
	Assist   *handlers.AssistHandler
	Sweep    *handlers.SweepHandler
	Health   *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Global middleware is applied in the order given; the user-facing API
// routes additionally require a valid bearer token, while signup/login, the
// cron endpoint (own secret), and health probes stay open.
func NewRouter(
	h Handlers,
	authenticator ports.Authenticator,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Credential endpoints, no token required.
		r.Post("/auth/signup", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/logout", h.Auth.Logout)

		// Scheduled sweep, guarded by its own bearer secret.
		r.Get("/cron/check-overdue", h.Sweep.CheckOverdue)
		r.Post("/cron/check-overdue", h.Sweep.CheckOverdue)

		// Everything below requires an authenticated user.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authenticator))

			r.Get("/auth/me", h.Auth.Me)
			r.Patch("/auth/profile", h.Auth.UpdateProfile)
			r.Delete("/account", h.Auth.DeleteAccount)

			// Todo CRUD.
			r.Get("/todos", h.Todo.ListTodos)
			r.Post("/todos", h.Todo.CreateTodo)
			r.Get("/todos/{id}", h.Todo.GetTodo)
			r.Patch("/todos/{id}", h.Todo.UpdateTodo)
			r.Delete("/todos/{id}", h.Todo.DeleteTodo)
			r.Patch("/todos/{id}/complete", h.Todo.SetCompleted)

			// Feedback.
			r.Get("/feedback", h.Feedback.ListFeedback)
			r.Post("/feedback", h.Feedback.CreateFeedback)

			// AI pipelines.
			r.Post("/ai/parse-todo", h.Assist.ParseTodo)
			r.Post("/ai/analyze-todos", h.Assist.AnalyzeTodos)
		})
	})

	return r
}
