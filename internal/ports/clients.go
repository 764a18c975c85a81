package ports

import (
	"context"

	"github.com/taskmind/taskmind/internal/domain/assist"
	"github.com/taskmind/taskmind/internal/domain/todo"
)

// Generator defines the client port for the text-generation model API.
// Implemented by the model adapter; called by the assist service. The adapter
// owns the response schema, decoding, and translation of upstream failures
// into *assist.Error values; callers receive decoded domain values.
type Generator interface {
	// ParseTodo sends the parse prompt and decodes the structured draft
	// from the model response. The returned draft is raw model output;
	// callers must run the repair pass before trusting it.
	ParseTodo(ctx context.Context, prompt string) (assist.Draft, error)

	// AnalyzeTodos sends the analysis prompt and decodes the structured
	// analysis from the model response.
	AnalyzeTodos(ctx context.Context, prompt string) (assist.Analysis, error)
}

// Mailer defines the client port for outbound email.
// Implemented by the mail adapter; called by the overdue sweep.
type Mailer interface {
	// SendOverdueDigest sends one email listing the recipient's overdue
	// todos. The adapter owns subject and body rendering.
	SendOverdueDigest(ctx context.Context, to, name string, todos []todo.Todo) error
}
