package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskmind/taskmind/internal/domain/assist"
	"github.com/taskmind/taskmind/internal/ports"
)

// Compile-time check that AssistService implements ports.AssistService.
var _ ports.AssistService = (*AssistService)(nil)

// AssistService implements ports.AssistService: the natural-language parse
// pipeline and the analysis pipeline. Both are stateless and persist
// nothing; drafts go back to the client for confirmation and analyses are
// rendered once and discarded.
type AssistService struct {
	generator ports.Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewAssistService creates an AssistService. A nil logger is replaced with
// a no-op logger.
func NewAssistService(generator ports.Generator, logger *slog.Logger) *AssistService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AssistService{
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// ParseTodo runs the parse pipeline: preprocess, validate, prompt the model,
// then repair the draft. Validation failures short-circuit before the model
// call and come back as *assist.Error, as do classified upstream failures.
func (s *AssistService) ParseTodo(ctx context.Context, input string) (assist.Draft, error) {
	cleaned := assist.Preprocess(input)
	if err := assist.ValidateInput(cleaned); err != nil {
		return assist.Draft{}, err
	}

	now := s.now()
	draft, err := s.generator.ParseTodo(ctx, parsePrompt(cleaned, now))
	if err != nil {
		s.logger.ErrorContext(ctx, "todo parse failed",
			slog.String("operation", "ParseTodo"),
			slog.Any("error", err),
		)
		return assist.Draft{}, err
	}

	repaired := assist.Repair(draft, now)
	s.logger.InfoContext(ctx, "todo parsed",
		slog.Int("input_runes", len([]rune(cleaned))),
		slog.String("priority", repaired.Priority.String()),
	)
	return repaired, nil
}

// AnalyzeTodos runs the analysis pipeline. An empty list returns the canned
// empty-state analysis without calling the model; the model's narrative is
// otherwise returned verbatim.
func (s *AssistService) AnalyzeTodos(ctx context.Context, todos []assist.Snapshot, period assist.Period) (assist.Analysis, error) {
	if !period.IsValid() {
		return assist.Analysis{}, assist.NewError(assist.CodeInvalidPeriod,
			"분석 기간이 올바르지 않습니다. (today 또는 week)")
	}

	if len(todos) == 0 {
		return assist.EmptyAnalysis(), nil
	}

	analysis, err := s.generator.AnalyzeTodos(ctx, analyzePrompt(todos, period, s.now()))
	if err != nil {
		s.logger.ErrorContext(ctx, "todo analysis failed",
			slog.String("operation", "AnalyzeTodos"),
			slog.String("period", period.String()),
			slog.Any("error", err),
		)
		return assist.Analysis{}, err
	}

	s.logger.InfoContext(ctx, "todos analyzed",
		slog.String("period", period.String()),
		slog.Int("todo_count", len(todos)),
	)
	return analysis, nil
}
