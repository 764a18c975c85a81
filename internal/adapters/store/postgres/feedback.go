package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskmind/taskmind/internal/domain/feedback"
	"github.com/taskmind/taskmind/internal/ports"
)

// Compile-time interface check.
var _ ports.FeedbackStore = (*FeedbackStore)(nil)

var feedbackColumns = []string{
	"id", "owner_id", "type", "title", "description", "status", "created_at",
}

type feedbackRow struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *feedbackRow) toDomain() feedback.Feedback {
	return feedback.Feedback{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Type:        feedback.Type(r.Type),
		Title:       r.Title,
		Description: r.Description,
		Status:      feedback.Status(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

// FeedbackStore implements ports.FeedbackStore on PostgreSQL.
type FeedbackStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewFeedbackStore creates a FeedbackStore over the given connection pool.
func NewFeedbackStore(db *sqlx.DB) *FeedbackStore {
	return &FeedbackStore{db: db, now: time.Now}
}

// List returns the owner's feedback entries, newest first.
func (s *FeedbackStore) List(ctx context.Context, ownerID string) ([]feedback.Feedback, error) {
	query, args, err := sq.Select(feedbackColumns...).
		From("feedback").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, translateError("building feedback list query", err)
	}

	var rows []feedbackRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translateError("listing feedback", err)
	}

	entries := make([]feedback.Feedback, len(rows))
	for i := range rows {
		entries[i] = rows[i].toDomain()
	}
	return entries, nil
}

// Create inserts a new feedback entry with a fresh UUID and creation
// timestamp.
func (s *FeedbackStore) Create(ctx context.Context, f *feedback.Feedback) (*feedback.Feedback, error) {
	query, args, err := sq.Insert("feedback").
		Columns(feedbackColumns...).
		Values(uuid.NewString(), f.OwnerID, string(f.Type), f.Title, f.Description,
			string(f.Status), s.now().UTC()).
		Suffix("RETURNING id, owner_id, type, title, description, status, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, translateError("building feedback insert", err)
	}

	var row feedbackRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, translateError("creating feedback", err)
	}

	result := row.toDomain()
	return &result, nil
}

// DeleteByOwner removes every feedback entry belonging to the owner.
func (s *FeedbackStore) DeleteByOwner(ctx context.Context, ownerID string) error {
	query, args, err := sq.Delete("feedback").
		Where(sq.Eq{"owner_id": ownerID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return translateError("building owner feedback delete", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return translateError("deleting owner feedback", err)
	}
	return nil
}
