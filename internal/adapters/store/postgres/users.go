package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/taskmind/taskmind/internal/domain/user"
	"github.com/taskmind/taskmind/internal/ports"
)

// Compile-time interface check.
var _ ports.UserStore = (*UserStore)(nil)

// userRow is the profile projection of the users table. The password hash
// stays out of it; only the auth adapter reads that column.
type userRow struct {
	ID                 string    `db:"id"`
	Email              string    `db:"email"`
	Name               string    `db:"name"`
	EmailNotifications bool      `db:"email_notifications"`
	CreatedAt          time.Time `db:"created_at"`
}

func (r *userRow) toDomain() user.User {
	return user.User{
		ID:                 r.ID,
		Email:              r.Email,
		Name:               r.Name,
		EmailNotifications: r.EmailNotifications,
		CreatedAt:          r.CreatedAt,
	}
}

// UserStore implements ports.UserStore on PostgreSQL.
type UserStore struct {
	db *sqlx.DB
}

// NewUserStore creates a UserStore over the given connection pool.
func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// Get returns a user profile by ID.
func (s *UserStore) Get(ctx context.Context, id string) (*user.User, error) {
	query, args, err := sq.Select("id", "email", "name", "email_notifications", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, translateError("building user get query", err)
	}

	var row userRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, translateError("fetching user", err)
	}

	result := row.toDomain()
	return &result, nil
}

// Update replaces the mutable profile fields. Email is identity and never
// changes here.
func (s *UserStore) Update(ctx context.Context, u *user.User) (*user.User, error) {
	query, args, err := sq.Update("users").
		Set("name", u.Name).
		Set("email_notifications", u.EmailNotifications).
		Where(sq.Eq{"id": u.ID}).
		Suffix("RETURNING id, email, name, email_notifications, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, translateError("building user update", err)
	}

	var row userRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, translateError("updating user", err)
	}

	result := row.toDomain()
	return &result, nil
}
