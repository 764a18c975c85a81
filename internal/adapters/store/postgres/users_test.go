package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmind/taskmind/internal/domain"
	"github.com/taskmind/taskmind/internal/domain/user"
)

func userMockRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "email_notifications", "created_at"})
}

func TestUserStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("maps the profile row", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		store := NewUserStore(db)

		mock.ExpectQuery(`SELECT id, email, name, email_notifications, created_at FROM users WHERE id = \$1`).
			WithArgs("u-1").
			WillReturnRows(userMockRows().AddRow("u-1", "a@example.com", "가영", true,
				time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

		got, err := store.Get(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", got.Email)
		assert.True(t, got.EmailNotifications)
	})

	t.Run("maps missing users to not found", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		store := NewUserStore(db)

		mock.ExpectQuery(`SELECT .+ FROM users`).
			WithArgs("u-404").
			WillReturnRows(userMockRows())

		_, err := store.Get(context.Background(), "u-404")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserStore_Update(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	store := NewUserStore(db)

	mock.ExpectQuery(`UPDATE users SET name = \$1, email_notifications = \$2 WHERE id = \$3 RETURNING`).
		WithArgs("새 이름", false, "u-1").
		WillReturnRows(userMockRows().AddRow("u-1", "a@example.com", "새 이름", false,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	got, err := store.Update(context.Background(), &user.User{
		ID:                 "u-1",
		Name:               "새 이름",
		EmailNotifications: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "새 이름", got.Name)
	assert.False(t, got.EmailNotifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}
