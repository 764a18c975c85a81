// Package auth implements the identity port: credential storage in the
// users table, bcrypt password verification, and HS256 bearer tokens.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskmind/taskmind/internal/domain"
	"github.com/taskmind/taskmind/internal/domain/user"
	"github.com/taskmind/taskmind/internal/ports"
)

// minPasswordLength is the password policy floor.
const minPasswordLength = 8

// tokenIssuer names this service in issued tokens.
const tokenIssuer = "taskmind"

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

// Compile-time interface check.
var _ ports.Authenticator = (*Provider)(nil)

// Provider implements ports.Authenticator. It shares the users table with
// the profile store but is the only component that touches the
// password_hash column.
type Provider struct {
	db     *sqlx.DB
	secret []byte
	ttl    time.Duration
	cost   int
	logger *slog.Logger
	now    func() time.Time
}

// NewProvider creates a Provider. secret signs bearer tokens; ttl bounds
// their lifetime.
func NewProvider(db *sqlx.DB, secret []byte, ttl time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		db:     db,
		secret: secret,
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
		logger: logger,
		now:    time.Now,
	}
}

type credentialRow struct {
	ID                 string    `db:"id"`
	Email              string    `db:"email"`
	Name               string    `db:"name"`
	EmailNotifications bool      `db:"email_notifications"`
	PasswordHash       []byte    `db:"password_hash"`
	CreatedAt          time.Time `db:"created_at"`
}

func (r *credentialRow) toDomain() *user.User {
	return &user.User{
		ID:                 r.ID,
		Email:              r.Email,
		Name:               r.Name,
		EmailNotifications: r.EmailNotifications,
		CreatedAt:          r.CreatedAt,
	}
}

// Register creates a new account. Email notifications default to enabled.
func (p *Provider) Register(ctx context.Context, email, password, name string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, &domain.ValidationError{Fields: map[string]string{"email": "must be a valid address"}}
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w",
			minPasswordLength, domain.ErrWeakPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	query, args, err := sq.Insert("users").
		Columns("id", "email", "name", "email_notifications", "password_hash", "created_at").
		Values(uuid.NewString(), email, strings.TrimSpace(name), true, hash, p.now().UTC()).
		Suffix("RETURNING id, email, name, email_notifications, password_hash, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building account insert: %w", err)
	}

	var row credentialRow
	if err := p.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email %s: %w", email, domain.ErrAlreadyRegistered)
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return row.toDomain(), nil
}

// Authenticate verifies an email/password pair. An unknown email and a
// wrong password are indistinguishable to the caller.
func (p *Provider) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	query, args, err := sq.Select("id", "email", "name", "email_notifications", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building credential query: %w", err)
	}

	var row credentialRow
	if err := p.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("fetching credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(row.PasswordHash, []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return row.toDomain(), nil
}

// IssueToken signs an HS256 bearer token for the given user.
func (p *Provider) IssueToken(userID string) (ports.Token, error) {
	now := p.now()
	expiresAt := now.Add(p.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return ports.Token{}, fmt.Errorf("signing token: %w", err)
	}

	return ports.Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// VerifyToken validates a bearer token and returns the user ID it was
// issued for.
func (p *Provider) VerifyToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return p.now() }),
	)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, domain.ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("token has no subject: %w", domain.ErrUnauthorized)
	}

	return claims.Subject, nil
}

// DeleteAccount removes the account row, credentials included.
func (p *Provider) DeleteAccount(ctx context.Context, userID string) error {
	query, args, err := sq.Delete("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building account delete: %w", err)
	}

	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("account %s: %w", userID, domain.ErrNotFound)
	}

	p.logger.InfoContext(ctx, "account deleted", slog.String("user_id", userID))
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
