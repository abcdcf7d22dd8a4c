// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/worklog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worklog-backend/internal/domain"
)

const table = "users"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "email", "name", "avatar_url", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var u domain.User
	err = q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return &u, nil
}

// GetByEmail returns a user and their password hash by email.
// The hash is returned separately so it never travels on the domain type.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(append(columns, "password_hash")...).From(table).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("build get user by email: %w", err)
	}

	var (
		u    domain.User
		hash string
	)
	err = q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt, &hash,
	)
	if err != nil {
		return nil, "", postgres.MapError(err, "user", uuid.Nil)
	}

	return &u, hash, nil
}

// Create inserts a new user with the given password hash and returns the row.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert(table).
		Columns("id", "email", "name", "avatar_url", "password_hash").
		Values(u.ID, u.Email, u.Name, u.AvatarURL, passwordHash).
		Suffix("RETURNING id, email, name, avatar_url, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user: %w", err)
	}

	var created domain.User
	err = q.QueryRow(ctx, query, args...).Scan(
		&created.ID, &created.Email, &created.Name, &created.AvatarURL,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return &created, nil
}
