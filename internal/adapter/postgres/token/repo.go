// Package token implements the refresh token repository using PostgreSQL.
// Tokens are stored hashed; lookups are always by hash.
package token

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/worklog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worklog-backend/internal/domain"
)

const table = "refresh_tokens"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert(table).
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create refresh_token: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}

	return nil
}

// GetByHash returns a token by its hash, revoked or not.
// Returns domain.ErrNotFound if no such token exists.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"token_hash": hash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get refresh_token: %w", err)
	}

	var t domain.RefreshToken
	err = q.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return &t, nil
}

// Revoke marks a single token as revoked. Revoking an already revoked
// token is a no-op; a missing token is domain.ErrNotFound.
func (r *Repo) Revoke(ctx context.Context, hash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Update(table).
		Set("revoked_at", time.Now().UTC()).
		Where(sq.Eq{"token_hash": hash}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke refresh_token: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish "already revoked" (fine) from "never existed".
		if _, err := r.GetByHash(ctx, hash); err != nil {
			return err
		}
	}

	return nil
}

// RevokeAllForUser revokes every live token a user holds (logout everywhere).
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Update(table).
		Set("revoked_at", time.Now().UTC()).
		Where(sq.Eq{"user_id": userID}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke user refresh_tokens: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return nil
}

// DeleteExpired removes tokens that expired before the cutoff, revoked or
// not. Returns the number of deleted rows. Used by the token cleanup job.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete(table).
		Where(sq.Lt{"expires_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired refresh_tokens: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh_tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
