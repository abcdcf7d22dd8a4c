// Package memo implements the calendar memo repository using PostgreSQL.
// Memos have no trash lifecycle: Delete removes the row permanently.
package memo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/worklog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worklog-backend/internal/domain"
)

const table = "memos"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "user_id", "title", "description", "date", "time",
	"type", "priority", "is_notified",
}

// Repo provides memo persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new memo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a memo by primary key.
func (r *Repo) GetByID(ctx context.Context, userID, memoID uuid.UUID) (*domain.Memo, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"id": memoID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get memo: %w", err)
	}

	m, err := scanMemo(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "memo", memoID)
	}

	return m, nil
}

// List returns all memos for a user ordered by date DESC.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Memo, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list memos: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	defer rows.Close()

	return scanMemos(rows)
}

// Create inserts a new memo and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Memo) (*domain.Memo, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert(table).
		Columns(columns...).
		Values(
			m.ID, m.UserID, m.Title, m.Description, m.Date, m.Time,
			string(m.Type), string(m.Priority), m.IsNotified,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create memo: %w", err)
	}

	created, err := scanMemo(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "memo", m.ID)
	}

	return created, nil
}

// SetNotified marks a memo as having had its notification shown.
// Returns domain.ErrNotFound if the memo does not exist.
func (r *Repo) SetNotified(ctx context.Context, userID, memoID uuid.UUID, notified bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Update(table).
		Set("is_notified", notified).
		Where(sq.Eq{"id": memoID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set memo notified: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "memo", memoID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("memo %s: %w", memoID, domain.ErrNotFound)
	}

	return nil
}

// Delete permanently removes a memo.
// Returns domain.ErrNotFound if the memo does not exist.
func (r *Repo) Delete(ctx context.Context, userID, memoID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete(table).
		Where(sq.Eq{"id": memoID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete memo: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "memo", memoID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("memo %s: %w", memoID, domain.ErrNotFound)
	}

	return nil
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func scanMemo(row pgx.Row) (*domain.Memo, error) {
	var (
		m        domain.Memo
		memoType string
		priority string
	)

	err := row.Scan(
		&m.ID, &m.UserID, &m.Title, &m.Description, &m.Date, &m.Time,
		&memoType, &priority, &m.IsNotified,
	)
	if err != nil {
		return nil, err
	}

	m.Type = domain.MemoType(memoType)
	m.Priority = domain.Priority(priority)

	return &m, nil
}

func scanMemos(rows pgx.Rows) ([]*domain.Memo, error) {
	memos := make([]*domain.Memo, 0)
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan memo: %w", err)
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memos: %w", err)
	}
	return memos, nil
}
