// Package record implements the work record repository using PostgreSQL.
// It covers CRUD plus the soft-delete lifecycle transitions (delete,
// restore, purge) with status guards enforced in SQL.
package record

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/worklog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worklog-backend/internal/domain"
)

const table = "work_records"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "user_id", "title", "description", "record_type",
	"content", "file_url", "link_url", "file_type",
	"status", "priority", "progress", "created_at", "ai_summary",
}

// Repo provides work record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new work record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record by primary key.
// Returns domain.ErrNotFound if the record does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.WorkRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"id": recordID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get work_record: %w", err)
	}

	rec, err := scanRecord(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "work_record", recordID)
	}

	return rec, nil
}

// List returns the user's records matching the filter, ordered by
// created_at DESC (the store order every view preserves).
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if f.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.Category != nil {
		builder = builder.Where(sq.Eq{"record_type": string(*f.Category)})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list work_records: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work_records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Count returns the number of records for a user (all statuses).
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("count(*)").From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count work_records: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count work_records: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec *domain.WorkRecord) (*domain.WorkRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.UserID, rec.Title, rec.Description, string(rec.RecordType),
			rec.Content, rec.FileURL, rec.LinkURL, fileTypeToString(rec.FileType),
			string(rec.Status), string(rec.Priority), rec.Progress, rec.CreatedAt, rec.AISummary,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create work_record: %w", err)
	}

	created, err := scanRecord(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "work_record", rec.ID)
	}

	return created, nil
}

// Update applies a partial update and returns the updated row.
// Returns domain.ErrNotFound if the record does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, recordID uuid.UUID, patch domain.RecordPatch) (*domain.WorkRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Update(table).
		Where(sq.Eq{"id": recordID, "user_id": userID})

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Content != nil {
		builder = builder.Set("content", *patch.Content)
	}
	if patch.LinkURL != nil {
		builder = builder.Set("link_url", *patch.LinkURL)
	}
	if patch.FileURL != nil {
		builder = builder.Set("file_url", *patch.FileURL)
	}
	if patch.Progress != nil {
		builder = builder.Set("progress", *patch.Progress)
	}
	if patch.Priority != nil {
		builder = builder.Set("priority", string(*patch.Priority))
	}
	if patch.AISummary != nil {
		builder = builder.Set("ai_summary", *patch.AISummary)
	}

	query, args, err := builder.Suffix("RETURNING " + joinColumns()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update work_record: %w", err)
	}

	updated, err := scanRecord(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "work_record", recordID)
	}

	return updated, nil
}

// UpdateStatus transitions a record from one lifecycle status to another.
// The transition is guarded in SQL: if the record is not currently in the
// `from` status the update matches no row, and the error distinguishes a
// missing record (ErrNotFound) from a wrong-state one (ErrConflict).
func (r *Repo) UpdateStatus(ctx context.Context, userID, recordID uuid.UUID, from, to domain.RecordStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Update(table).
		Set("status", string(to)).
		Where(sq.Eq{"id": recordID, "user_id": userID, "status": string(from)})

	// Track when the record fell into the trash so retention cleanup can age it.
	if to == domain.RecordStatusDeleted {
		builder = builder.Set("deleted_at", time.Now().UTC())
	} else {
		builder = builder.Set("deleted_at", nil)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build update work_record status: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "work_record", recordID)
	}

	if tag.RowsAffected() == 0 {
		return r.explainMissedTransition(ctx, userID, recordID)
	}

	return nil
}

// Purge permanently deletes a record. Only trashed records can be purged;
// the guard lives in the WHERE clause.
func (r *Repo) Purge(ctx context.Context, userID, recordID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete(table).
		Where(sq.Eq{"id": recordID, "user_id": userID, "status": string(domain.RecordStatusDeleted)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build purge work_record: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "work_record", recordID)
	}

	if tag.RowsAffected() == 0 {
		return r.explainMissedTransition(ctx, userID, recordID)
	}

	return nil
}

// PurgeExpired permanently deletes trashed records older than the cutoff.
// Returns the number of purged rows. Used by the trash retention sweep.
func (r *Repo) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete(table).
		Where(sq.Eq{"status": string(domain.RecordStatusDeleted)}).
		Where(sq.Lt{"deleted_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge expired work_records: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge expired work_records: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// explainMissedTransition turns a zero-row lifecycle update into the right
// domain error: the record is either gone (ErrNotFound) or in a status the
// transition does not allow (ErrConflict).
func (r *Repo) explainMissedTransition(ctx context.Context, userID, recordID uuid.UUID) error {
	if _, err := r.GetByID(ctx, userID, recordID); err != nil {
		return err
	}
	return fmt.Errorf("work_record %s: %w", recordID, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func scanRecord(row pgx.Row) (*domain.WorkRecord, error) {
	var (
		rec        domain.WorkRecord
		recordType string
		status     string
		priority   string
		fileType   *string
	)

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Title, &rec.Description, &recordType,
		&rec.Content, &rec.FileURL, &rec.LinkURL, &fileType,
		&status, &priority, &rec.Progress, &rec.CreatedAt, &rec.AISummary,
	)
	if err != nil {
		return nil, err
	}

	rec.RecordType = domain.RecordType(recordType)
	rec.Status = domain.RecordStatus(status)
	rec.Priority = domain.Priority(priority)
	if fileType != nil {
		ft := domain.FileType(*fileType)
		rec.FileType = &ft
	}

	return &rec, nil
}

func scanRecords(rows pgx.Rows) ([]*domain.WorkRecord, error) {
	records := make([]*domain.WorkRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work_record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work_records: %w", err)
	}
	return records, nil
}

func fileTypeToString(ft *domain.FileType) *string {
	if ft == nil {
		return nil
	}
	s := string(*ft)
	return &s
}
