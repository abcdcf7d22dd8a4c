// Package project implements the project repository using PostgreSQL.
package project

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

const table = "projects"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "user_id", "name", "description", "project_type",
	"status", "priority", "progress",
	"start_date", "end_date", "target_date", "file_name", "linked_record_ids",
}

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"id": projectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get project: %w", err)
	}

	p, err := scanProject(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}

	return p, nil
}

// List returns the user's projects in one lifecycle partition, ordered by
// start_date DESC. Deleted == false lists every non-trashed status.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, deleted bool) ([]*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("start_date DESC")

	if deleted {
		builder = builder.Where(sq.Eq{"status": string(domain.ProjectStatusDeleted)})
	} else {
		builder = builder.Where(sq.NotEq{"status": string(domain.ProjectStatusDeleted)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// Create inserts a new project and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert(table).
		Columns(columns...).
		Values(
			p.ID, p.UserID, p.Name, p.Description, p.ProjectType,
			string(p.Status), string(p.Priority), p.Progress,
			p.StartDate, p.EndDate, p.TargetDate, p.FileName, p.LinkedRecordIDs,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create project: %w", err)
	}

	created, err := scanProject(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}

	return created, nil
}

// Update applies a partial update and returns the updated row.
func (r *Repo) Update(ctx context.Context, userID, projectID uuid.UUID, patch domain.ProjectPatch) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Update(table).
		Where(sq.Eq{"id": projectID, "user_id": userID})

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.ProjectType != nil {
		builder = builder.Set("project_type", *patch.ProjectType)
	}
	if patch.Status != nil {
		builder = builder.Set("status", string(*patch.Status))
	}
	if patch.Priority != nil {
		builder = builder.Set("priority", string(*patch.Priority))
	}
	if patch.Progress != nil {
		builder = builder.Set("progress", *patch.Progress)
	}
	if patch.EndDate != nil {
		builder = builder.Set("end_date", *patch.EndDate)
	}
	if patch.TargetDate != nil {
		builder = builder.Set("target_date", *patch.TargetDate)
	}
	if patch.FileName != nil {
		builder = builder.Set("file_name", *patch.FileName)
	}
	if patch.LinkedRecordIDs != nil {
		builder = builder.Set("linked_record_ids", *patch.LinkedRecordIDs)
	}

	query, args, err := builder.Suffix("RETURNING " + joinColumns()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update project: %w", err)
	}

	updated, err := scanProject(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}

	return updated, nil
}

// UpdateStatus transitions a project between lifecycle statuses with the
// same SQL guard the record repository uses: the `from` set restricts which
// current statuses the transition accepts.
func (r *Repo) UpdateStatus(ctx context.Context, userID, projectID uuid.UUID, from []domain.ProjectStatus, to domain.ProjectStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = string(s)
	}

	builder := qb.Update(table).
		Set("status", string(to)).
		Where(sq.Eq{"id": projectID, "user_id": userID, "status": fromStrs})

	if to == domain.ProjectStatusDeleted {
		builder = builder.Set("deleted_at", time.Now().UTC())
	} else {
		builder = builder.Set("deleted_at", nil)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build update project status: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "project", projectID)
	}

	if tag.RowsAffected() == 0 {
		return r.explainMissedTransition(ctx, userID, projectID)
	}

	return nil
}

// Purge permanently deletes a project. Only trashed projects can be purged.
func (r *Repo) Purge(ctx context.Context, userID, projectID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete(table).
		Where(sq.Eq{"id": projectID, "user_id": userID, "status": string(domain.ProjectStatusDeleted)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build purge project: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "project", projectID)
	}

	if tag.RowsAffected() == 0 {
		return r.explainMissedTransition(ctx, userID, projectID)
	}

	return nil
}

// PurgeExpired permanently deletes trashed projects older than the cutoff.
func (r *Repo) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete(table).
		Where(sq.Eq{"status": string(domain.ProjectStatusDeleted)}).
		Where(sq.Lt{"deleted_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge expired projects: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge expired projects: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *Repo) explainMissedTransition(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := r.GetByID(ctx, userID, projectID); err != nil {
		return err
	}
	return fmt.Errorf("project %s: %w", projectID, domain.ErrConflict)
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p        domain.Project
		status   string
		priority string
	)

	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.ProjectType,
		&status, &priority, &p.Progress,
		&p.StartDate, &p.EndDate, &p.TargetDate, &p.FileName, &p.LinkedRecordIDs,
	)
	if err != nil {
		return nil, err
	}

	p.Status = domain.ProjectStatus(status)
	p.Priority = domain.Priority(priority)
	if p.LinkedRecordIDs == nil {
		p.LinkedRecordIDs = []uuid.UUID{}
	}

	return &p, nil
}

func scanProjects(rows pgx.Rows) ([]*domain.Project, error) {
	projects := make([]*domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}
