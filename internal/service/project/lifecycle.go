package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// Delete moves a project to the trash from any non-deleted status.
// Returns ErrConflict if the project is already in the trash.
func (s *Service) Delete(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.projects.UpdateStatus(ctx, userID, projectID,
		liveStatuses, domain.ProjectStatusDeleted)
	if err != nil {
		return fmt.Errorf("project.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "project trashed",
		slog.String("project_id", projectID.String()))

	return nil
}

// Restore moves a trashed project back to in_progress. The status the
// project had before deletion is not kept, so a completed project comes
// back as in_progress.
// Returns ErrConflict if the project is not in the trash.
func (s *Service) Restore(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	err := s.projects.UpdateStatus(ctx, userID, projectID,
		[]domain.ProjectStatus{domain.ProjectStatusDeleted}, domain.ProjectStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("project.Restore: %w", err)
	}

	restored, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.Restore get: %w", err)
	}

	s.log.InfoContext(ctx, "project restored",
		slog.String("project_id", projectID.String()))

	return restored, nil
}

// Purge permanently removes a trashed project. There is no undo.
// Returns ErrConflict if the project is not in the trash.
func (s *Service) Purge(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.projects.Purge(ctx, userID, projectID); err != nil {
		return fmt.Errorf("project.Purge: %w", err)
	}

	s.log.InfoContext(ctx, "project purged",
		slog.String("project_id", projectID.String()))

	return nil
}

// CleanupTrash permanently removes projects that have sat in the trash
// longer than the configured retention. Returns the number of purged
// projects. This is a maintenance operation and runs across all users.
func (s *Service) CleanupTrash(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.TrashRetentionDays)

	count, err := s.projects.PurgeExpired(ctx, cutoff)
	if err != nil {
		s.log.ErrorContext(ctx, "trash cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("project.CleanupTrash: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "purged expired trash projects", slog.Int("count", count))
	}

	return count, nil
}
