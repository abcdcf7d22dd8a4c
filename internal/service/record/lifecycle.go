package record

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// Delete moves an active record to the trash. The record keeps all its data
// and can be restored until it is purged.
// Returns ErrConflict if the record is not active.
func (s *Service) Delete(ctx context.Context, recordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.records.UpdateStatus(ctx, userID, recordID,
		domain.RecordStatusActive, domain.RecordStatusDeleted)
	if err != nil {
		return fmt.Errorf("record.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "record trashed",
		slog.String("record_id", recordID.String()))

	return nil
}

// Restore moves a trashed record back to the active view with all fields
// intact: a delete followed by a restore is a round trip.
// Returns ErrConflict if the record is not in the trash.
func (s *Service) Restore(ctx context.Context, recordID uuid.UUID) (*domain.WorkRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	err := s.records.UpdateStatus(ctx, userID, recordID,
		domain.RecordStatusDeleted, domain.RecordStatusActive)
	if err != nil {
		return nil, fmt.Errorf("record.Restore: %w", err)
	}

	restored, err := s.records.GetByID(ctx, userID, recordID)
	if err != nil {
		return nil, fmt.Errorf("record.Restore get: %w", err)
	}

	s.log.InfoContext(ctx, "record restored",
		slog.String("record_id", recordID.String()))

	return restored, nil
}

// Purge permanently removes a trashed record. There is no undo.
// Returns ErrConflict if the record is not in the trash.
func (s *Service) Purge(ctx context.Context, recordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.records.Purge(ctx, userID, recordID); err != nil {
		return fmt.Errorf("record.Purge: %w", err)
	}

	s.log.InfoContext(ctx, "record purged",
		slog.String("record_id", recordID.String()))

	return nil
}

// CleanupTrash permanently removes records that have sat in the trash longer
// than the configured retention. Returns the number of purged records.
// This is a maintenance operation and runs across all users.
func (s *Service) CleanupTrash(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.TrashRetentionDays)

	count, err := s.records.PurgeExpired(ctx, cutoff)
	if err != nil {
		s.log.ErrorContext(ctx, "trash cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("record.CleanupTrash: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "purged expired trash records", slog.Int("count", count))
	}

	return count, nil
}
