package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// Update applies a partial update to a record and returns the updated row.
func (s *Service) Update(ctx context.Context, recordID uuid.UUID, input UpdateInput) (*domain.WorkRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Patch.Title != nil {
		trimmed := strings.TrimSpace(*input.Patch.Title)
		input.Patch.Title = &trimmed
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.records.Update(ctx, userID, recordID, input.Patch)
	if err != nil {
		return nil, fmt.Errorf("record.Update: %w", err)
	}

	s.log.InfoContext(ctx, "record updated",
		slog.String("record_id", recordID.String()))

	return updated, nil
}

// SetAISummary stores a generated summary on a record.
func (s *Service) SetAISummary(ctx context.Context, recordID uuid.UUID, summary string) (*domain.WorkRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.records.Update(ctx, userID, recordID, domain.RecordPatch{AISummary: &summary})
	if err != nil {
		return nil, fmt.Errorf("record.SetAISummary: %w", err)
	}

	return updated, nil
}
