package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// Create adds a new active work record for the authenticated user.
// Returns ErrConflict when the user has hit the per-user record cap.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.WorkRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.records.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("record.Create count: %w", err)
	}
	if count >= s.cfg.MaxRecordsPerUser {
		return nil, fmt.Errorf("record cap %d reached: %w", s.cfg.MaxRecordsPerUser, domain.ErrConflict)
	}

	rec := &domain.WorkRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		RecordType:  input.RecordType,
		Content:     input.Content,
		FileURL:     input.FileURL,
		LinkURL:     input.LinkURL,
		FileType:    input.FileType,
		Status:      domain.RecordStatusActive,
		Priority:    input.Priority,
		Progress:    input.Progress,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.records.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("record.Create: %w", err)
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("record_id", created.ID.String()),
		slog.String("record_type", created.RecordType.String()),
	)

	return created, nil
}
