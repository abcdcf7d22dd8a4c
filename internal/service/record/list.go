package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// List returns one view of the user's records: the active view (optionally
// narrowed by search text and category) or the trash. Both views preserve
// creation order, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.WorkRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Search = strings.TrimSpace(input.Search)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.RecordStatusActive
	filter := domain.RecordFilter{Status: &status}
	if input.Deleted {
		// The trash view ignores search and category.
		status = domain.RecordStatusDeleted
	} else {
		filter.Category = input.Category
		filter.Search = input.Search
	}

	records, err := s.records.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("record.List: %w", err)
	}

	return records, nil
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, recordID uuid.UUID) (*domain.WorkRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.records.GetByID(ctx, userID, recordID)
	if err != nil {
		return nil, fmt.Errorf("record.Get: %w", err)
	}

	return rec, nil
}
