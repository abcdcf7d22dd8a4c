package memo

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

// Create adds a new memo for the authenticated user. The date is truncated
// to its calendar day in UTC; the time of day, when given, lives in a
// separate field.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Memo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Type == "" {
		input.Type = domain.MemoTypeMemo
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	m := &domain.Memo{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date.UTC().Truncate(24 * time.Hour),
		Time:        input.Time,
		Type:        input.Type,
		Priority:    input.Priority,
	}

	created, err := s.memos.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("memo.Create: %w", err)
	}

	s.log.InfoContext(ctx, "memo created",
		slog.String("memo_id", created.ID.String()),
		slog.String("memo_type", created.Type.String()),
	)

	return created, nil
}

// List returns all memos for the user, newest date first.
func (s *Service) List(ctx context.Context) ([]*domain.Memo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	memos, err := s.memos.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("memo.List: %w", err)
	}

	return memos, nil
}

// Get returns a single memo by id.
func (s *Service) Get(ctx context.Context, memoID uuid.UUID) (*domain.Memo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.memos.GetByID(ctx, userID, memoID)
	if err != nil {
		return nil, fmt.Errorf("memo.Get: %w", err)
	}

	return m, nil
}

// SetNotified marks a memo's notification flag and returns the updated memo.
func (s *Service) SetNotified(ctx context.Context, memoID uuid.UUID, notified bool) (*domain.Memo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.memos.SetNotified(ctx, userID, memoID, notified); err != nil {
		return nil, fmt.Errorf("memo.SetNotified: %w", err)
	}

	m, err := s.memos.GetByID(ctx, userID, memoID)
	if err != nil {
		return nil, fmt.Errorf("memo.SetNotified get: %w", err)
	}

	return m, nil
}

// Delete permanently removes a memo. Memos have no trash, so there is no
// restore.
func (s *Service) Delete(ctx context.Context, memoID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.memos.Delete(ctx, userID, memoID); err != nil {
		return fmt.Errorf("memo.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "memo deleted",
		slog.String("memo_id", memoID.String()))

	return nil
}
