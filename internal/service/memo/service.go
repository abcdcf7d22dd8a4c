// Package memo implements calendar memo operations. Memos have no trash:
// deletion is permanent.
package memo

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

// memoRepo defines the repository interface needed by the memo service.
type memoRepo interface {
	GetByID(ctx context.Context, userID, memoID uuid.UUID) (*domain.Memo, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Memo, error)
	Create(ctx context.Context, m *domain.Memo) (*domain.Memo, error)
	SetNotified(ctx context.Context, userID, memoID uuid.UUID, notified bool) error
	Delete(ctx context.Context, userID, memoID uuid.UUID) error
}

// Service implements memo operations.
type Service struct {
	log   *slog.Logger
	memos memoRepo
}

// NewService creates a new memo service instance.
func NewService(logger *slog.Logger, memos memoRepo) *Service {
	return &Service{
		log:   logger.With("service", "memo"),
		memos: memos,
	}
}
