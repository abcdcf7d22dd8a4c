// Package sync serves the client's refetch cycle: a full per-user snapshot
// of all collections, and a hub that fans realtime change notices out to
// connected subscribers.
package sync

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

type recordLister interface {
	List(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error)
}

type projectLister interface {
	List(ctx context.Context, userID uuid.UUID, deleted bool) ([]*domain.Project, error)
}

type memoLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Memo, error)
}

// Service builds snapshots of a user's full state.
type Service struct {
	log      *slog.Logger
	records  recordLister
	projects projectLister
	memos    memoLister
}

// NewService creates a new sync service instance.
func NewService(logger *slog.Logger, records recordLister, projects projectLister, memos memoLister) *Service {
	return &Service{
		log:      logger.With("service", "sync"),
		records:  records,
		projects: projects,
		memos:    memos,
	}
}
