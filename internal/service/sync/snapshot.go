package sync

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// Snapshot is the user's full state in one response. Records include both
// the active and trashed ones; the client derives its views from status.
type Snapshot struct {
	Records  []*domain.WorkRecord
	Projects []*domain.Project
	Memos    []*domain.Memo
}

// GetSnapshot fetches all collections for the user in parallel. It backs
// both the client's initial load and every refetch triggered by a change
// notice; the server state it returns wins over whatever the client holds.
func (s *Service) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.records.List(gctx, userID, domain.RecordFilter{})
		if err != nil {
			return fmt.Errorf("records: %w", err)
		}
		snap.Records = records
		return nil
	})

	g.Go(func() error {
		active, err := s.projects.List(gctx, userID, false)
		if err != nil {
			return fmt.Errorf("projects: %w", err)
		}
		trashed, err := s.projects.List(gctx, userID, true)
		if err != nil {
			return fmt.Errorf("trashed projects: %w", err)
		}
		snap.Projects = append(active, trashed...)
		return nil
	})

	g.Go(func() error {
		memos, err := s.memos.List(gctx, userID)
		if err != nil {
			return fmt.Errorf("memos: %w", err)
		}
		snap.Memos = memos
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sync.GetSnapshot: %w", err)
	}

	return &snap, nil
}
