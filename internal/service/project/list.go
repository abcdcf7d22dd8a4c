package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// List returns the user's projects, newest start date first. The active view
// includes every non-deleted status (completed projects stay visible); the
// trash view contains only deleted ones.
func (s *Service) List(ctx context.Context, deleted bool) ([]*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	projects, err := s.projects.List(ctx, userID, deleted)
	if err != nil {
		return nil, fmt.Errorf("project.List: %w", err)
	}

	return projects, nil
}

// Get returns a single project by id.
func (s *Service) Get(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.Get: %w", err)
	}

	return p, nil
}
