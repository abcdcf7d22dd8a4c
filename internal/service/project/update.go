package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// Update applies a partial update to a project and returns the updated row.
// Setting LinkedRecordIDs replaces the whole list.
func (s *Service) Update(ctx context.Context, projectID uuid.UUID, input UpdateInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Patch.Name != nil {
		trimmed := strings.TrimSpace(*input.Patch.Name)
		input.Patch.Name = &trimmed
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.projects.Update(ctx, userID, projectID, input.Patch)
	if err != nil {
		return nil, fmt.Errorf("project.Update: %w", err)
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("project_id", projectID.String()))

	return updated, nil
}
