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

// Create adds a new project for the authenticated user. Linked record ids
// are stored as given: they are not checked against the records table.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Status == "" {
		input.Status = domain.ProjectStatusPlanned
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	linked := input.LinkedRecordIDs
	if linked == nil {
		linked = []uuid.UUID{}
	}

	p := &domain.Project{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            input.Name,
		Description:     input.Description,
		ProjectType:     input.ProjectType,
		Status:          input.Status,
		Priority:        input.Priority,
		Progress:        input.Progress,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		TargetDate:      input.TargetDate,
		FileName:        input.FileName,
		LinkedRecordIDs: linked,
	}

	created, err := s.projects.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("project.Create: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", created.ID.String()),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}
