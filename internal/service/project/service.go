// Package project implements project operations: CRUD, record linking, and
// the soft-delete / restore / purge lifecycle.
package project

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/config"
	"github.com/heartmarshall/worklog-backend/internal/domain"
)

// projectRepo defines the repository interface needed by the project service.
type projectRepo interface {
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, userID uuid.UUID, deleted bool) ([]*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, patch domain.ProjectPatch) (*domain.Project, error)
	UpdateStatus(ctx context.Context, userID, projectID uuid.UUID, from []domain.ProjectStatus, to domain.ProjectStatus) error
	Purge(ctx context.Context, userID, projectID uuid.UUID) error
	PurgeExpired(ctx context.Context, cutoff time.Time) (int, error)
}

// liveStatuses is the set of statuses a project can be trashed from.
var liveStatuses = []domain.ProjectStatus{
	domain.ProjectStatusPlanned,
	domain.ProjectStatusInProgress,
	domain.ProjectStatusCompleted,
	domain.ProjectStatusDelayed,
}

// Service implements project operations.
type Service struct {
	log      *slog.Logger
	projects projectRepo
	cfg      config.WorklogConfig
}

// NewService creates a new project service instance.
func NewService(logger *slog.Logger, projects projectRepo, cfg config.WorklogConfig) *Service {
	return &Service{
		log:      logger.With("service", "project"),
		projects: projects,
		cfg:      cfg,
	}
}
