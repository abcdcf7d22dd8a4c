// Package record implements work record operations: CRUD, the search and
// category views, and the soft-delete / restore / purge lifecycle.
package record

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/config"
	"github.com/heartmarshall/worklog-backend/internal/domain"
)

// recordRepo defines the repository interface needed by the record service.
type recordRepo interface {
	GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.WorkRecord, error)
	List(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, rec *domain.WorkRecord) (*domain.WorkRecord, error)
	Update(ctx context.Context, userID, recordID uuid.UUID, patch domain.RecordPatch) (*domain.WorkRecord, error)
	UpdateStatus(ctx context.Context, userID, recordID uuid.UUID, from, to domain.RecordStatus) error
	Purge(ctx context.Context, userID, recordID uuid.UUID) error
	PurgeExpired(ctx context.Context, cutoff time.Time) (int, error)
}

// Service implements work record operations.
type Service struct {
	log     *slog.Logger
	records recordRepo
	cfg     config.WorklogConfig
}

// NewService creates a new record service instance.
func NewService(logger *slog.Logger, records recordRepo, cfg config.WorklogConfig) *Service {
	return &Service{
		log:     logger.With("service", "record"),
		records: records,
		cfg:     cfg,
	}
}
