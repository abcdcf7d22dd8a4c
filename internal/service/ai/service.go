// Package ai orchestrates LLM-backed features: record analysis and monthly
// report generation. Providers are interchangeable and selected per request.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/config"
	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/internal/provider"
)

// defaultProvider is used when a request does not name one.
const defaultProvider = "gemini"

// aiProvider is the contract every LLM client implements.
type aiProvider interface {
	Name() string
	Analyze(ctx context.Context, in provider.AnalyzeInput) (*provider.AnalysisResult, error)
	GenerateReport(ctx context.Context, month string, records []provider.ReportRecord) (string, error)
}

// recordLister reads the records a report is built from.
type recordLister interface {
	List(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error)
}

// Service implements AI operations.
type Service struct {
	log       *slog.Logger
	records   recordLister
	providers map[string]aiProvider
	cfg       config.AIConfig

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewService creates a new AI service instance. Providers are registered
// under their Name(); requests select one by that name.
func NewService(logger *slog.Logger, records recordLister, cfg config.AIConfig, providers ...aiProvider) *Service {
	reg := make(map[string]aiProvider, len(providers))
	for _, p := range providers {
		reg[p.Name()] = p
	}
	return &Service{
		log:       logger.With("service", "ai"),
		records:   records,
		providers: reg,
		cfg:       cfg,
		inFlight:  make(map[uuid.UUID]struct{}),
	}
}

// resolveProvider picks the provider for a request. An empty name falls back
// to the default. Naming a provider whose API key is not configured is a
// client error, not a server one.
func (s *Service) resolveProvider(name string) (aiProvider, error) {
	if name == "" {
		name = defaultProvider
	}
	if !s.cfg.IsProviderAllowed(name) {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "provider", Message: fmt.Sprintf("provider %q is not configured", name)},
		}}
	}
	p, ok := s.providers[name]
	if !ok {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "provider", Message: fmt.Sprintf("unknown provider %q", name)},
		}}
	}
	return p, nil
}

// acquire marks a report generation as in flight for the user.
// Returns ErrConflict when one is already running.
func (s *Service) acquire(userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return fmt.Errorf("report generation already in progress: %w", domain.ErrConflict)
	}
	s.inFlight[userID] = struct{}{}
	return nil
}

func (s *Service) release(userID uuid.UUID) {
	s.mu.Lock()
	delete(s.inFlight, userID)
	s.mu.Unlock()
}
