package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/internal/provider"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// AnalyzeInput holds parameters for analyzing one record's material.
type AnalyzeInput struct {
	Title    string
	Content  string
	URL      string
	Provider string
}

// Validate validates the analyze input. At least one of title, content and
// url must be present so the provider has something to work on.
func (i AnalyzeInput) Validate() error {
	if i.Title == "" && i.Content == "" && i.URL == "" {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "input", Message: "at least one of title, content or url is required"},
		}}
	}
	return nil
}

// Analyze runs the provider's analysis on the given material and returns a
// structured result. The provider is never called when validation fails.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (*provider.AnalysisResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	input.URL = strings.TrimSpace(input.URL)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.resolveProvider(input.Provider)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	result, err := p.Analyze(ctx, provider.AnalyzeInput{
		Title:   input.Title,
		Content: input.Content,
		URL:     input.URL,
	})
	if err != nil {
		return nil, fmt.Errorf("ai.Analyze (%s): %w", p.Name(), err)
	}

	s.log.InfoContext(ctx, "record analyzed",
		slog.String("provider", p.Name()),
		slog.String("suggested_type", result.SuggestedType),
	)

	return result, nil
}
