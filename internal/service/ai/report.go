package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/internal/provider"
	"github.com/heartmarshall/worklog-backend/pkg/ctxutil"
)

// noRecordsReport is returned when the user has no active records at all.
// No provider call happens in that case.
const noRecordsReport = "本月暂无工作记录，无法生成报告。"

// ReportInput holds parameters for generating a monthly report.
type ReportInput struct {
	Month    string // "YYYY-MM"
	Provider string
}

// Validate validates the report input.
func (i ReportInput) Validate() error {
	if _, err := time.Parse("2006-01", i.Month); err != nil {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "month", Message: "must be YYYY-MM"},
		}}
	}
	return nil
}

// GenerateReport builds a monthly review from the user's active records.
// Records created in the requested month (UTC) feed the report; a month with
// no records falls back to all active records so the review is never empty
// for an active user. Only one generation per user runs at a time.
func (s *Service) GenerateReport(ctx context.Context, input ReportInput) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return "", err
	}

	p, err := s.resolveProvider(input.Provider)
	if err != nil {
		return "", err
	}

	if err := s.acquire(userID); err != nil {
		return "", err
	}
	defer s.release(userID)

	month, _ := time.Parse("2006-01", input.Month)

	active := domain.RecordStatusActive
	records, err := s.records.List(ctx, userID, domain.RecordFilter{Status: &active})
	if err != nil {
		return "", fmt.Errorf("ai.GenerateReport list: %w", err)
	}

	if len(records) == 0 {
		return noRecordsReport, nil
	}

	selected := make([]*domain.WorkRecord, 0, len(records))
	for _, r := range records {
		if r.CreatedInMonth(month.Year(), month.Month()) {
			selected = append(selected, r)
		}
	}
	if len(selected) == 0 {
		// Nothing created that month: review everything that is active.
		selected = records
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	report, err := p.GenerateReport(ctx, input.Month, toReportRecords(selected))
	if err != nil {
		return "", fmt.Errorf("ai.GenerateReport (%s): %w", p.Name(), err)
	}

	s.log.InfoContext(ctx, "monthly report generated",
		slog.String("provider", p.Name()),
		slog.String("month", input.Month),
		slog.Int("records", len(selected)),
	)

	return report, nil
}

func toReportRecords(records []*domain.WorkRecord) []provider.ReportRecord {
	out := make([]provider.ReportRecord, 0, len(records))
	for _, r := range records {
		rr := provider.ReportRecord{
			Title:       r.Title,
			Description: r.Description,
			RecordType:  r.RecordType.String(),
			Priority:    r.Priority.String(),
			Progress:    r.Progress,
			CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if r.Content != nil {
			rr.Content = *r.Content
		}
		out = append(out, rr)
	}
	return out
}
