package ai

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
	"github.com/heartmarshall/worklog-backend/internal/provider"
)

var (
	_ aiProvider   = &aiProviderMock{}
	_ recordLister = &recordListerMock{}
)

type aiProviderMock struct {
	NameFunc           func() string
	AnalyzeFunc        func(ctx context.Context, in provider.AnalyzeInput) (*provider.AnalysisResult, error)
	GenerateReportFunc func(ctx context.Context, month string, records []provider.ReportRecord) (string, error)

	calls struct {
		Analyze []struct {
			Ctx context.Context
			In  provider.AnalyzeInput
		}
		GenerateReport []struct {
			Ctx     context.Context
			Month   string
			Records []provider.ReportRecord
		}
	}
	mu sync.RWMutex
}

func (mock *aiProviderMock) Name() string {
	if mock.NameFunc == nil {
		return "mock"
	}
	return mock.NameFunc()
}

func (mock *aiProviderMock) Analyze(ctx context.Context, in provider.AnalyzeInput) (*provider.AnalysisResult, error) {
	if mock.AnalyzeFunc == nil {
		panic("aiProviderMock.AnalyzeFunc: method is nil but aiProvider.Analyze was just called")
	}
	mock.mu.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, struct {
		Ctx context.Context
		In  provider.AnalyzeInput
	}{ctx, in})
	mock.mu.Unlock()
	return mock.AnalyzeFunc(ctx, in)
}

func (mock *aiProviderMock) AnalyzeCalls() []struct {
	Ctx context.Context
	In  provider.AnalyzeInput
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Analyze
}

func (mock *aiProviderMock) GenerateReport(ctx context.Context, month string, records []provider.ReportRecord) (string, error) {
	if mock.GenerateReportFunc == nil {
		panic("aiProviderMock.GenerateReportFunc: method is nil but aiProvider.GenerateReport was just called")
	}
	mock.mu.Lock()
	mock.calls.GenerateReport = append(mock.calls.GenerateReport, struct {
		Ctx     context.Context
		Month   string
		Records []provider.ReportRecord
	}{ctx, month, records})
	mock.mu.Unlock()
	return mock.GenerateReportFunc(ctx, month, records)
}

func (mock *aiProviderMock) GenerateReportCalls() []struct {
	Ctx     context.Context
	Month   string
	Records []provider.ReportRecord
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GenerateReport
}

type recordListerMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.RecordFilter
		}
	}
	mu sync.RWMutex
}

func (mock *recordListerMock) List(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error) {
	if mock.ListFunc == nil {
		panic("recordListerMock.ListFunc: method is nil but recordLister.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.RecordFilter
	}{ctx, userID, f})
	mock.mu.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *recordListerMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.RecordFilter
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.List
}
