package sync

import (
	"context"
	stdsync "sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

var (
	_ recordLister  = &recordListerMock{}
	_ projectLister = &projectListerMock{}
	_ memoLister    = &memoListerMock{}
)

type recordListerMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error)

	mu    stdsync.Mutex
	calls int
}

func (mock *recordListerMock) List(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error) {
	if mock.ListFunc == nil {
		panic("recordListerMock.ListFunc: method is nil but recordLister.List was just called")
	}
	mock.mu.Lock()
	mock.calls++
	mock.mu.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

type projectListerMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, deleted bool) ([]*domain.Project, error)

	mu    stdsync.Mutex
	calls int
}

func (mock *projectListerMock) List(ctx context.Context, userID uuid.UUID, deleted bool) ([]*domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectListerMock.ListFunc: method is nil but projectLister.List was just called")
	}
	mock.mu.Lock()
	mock.calls++
	mock.mu.Unlock()
	return mock.ListFunc(ctx, userID, deleted)
}

type memoListerMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Memo, error)

	mu    stdsync.Mutex
	calls int
}

func (mock *memoListerMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Memo, error) {
	if mock.ListFunc == nil {
		panic("memoListerMock.ListFunc: method is nil but memoLister.List was just called")
	}
	mock.mu.Lock()
	mock.calls++
	mock.mu.Unlock()
	return mock.ListFunc(ctx, userID)
}
