package memo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

var _ memoRepo = &memoRepoMock{}

type memoRepoMock struct {
	GetByIDFunc     func(ctx context.Context, userID, memoID uuid.UUID) (*domain.Memo, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID) ([]*domain.Memo, error)
	CreateFunc      func(ctx context.Context, m *domain.Memo) (*domain.Memo, error)
	SetNotifiedFunc func(ctx context.Context, userID, memoID uuid.UUID, notified bool) error
	DeleteFunc      func(ctx context.Context, userID, memoID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx            context.Context
			UserID, MemoID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Memo
		}
		SetNotified []struct {
			Ctx            context.Context
			UserID, MemoID uuid.UUID
			Notified       bool
		}
		Delete []struct {
			Ctx            context.Context
			UserID, MemoID uuid.UUID
		}
	}
	mu sync.RWMutex
}

func (mock *memoRepoMock) GetByID(ctx context.Context, userID, memoID uuid.UUID) (*domain.Memo, error) {
	if mock.GetByIDFunc == nil {
		panic("memoRepoMock.GetByIDFunc: method is nil but memoRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx            context.Context
		UserID, MemoID uuid.UUID
	}{ctx, userID, memoID})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, userID, memoID)
}

func (mock *memoRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Memo, error) {
	if mock.ListFunc == nil {
		panic("memoRepoMock.ListFunc: method is nil but memoRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{ctx, userID})
	mock.mu.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *memoRepoMock) Create(ctx context.Context, m *domain.Memo) (*domain.Memo, error) {
	if mock.CreateFunc == nil {
		panic("memoRepoMock.CreateFunc: method is nil but memoRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		M   *domain.Memo
	}{ctx, m})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *memoRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Memo
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *memoRepoMock) SetNotified(ctx context.Context, userID, memoID uuid.UUID, notified bool) error {
	if mock.SetNotifiedFunc == nil {
		panic("memoRepoMock.SetNotifiedFunc: method is nil but memoRepo.SetNotified was just called")
	}
	mock.mu.Lock()
	mock.calls.SetNotified = append(mock.calls.SetNotified, struct {
		Ctx            context.Context
		UserID, MemoID uuid.UUID
		Notified       bool
	}{ctx, userID, memoID, notified})
	mock.mu.Unlock()
	return mock.SetNotifiedFunc(ctx, userID, memoID, notified)
}

func (mock *memoRepoMock) SetNotifiedCalls() []struct {
	Ctx            context.Context
	UserID, MemoID uuid.UUID
	Notified       bool
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.SetNotified
}

func (mock *memoRepoMock) Delete(ctx context.Context, userID, memoID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("memoRepoMock.DeleteFunc: method is nil but memoRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx            context.Context
		UserID, MemoID uuid.UUID
	}{ctx, userID, memoID})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, userID, memoID)
}

func (mock *memoRepoMock) DeleteCalls() []struct {
	Ctx            context.Context
	UserID, MemoID uuid.UUID
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Delete
}
