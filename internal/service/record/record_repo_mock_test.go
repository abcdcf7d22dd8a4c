package record

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID, recordID uuid.UUID) (*domain.WorkRecord, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error)
	CountFunc        func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc       func(ctx context.Context, rec *domain.WorkRecord) (*domain.WorkRecord, error)
	UpdateFunc       func(ctx context.Context, userID, recordID uuid.UUID, patch domain.RecordPatch) (*domain.WorkRecord, error)
	UpdateStatusFunc func(ctx context.Context, userID, recordID uuid.UUID, from, to domain.RecordStatus) error
	PurgeFunc        func(ctx context.Context, userID, recordID uuid.UUID) error
	PurgeExpiredFunc func(ctx context.Context, cutoff time.Time) (int, error)

	calls struct {
		GetByID []struct {
			Ctx              context.Context
			UserID, RecordID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.RecordFilter
		}
		Count []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Rec *domain.WorkRecord
		}
		Update []struct {
			Ctx              context.Context
			UserID, RecordID uuid.UUID
			Patch            domain.RecordPatch
		}
		UpdateStatus []struct {
			Ctx              context.Context
			UserID, RecordID uuid.UUID
			From, To         domain.RecordStatus
		}
		Purge []struct {
			Ctx              context.Context
			UserID, RecordID uuid.UUID
		}
		PurgeExpired []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
	}
	mu sync.RWMutex
}

func (mock *recordRepoMock) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.WorkRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx              context.Context
		UserID, RecordID uuid.UUID
	}{ctx, userID, recordID})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, userID, recordID)
}

func (mock *recordRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.RecordFilter) ([]*domain.WorkRecord, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
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

func (mock *recordRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.RecordFilter
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.List
}

func (mock *recordRepoMock) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("recordRepoMock.CountFunc: method is nil but recordRepo.Count was just called")
	}
	mock.mu.Lock()
	mock.calls.Count = append(mock.calls.Count, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{ctx, userID})
	mock.mu.Unlock()
	return mock.CountFunc(ctx, userID)
}

func (mock *recordRepoMock) Create(ctx context.Context, rec *domain.WorkRecord) (*domain.WorkRecord, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		Rec *domain.WorkRecord
	}{ctx, rec})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.WorkRecord
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *recordRepoMock) Update(ctx context.Context, userID, recordID uuid.UUID, patch domain.RecordPatch) (*domain.WorkRecord, error) {
	if mock.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but recordRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx              context.Context
		UserID, RecordID uuid.UUID
		Patch            domain.RecordPatch
	}{ctx, userID, recordID, patch})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, userID, recordID, patch)
}

func (mock *recordRepoMock) UpdateCalls() []struct {
	Ctx              context.Context
	UserID, RecordID uuid.UUID
	Patch            domain.RecordPatch
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Update
}

func (mock *recordRepoMock) UpdateStatus(ctx context.Context, userID, recordID uuid.UUID, from, to domain.RecordStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("recordRepoMock.UpdateStatusFunc: method is nil but recordRepo.UpdateStatus was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		Ctx              context.Context
		UserID, RecordID uuid.UUID
		From, To         domain.RecordStatus
	}{ctx, userID, recordID, from, to})
	mock.mu.Unlock()
	return mock.UpdateStatusFunc(ctx, userID, recordID, from, to)
}

func (mock *recordRepoMock) UpdateStatusCalls() []struct {
	Ctx              context.Context
	UserID, RecordID uuid.UUID
	From, To         domain.RecordStatus
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.UpdateStatus
}

func (mock *recordRepoMock) Purge(ctx context.Context, userID, recordID uuid.UUID) error {
	if mock.PurgeFunc == nil {
		panic("recordRepoMock.PurgeFunc: method is nil but recordRepo.Purge was just called")
	}
	mock.mu.Lock()
	mock.calls.Purge = append(mock.calls.Purge, struct {
		Ctx              context.Context
		UserID, RecordID uuid.UUID
	}{ctx, userID, recordID})
	mock.mu.Unlock()
	return mock.PurgeFunc(ctx, userID, recordID)
}

func (mock *recordRepoMock) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.PurgeExpiredFunc == nil {
		panic("recordRepoMock.PurgeExpiredFunc: method is nil but recordRepo.PurgeExpired was just called")
	}
	mock.mu.Lock()
	mock.calls.PurgeExpired = append(mock.calls.PurgeExpired, struct {
		Ctx    context.Context
		Cutoff time.Time
	}{ctx, cutoff})
	mock.mu.Unlock()
	return mock.PurgeExpiredFunc(ctx, cutoff)
}

func (mock *recordRepoMock) PurgeExpiredCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.PurgeExpired
}
