package project

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, deleted bool) ([]*domain.Project, error)
	CreateFunc       func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	UpdateFunc       func(ctx context.Context, userID, projectID uuid.UUID, patch domain.ProjectPatch) (*domain.Project, error)
	UpdateStatusFunc func(ctx context.Context, userID, projectID uuid.UUID, from []domain.ProjectStatus, to domain.ProjectStatus) error
	PurgeFunc        func(ctx context.Context, userID, projectID uuid.UUID) error
	PurgeExpiredFunc func(ctx context.Context, cutoff time.Time) (int, error)

	calls struct {
		GetByID []struct {
			Ctx               context.Context
			UserID, ProjectID uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			Deleted bool
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Project
		}
		Update []struct {
			Ctx               context.Context
			UserID, ProjectID uuid.UUID
			Patch             domain.ProjectPatch
		}
		UpdateStatus []struct {
			Ctx               context.Context
			UserID, ProjectID uuid.UUID
			From              []domain.ProjectStatus
			To                domain.ProjectStatus
		}
		Purge []struct {
			Ctx               context.Context
			UserID, ProjectID uuid.UUID
		}
		PurgeExpired []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
	}
	mu sync.RWMutex
}

func (mock *projectRepoMock) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx               context.Context
		UserID, ProjectID uuid.UUID
	}{ctx, userID, projectID})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, userID, projectID)
}

func (mock *projectRepoMock) List(ctx context.Context, userID uuid.UUID, deleted bool) ([]*domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Deleted bool
	}{ctx, userID, deleted})
	mock.mu.Unlock()
	return mock.ListFunc(ctx, userID, deleted)
}

func (mock *projectRepoMock) ListCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	Deleted bool
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.List
}

func (mock *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		P   *domain.Project
	}{ctx, p})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Project
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *projectRepoMock) Update(ctx context.Context, userID, projectID uuid.UUID, patch domain.ProjectPatch) (*domain.Project, error) {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx               context.Context
		UserID, ProjectID uuid.UUID
		Patch             domain.ProjectPatch
	}{ctx, userID, projectID, patch})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, userID, projectID, patch)
}

func (mock *projectRepoMock) UpdateCalls() []struct {
	Ctx               context.Context
	UserID, ProjectID uuid.UUID
	Patch             domain.ProjectPatch
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Update
}

func (mock *projectRepoMock) UpdateStatus(ctx context.Context, userID, projectID uuid.UUID, from []domain.ProjectStatus, to domain.ProjectStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("projectRepoMock.UpdateStatusFunc: method is nil but projectRepo.UpdateStatus was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		Ctx               context.Context
		UserID, ProjectID uuid.UUID
		From              []domain.ProjectStatus
		To                domain.ProjectStatus
	}{ctx, userID, projectID, from, to})
	mock.mu.Unlock()
	return mock.UpdateStatusFunc(ctx, userID, projectID, from, to)
}

func (mock *projectRepoMock) UpdateStatusCalls() []struct {
	Ctx               context.Context
	UserID, ProjectID uuid.UUID
	From              []domain.ProjectStatus
	To                domain.ProjectStatus
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.UpdateStatus
}

func (mock *projectRepoMock) Purge(ctx context.Context, userID, projectID uuid.UUID) error {
	if mock.PurgeFunc == nil {
		panic("projectRepoMock.PurgeFunc: method is nil but projectRepo.Purge was just called")
	}
	mock.mu.Lock()
	mock.calls.Purge = append(mock.calls.Purge, struct {
		Ctx               context.Context
		UserID, ProjectID uuid.UUID
	}{ctx, userID, projectID})
	mock.mu.Unlock()
	return mock.PurgeFunc(ctx, userID, projectID)
}

func (mock *projectRepoMock) PurgeCalls() []struct {
	Ctx               context.Context
	UserID, ProjectID uuid.UUID
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Purge
}

func (mock *projectRepoMock) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.PurgeExpiredFunc == nil {
		panic("projectRepoMock.PurgeExpiredFunc: method is nil but projectRepo.PurgeExpired was just called")
	}
	mock.mu.Lock()
	mock.calls.PurgeExpired = append(mock.calls.PurgeExpired, struct {
		Ctx    context.Context
		Cutoff time.Time
	}{ctx, cutoff})
	mock.mu.Unlock()
	return mock.PurgeExpiredFunc(ctx, cutoff)
}

func (mock *projectRepoMock) PurgeExpiredCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.PurgeExpired
}
