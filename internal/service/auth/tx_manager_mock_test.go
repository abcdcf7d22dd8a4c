package auth

import (
	"context"
	"sync"
)

// txManagerMock is a mock implementation of txManager.
type txManagerMock struct {
	// RunInTxFunc mocks the RunInTx method.
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	mu sync.RWMutex
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls.RunInTx = append(m.calls.RunInTx, struct {
		Ctx context.Context
	}{ctx})
	m.mu.Unlock()
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}

// RunInTxCalls returns the recorded calls to RunInTx.
func (m *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.RunInTx
}

// passthroughTx returns a tx manager that just runs the callback.
func passthroughTx() *txManagerMock {
	return &txManagerMock{}
}
