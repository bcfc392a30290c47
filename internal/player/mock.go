package player

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	ListAllFunc func(ctx context.Context) ([]Player, error)
	AddFunc     func(ctx context.Context, name string) (Player, error)
	RemoveFunc  func(ctx context.Context, id string) error
	ClearFunc   func(ctx context.Context) error
	PingFunc    func(ctx context.Context) error

	// Call records, read through the accessors below
	listAllCalls int
	addCalls     []string
	removeCalls  []string
	clearCalls   int
}

var _ Store = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) ListAll(ctx context.Context) ([]Player, error) {
	m.mu.Lock()
	m.listAllCalls++
	fn := m.ListAllFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return []Player{}, nil
}

func (m *MockStore) Add(ctx context.Context, name string) (Player, error) {
	m.mu.Lock()
	m.addCalls = append(m.addCalls, name)
	fn := m.AddFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, name)
	}
	return NewPlayer(name)
}

func (m *MockStore) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	m.removeCalls = append(m.removeCalls, id)
	fn := m.RemoveFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, id)
	}
	return nil
}

func (m *MockStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.clearCalls++
	fn := m.ClearFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return nil
}

func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	fn := m.PingFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return nil
}

// ListAllCallCount returns the number of times ListAll was called.
func (m *MockStore) ListAllCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listAllCalls
}

// AddCalls returns the names passed to Add, in call order.
func (m *MockStore) AddCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.addCalls...)
}

// RemoveCalls returns the ids passed to Remove, in call order.
func (m *MockStore) RemoveCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.removeCalls...)
}

// ClearCallCount returns the number of times Clear was called.
func (m *MockStore) ClearCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearCalls
}
