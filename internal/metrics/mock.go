package metrics

import (
	"strconv"
	"sync"
)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu            sync.Mutex
	requests      map[string]int
	durations     map[string][]float64
	playersListed int
	startupTime   float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		requests:  make(map[string]int),
		durations: make(map[string][]float64),
	}
}

func requestKey(route string, code int) string {
	return route + "|" + strconv.Itoa(code)
}

func (m *Mock) IncRequests(route string, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[requestKey(route, code)]++
}

func (m *Mock) ObserveRequestDuration(route string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[route] = append(m.durations[route], duration)
}

func (m *Mock) SetPlayersListed(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersListed = count
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Requests returns how many requests were counted for route and code.
func (m *Mock) Requests(route string, code int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[requestKey(route, code)]
}

// Durations returns the observed durations for route.
func (m *Mock) Durations(route string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.durations[route]...)
}

// PlayersListed returns the last value passed to SetPlayersListed.
func (m *Mock) PlayersListed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersListed
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
