package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually advanced TimeSource for deterministic tests
type MockTimeProvider struct {
	start   time.Time
	elapsed atomic.Int64 // nanoseconds since start
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.elapsed.Load()))
}

// Advance moves the clock forward by d, safe for concurrent callers
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.elapsed.Add(int64(d))
}
