package engine

import "sync"

// MockClock provides a controllable time source for testing
// Sleep advances the clock instead of blocking
type MockClock struct {
	mu      sync.RWMutex
	current int64
	slept   []int64
}

// NewMockClock creates a new mock clock starting at startMillis
func NewMockClock(startMillis int64) *MockClock {
	return &MockClock{current: startMillis}
}

// Millis returns the current mocked time
func (m *MockClock) Millis() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Sleep records the request and advances the clock by ms
func (m *MockClock) Sleep(ms int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slept = append(m.slept, ms)
	if ms > 0 {
		m.current += ms
	}
}

// SetMillis sets the current time for the mock
func (m *MockClock) SetMillis(ms int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = ms
}

// Advance advances the current time by ms
func (m *MockClock) Advance(ms int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current += ms
}

// Sleeps returns a copy of every Sleep request in call order
func (m *MockClock) Sleeps() []int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]int64, len(m.slept))
	copy(out, m.slept)
	return out
}
