package observability

import "sync"

// Metrics provides basic in-memory counters per service operation.
type Metrics struct {
	mu        sync.Mutex
	opCount   map[string]int64
	failCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		opCount:   make(map[string]int64),
		failCount: make(map[string]int64),
	}
}

// RecordOp increments the counter for an invoked operation.
func (m *Metrics) RecordOp(op string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opCount[op]++
}

// RecordFailure increments the failure counter for an operation and code.
func (m *Metrics) RecordFailure(op, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failCount[op+"|"+code]++
}

// OpCount returns the number of invocations recorded for op.
func (m *Metrics) OpCount(op string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opCount[op]
}

// FailureCount returns the number of failures recorded for op and code.
func (m *Metrics) FailureCount(op, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failCount[op+"|"+code]
}
