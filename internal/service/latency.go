package service

import "time"

// Latency simulates the round trip to a remote backend. The pause is fixed
// and not cancellable: once an operation starts it runs to completion even
// if the caller stops waiting on the result.
type Latency interface {
	Pause()
}

type fixedLatency struct {
	d time.Duration
}

// NewFixedLatency returns a Latency that sleeps for d on every call.
func NewFixedLatency(d time.Duration) Latency {
	return fixedLatency{d: d}
}

func (l fixedLatency) Pause() {
	if l.d > 0 {
		time.Sleep(l.d)
	}
}

// NoLatency skips the simulated pause; tests use this to run
// deterministically with zero delay.
var NoLatency Latency = fixedLatency{}
