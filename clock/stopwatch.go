// Package clock implements elapsed-time tracking and per-move time
// allocation, grounded on original_source/src/clock.rs's Stopwatch/Timer
// pair. No FrankyGo analogue (FrankyGo's own time management lives in
// its search package rather than a standalone clock type), so the shape
// is ported directly from the original and re-expressed with Go's
// time.Time/time.Duration in place of std::time::Instant/Duration.
package clock

import "time"

// Stopwatch accumulates elapsed running time across start/stop cycles.
type Stopwatch struct {
	snapshot     time.Duration
	startInstant time.Time
	running      bool
}

// NewStopwatch returns a stopped Stopwatch with zero elapsed time.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{}
}

// Start begins timing. Panics if already running, a programmer error
// rather than a recoverable one.
func (s *Stopwatch) Start() {
	if s.running {
		panic("clock: Stopwatch already running")
	}
	s.startInstant = time.Now()
	s.running = true
}

// Stop folds the current run into the snapshot.
func (s *Stopwatch) Stop() {
	if !s.running {
		panic("clock: Stopwatch not running")
	}
	s.snapshot += time.Since(s.startInstant)
	s.running = false
}

// Get returns total elapsed time, including any run in progress.
func (s *Stopwatch) Get() time.Duration {
	if s.running {
		return s.snapshot + time.Since(s.startInstant)
	}
	return s.snapshot
}
