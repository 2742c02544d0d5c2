package animation

import (
	"sync"
	"time"
)

// Scheduler is the frame clock that drives tickers.
//
// A host calls Step once per frame from its UI loop. Every ticker started on
// the scheduler receives the elapsed time since its own Start. Callbacks run
// synchronously on the caller's goroutine, in the order the tickers were
// started, and may start or stop tickers (including themselves).
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	active []*Ticker
}

// NewScheduler creates a scheduler reading time from clock.
// A nil clock selects DefaultClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = DefaultClock
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// NewTicker creates a stopped ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Step advances all active tickers.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start and stop tickers without holding the lock.
	tickers := make([]*Ticker, len(s.active))
	copy(tickers, s.active)
	s.mu.Unlock()

	now := s.clock.Now()
	for _, ticker := range tickers {
		if ticker.IsActive() && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.active = append(s.active, t)
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, candidate := range s.active {
		if candidate == t {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [Driver].
// Most code should use Driver rather than Ticker.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}

// TickerProvider creates tickers.
type TickerProvider interface {
	NewTicker(callback func(elapsed time.Duration)) *Ticker
}

var defaultScheduler = NewScheduler(nil)

// DefaultScheduler returns the process-wide scheduler used by components
// that were not given one.
func DefaultScheduler() *Scheduler {
	return defaultScheduler
}

// StepTickers advances every ticker on the default scheduler.
// This should be called once per frame from the host loop.
func StepTickers() {
	defaultScheduler.Step()
}

// HasActiveTickers reports whether the default scheduler has work.
func HasActiveTickers() bool {
	return defaultScheduler.HasActiveTickers()
}
