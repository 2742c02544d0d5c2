package animation

import (
	"fmt"
	"time"
)

// RunStatus is the lifecycle state of a [Run].
//
//	         Run()            last frame
//	Running ─────────► ... ─────────────► Ended
//	   │
//	   └── Cancel() ──────────────────────► Canceled
type RunStatus int

const (
	// RunRunning means frames are still being delivered.
	RunRunning RunStatus = iota
	// RunEnded means the run reached its target and OnEnd fired.
	RunEnded
	// RunCanceled means Cancel was called before the run ended.
	RunCanceled
)

// String returns a human-readable representation of the run status.
func (s RunStatus) String() string {
	switch s {
	case RunRunning:
		return "running"
	case RunEnded:
		return "ended"
	case RunCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("RunStatus(%d)", int(s))
	}
}

// Callbacks receive the events of a single [Run]. Any field may be nil.
//
// OnStart fires exactly once, synchronously inside [Driver.Run], before any
// OnUpdate. OnUpdate fires with a strictly increasing linear fraction in
// (0, 1]; the final call always carries fraction 1 and the exact target value.
// Exactly one of OnEnd or OnCancel fires, and no OnUpdate follows it.
type Callbacks struct {
	OnStart  func()
	OnUpdate func(value, fraction float64)
	OnEnd    func()
	OnCancel func()
}

// Driver starts eased interpolations on a frame scheduler.
type Driver struct {
	scheduler *Scheduler
}

// NewDriver creates a driver ticking on scheduler. A nil scheduler selects
// [DefaultScheduler].
func NewDriver(scheduler *Scheduler) *Driver {
	if scheduler == nil {
		scheduler = DefaultScheduler()
	}
	return &Driver{scheduler: scheduler}
}

// Scheduler returns the frame clock the driver ticks on.
func (d *Driver) Scheduler() *Scheduler {
	return d.scheduler
}

// Run interpolates from -> to over duration, shaped by curve (nil means
// linear). A non-positive duration completes synchronously: OnStart, a single
// OnUpdate(to, 1) and OnEnd all fire before Run returns.
//
// The driver does not track earlier runs. Owners that animate one quantity
// must Cancel the previous handle before starting the next.
func (d *Driver) Run(from, to float64, duration time.Duration, curve Curve, cb Callbacks) *Run {
	if curve == nil {
		curve = LinearCurve
	}
	r := &Run{
		from:     from,
		to:       to,
		duration: duration,
		curve:    curve,
		cb:       cb,
		value:    from,
		status:   RunRunning,
	}
	if cb.OnStart != nil {
		cb.OnStart()
	}
	if r.status != RunRunning {
		return r
	}
	if duration <= 0 {
		r.finish()
		return r
	}
	r.ticker = d.scheduler.NewTicker(r.tick)
	r.ticker.Start()
	return r
}

// Run is the handle of one interpolation started by [Driver.Run].
type Run struct {
	from, to float64
	duration time.Duration
	curve    Curve
	cb       Callbacks
	ticker   *Ticker
	value    float64
	fraction float64
	status   RunStatus
}

// Cancel stops the run and fires OnCancel. It is idempotent and does nothing
// once the run has ended. Safe to call on a nil handle.
func (r *Run) Cancel() {
	if r == nil || r.status != RunRunning {
		return
	}
	r.status = RunCanceled
	if r.ticker != nil {
		r.ticker.Stop()
	}
	if r.cb.OnCancel != nil {
		r.cb.OnCancel()
	}
}

// IsActive reports whether the run is still delivering frames.
func (r *Run) IsActive() bool {
	return r != nil && r.status == RunRunning
}

// Status returns the lifecycle state.
func (r *Run) Status() RunStatus {
	return r.status
}

// Value returns the most recently delivered value (from before the first frame).
func (r *Run) Value() float64 {
	return r.value
}

// Fraction returns the most recent linear time fraction.
func (r *Run) Fraction() float64 {
	return r.fraction
}

// From returns the start value.
func (r *Run) From() float64 { return r.from }

// To returns the target value.
func (r *Run) To() float64 { return r.to }

func (r *Run) tick(elapsed time.Duration) {
	if r.status != RunRunning {
		return
	}
	fraction := float64(elapsed) / float64(r.duration)
	if fraction >= 1 {
		r.finish()
		return
	}
	// Frames that do not advance time are dropped to keep fractions strictly increasing.
	if fraction <= r.fraction {
		return
	}
	r.fraction = fraction
	r.value = LerpFloat64(r.from, r.to, r.curve(fraction))
	if r.cb.OnUpdate != nil {
		r.cb.OnUpdate(r.value, fraction)
	}
}

func (r *Run) finish() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
	r.fraction = 1
	r.value = r.to
	if r.cb.OnUpdate != nil {
		r.cb.OnUpdate(r.to, 1)
	}
	// OnUpdate may have canceled us.
	if r.status != RunRunning {
		return
	}
	r.status = RunEnded
	if r.cb.OnEnd != nil {
		r.cb.OnEnd()
	}
}
