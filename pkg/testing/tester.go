package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/layout"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
	// FrameInterval is the clock advance per pumped frame.
	FrameInterval = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Tester drives layout and animation frames without a real host.
// Each tester owns its clock, scheduler and pipeline, so tests may run in
// parallel as long as widgets are built with [Tester.Driver].
type Tester struct {
	clock     *clockz.FakeClock
	scheduler *animation.Scheduler
	driver    *animation.Driver
	owner     layout.PipelineOwner
	root      layout.RenderObject
	size      layout.Size
	frames    int
}

// NewTester creates a tester with the default surface size.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	clock := clockz.NewFakeClock()
	scheduler := animation.NewScheduler(clock)
	return &Tester{
		clock:     clock,
		scheduler: scheduler,
		driver:    animation.NewDriver(scheduler),
		size:      layout.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the root if it supports disposal.
func (t *Tester) Cleanup() {
	if d, ok := t.root.(interface{ Dispose() }); ok {
		d.Dispose()
	}
	t.root = nil
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *clockz.FakeClock {
	return t.clock
}

// Scheduler returns the frame scheduler ticking on the fake clock.
func (t *Tester) Scheduler() *animation.Scheduler {
	return t.scheduler
}

// Driver returns an animation driver bound to the tester's scheduler.
func (t *Tester) Driver() *animation.Driver {
	return t.driver
}

// SetSize sets the surface size used as the root's loose constraints.
func (t *Tester) SetSize(size layout.Size) {
	t.size = size
}

// PumpRoot installs root and runs one frame.
func (t *Tester) PumpRoot(root layout.RenderObject) {
	t.root = root
	t.Pump()
}

// Root returns the installed root.
func (t *Tester) Root() layout.RenderObject {
	return t.root
}

// Pump runs a single frame without advancing time: tickers, then layout.
func (t *Tester) Pump() {
	t.scheduler.Step()
	if t.root != nil {
		t.owner.FlushLayout(t.root, layout.Loose(t.size))
	}
	t.frames++
}

// PumpFrames advances the clock by FrameInterval and pumps, n times.
func (t *Tester) PumpFrames(n int) {
	for range n {
		t.clock.Advance(FrameInterval)
		t.Pump()
	}
}

// PumpAndSettle runs frames until no animation is active or the timeout
// is reached. Each frame advances the fake clock by FrameInterval.
// Returns ErrSettleTimeout if animations do not settle within timeout.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(FrameInterval)
		elapsed += FrameInterval
	}
	return ErrSettleTimeout
}

func (t *Tester) needsWork() bool {
	return t.scheduler.HasActiveTickers() || t.owner.NeedsLayout()
}

// FrameCount returns how many frames have been pumped.
func (t *Tester) FrameCount() int {
	return t.frames
}

// LayoutPasses returns how many layout passes the last frame needed.
func (t *Tester) LayoutPasses() int {
	return t.owner.Passes()
}

// Find evaluates a finder against the installed tree.
func (t *Tester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		objects: finder.Evaluate(t.root),
		finder:  finder,
	}
}
