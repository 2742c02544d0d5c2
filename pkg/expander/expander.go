// Package expander implements the expand/collapse behavior shared by
// expandable containers.
//
// Two behaviors are provided. [Frame] owns a continuous expansion value for a
// whole container and turns it into a measured size through [Frame.OnMeasure].
// [Stack] owns a boolean expanded flag and resizes a subset of "expandable"
// children between zero and their natural size.
//
// Neither behavior is a view. A host container holds one and forwards its
// measurement pass and child attach/detach events; the behavior calls back
// into the host through small interfaces ([FrameHost], [StackHost], [Child]).
// All methods must be called from the host's UI goroutine.
package expander

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/errors"
)

// DefaultDuration is the animation length used when none is configured.
const DefaultDuration = 300 * time.Millisecond

// expandedTolerance absorbs float noise when comparing expansion to 0 or 1.
const expandedTolerance = 1e-4

// Phase is the transient animation state of an expander.
type Phase int

const (
	// Idle means no animation is in flight.
	Idle Phase = iota
	// Expanding means an animation toward the expanded state is in flight.
	Expanding
	// Collapsing means an animation toward the collapsed state is in flight.
	Collapsing
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Expanding:
		return "expanding"
	case Collapsing:
		return "collapsing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Listener observes expansion progress. fraction grows toward 1 as the
// container becomes more expanded, whichever direction it is moving.
//
// Listeners run synchronously on every accepted change and never for no-op
// calls. A panicking listener is recovered and reported through
// errors.ReportPanic.
type Listener func(fraction float64, phase Phase)

func notify(op string, l Listener, fraction float64, phase Phase) {
	if l == nil {
		return
	}
	defer errors.Recover(op)
	l(fraction, phase)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < expandedTolerance
}

func validateDuration(op string, d time.Duration) error {
	if d < 0 {
		return errors.InvalidConfiguration(op, errors.ErrNegativeDuration)
	}
	return nil
}

func curveOrDefault(c animation.Curve) animation.Curve {
	if c == nil {
		return animation.FastOutSlowIn
	}
	return c
}
