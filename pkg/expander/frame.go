package expander

import (
	"context"
	"math"
	"time"

	"github.com/zoobzio/capitan"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/errors"
	"github.com/go-drift/expandable/pkg/layout"
)

// Translatable is a child the frame can shift along an axis.
type Translatable interface {
	SetTranslation(axis layout.Axis, offset float64)
}

// FrameHost is the container a Frame drives.
type FrameHost interface {
	// RequestRelayout asks the host to run a measurement pass soon.
	RequestRelayout()
	// SetVisible shows or hides the whole container.
	SetVisible(visible bool)
	// LayoutDirection is consulted for the horizontal parallax sign.
	LayoutDirection() layout.Direction
	// VisitTranslatable calls visit for each direct child.
	VisitTranslatable(visit func(Translatable))
}

// FrameOptions configure a Frame at construction.
type FrameOptions struct {
	// Name identifies the frame in emitted signals.
	Name string
	// Duration is the animation length. Zero jumps immediately.
	Duration time.Duration
	// InitiallyExpanded starts the frame at expansion 1.
	InitiallyExpanded bool
	// Orientation is the axis that expands.
	Orientation layout.Axis
	// Parallax in [0, 1] is the share of the collapsed delta by which
	// children are shifted instead of clipped.
	Parallax float64
	// Curve eases the animation. Nil selects animation.FastOutSlowIn.
	Curve animation.Curve
	// Driver runs animations. Nil uses the default scheduler.
	Driver *animation.Driver
}

// DefaultFrameOptions returns vertical, collapsed, 300ms, fully translating options.
func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		Duration:    DefaultDuration,
		Orientation: layout.Vertical,
		Parallax:    1,
		Curve:       animation.FastOutSlowIn,
	}
}

// Frame expands and collapses a whole container along one axis.
//
// The frame owns a continuous expansion in [0, 1] (values outside are
// accepted verbatim from SetExpansion). On each measurement pass the host
// hands its natural size to OnMeasure, which reports the natural size shrunk
// by the collapsed share and shifts children by the parallax share.
//
// At most one animation writes the expansion at a time: every transition
// cancels the previous run synchronously before starting the next.
type Frame struct {
	host        FrameHost
	driver      *animation.Driver
	run         *animation.Run
	name        string
	expansion   float64
	phase       Phase
	orientation layout.Axis
	parallax    float64
	duration    time.Duration
	curve       animation.Curve
	listener    Listener
}

// NewFrame creates a frame behavior for host.
func NewFrame(host FrameHost, opts FrameOptions) (*Frame, error) {
	const op = "expander.NewFrame"
	if !opts.Orientation.Valid() {
		return nil, errors.InvalidConfiguration(op, errors.ErrInvalidOrientation)
	}
	if err := validateDuration(op, opts.Duration); err != nil {
		return nil, err
	}
	driver := opts.Driver
	if driver == nil {
		driver = animation.NewDriver(nil)
	}
	f := &Frame{
		host:        host,
		driver:      driver,
		name:        opts.Name,
		orientation: opts.Orientation,
		parallax:    clampParallax(opts.Parallax),
		duration:    opts.Duration,
		curve:       curveOrDefault(opts.Curve),
	}
	if opts.InitiallyExpanded {
		f.expansion = 1
	}
	return f, nil
}

// Expansion returns the current expansion.
func (f *Frame) Expansion() float64 {
	return f.expansion
}

// Phase returns the current animation phase.
func (f *Frame) Phase() Phase {
	return f.phase
}

// IsExpanded reports whether the frame is expanded or expanding.
func (f *Frame) IsExpanded() bool {
	return f.phase == Expanding || approx(f.expansion, 1)
}

// IsAnimating reports whether a run is in flight.
func (f *Frame) IsAnimating() bool {
	return f.run.IsActive()
}

// Expand moves to expansion 1. It does nothing when the frame is already
// expanded or expanding.
func (f *Frame) Expand(animate bool) {
	f.setExpanded(true, animate)
}

// Collapse moves to expansion 0. It does nothing when the frame is already
// collapsed or collapsing.
func (f *Frame) Collapse(animate bool) {
	f.setExpanded(false, animate)
}

// Toggle collapses an expanded (or expanding) frame and expands any other.
func (f *Frame) Toggle(animate bool) {
	if f.IsExpanded() {
		f.Collapse(animate)
	} else {
		f.Expand(animate)
	}
}

func (f *Frame) setExpanded(expand, animate bool) {
	if expand && (f.phase == Expanding || (f.phase == Idle && approx(f.expansion, 1))) {
		return
	}
	if !expand && (f.phase == Collapsing || (f.phase == Idle && approx(f.expansion, 0))) {
		return
	}
	target := 0.0
	if expand {
		target = 1
	}
	if animate {
		f.animateTo(target)
		return
	}
	f.run.Cancel()
	f.SetExpansion(target)
}

// SetExpansion sets the expansion directly. Callers clamp; out-of-range values
// are kept verbatim. An unchanged value is ignored. A non-zero value makes the
// container visible immediately; zero hides it once a measurement pass has
// shrunk it to nothing.
func (f *Frame) SetExpansion(expansion float64) {
	if f.expansion == expansion {
		return
	}
	if expansion != 0 {
		f.host.SetVisible(true)
	}
	f.expansion = expansion
	f.host.RequestRelayout()
	notify("expander.Frame.listener", f.listener, expansion, f.phase)
}

func (f *Frame) animateTo(target float64) {
	f.run.Cancel()
	phase := Collapsing
	if target == 1 {
		phase = Expanding
	}
	ctx := context.Background()
	f.run = f.driver.Run(f.expansion, target, f.duration, f.curve, animation.Callbacks{
		OnStart: func() {
			f.phase = phase
			capitan.Emit(ctx, AnimationStarted,
				KeyName.Field(f.name),
				KeyKind.Field("frame"),
				KeyPhase.Field(phase.String()),
				KeyDuration.Field(f.duration),
			)
		},
		OnUpdate: func(value, _ float64) {
			f.SetExpansion(value)
		},
		OnEnd: func() {
			f.phase = Idle
			capitan.Emit(ctx, AnimationEnded,
				KeyName.Field(f.name),
				KeyKind.Field("frame"),
				KeyPhase.Field(phase.String()),
			)
		},
		OnCancel: func() {
			f.phase = Idle
			capitan.Emit(ctx, AnimationCanceled,
				KeyName.Field(f.name),
				KeyKind.Field("frame"),
				KeyPhase.Field(phase.String()),
			)
		},
	})
}

// OnMeasure implements layout.MeasureHook. Given the naturally measured size,
// it returns the size shrunk by the collapsed share along the orientation,
// updates visibility and shifts children by the parallax share.
func (f *Frame) OnMeasure(natural layout.Size) layout.Size {
	axis := f.orientation
	size := natural.Along(axis)
	delta := size - int(math.Round(float64(size)*f.expansion))
	reported := size - delta

	f.host.SetVisible(!(f.expansion == 0 && reported == 0))

	offset := -float64(delta) * f.parallax
	if axis == layout.Horizontal && f.host.LayoutDirection() == layout.RTL {
		offset = -offset
	}
	if offset == 0 {
		offset = 0 // normalize -0
	}
	f.host.VisitTranslatable(func(child Translatable) {
		child.SetTranslation(axis, offset)
		child.SetTranslation(axis.Cross(), 0)
	})

	return natural.With(axis, reported)
}

// OnConfigurationChanged cancels an in-flight animation after an external
// geometry change. The expansion stays wherever the animation had reached.
func (f *Frame) OnConfigurationChanged() {
	f.run.Cancel()
}

// SetListener replaces the listener. Nil removes it.
func (f *Frame) SetListener(l Listener) {
	f.listener = l
}

// Orientation returns the expanding axis.
func (f *Frame) Orientation() layout.Axis {
	return f.orientation
}

// SetOrientation changes the expanding axis. Values other than Horizontal and
// Vertical are rejected.
func (f *Frame) SetOrientation(axis layout.Axis) error {
	if !axis.Valid() {
		return errors.InvalidConfiguration("expander.Frame.SetOrientation", errors.ErrInvalidOrientation)
	}
	if f.orientation == axis {
		return nil
	}
	f.orientation = axis
	f.host.RequestRelayout()
	return nil
}

// Parallax returns the child translation share.
func (f *Frame) Parallax() float64 {
	return f.parallax
}

// SetParallax sets the child translation share, clamped to [0, 1].
func (f *Frame) SetParallax(parallax float64) {
	parallax = clampParallax(parallax)
	if f.parallax == parallax {
		return
	}
	f.parallax = parallax
	f.host.RequestRelayout()
}

// Duration returns the animation length.
func (f *Frame) Duration() time.Duration {
	return f.duration
}

// SetDuration changes the length of future animations.
func (f *Frame) SetDuration(d time.Duration) error {
	if err := validateDuration("expander.Frame.SetDuration", d); err != nil {
		return err
	}
	f.duration = d
	return nil
}

// SetCurve changes the easing of future animations. Nil restores the default.
func (f *Frame) SetCurve(c animation.Curve) {
	f.curve = curveOrDefault(c)
}

// Dispose cancels any in-flight animation.
func (f *Frame) Dispose() {
	f.run.Cancel()
	f.listener = nil
}

func clampParallax(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
