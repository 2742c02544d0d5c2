package expander

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/errors"
	"github.com/go-drift/expandable/pkg/layout"
)

// Child is a box a Stack can resize and hide.
type Child interface {
	Params() layout.Params
	SetParams(p layout.Params)
	Size() layout.Size
	Visible() bool
	SetVisible(visible bool)
}

// StackHost is the container a Stack drives.
type StackHost interface {
	// RequestRelayout asks the host to run a measurement pass soon.
	RequestRelayout()
	// MeasureChildren runs a measurement pass synchronously so child sizes
	// can be read back before it returns.
	MeasureChildren()
	// Orientation is the axis children are resized along.
	Orientation() layout.Axis
}

// StackOptions configure a Stack at construction.
type StackOptions struct {
	Name              string
	Duration          time.Duration
	InitiallyExpanded bool
	Curve             animation.Curve
	Driver            *animation.Driver
}

// DefaultStackOptions returns collapsed, 300ms options.
func DefaultStackOptions() StackOptions {
	return StackOptions{
		Duration: DefaultDuration,
		Curve:    animation.FastOutSlowIn,
	}
}

// stackEntry is the side-table record of one expandable child.
type stackEntry struct {
	child Child
	// authored are the params the child was attached with, restored once it settles.
	authored layout.Params
	natural  int
	start    int
	target   int
	current  int
	moving   bool
}

// Stack expands and collapses the expandable children of a container.
//
// The expanded flag is the single source of truth. Each tracked child is
// resized between zero and its natural size; all children moved by one
// transition share a single run so the container changes size as one unit.
// Children not flagged Expandable are never touched.
type Stack struct {
	host     StackHost
	driver   *animation.Driver
	run      *animation.Run
	name     string
	expanded bool
	phase    Phase
	progress float64
	duration time.Duration
	curve    animation.Curve
	listener Listener
	entries  []*stackEntry
}

// NewStack creates a multi-child behavior for host.
func NewStack(host StackHost, opts StackOptions) (*Stack, error) {
	if err := validateDuration("expander.NewStack", opts.Duration); err != nil {
		return nil, err
	}
	driver := opts.Driver
	if driver == nil {
		driver = animation.NewDriver(nil)
	}
	s := &Stack{
		host:     host,
		driver:   driver,
		name:     opts.Name,
		expanded: opts.InitiallyExpanded,
		duration: opts.Duration,
		curve:    curveOrDefault(opts.Curve),
	}
	if s.expanded {
		s.progress = 1
	}
	return s, nil
}

// Attach starts tracking child if its params mark it expandable. The child is
// shown only when the stack is expanded. It reports whether child is tracked.
func (s *Stack) Attach(child Child) bool {
	if !child.Params().Expandable {
		return false
	}
	if s.find(child) >= 0 {
		return true
	}
	s.entries = append(s.entries, &stackEntry{child: child, authored: child.Params()})
	child.SetVisible(s.expanded)
	return true
}

// Detach stops tracking child. A child caught mid-animation gets its authored
// params back and leaves the running group without disturbing its siblings.
// When it was the last moving child the group run is canceled and the stack
// settles.
func (s *Stack) Detach(child Child) error {
	i := s.find(child)
	if i < 0 {
		return &errors.Error{Op: "expander.Stack.Detach", Kind: errors.KindStaleChild, Err: errors.ErrUnknownChild}
	}
	e := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if !e.moving {
		return nil
	}
	e.moving = false
	child.SetParams(e.authored)
	for _, other := range s.entries {
		if other.moving {
			return nil
		}
	}
	s.Settle()
	return nil
}

// Tracks reports whether child is tracked.
func (s *Stack) Tracks(child Child) bool {
	return s.find(child) >= 0
}

// SetAuthoredParams records new authored params for a tracked child. A
// settled child takes them immediately, and on an idle expanded stack its
// natural size is measured again. A moving child takes them when its
// animation settles.
func (s *Stack) SetAuthoredParams(child Child, p layout.Params) error {
	i := s.find(child)
	if i < 0 {
		return &errors.Error{Op: "expander.Stack.SetAuthoredParams", Kind: errors.KindStaleChild, Err: errors.ErrUnknownChild}
	}
	e := s.entries[i]
	e.authored = p
	if e.moving {
		return nil
	}
	child.SetParams(p)
	if s.expanded && s.phase == Idle {
		s.host.MeasureChildren()
		e.natural = child.Size().Along(s.host.Orientation())
	}
	return nil
}

// Children returns the tracked children in attach order.
func (s *Stack) Children() []Child {
	out := make([]Child, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.child
	}
	return out
}

// NaturalSize returns the size child measured at the last expand, or at the
// last SetAuthoredParams on an idle expanded stack.
func (s *Stack) NaturalSize(child Child) (int, bool) {
	i := s.find(child)
	if i < 0 {
		return 0, false
	}
	return s.entries[i].natural, true
}

func (s *Stack) find(child Child) int {
	for i, e := range s.entries {
		if e.child == child {
			return i
		}
	}
	return -1
}

// IsExpanded returns the expanded flag.
func (s *Stack) IsExpanded() bool {
	return s.expanded
}

// Phase returns the current animation phase.
func (s *Stack) Phase() Phase {
	return s.phase
}

// Progress returns the last fraction reported to the listener.
func (s *Stack) Progress() float64 {
	return s.progress
}

// IsAnimating reports whether a group run is in flight.
func (s *Stack) IsAnimating() bool {
	return s.run.IsActive()
}

// Expand grows every tracked child to its natural size. No-op when expanded.
func (s *Stack) Expand(animate bool) {
	if s.expanded {
		return
	}
	s.transition(true, animate)
}

// Collapse shrinks every tracked child to zero and hides it. No-op when collapsed.
func (s *Stack) Collapse(animate bool) {
	if !s.expanded {
		return
	}
	s.transition(false, animate)
}

// Toggle flips the expanded flag.
func (s *Stack) Toggle(animate bool) {
	if s.expanded {
		s.Collapse(animate)
	} else {
		s.Expand(animate)
	}
}

func (s *Stack) transition(expand, animate bool) {
	s.run.Cancel()
	s.run = nil
	s.expanded = expand
	axis := s.host.Orientation()

	for _, e := range s.entries {
		e.start = s.renderedSize(e, axis)
	}
	if expand {
		for _, e := range s.entries {
			e.child.SetVisible(true)
			e.child.SetParams(e.authored)
		}
		s.host.MeasureChildren()
		for _, e := range s.entries {
			e.natural = e.child.Size().Along(axis)
			e.target = e.natural
		}
	} else {
		for _, e := range s.entries {
			e.target = 0
		}
	}

	moving := 0
	for _, e := range s.entries {
		if animate && e.start != e.target {
			moving++
			continue
		}
		s.settle(e)
	}

	if moving == 0 {
		s.progress = 0
		if expand {
			s.progress = 1
		}
		s.phase = Idle
		s.host.RequestRelayout()
		notify("expander.Stack.listener", s.listener, s.progress, s.phase)
		return
	}

	for _, e := range s.entries {
		if e.start == e.target || !animate {
			continue
		}
		e.moving = true
		e.current = e.start
		e.child.SetVisible(true)
		e.child.SetParams(animatedParams(e, axis, e.start))
	}
	s.animate(expand, moving)
}

func (s *Stack) animate(expand bool, moving int) {
	phase := Collapsing
	if expand {
		phase = Expanding
	}
	p0 := s.progress
	ctx := context.Background()
	s.run = s.driver.Run(0, 1, s.duration, s.curve, animation.Callbacks{
		OnStart: func() {
			s.phase = phase
			capitan.Emit(ctx, AnimationStarted,
				KeyName.Field(s.name),
				KeyKind.Field("stack"),
				KeyPhase.Field(phase.String()),
				KeyDuration.Field(s.duration),
				KeyChildren.Field(moving),
			)
		},
		OnUpdate: func(v, _ float64) {
			s.step(v, expand, p0)
		},
		OnEnd: func() {
			s.phase = Idle
			for _, e := range s.entries {
				if e.moving {
					s.settle(e)
				}
			}
			s.host.RequestRelayout()
			capitan.Emit(ctx, AnimationEnded,
				KeyName.Field(s.name),
				KeyKind.Field("stack"),
				KeyPhase.Field(phase.String()),
			)
		},
		OnCancel: func() {
			s.phase = Idle
			capitan.Emit(ctx, AnimationCanceled,
				KeyName.Field(s.name),
				KeyKind.Field("stack"),
				KeyPhase.Field(phase.String()),
			)
		},
	})
}

// step applies eased progress v of the group run to every moving child and
// reports the group fraction. p0 is the fraction the run started from, so a
// reversal resumes from where the previous run left off.
func (s *Stack) step(v float64, expand bool, p0 float64) {
	axis := s.host.Orientation()
	for _, e := range s.entries {
		if !e.moving {
			continue
		}
		e.current = animation.LerpInt(e.start, e.target, v)
		e.child.SetParams(animatedParams(e, axis, e.current))
	}
	if expand {
		s.progress = p0 + (1-p0)*v
	} else {
		s.progress = p0 * (1 - v)
	}
	s.host.RequestRelayout()
	notify("expander.Stack.listener", s.listener, s.progress, s.phase)
}

// settle puts a child in its resting state for the current flag: authored
// params and visible when expanded, hidden when collapsed.
func (s *Stack) settle(e *stackEntry) {
	e.moving = false
	e.current = 0
	if s.expanded {
		e.child.SetParams(e.authored)
		e.child.SetVisible(true)
		return
	}
	e.child.SetVisible(false)
	e.child.SetParams(e.authored)
}

// renderedSize is what the child currently occupies along axis.
func (s *Stack) renderedSize(e *stackEntry, axis layout.Axis) int {
	switch {
	case !e.child.Visible():
		return 0
	case e.moving:
		return e.current
	default:
		return e.child.Size().Along(axis)
	}
}

// animatedParams fixes the main-axis size and drops the weight so the host
// honors the animated size exactly.
func animatedParams(e *stackEntry, axis layout.Axis, size int) layout.Params {
	p := e.authored.WithDim(axis, layout.Dimension(size))
	p.Weight = 0
	return p
}

// OnConfigurationChanged cancels an in-flight group run after an external
// geometry change. Children keep whatever size they had reached.
func (s *Stack) OnConfigurationChanged() {
	s.run.Cancel()
}

// SetListener replaces the listener. Nil removes it.
func (s *Stack) SetListener(l Listener) {
	s.listener = l
}

// Duration returns the animation length.
func (s *Stack) Duration() time.Duration {
	return s.duration
}

// SetDuration changes the length of future animations.
func (s *Stack) SetDuration(d time.Duration) error {
	if err := validateDuration("expander.Stack.SetDuration", d); err != nil {
		return err
	}
	s.duration = d
	return nil
}

// SetCurve changes the easing of future animations. Nil restores the default.
func (s *Stack) SetCurve(c animation.Curve) {
	s.curve = curveOrDefault(c)
}

// Dispose cancels any in-flight animation and drops the listener.
func (s *Stack) Dispose() {
	s.run.Cancel()
	s.listener = nil
}
