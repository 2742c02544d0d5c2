package widgets

import (
	"time"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/errors"
	"github.com/go-drift/expandable/pkg/expander"
	"github.com/go-drift/expandable/pkg/layout"
)

// ExpandableLinear is a linear container whose children flagged Expandable
// grow and shrink together. Other children are laid out normally.
type ExpandableLinear struct {
	*layout.Linear
	stack *expander.Stack
}

// NewExpandableLinear creates a linear container driven by an [expander.Stack].
func NewExpandableLinear(name string, orientation layout.Axis, params layout.Params, opts expander.StackOptions) (*ExpandableLinear, error) {
	if !orientation.Valid() {
		return nil, errors.InvalidConfiguration("widgets.NewExpandableLinear", errors.ErrInvalidOrientation)
	}
	w := &ExpandableLinear{Linear: layout.NewLinear(name, orientation, params)}
	if opts.Name == "" {
		opts.Name = name
	}
	stack, err := expander.NewStack(linearHost{w.Linear}, opts)
	if err != nil {
		return nil, err
	}
	w.stack = stack
	w.Linear.OnChildrenChanged(w.attach, w.detach)
	return w, nil
}

type linearHost struct {
	*layout.Linear
}

func (h linearHost) RequestRelayout() {
	h.MarkNeedsLayout()
}

func (w *ExpandableLinear) attach(child layout.RenderObject) {
	if c, ok := child.(expander.Child); ok {
		w.stack.Attach(c)
	}
}

func (w *ExpandableLinear) detach(child layout.RenderObject) {
	if c, ok := child.(expander.Child); ok && w.stack.Tracks(c) {
		_ = w.stack.Detach(c)
	}
}

// Behavior exposes the underlying expander.
func (w *ExpandableLinear) Behavior() *expander.Stack {
	return w.stack
}

// Name returns the container label.
func (w *ExpandableLinear) Name() string {
	return w.Linear.Label
}

// Remove detaches child. Unknown children yield errors.ErrUnknownChild.
func (w *ExpandableLinear) Remove(child layout.RenderObject) error {
	if !w.Linear.RemoveChild(child) {
		return &errors.Error{Op: "widgets.ExpandableLinear.Remove", Kind: errors.KindStaleChild, Err: errors.ErrUnknownChild}
	}
	return nil
}

// SetChildParams replaces a child's authored params. Tracked children keep
// their animated size until they settle. Toggling Expandable starts or stops
// tracking.
func (w *ExpandableLinear) SetChildParams(child expander.Child, p layout.Params) error {
	tracked := w.stack.Tracks(child)
	switch {
	case tracked && p.Expandable:
		return w.stack.SetAuthoredParams(child, p)
	case tracked:
		if err := w.stack.Detach(child); err != nil {
			return err
		}
		child.SetParams(p)
		child.SetVisible(true)
	default:
		child.SetParams(p)
		if p.Expandable {
			w.stack.Attach(child)
		}
	}
	return nil
}

// SetOrientation changes the main axis. Moving children are settled first so
// no animated size is carried over to the new axis.
func (w *ExpandableLinear) SetOrientation(axis layout.Axis) error {
	if !axis.Valid() {
		return errors.InvalidConfiguration("widgets.ExpandableLinear.SetOrientation", errors.ErrInvalidOrientation)
	}
	if axis == w.Linear.Orientation() {
		return nil
	}
	w.stack.Settle()
	w.Linear.SetOrientation(axis)
	return nil
}

func (w *ExpandableLinear) Expand(animate bool)   { w.stack.Expand(animate) }
func (w *ExpandableLinear) Collapse(animate bool) { w.stack.Collapse(animate) }
func (w *ExpandableLinear) Toggle(animate bool)   { w.stack.Toggle(animate) }
func (w *ExpandableLinear) IsExpanded() bool      { return w.stack.IsExpanded() }
func (w *ExpandableLinear) Phase() expander.Phase { return w.stack.Phase() }

func (w *ExpandableLinear) SetListener(l expander.Listener)   { w.stack.SetListener(l) }
func (w *ExpandableLinear) SetDuration(d time.Duration) error { return w.stack.SetDuration(d) }
func (w *ExpandableLinear) SetCurve(c animation.Curve)        { w.stack.SetCurve(c) }
func (w *ExpandableLinear) OnConfigurationChanged()           { w.stack.OnConfigurationChanged() }
func (w *ExpandableLinear) Dispose()                          { w.stack.Dispose() }

// Snapshot captures the expanded flag.
func (w *ExpandableLinear) Snapshot() State {
	e := w.stack.SaveState().Expanded
	return State{Expanded: &e}
}

// Restore applies a snapshot. A fractional snapshot counts as expanded only at 1.
func (w *ExpandableLinear) Restore(state State) {
	w.stack.RestoreState(expander.StackState{Expanded: state.IsExpanded()})
}
