package widgets

import (
	"time"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/expander"
	"github.com/go-drift/expandable/pkg/layout"
)

// ExpandableFrame is a clipping frame that expands and collapses as a whole
// along one axis. Children are added with AddChild like any layout.Frame.
type ExpandableFrame struct {
	*layout.Frame
	behavior *expander.Frame
}

// NewExpandableFrame creates a frame driven by an [expander.Frame].
func NewExpandableFrame(name string, params layout.Params, opts expander.FrameOptions) (*ExpandableFrame, error) {
	w := &ExpandableFrame{Frame: layout.NewFrame(name, params)}
	if opts.Name == "" {
		opts.Name = name
	}
	behavior, err := expander.NewFrame(frameHost{w.Frame}, opts)
	if err != nil {
		return nil, err
	}
	w.behavior = behavior
	w.Frame.SetMeasureHook(behavior)
	return w, nil
}

// frameHost lets the behavior drive the underlying layout.Frame.
type frameHost struct {
	frame *layout.Frame
}

func (h frameHost) RequestRelayout() {
	h.frame.MarkNeedsLayout()
}

func (h frameHost) SetVisible(visible bool) {
	h.frame.SetVisible(visible)
}

func (h frameHost) LayoutDirection() layout.Direction {
	return h.frame.LayoutDirection()
}

func (h frameHost) VisitTranslatable(visit func(expander.Translatable)) {
	h.frame.VisitChildren(func(child layout.RenderObject) {
		if t, ok := child.(expander.Translatable); ok {
			visit(t)
		}
	})
}

// Behavior exposes the underlying expander.
func (w *ExpandableFrame) Behavior() *expander.Frame {
	return w.behavior
}

// Name returns the frame label.
func (w *ExpandableFrame) Name() string {
	return w.Frame.Label
}

func (w *ExpandableFrame) Expand(animate bool)   { w.behavior.Expand(animate) }
func (w *ExpandableFrame) Collapse(animate bool) { w.behavior.Collapse(animate) }
func (w *ExpandableFrame) Toggle(animate bool)   { w.behavior.Toggle(animate) }

// SetExpansion sets the expansion directly, for drag and seek controls.
func (w *ExpandableFrame) SetExpansion(v float64) { w.behavior.SetExpansion(v) }

func (w *ExpandableFrame) Expansion() float64    { return w.behavior.Expansion() }
func (w *ExpandableFrame) IsExpanded() bool      { return w.behavior.IsExpanded() }
func (w *ExpandableFrame) Phase() expander.Phase { return w.behavior.Phase() }

func (w *ExpandableFrame) SetListener(l expander.Listener) { w.behavior.SetListener(l) }

// SetOrientation changes the expanding axis.
func (w *ExpandableFrame) SetOrientation(axis layout.Axis) error {
	return w.behavior.SetOrientation(axis)
}

// SetParallax sets the share of the collapsed size by which children shift.
func (w *ExpandableFrame) SetParallax(p float64) { w.behavior.SetParallax(p) }

func (w *ExpandableFrame) SetDuration(d time.Duration) error { return w.behavior.SetDuration(d) }
func (w *ExpandableFrame) SetCurve(c animation.Curve)        { w.behavior.SetCurve(c) }
func (w *ExpandableFrame) OnConfigurationChanged()           { w.behavior.OnConfigurationChanged() }
func (w *ExpandableFrame) Dispose()                          { w.behavior.Dispose() }

// Snapshot captures the expansion.
func (w *ExpandableFrame) Snapshot() State {
	e := w.behavior.SaveState().Expansion
	return State{Expansion: &e}
}

// Restore applies a snapshot. A boolean snapshot maps to 0 or 1.
func (w *ExpandableFrame) Restore(state State) {
	var e float64
	switch {
	case state.Expansion != nil:
		e = *state.Expansion
	case state.IsExpanded():
		e = 1
	}
	w.behavior.RestoreState(expander.FrameState{Expansion: e})
}
