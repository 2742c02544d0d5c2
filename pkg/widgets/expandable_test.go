package widgets_test

import (
	"errors"
	"testing"
	"time"

	drifterrors "github.com/go-drift/expandable/pkg/errors"
	"github.com/go-drift/expandable/pkg/expander"
	"github.com/go-drift/expandable/pkg/layout"
	exptest "github.com/go-drift/expandable/pkg/testing"
	"github.com/go-drift/expandable/pkg/widgets"
)

func newFrame(t *testing.T, tester *exptest.Tester, opts expander.FrameOptions) *widgets.ExpandableFrame {
	t.Helper()
	opts.Driver = tester.Driver()
	frame, err := widgets.NewExpandableFrame("details", layout.WrapParams(), opts)
	if err != nil {
		t.Fatalf("NewExpandableFrame: %v", err)
	}
	frame.AddChild(layout.NewLeaf("body", layout.Size{Width: 40, Height: 200}, layout.WrapParams()))
	return frame
}

func expandableParams() layout.Params {
	p := layout.WrapParams()
	p.Expandable = true
	return p
}

type accordion struct {
	*widgets.ExpandableLinear
	header, body, footer *layout.Leaf
}

func newAccordion(t *testing.T, tester *exptest.Tester, duration time.Duration) accordion {
	t.Helper()
	list, err := widgets.NewExpandableLinear("accordion", layout.Vertical, layout.WrapParams(), expander.StackOptions{
		Duration: duration,
		Driver:   tester.Driver(),
	})
	if err != nil {
		t.Fatalf("NewExpandableLinear: %v", err)
	}
	a := accordion{
		ExpandableLinear: list,
		header:           layout.NewLeaf("header", layout.Size{Width: 50, Height: 20}, layout.WrapParams()),
		body:             layout.NewLeaf("body", layout.Size{Width: 50, Height: 80}, expandableParams()),
		footer:           layout.NewLeaf("footer", layout.Size{Width: 50, Height: 10}, layout.WrapParams()),
	}
	list.AddChild(a.header)
	list.AddChild(a.body)
	list.AddChild(a.footer)
	return a
}

func TestExpandableFrame_AnimatedExpand(t *testing.T) {
	tester := exptest.NewTesterWithT(t)
	frame := newFrame(t, tester, expander.FrameOptions{Orientation: layout.Vertical, Duration: 300 * time.Millisecond})
	tester.PumpRoot(frame)

	var phases []expander.Phase
	var last float64
	frame.SetListener(func(fraction float64, phase expander.Phase) {
		phases = append(phases, phase)
		last = fraction
	})

	frame.Expand(true)
	if !frame.IsExpanded() || frame.Phase() != expander.Expanding {
		t.Fatalf("after Expand: expanded=%v phase=%v", frame.IsExpanded(), frame.Phase())
	}

	prev := 0
	for frame.Phase() == expander.Expanding {
		tester.PumpFrames(1)
		h := frame.Size().Height
		if h < prev {
			t.Fatalf("height shrank from %d to %d while expanding", prev, h)
		}
		prev = h
		if tester.FrameCount() > 100 {
			t.Fatal("animation never finished")
		}
	}

	if prev != 200 || last != 1 {
		t.Errorf("final height=%d fraction=%v, want 200 and 1", prev, last)
	}
	if len(phases) == 0 || phases[0] != expander.Expanding {
		t.Errorf("phases = %v, want to start with Expanding", phases)
	}
}

func TestExpandableFrame_HorizontalRTLParallax(t *testing.T) {
	tester := exptest.NewTesterWithT(t)
	frame := newFrame(t, tester, expander.FrameOptions{Orientation: layout.Horizontal, Parallax: 0.5})
	frame.SetLayoutDirection(layout.RTL)
	tester.PumpRoot(frame)

	frame.SetExpansion(0.5)
	tester.Pump()

	if got := frame.Size(); got != (layout.Size{Width: 20, Height: 200}) {
		t.Errorf("size = %+v, want 20x200", got)
	}
	body := tester.Find(exptest.ByLabel("body")).First()
	if got := body.Translation(); got != (layout.Offset{X: 10}) {
		t.Errorf("translation = %+v, want X=10 in RTL", got)
	}
}

func TestExpandableFrame_SnapshotRestore(t *testing.T) {
	tester := exptest.NewTesterWithT(t)
	frame := newFrame(t, tester, expander.FrameOptions{Orientation: layout.Vertical})
	tester.PumpRoot(frame)
	frame.SetExpansion(0.25)

	state := frame.Snapshot()
	if state.Expansion == nil || *state.Expansion != 0.25 || state.Expanded != nil {
		t.Fatalf("Snapshot = %+v, want expansion 0.25 only", state)
	}

	other := newFrame(t, tester, expander.FrameOptions{Orientation: layout.Vertical})
	other.Restore(state)
	if got := other.Expansion(); got != 0.25 {
		t.Errorf("restored expansion = %v, want 0.25", got)
	}

	expanded := true
	other.Restore(widgets.State{Expanded: &expanded})
	if got := other.Expansion(); got != 1 {
		t.Errorf("boolean restore = %v, want 1", got)
	}
}

func TestExpandableFrame_InvalidOrientation(t *testing.T) {
	_, err := widgets.NewExpandableFrame("bad", layout.WrapParams(), expander.FrameOptions{Orientation: layout.Axis(9)})
	if !errors.Is(err, drifterrors.ErrInvalidOrientation) {
		t.Errorf("err = %v, want ErrInvalidOrientation", err)
	}
	if !drifterrors.IsKind(err, drifterrors.KindInvalidConfiguration) {
		t.Errorf("err kind = %v, want KindInvalidConfiguration", err)
	}
}

func TestExpandableLinear_AnimatedExpandCollapse(t *testing.T) {
	tester := exptest.NewTesterWithT(t)
	a := newAccordion(t, tester, 200*time.Millisecond)
	tester.PumpRoot(a)

	if got := a.Size().Height; got != 30 {
		t.Fatalf("collapsed height = %d, want 30", got)
	}

	a.Expand(true)
	tester.PumpFrames(6)
	mid := a.Size().Height
	if mid <= 30 || mid >= 110 {
		t.Errorf("height mid-expand = %d, want between 30 and 110", mid)
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := a.Size().Height; got != 110 {
		t.Errorf("expanded height = %d, want 110", got)
	}
	if got := a.body.Params(); got != expandableParams() {
		t.Errorf("body params after settle = %+v, want the authored params", got)
	}

	a.Collapse(true)
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := a.Size().Height; got != 30 || a.body.Visible() {
		t.Errorf("collapsed height=%d body visible=%v", got, a.body.Visible())
	}
}

func TestExpandableLinear_Remove(t *testing.T) {
	tester := exptest.NewTesterWithT(t)
	a := newAccordion(t, tester, 0)
	tester.PumpRoot(a)

	if err := a.Remove(a.body); err != nil {
		t.Fatalf("Remove(body): %v", err)
	}
	if a.Behavior().Tracks(a.body) {
		t.Error("removed child is still tracked")
	}

	err := a.Remove(a.body)
	if !errors.Is(err, drifterrors.ErrUnknownChild) || !drifterrors.IsKind(err, drifterrors.KindStaleChild) {
		t.Errorf("second Remove err = %v, want stale ErrUnknownChild", err)
	}
}

func TestExpandableLinear_SetChildParamsTogglesTracking(t *testing.T) {
	tester := exptest.NewTesterWithT(t)
	a := newAccordion(t, tester, 0)
	tester.PumpRoot(a)

	if err := a.SetChildParams(a.header, expandableParams()); err != nil {
		t.Fatal(err)
	}
	tester.Pump()
	if !a.Behavior().Tracks(a.header) || a.header.Visible() {
		t.Errorf("header tracked=%v visible=%v, want tracked and hidden while collapsed",
			a.Behavior().Tracks(a.header), a.header.Visible())
	}
	if got := a.Size().Height; got != 10 {
		t.Errorf("height = %d, want only the footer", got)
	}

	if err := a.SetChildParams(a.header, layout.WrapParams()); err != nil {
		t.Fatal(err)
	}
	tester.Pump()
	if a.Behavior().Tracks(a.header) || !a.header.Visible() {
		t.Error("header should be untracked and visible again")
	}
	if got := a.Size().Height; got != 30 {
		t.Errorf("height = %d, want 30", got)
	}
}

func TestExpandableLinear_SetOrientationSettles(t *testing.T) {
	tester := exptest.NewTesterWithT(t)
	a := newAccordion(t, tester, 300*time.Millisecond)
	tester.PumpRoot(a)

	a.Expand(true)
	tester.PumpFrames(3)

	if err := a.SetOrientation(layout.Horizontal); err != nil {
		t.Fatal(err)
	}
	if a.Phase() != expander.Idle || !a.IsExpanded() {
		t.Errorf("phase=%v expanded=%v, want Idle and expanded", a.Phase(), a.IsExpanded())
	}
	tester.Pump()
	if got := a.Size(); got != (layout.Size{Width: 150, Height: 80}) {
		t.Errorf("horizontal size = %+v, want 150x80", got)
	}

	err := a.SetOrientation(layout.Axis(5))
	if !errors.Is(err, drifterrors.ErrInvalidOrientation) {
		t.Errorf("err = %v, want ErrInvalidOrientation", err)
	}
}

func TestExpandableLinear_SnapshotRestore(t *testing.T) {
	tester := exptest.NewTesterWithT(t)
	a := newAccordion(t, tester, 300*time.Millisecond)
	tester.PumpRoot(a)
	a.Expand(true)
	tester.PumpFrames(2)

	state := a.Snapshot()
	if state.Expanded == nil || !*state.Expanded || state.Expansion != nil {
		t.Fatalf("Snapshot = %+v, want expanded=true only", state)
	}

	b := newAccordion(t, tester, 300*time.Millisecond)
	b.Restore(state)
	if !b.IsExpanded() || b.Phase() != expander.Idle || !b.body.Visible() {
		t.Errorf("restored expanded=%v phase=%v body visible=%v", b.IsExpanded(), b.Phase(), b.body.Visible())
	}

	half := 0.5
	b.Restore(widgets.State{Expansion: &half})
	if b.IsExpanded() {
		t.Error("a fractional snapshot should restore collapsed")
	}
}
