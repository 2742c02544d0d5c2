package expander

import (
	"testing"
	"time"

	drifterrors "github.com/go-drift/expandable/pkg/errors"
	"github.com/go-drift/expandable/pkg/layout"
)

// linearHost drives a real layout.Linear the way widgets.ExpandableLinear does.
type linearHost struct {
	*layout.Linear
	owner     layout.PipelineOwner
	relayouts int
}

func (h *linearHost) RequestRelayout() {
	h.relayouts++
	h.MarkNeedsLayout()
}

func (h *linearHost) flush() {
	h.owner.FlushLayout(h.Linear, layout.Loose(layout.Size{Width: 100, Height: 500}))
}

type stackFixture struct {
	stack *Stack
	host  *linearHost
	fixed *layout.Leaf
	body  *layout.Leaf
	log   *listenerLog
}

func expandableParams() layout.Params {
	p := layout.WrapParams()
	p.Expandable = true
	return p
}

func newStackFixture(t *testing.T, r *rig, expanded bool, bodyHeight int) *stackFixture {
	t.Helper()
	host := &linearHost{Linear: layout.NewLinear("stack", layout.Vertical, layout.WrapParams())}
	s, err := NewStack(host, StackOptions{
		Name:              "test",
		Duration:          300 * time.Millisecond,
		InitiallyExpanded: expanded,
		Driver:            r.driver,
	})
	if err != nil {
		t.Fatalf("NewStack: %v", err)
	}
	host.OnChildrenChanged(
		func(child layout.RenderObject) { s.Attach(child.(Child)) },
		func(child layout.RenderObject) {
			if c := child.(Child); s.Tracks(c) {
				_ = s.Detach(c)
			}
		},
	)
	fx := &stackFixture{
		stack: s,
		host:  host,
		fixed: layout.NewLeaf("fixed", layout.Size{Width: 100, Height: 30}, layout.WrapParams()),
		body:  layout.NewLeaf("body", layout.Size{Width: 100, Height: bodyHeight}, expandableParams()),
		log:   &listenerLog{},
	}
	host.AddChild(fx.fixed)
	host.AddChild(fx.body)
	s.SetListener(fx.log.listener())
	host.flush()
	return fx
}

func TestStack_ExpandCollapseWithoutAnimation(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, false, 80)

	if fx.body.Visible() {
		t.Fatal("expandable child of a collapsed stack should start hidden")
	}
	if h := fx.host.Size().Height; h != 30 {
		t.Fatalf("collapsed height = %d, want 30", h)
	}

	fx.stack.Expand(false)
	fx.host.flush()

	if !fx.body.Visible() || fx.body.Size().Height != 80 {
		t.Errorf("body visible = %v, height = %d, want visible 80", fx.body.Visible(), fx.body.Size().Height)
	}
	if fx.fixed.Size().Height != 30 || !fx.fixed.Visible() {
		t.Error("non-expandable child should be unaffected")
	}
	if len(fx.log.calls) != 1 || fx.log.calls[0].fraction != 1 {
		t.Errorf("listener calls = %+v, want one at 1", fx.log.calls)
	}
	if h := fx.host.Size().Height; h != 110 {
		t.Errorf("expanded height = %d, want 110", h)
	}

	fx.stack.Collapse(false)
	fx.host.flush()

	if fx.body.Visible() || fx.body.Size().Height != 0 {
		t.Errorf("body visible = %v, height = %d, want hidden 0", fx.body.Visible(), fx.body.Size().Height)
	}
	if len(fx.log.calls) != 2 || fx.log.calls[1].fraction != 0 {
		t.Errorf("listener calls = %+v, want second at 0", fx.log.calls)
	}
	if fx.body.Params() != expandableParams() {
		t.Errorf("authored params not restored: %+v", fx.body.Params())
	}
	if r.scheduler.HasActiveTickers() {
		t.Error("jumps should not schedule frames")
	}
}

func TestStack_AnimatedExpandGrowsMonotonically(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, false, 80)

	fx.stack.Expand(true)
	if fx.stack.Phase() != Expanding || !fx.stack.IsExpanded() {
		t.Fatalf("phase = %v, expanded = %v", fx.stack.Phase(), fx.stack.IsExpanded())
	}
	if !fx.body.Visible() {
		t.Fatal("animating child should be visible")
	}

	prevHeight, prevFraction := -1, -1.0
	for i := 0; r.scheduler.HasActiveTickers(); i++ {
		if i > 100 {
			t.Fatal("animation did not settle")
		}
		r.frame()
		fx.host.flush()
		h := fx.body.Size().Height
		f := fx.log.last().fraction
		if h < prevHeight || f < prevFraction {
			t.Fatalf("frame %d went backwards: height %d -> %d, fraction %v -> %v", i, prevHeight, h, prevFraction, f)
		}
		prevHeight, prevFraction = h, f
	}

	if fx.body.Size().Height != 80 || fx.log.last().fraction != 1 {
		t.Errorf("settled height = %d, fraction = %v", fx.body.Size().Height, fx.log.last().fraction)
	}
	if fx.body.Params() != expandableParams() {
		t.Errorf("authored params not restored: %+v", fx.body.Params())
	}
	if natural, ok := fx.stack.NaturalSize(fx.body); !ok || natural != 80 {
		t.Errorf("natural = %d, %v", natural, ok)
	}
	if fx.stack.Phase() != Idle {
		t.Errorf("phase = %v, want idle", fx.stack.Phase())
	}
}

func TestStack_ExpandTwiceIsNoOp(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, false, 80)

	fx.stack.Expand(true)
	run := fx.stack.run
	calls := len(fx.log.calls)
	fx.stack.Expand(true)
	if fx.stack.run != run || len(fx.log.calls) != calls {
		t.Error("second Expand should do nothing")
	}
	r.settle(t)
	fx.stack.Expand(false)
	if len(fx.log.calls) == 0 || fx.stack.run != run {
		t.Error("expanding a settled expanded stack should do nothing")
	}
}

func TestStack_CollapseReversesMidExpand(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, false, 80)

	fx.stack.Expand(true)
	r.frames(6)
	fx.host.flush()
	before := fx.log.last().fraction
	heightBefore := fx.body.Size().Height
	if before <= 0 || before >= 1 {
		t.Fatalf("expected a mid-range fraction, got %v", before)
	}

	fx.stack.Collapse(true)
	if fx.stack.Phase() != Collapsing || fx.stack.IsExpanded() {
		t.Fatalf("phase = %v, expanded = %v", fx.stack.Phase(), fx.stack.IsExpanded())
	}
	r.frame()
	fx.host.flush()
	if next := fx.log.last().fraction; next > before {
		t.Errorf("fraction after reversal %v > %v", next, before)
	}
	if h := fx.body.Size().Height; h > heightBefore {
		t.Errorf("height after reversal %d > %d", h, heightBefore)
	}

	r.settle(t)
	fx.host.flush()
	if fx.body.Visible() || fx.log.last().fraction != 0 {
		t.Errorf("settled visible = %v, fraction = %v", fx.body.Visible(), fx.log.last().fraction)
	}
}

func TestStack_ZeroNaturalSizeFlipsVisibility(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, false, 0)

	fx.stack.Expand(true)
	if r.scheduler.HasActiveTickers() {
		t.Error("zero-delta transition should not animate")
	}
	if !fx.body.Visible() {
		t.Error("child should be visible after expanding")
	}
	if len(fx.log.calls) != 1 || fx.log.calls[0] != (progress{1, Idle}) {
		t.Errorf("listener calls = %+v", fx.log.calls)
	}

	fx.host.flush()
	fx.stack.Collapse(true)
	if fx.body.Visible() || len(fx.log.calls) != 2 || fx.log.last().fraction != 0 {
		t.Errorf("collapse: visible = %v, calls = %+v", fx.body.Visible(), fx.log.calls)
	}
}

func TestStack_AttachVisibility(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, true, 40)

	if !fx.body.Visible() {
		t.Error("expandable child of an expanded stack should start visible")
	}
	extra := layout.NewLeaf("extra", layout.Size{Width: 10, Height: 10}, layout.WrapParams())
	fx.host.AddChild(extra)
	if fx.stack.Tracks(extra) {
		t.Error("non-expandable child should not be tracked")
	}
	if got := len(fx.stack.Children()); got != 1 {
		t.Errorf("tracked children = %d, want 1", got)
	}
}

func TestStack_DetachMidAnimation(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, false, 80)
	second := layout.NewLeaf("second", layout.Size{Width: 100, Height: 40}, expandableParams())
	fx.host.AddChild(second)
	fx.host.flush()

	fx.stack.Expand(true)
	r.frames(4)
	fx.host.flush()
	if !fx.host.RemoveChild(fx.body) {
		t.Fatal("RemoveChild failed")
	}
	r.settle(t)
	fx.host.flush()

	if fx.stack.Tracks(fx.body) {
		t.Error("removed child is still tracked")
	}
	if second.Size().Height != 40 || !second.Visible() {
		t.Errorf("sibling height = %d, visible = %v", second.Size().Height, second.Visible())
	}
	if fx.log.last().fraction != 1 {
		t.Errorf("final fraction = %v", fx.log.last().fraction)
	}
	if got := fx.body.Params(); got != expandableParams() {
		t.Errorf("removed child params = %+v, want authored %+v", got, expandableParams())
	}

	err := fx.stack.Detach(fx.body)
	if !drifterrors.IsKind(err, drifterrors.KindStaleChild) {
		t.Errorf("Detach unknown child = %v, want stale child", err)
	}

	fx.host.AddChild(fx.body)
	fx.host.flush()
	if got := fx.body.Size().Height; got != 80 || !fx.body.Visible() {
		t.Errorf("re-added child height = %d, visible = %v, want 80 and visible", got, fx.body.Visible())
	}
}

func TestStack_DetachLastMovingChildEndsRun(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, false, 80)

	fx.stack.Expand(true)
	r.frames(2)
	fx.host.flush()
	if !fx.stack.IsAnimating() {
		t.Fatal("expected a running group")
	}
	calls := len(fx.log.calls)

	if !fx.host.RemoveChild(fx.body) {
		t.Fatal("RemoveChild failed")
	}
	if fx.stack.IsAnimating() {
		t.Error("group run still active with no moving children")
	}
	r.settle(t)

	if got := len(fx.log.calls); got != calls {
		t.Errorf("listener calls after removal = %d, want none", got-calls)
	}
	if fx.stack.Phase() != Idle || !fx.stack.IsExpanded() || fx.stack.Progress() != 1 {
		t.Errorf("phase = %v, expanded = %v, progress = %v", fx.stack.Phase(), fx.stack.IsExpanded(), fx.stack.Progress())
	}
	if got := fx.body.Params(); got != expandableParams() {
		t.Errorf("removed child params = %+v, want authored %+v", got, expandableParams())
	}
}

func TestStack_WeightedChildRestoresWeight(t *testing.T) {
	r := newRig()
	host := &linearHost{Linear: layout.NewLinear("stack", layout.Vertical, layout.Params{Width: layout.WrapContent, Height: 200})}
	s, err := NewStack(host, StackOptions{Duration: 300 * time.Millisecond, Driver: r.driver})
	if err != nil {
		t.Fatal(err)
	}
	host.OnChildrenChanged(func(child layout.RenderObject) { s.Attach(child.(Child)) }, nil)
	authored := layout.Params{Width: layout.WrapContent, Height: layout.MatchParent, Weight: 1, Expandable: true}
	fixed := layout.NewLeaf("fixed", layout.Size{Width: 50, Height: 30}, layout.WrapParams())
	body := layout.NewLeaf("body", layout.Size{Width: 50, Height: 10}, authored)
	host.AddChild(fixed)
	host.AddChild(body)
	host.flush()

	s.Expand(true)
	r.frames(3)
	if w := body.Params().Weight; w != 0 {
		t.Errorf("weight during animation = %v, want 0", w)
	}
	r.settle(t)
	host.flush()

	if body.Params() != authored {
		t.Errorf("params after expand = %+v, want %+v", body.Params(), authored)
	}
	if body.Size().Height != 170 {
		t.Errorf("weighted height = %d, want 170", body.Size().Height)
	}
}

func TestStack_SaveRestore(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, false, 80)
	fx.stack.Expand(false)
	fx.host.flush()
	state := fx.stack.SaveState()

	other := newStackFixture(t, r, false, 80)
	other.stack.RestoreState(state)
	other.host.flush()

	if !other.stack.IsExpanded() || !other.body.Visible() {
		t.Error("restored stack should be expanded with a visible child")
	}
	if other.host.Size() != fx.host.Size() {
		t.Errorf("restored size = %+v, want %+v", other.host.Size(), fx.host.Size())
	}
	if len(other.log.calls) != 0 {
		t.Error("restore should not notify")
	}
}

func TestStack_RestoreDiscardsAnimation(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, false, 80)

	fx.stack.Expand(true)
	r.frames(3)
	if state := fx.stack.SaveState(); !state.Expanded {
		t.Error("mid-expand snapshot should be expanded")
	}

	fx.stack.RestoreState(StackState{Expanded: false})
	if fx.stack.IsAnimating() || fx.stack.Phase() != Idle {
		t.Error("restore should cancel the run")
	}
	if fx.body.Visible() || fx.body.Params() != expandableParams() {
		t.Errorf("child visible = %v, params = %+v", fx.body.Visible(), fx.body.Params())
	}
	if r.scheduler.HasActiveTickers() {
		t.Error("no frames should remain scheduled")
	}
}

func TestStack_SetAuthoredParams(t *testing.T) {
	r := newRig()
	fx := newStackFixture(t, r, true, 80)

	p := expandableParams()
	p.Height = 50
	if err := fx.stack.SetAuthoredParams(fx.body, p); err != nil {
		t.Fatal(err)
	}
	if natural, _ := fx.stack.NaturalSize(fx.body); natural != 50 {
		t.Errorf("natural right after authored change = %d, want 50", natural)
	}
	fx.host.flush()
	if fx.body.Size().Height != 50 {
		t.Errorf("height = %d, want 50", fx.body.Size().Height)
	}

	fx.stack.Collapse(false)
	fx.stack.Expand(false)
	if natural, _ := fx.stack.NaturalSize(fx.body); natural != 50 {
		t.Errorf("natural after authored change = %d, want 50", natural)
	}

	stranger := layout.NewLeaf("stranger", layout.Size{}, expandableParams())
	if err := fx.stack.SetAuthoredParams(stranger, p); !drifterrors.IsKind(err, drifterrors.KindStaleChild) {
		t.Errorf("unknown child error = %v", err)
	}
}

func TestStack_ToggleParity(t *testing.T) {
	for _, animate := range []bool{false, true} {
		r := newRig()
		fx := newStackFixture(t, r, false, 80)
		ops := []func(bool){fx.stack.Toggle, fx.stack.Expand, fx.stack.Toggle, fx.stack.Toggle, fx.stack.Collapse, fx.stack.Toggle}
		for _, op := range ops {
			op(animate)
			r.frames(2)
			fx.host.flush()
		}
		r.settle(t)
		fx.host.flush()
		if !fx.stack.IsExpanded() || !fx.body.Visible() || fx.body.Size().Height != 80 {
			t.Errorf("animate=%v: expanded = %v, height = %d", animate, fx.stack.IsExpanded(), fx.body.Size().Height)
		}
	}
}

func TestStack_NegativeDuration(t *testing.T) {
	if _, err := NewStack(&linearHost{}, StackOptions{Duration: -1}); !drifterrors.IsKind(err, drifterrors.KindInvalidConfiguration) {
		t.Errorf("NewStack error = %v", err)
	}
}
