package layout

import "math"

// Linear lays out its visible children one after another along an axis.
//
// Children with a positive Weight share the main-axis space left over by
// the others once the main axis is bounded, like a weighted LinearLayout.
// Hidden children take no space.
type Linear struct {
	RenderBox
	Label       string
	orientation Axis
	children    []RenderObject
	offsets     map[RenderObject]Offset
	onAttach    func(child RenderObject)
	onDetach    func(child RenderObject)
}

// NewLinear creates an empty linear container.
func NewLinear(label string, orientation Axis, params Params) *Linear {
	l := &Linear{Label: label, orientation: orientation, offsets: make(map[RenderObject]Offset)}
	l.SetSelf(l)
	l.params = params
	return l
}

// Orientation returns the main axis.
func (l *Linear) Orientation() Axis {
	return l.orientation
}

// SetOrientation changes the main axis.
func (l *Linear) SetOrientation(a Axis) {
	if l.orientation == a {
		return
	}
	l.orientation = a
	l.MarkNeedsLayout()
}

// OnChildrenChanged registers callbacks fired after a child is attached or
// before it is detached. Bindings use them to keep side tables in sync.
func (l *Linear) OnChildrenChanged(attach, detach func(child RenderObject)) {
	l.onAttach = attach
	l.onDetach = detach
}

// AddChild appends a child.
func (l *Linear) AddChild(child RenderObject) {
	l.children = append(l.children, child)
	setParentOnChild(child, l)
	if l.onAttach != nil {
		l.onAttach(child)
	}
}

// RemoveChild detaches a child. It reports whether the child was present.
func (l *Linear) RemoveChild(child RenderObject) bool {
	for i, c := range l.children {
		if c == child {
			if l.onDetach != nil {
				l.onDetach(child)
			}
			l.children = append(l.children[:i], l.children[i+1:]...)
			delete(l.offsets, child)
			child.SetParent(nil)
			l.MarkNeedsLayout()
			return true
		}
	}
	return false
}

// VisitChildren calls visitor for each child in layout order.
func (l *Linear) VisitChildren(visitor func(RenderObject)) {
	for _, child := range l.children {
		visitor(child)
	}
}

// ChildOffset returns where the last layout placed child.
func (l *Linear) ChildOffset(child RenderObject) Offset {
	return l.offsets[child]
}

// ClipsChildren reports that children are clipped to the container.
func (l *Linear) ClipsChildren() bool {
	return true
}

// MeasureChildren runs a synchronous layout pass with the last constraints so
// callers can read fresh child sizes. Before the first layout there are no
// constraints to measure against and it does nothing.
func (l *Linear) MeasureChildren() {
	if !l.HasLayout() {
		return
	}
	l.Relayout()
}

// PerformLayout measures fixed children first, then shares leftover space
// among weighted children, then positions everything.
func (l *Linear) PerformLayout() {
	c := l.Constraints()
	axis := l.orientation
	cross := axis.Cross()
	inner := Constraints{
		MaxWidth:  innerMax(l.params.Width, c.MaxWidth),
		MaxHeight: innerMax(l.params.Height, c.MaxHeight),
	}
	mainMax := inner.Max(axis)

	used := 0
	totalWeight := 0.0
	for _, child := range l.children {
		if !child.Visible() {
			continue
		}
		if w := child.Params().Weight; w > 0 && mainMax != Unbounded {
			totalWeight += w
			continue
		}
		child.Layout(inner.WithMax(axis, max(mainMax-used, 0)))
		used += child.Size().Along(axis)
	}

	if totalWeight > 0 {
		free := max(mainMax-used, 0)
		remaining := free
		remainingWeight := totalWeight
		for _, child := range l.children {
			w := child.Params().Weight
			if !child.Visible() || w <= 0 {
				continue
			}
			share := int(math.Round(float64(remaining) * w / remainingWeight))
			remaining -= share
			remainingWeight -= w
			child.Layout(inner.WithMax(axis, share))
			used += child.Size().Along(axis)
		}
	}

	pos := 0
	crossExtent := 0
	for _, child := range l.children {
		if !child.Visible() {
			continue
		}
		l.offsets[child] = Offset{}.With(axis, float64(pos))
		s := child.Size()
		pos += s.Along(axis)
		crossExtent = max(crossExtent, s.Along(cross))
	}

	content := Size{}.With(axis, pos).With(cross, crossExtent)
	l.SetSize(c.Constrain(Size{
		Width:  resolve(l.params.Width, content.Width, c.MaxWidth),
		Height: resolve(l.params.Height, content.Height, c.MaxHeight),
	}))
}
