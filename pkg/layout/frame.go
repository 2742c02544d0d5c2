package layout

// MeasureHook adjusts a container's naturally measured size before it is
// committed. Expanders install one to report an animated size.
type MeasureHook interface {
	OnMeasure(natural Size) Size
}

// Frame stacks its visible children on top of each other at the origin and
// clips them to its own bounds. Its natural size wraps the largest child.
type Frame struct {
	RenderBox
	Label     string
	children  []RenderObject
	hook      MeasureHook
	direction Direction
}

// NewFrame creates an empty frame.
func NewFrame(label string, params Params) *Frame {
	f := &Frame{Label: label}
	f.SetSelf(f)
	f.params = params
	return f
}

// SetMeasureHook installs the hook consulted after every natural measurement.
func (f *Frame) SetMeasureHook(hook MeasureHook) {
	f.hook = hook
	f.MarkNeedsLayout()
}

// LayoutDirection returns the reading direction.
func (f *Frame) LayoutDirection() Direction {
	return f.direction
}

// SetLayoutDirection changes the reading direction.
func (f *Frame) SetLayoutDirection(d Direction) {
	if f.direction == d {
		return
	}
	f.direction = d
	f.MarkNeedsLayout()
}

// AddChild appends a child.
func (f *Frame) AddChild(child RenderObject) {
	f.children = append(f.children, child)
	setParentOnChild(child, f)
}

// RemoveChild detaches a child. It reports whether the child was present.
func (f *Frame) RemoveChild(child RenderObject) bool {
	for i, c := range f.children {
		if c == child {
			f.children = append(f.children[:i], f.children[i+1:]...)
			child.SetParent(nil)
			f.MarkNeedsLayout()
			return true
		}
	}
	return false
}

// VisitChildren calls visitor for each child in insertion order.
func (f *Frame) VisitChildren(visitor func(RenderObject)) {
	for _, child := range f.children {
		visitor(child)
	}
}

// ChildOffset places every child at the origin.
func (f *Frame) ChildOffset(RenderObject) Offset {
	return Offset{}
}

// ClipsChildren reports that children are clipped to the frame.
func (f *Frame) ClipsChildren() bool {
	return true
}

// PerformLayout measures children, resolves the natural size, then lets the
// measure hook adjust it.
func (f *Frame) PerformLayout() {
	c := f.Constraints()
	inner := Constraints{
		MaxWidth:  innerMax(f.params.Width, c.MaxWidth),
		MaxHeight: innerMax(f.params.Height, c.MaxHeight),
	}
	var content Size
	for _, child := range f.children {
		if !child.Visible() {
			continue
		}
		child.Layout(inner)
		s := child.Size()
		content.Width = max(content.Width, s.Width)
		content.Height = max(content.Height, s.Height)
	}
	natural := c.Constrain(Size{
		Width:  resolve(f.params.Width, content.Width, c.MaxWidth),
		Height: resolve(f.params.Height, content.Height, c.MaxHeight),
	})
	if f.hook != nil {
		natural = f.hook.OnMeasure(natural)
	}
	f.SetSize(natural)
}

// innerMax is the maximum a container hands to its children on one axis.
func innerMax(d Dimension, max int) int {
	if d >= 0 {
		return min(int(d), max)
	}
	return max
}
