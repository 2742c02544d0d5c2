package layout

// RenderObject is a node in the host layout tree.
type RenderObject interface {
	Layout(constraints Constraints)
	Size() Size
	Params() Params
	Visible() bool
	Translation() Offset
	Parent() RenderObject
	SetParent(parent RenderObject)
	SetOwner(owner *PipelineOwner)
	MarkNeedsLayout()
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child in layout order.
	VisitChildren(visitor func(RenderObject))
}

// ChildPositioner reports where a parent placed a child, before translation.
type ChildPositioner interface {
	ChildOffset(child RenderObject) Offset
}

// Clipper is implemented by containers that clip their children to their bounds.
type Clipper interface {
	ClipsChildren() bool
}

// RenderBox provides base behavior for render objects: size, authored params,
// visibility, translation and layout invalidation. Concrete boxes embed it,
// call SetSelf, and implement PerformLayout.
type RenderBox struct {
	self        RenderObject
	parent      RenderObject
	owner       *PipelineOwner
	size        Size
	params      Params
	visible     bool
	translation Offset
	needsLayout bool
	constraints Constraints
	laidOut     bool
}

// SetSelf registers the concrete render object for scheduling.
func (r *RenderBox) SetSelf(self RenderObject) {
	r.self = self
	r.visible = true
	r.needsLayout = true
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBox) Self() RenderObject {
	return r.self
}

// Size returns the size from the last layout pass.
func (r *RenderBox) Size() Size {
	return r.size
}

// SetSize records the result of a layout pass.
func (r *RenderBox) SetSize(size Size) {
	r.size = size
}

// Params returns the current layout parameters.
func (r *RenderBox) Params() Params {
	return r.params
}

// SetParams replaces the layout parameters and requests a relayout.
func (r *RenderBox) SetParams(p Params) {
	if r.params == p {
		return
	}
	r.params = p
	r.MarkNeedsLayout()
}

// Visible reports whether the box takes part in layout and painting.
func (r *RenderBox) Visible() bool {
	return r.visible
}

// SetVisible shows or hides the box. Hidden boxes occupy no space in their
// parent and report a zero size until they are laid out again.
func (r *RenderBox) SetVisible(visible bool) {
	if r.visible == visible {
		return
	}
	r.visible = visible
	if !visible {
		r.size = Size{}
	}
	r.MarkNeedsLayout()
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
	}
}

// Translation returns the paint-time offset applied on top of the layout position.
func (r *RenderBox) Translation() Offset {
	return r.translation
}

// SetTranslation sets the paint-time offset along one axis. It never triggers layout.
func (r *RenderBox) SetTranslation(axis Axis, offset float64) {
	r.translation = r.translation.With(axis, offset)
}

// Parent returns the parent render object.
func (r *RenderBox) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object.
func (r *RenderBox) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	r.needsLayout = true
	r.laidOut = false
}

// SetOwner assigns the pipeline owner for scheduling layout.
func (r *RenderBox) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// Owner returns the pipeline owner, walking up to the root if this box has none.
func (r *RenderBox) Owner() *PipelineOwner {
	if r.owner != nil {
		return r.owner
	}
	if p, ok := r.parent.(interface{ Owner() *PipelineOwner }); ok {
		return p.Owner()
	}
	return nil
}

// NeedsLayout returns true if this box needs layout.
func (r *RenderBox) NeedsLayout() bool {
	return r.needsLayout
}

// Constraints returns the last received constraints.
func (r *RenderBox) Constraints() Constraints {
	return r.constraints
}

// MarkNeedsLayout marks this box and every ancestor as needing layout and
// schedules the root with the pipeline owner.
func (r *RenderBox) MarkNeedsLayout() {
	r.needsLayout = true
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	if owner := r.Owner(); owner != nil && r.self != nil {
		owner.ScheduleLayout(r.self)
	}
}

// Layout skips work when clean and the constraints are unchanged, and
// otherwise delegates to the concrete PerformLayout.
func (r *RenderBox) Layout(constraints Constraints) {
	if r.laidOut && !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false
	r.laidOut = true
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// HasLayout reports whether the box has been laid out at least once.
func (r *RenderBox) HasLayout() bool {
	return r.laidOut
}

// Relayout runs PerformLayout synchronously with the last constraints.
// Hosts use it to answer a measurement request in the middle of an update.
func (r *RenderBox) Relayout() {
	r.needsLayout = true
	r.Layout(r.constraints)
}

// setParentOnChild attaches child to parent and propagates the owner.
func setParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	child.SetParent(parent)
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}
