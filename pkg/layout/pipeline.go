package layout

// maxLayoutPasses bounds FlushLayout when layout callbacks keep invalidating the tree.
const maxLayoutPasses = 8

// PipelineOwner tracks roots that need layout.
//
// MarkNeedsLayout walks up from a changed node, marking every ancestor, and
// schedules the root here. FlushLayout then lays the root out again; only
// marked subtrees (or subtrees whose constraints changed) run PerformLayout.
type PipelineOwner struct {
	dirty    []RenderObject
	dirtySet map[RenderObject]bool
	passes   int
}

// ScheduleLayout marks a root as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtySet == nil {
		p.dirtySet = make(map[RenderObject]bool)
	}
	if p.dirtySet[object] {
		return
	}
	p.dirtySet[object] = true
	p.dirty = append(p.dirty, object)
}

// NeedsLayout reports if any root needs layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return len(p.dirty) > 0
}

// Passes returns how many layout passes the last FlushLayout ran.
func (p *PipelineOwner) Passes() int {
	return p.passes
}

// FlushLayout lays out root until the tree stops invalidating itself.
//
// A measurement hook may legitimately change state during layout (an
// expander hiding itself once it reaches zero size); the follow-up pass
// lets the parent react. The loop is capped to keep a misbehaving hook from
// spinning forever.
func (p *PipelineOwner) FlushLayout(root RenderObject, constraints Constraints) {
	p.passes = 0
	if root == nil {
		return
	}
	root.SetOwner(p)
	for p.passes == 0 || (p.NeedsLayout() && p.passes < maxLayoutPasses) {
		p.dirty = nil
		p.dirtySet = nil
		root.Layout(constraints)
		p.passes++
	}
}
