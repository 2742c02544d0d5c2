package layout

// PaintVisitor receives each visible node with its absolute bounds and the
// clip rectangle inherited from clipping ancestors.
type PaintVisitor func(node RenderObject, bounds Rect, clip Rect)

// Walk visits root and its visible descendants in paint order. Positions
// include each node's translation; clipping containers narrow the clip of
// their subtree to their own bounds.
func Walk(root RenderObject, origin Offset, clip Rect, visit PaintVisitor) {
	if root == nil || !root.Visible() {
		return
	}
	pos := origin.Add(root.Translation())
	size := root.Size()
	bounds := Rect{X: pos.X, Y: pos.Y, Width: float64(size.Width), Height: float64(size.Height)}
	visit(root, bounds, clip)

	parent, ok := root.(ChildVisitor)
	if !ok {
		return
	}
	childClip := clip
	if c, ok := root.(Clipper); ok && c.ClipsChildren() {
		childClip = clip.Intersect(bounds)
	}
	positioner, _ := root.(ChildPositioner)
	parent.VisitChildren(func(child RenderObject) {
		childOrigin := pos
		if positioner != nil {
			childOrigin = pos.Add(positioner.ChildOffset(child))
		}
		Walk(child, childOrigin, childClip, visit)
	})
}
