package layout

// Leaf is a box with fixed content size, sized by its params.
type Leaf struct {
	RenderBox
	// Label is an optional name hosts use when painting or debugging.
	Label   string
	content Size
}

// NewLeaf creates a leaf with the given content size and params.
func NewLeaf(label string, content Size, params Params) *Leaf {
	l := &Leaf{Label: label, content: content}
	l.SetSelf(l)
	l.params = params
	return l
}

// Content returns the intrinsic content size.
func (l *Leaf) Content() Size {
	return l.content
}

// SetContent changes the intrinsic content size and requests a relayout.
func (l *Leaf) SetContent(size Size) {
	if l.content == size {
		return
	}
	l.content = size
	l.MarkNeedsLayout()
}

// PerformLayout sizes the leaf from its params, falling back to content.
func (l *Leaf) PerformLayout() {
	c := l.Constraints()
	l.SetSize(c.Constrain(Size{
		Width:  resolve(l.params.Width, l.content.Width, c.MaxWidth),
		Height: resolve(l.params.Height, l.content.Height, c.MaxHeight),
	}))
}
