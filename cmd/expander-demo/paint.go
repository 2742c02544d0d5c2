package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/expandable/pkg/layout"
)

var leafStyles = []tcell.Style{
	tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
	tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite),
	tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite),
	tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorBlack),
}

var containerStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)

// paintTree draws root at row top, clipped to the area below it.
func paintTree(s tcell.Screen, root layout.RenderObject, top int) {
	w, h := s.Size()
	clip := layout.Rect{Y: float64(top), Width: float64(w), Height: float64(h - top)}
	leaves := 0
	layout.Walk(root, layout.Offset{Y: float64(top)}, clip, func(node layout.RenderObject, bounds, clip layout.Rect) {
		visible := bounds.Intersect(clip)
		if visible.IsEmpty() {
			return
		}
		if _, ok := node.(layout.ChildVisitor); ok {
			fill(s, visible, containerStyle)
			return
		}
		style := leafStyles[leaves%len(leafStyles)]
		leaves++
		fill(s, visible, style)
		text(s, bounds, visible, nodeLabel(node), style)
	})
}

// cells converts a rectangle to the cell span it covers.
func cells(r layout.Rect) (x0, y0, x1, y1 int) {
	return int(math.Floor(r.X)), int(math.Floor(r.Y)), int(math.Ceil(r.X + r.Width)), int(math.Ceil(r.Y + r.Height))
}

func fill(s tcell.Screen, r layout.Rect, style tcell.Style) {
	x0, y0, x1, y1 := cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// text writes label at the top-left of bounds. Only cells inside visible
// are drawn, so translated children scroll their text out of view.
func text(s tcell.Screen, bounds, visible layout.Rect, label string, style tcell.Style) {
	bx, by, _, _ := cells(bounds)
	vx0, vy0, vx1, vy1 := cells(visible)
	if by < vy0 || by >= vy1 {
		return
	}
	x := bx + 1
	for _, r := range label {
		if x >= vx0 && x < vx1 {
			s.SetContent(x, by, r, nil, style)
		}
		x++
	}
}

// statusLine writes a full-width line at row y.
func statusLine(s tcell.Screen, y int, line string, style tcell.Style) {
	w, _ := s.Size()
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func nodeLabel(node layout.RenderObject) string {
	switch n := node.(type) {
	case *layout.Leaf:
		return n.Label
	case interface{ Name() string }:
		return n.Name()
	}
	return ""
}
