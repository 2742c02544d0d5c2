package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/expandable/pkg/errors"
)

// Axis is the direction along which a container lays out or resizes.
type Axis int

const (
	// Horizontal lays out left to right (or right to left under RTL).
	Horizontal Axis = iota
	// Vertical lays out top to bottom.
	Vertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Valid reports whether a is one of the two recognized axes.
func (a Axis) Valid() bool {
	return a == Horizontal || a == Vertical
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ParseAxis converts "horizontal" or "vertical" (case-insensitive) to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: %q", errors.ErrInvalidOrientation, s)
}

// Direction is the reading direction used for horizontal placement.
type Direction int

const (
	// LTR is left-to-right.
	LTR Direction = iota
	// RTL is right-to-left.
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection converts "ltr" or "rtl" to a Direction. Empty means LTR.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	}
	return 0, fmt.Errorf("%w: %q", errors.ErrInvalidDirection, s)
}

// Size is an integer extent in layout units.
type Size struct {
	Width, Height int
}

// Along returns the extent on axis a.
func (s Size) Along(a Axis) int {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// With returns a copy of s with the extent on axis a replaced.
func (s Size) With(a Axis, v int) Size {
	if a == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Offset is a position or translation in layout units.
type Offset struct {
	X, Y float64
}

// Along returns the component on axis a.
func (o Offset) Along(a Axis) float64 {
	if a == Horizontal {
		return o.X
	}
	return o.Y
}

// With returns a copy of o with the component on axis a replaced.
func (o Offset) With(a Axis, v float64) Offset {
	if a == Horizontal {
		o.X = v
	} else {
		o.Y = v
	}
	return o
}

// Add returns o + other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Intersect returns the overlap of r and other. Empty overlaps have zero size.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.X, other.X)
	top := math.Max(r.Y, other.Y)
	right := math.Min(r.X+r.Width, other.X+other.Width)
	bottom := math.Min(r.Y+r.Height, other.Y+other.Height)
	if right <= left || bottom <= top {
		return Rect{X: left, Y: top}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Unbounded marks a constraint without a maximum.
const Unbounded = math.MaxInt32

// Constraints bound the size a box may take.
type Constraints struct {
	MaxWidth, MaxHeight int
}

// Loose returns constraints with the given maximum size.
func Loose(size Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// UnboundedConstraints returns constraints with no maximum on either axis.
func UnboundedConstraints() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// Max returns the maximum on axis a.
func (c Constraints) Max(a Axis) int {
	if a == Horizontal {
		return c.MaxWidth
	}
	return c.MaxHeight
}

// WithMax returns a copy of c with the maximum on axis a replaced.
func (c Constraints) WithMax(a Axis, v int) Constraints {
	if a == Horizontal {
		c.MaxWidth = v
	} else {
		c.MaxHeight = v
	}
	return c
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  clamp(size.Width, 0, c.MaxWidth),
		Height: clamp(size.Height, 0, c.MaxHeight),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dimension is an authored size: an exact non-negative value, WrapContent or
// MatchParent.
type Dimension int

const (
	// WrapContent sizes a box to its content.
	WrapContent Dimension = -1
	// MatchParent sizes a box to the parent's maximum.
	MatchParent Dimension = -2
)

// Params are the layout parameters a box was authored with.
type Params struct {
	Width  Dimension
	Height Dimension
	// Weight shares leftover main-axis space inside a Linear parent.
	Weight float64
	// Expandable marks the child as resized by an expanding parent.
	Expandable bool
}

// Dim returns the authored dimension on axis a.
func (p Params) Dim(a Axis) Dimension {
	if a == Horizontal {
		return p.Width
	}
	return p.Height
}

// WithDim returns a copy of p with the dimension on axis a replaced.
func (p Params) WithDim(a Axis, d Dimension) Params {
	if a == Horizontal {
		p.Width = d
	} else {
		p.Height = d
	}
	return p
}

// WrapParams returns params that wrap content on both axes.
func WrapParams() Params {
	return Params{Width: WrapContent, Height: WrapContent}
}

// resolve computes one axis of a box's size from its authored dimension.
func resolve(d Dimension, content, max int) int {
	switch {
	case d >= 0:
		return int(d)
	case d == MatchParent && max != Unbounded:
		return max
	default:
		return content
	}
}
