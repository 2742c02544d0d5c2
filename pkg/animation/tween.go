package animation

import "math"

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of a [Run] to any value range or type. Use the
// helper constructors ([TweenFloat64], [TweenInt]) for common types, or create
// custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the run's current value.
// It is meant for runs that go from 0 to 1.
func (tw *Tween[T]) Transform(run *Run) T {
	return tw.Evaluate(run.Value())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpInt linearly interpolates between two integer dimensions, rounding
// half away from zero. t == 1 always yields b exactly.
func LerpInt(a, b int, t float64) int {
	if t >= 1 {
		return b
	}
	return a + int(math.Round(float64(b-a)*t))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenInt creates a tween for integer sizes.
func TweenInt(begin, end int) *Tween[int] {
	return &Tween[int]{
		Begin: begin,
		End:   end,
		Lerp:  LerpInt,
	}
}
