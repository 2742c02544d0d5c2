// Package animation provides the time-driven interpolation used by
// expandable containers.
//
// # Core Components
//
//   - [Driver] and [Run]: start a single eased interpolation from one value to
//     another and deliver start, update, end and cancel callbacks.
//
//   - [Scheduler] and [Ticker]: the frame clock. The host steps the scheduler
//     once per frame; tickers receive the elapsed time since they started.
//
//   - [Curve]: easing functions that transform linear progress into
//     natural-feeling motion. Use [CubicBezier] for custom curves.
//
//   - [Tween]: maps the 0-1 progress of a run onto another range or type.
//
// # Basic Usage
//
//	scheduler := animation.NewScheduler(nil)
//	driver := animation.NewDriver(scheduler)
//	run := driver.Run(0, 1, 300*time.Millisecond, animation.FastOutSlowIn, animation.Callbacks{
//	    OnUpdate: func(value, fraction float64) { box.SetExpansion(value) },
//	})
//	// each frame
//	scheduler.Step()
//	// to interrupt
//	run.Cancel()
package animation

import "math"

// Curve maps linear progress t in [0, 1] to eased progress.
// Curves are immutable values; share them freely between components.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// FastOutSlowIn accelerates quickly and spends most of its time decelerating.
// It never overshoots. This is the default curve for expanders.
var FastOutSlowIn = CubicBezier(0.4, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// EaseInOutSine is point-symmetric around (0.5, 0.5).
func EaseInOutSine(t float64) float64 {
	t = clampUnit(t)
	return -(math.Cos(math.Pi*t) - 1) / 2
}

var namedCurves = map[string]Curve{
	"linear":           LinearCurve,
	"ease":             Ease,
	"ease-in":          EaseIn,
	"ease-out":         EaseOut,
	"ease-in-out":      EaseInOut,
	"ease-in-out-sine": EaseInOutSine,
	"fast-out-slow-in": FastOutSlowIn,
}

// CurveByName looks up one of the built-in curves by its configuration name.
func CurveByName(name string) (Curve, bool) {
	c, ok := namedCurves[name]
	return c, ok
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
