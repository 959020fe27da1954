package function

import (
	"github.com/willbeason/zoom-fractal/pkg/plane"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

// Carried is the state of an escape-time evaluation that did not decide a
// color. Passing it back on a later frame lets evaluation continue from
// Iteration instead of starting over.
type Carried struct {
	// Z is the orbit value after Iteration steps.
	Z plane.Complex

	// Iteration is the number of recurrence steps already applied.
	Iteration int

	// Escaped is set when the orbit left the escape radius.
	Escaped bool
}

// Value is the outcome of evaluating one coordinate. When Resolved is set the
// pixel's color is Hue, in [0, 1]. Otherwise the pixel is left unresolved and
// Carried holds what to resume from.
type Value struct {
	Resolved bool
	Hue      float64
	Carried  Carried
}

func Hue(h float64) Value {
	return Value{Resolved: true, Hue: h}
}

func Unresolved(c Carried) Value {
	return Value{Carried: c}
}

// A Function evaluates a coordinate of the plane.
//
// limit is the escape-time cutoff and frame the visible region. last is the
// value carried from an earlier frame for the same coordinate, or nil. For a
// given coordinate and limit the result does not depend on last.
//
// The set of functions is closed: Mandelbrot, InverseMandelbrot, Julia,
// Gradient and Quadratic. Functions are safe for concurrent use.
type Function interface {
	Value(coordinate plane.Complex, limit int, frame view.Frame, last *Carried) Value

	function()
}

// EscapeRadius is the magnitude beyond which an orbit is known to diverge.
const EscapeRadius = 2.0
