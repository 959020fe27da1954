package function

import (
	"math"

	"github.com/willbeason/zoom-fractal/pkg/plane"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

// Gradient colors by horizontal position across the frame. Useful to check
// the pixel mapping and palette without any iteration.
type Gradient struct{}

func (Gradient) Value(coordinate plane.Complex, _ int, frame view.Frame, _ *Carried) Value {
	return Hue(clamp((coordinate.Real - frame.Origin.Real) / frame.Width))
}

func (Gradient) function() {}

// Quadratic colors by |re*im| relative to its largest value in the frame.
// re*im is bilinear, so the largest value is taken at a corner.
type Quadratic struct{}

func (Quadratic) Value(coordinate plane.Complex, _ int, frame view.Frame, _ *Carried) Value {
	left, bottom := frame.Origin.Real, frame.Origin.Imaginary
	right, top := left+frame.Width, bottom+frame.Height

	bound := max(
		math.Abs(left*bottom),
		math.Abs(left*top),
		math.Abs(right*bottom),
		math.Abs(right*top),
	)
	if bound == 0 {
		return Hue(0)
	}

	return Hue(clamp(math.Abs(coordinate.Real*coordinate.Imaginary) / bound))
}

func (Quadratic) function() {}

func clamp(h float64) float64 {
	return min(max(h, 0), 1)
}
