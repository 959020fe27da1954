package function

import (
	"math"

	"github.com/willbeason/zoom-fractal/pkg/plane"
	"github.com/willbeason/zoom-fractal/pkg/transforms"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

// orbit runs the recurrence from z0, or from last when it can be resumed, and
// stops at the first step whose result leaves the escape radius or at limit.
func orbit(t transforms.Transform, z0 plane.Complex, limit int, last *Carried) Carried {
	c := Carried{Z: z0}
	if last != nil && last.Iteration <= limit {
		c = *last
	}

	for !c.Escaped && c.Iteration < limit {
		c.Z = t.Next(c.Z)
		c.Iteration++
		c.Escaped = c.Z.Abs() > EscapeRadius
	}

	return c
}

// escapeHue colors by the index of the escaping step.
func escapeHue(c Carried, limit int) Value {
	if !c.Escaped {
		return Unresolved(c)
	}

	return Hue(float64(c.Iteration-1) / float64(limit))
}

// Mandelbrot colors points of the plane outside the Mandelbrot set by how fast
// they escape. Points still bounded after limit steps are unresolved.
type Mandelbrot struct {
	transforms.Mandelbrot
}

func (m Mandelbrot) Value(coordinate plane.Complex, limit int, _ view.Frame, last *Carried) Value {
	return escapeHue(orbit(m.At(coordinate), plane.Zero, limit, last), limit)
}

func (Mandelbrot) function() {}

// InverseMandelbrot swaps the roles of Mandelbrot: escaping points are
// unresolved and points bounded after limit steps are colored by the
// imaginary part of their final orbit value.
type InverseMandelbrot struct {
	transforms.Mandelbrot
}

func (m InverseMandelbrot) Value(coordinate plane.Complex, limit int, _ view.Frame, last *Carried) Value {
	c := orbit(m.At(coordinate), plane.Zero, limit, last)
	if c.Escaped {
		return Unresolved(c)
	}

	return Hue(math.Abs(c.Z.Imaginary) / EscapeRadius)
}

func (InverseMandelbrot) function() {}

// Julia is Mandelbrot with the constant fixed and the coordinate as the
// starting point of the orbit.
type Julia struct {
	transforms.Julia2
}

func NewJulia(c plane.Complex) Julia {
	return Julia{Julia2: transforms.Julia2{C: c}}
}

func (j Julia) Value(coordinate plane.Complex, limit int, _ view.Frame, last *Carried) Value {
	return escapeHue(orbit(j.Julia2, coordinate, limit, last), limit)
}

func (Julia) function() {}
