package transforms

import "github.com/willbeason/zoom-fractal/pkg/plane"

// Mandelbrot is the recurrence z -> z^2 + c + C where c is the point being
// evaluated. C offsets every point and is zero for the classic set.
type Mandelbrot struct {
	C plane.Complex
}

func (m Mandelbrot) Next(z, c plane.Complex) plane.Complex {
	return z.Square().Add(c).Add(m.C)
}

// At fixes the evaluated point, turning the recurrence into a Transform.
func (m Mandelbrot) At(c plane.Complex) Julia2 {
	return Julia2{C: c.Add(m.C)}
}
