package transforms

import "github.com/willbeason/zoom-fractal/pkg/plane"

// Julia2 is the quadratic Julia recurrence z -> z^2 + C.
type Julia2 struct {
	C plane.Complex
}

func (j Julia2) Next(z plane.Complex) plane.Complex {
	return z.Square().Add(j.C)
}
