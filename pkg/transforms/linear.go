package transforms

import "github.com/willbeason/zoom-fractal/pkg/plane"

// Linear maps z to z*Multiply + Add.
type Linear struct {
	Multiply plane.Complex
	Add      plane.Complex
}

func (l Linear) Next(z plane.Complex) plane.Complex {
	return z.Mul(l.Multiply).Add(l.Add)
}
