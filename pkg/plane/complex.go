package plane

import "math"

// Complex is a point of the complex plane. It is also used as a vector, for
// example as the distance still to travel by a pan.
//
// Complex is comparable and is used directly as a map key.
type Complex struct {
	Real      float64
	Imaginary float64
}

// Zero is the origin of the plane.
var Zero = Complex{}

func New(real, imaginary float64) Complex {
	return Complex{Real: real, Imaginary: imaginary}
}

// FromComplex128 converts a builtin complex number.
func FromComplex128(z complex128) Complex {
	return Complex{Real: real(z), Imaginary: imag(z)}
}

func (c Complex) Complex128() complex128 {
	return complex(c.Real, c.Imaginary)
}

func (c Complex) Add(o Complex) Complex {
	return Complex{Real: c.Real + o.Real, Imaginary: c.Imaginary + o.Imaginary}
}

func (c Complex) Sub(o Complex) Complex {
	return Complex{Real: c.Real - o.Real, Imaginary: c.Imaginary - o.Imaginary}
}

func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Real:      c.Real*o.Real - c.Imaginary*o.Imaginary,
		Imaginary: c.Real*o.Imaginary + c.Imaginary*o.Real,
	}
}

// Square is c*c computed with one fewer multiplication.
func (c Complex) Square() Complex {
	return Complex{
		Real:      c.Real*c.Real - c.Imaginary*c.Imaginary,
		Imaginary: 2 * c.Real * c.Imaginary,
	}
}

// Scale divides both components by d.
func (c Complex) Scale(d float64) Complex {
	return Complex{Real: c.Real / d, Imaginary: c.Imaginary / d}
}

// Div divides c by o. A divisor on the real axis divides by its real part
// directly, which keeps repeated pans exact. Dividing by zero is not guarded:
// the result follows IEEE 754 and carries Inf or NaN.
func (c Complex) Div(o Complex) Complex {
	if o.Imaginary == 0 {
		return c.Scale(o.Real)
	}

	return c.Mul(o.Conjugate()).Scale(o.Norm())
}

func (c Complex) Conjugate() Complex {
	return Complex{Real: c.Real, Imaginary: -c.Imaginary}
}

// Norm is the squared magnitude.
func (c Complex) Norm() float64 {
	return c.Real*c.Real + c.Imaginary*c.Imaginary
}

func (c Complex) Abs() float64 {
	return math.Sqrt(c.Norm())
}
