package action

import (
	"fmt"

	"github.com/fogleman/ease"

	"github.com/willbeason/zoom-fractal/pkg/plane"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

type PanMethod int

const (
	// PanLinear covers an equal share of the remaining distance every step.
	PanLinear PanMethod = iota
	// PanLogarithmic is not implemented: the distance to cover may be zero or
	// change sign, so there is no logarithm to interpolate.
	PanLogarithmic
	// PanEased follows an easing curve from the center seen on the first step.
	PanEased
)

func (m PanMethod) String() string {
	switch m {
	case PanLinear:
		return "linear"
	case PanLogarithmic:
		return "logarithmic"
	case PanEased:
		return "eased"
	}
	return fmt.Sprintf("PanMethod(%d)", int(m))
}

// Easing maps progress in [0, 1] to the share of the distance covered. The
// functions of github.com/fogleman/ease are Easings.
type Easing func(t float64) float64

// Pan moves the center of the view to a target.
type Pan struct {
	budget

	method PanMethod
	target plane.Complex

	// Only used by PanEased.
	easing  Easing
	total   int
	step    int
	start   plane.Complex
	started bool
}

// NewPan moves the center to target over steps frames in a straight line.
func NewPan(target plane.Complex, steps int) *Pan {
	return &Pan{budget: budget{steps: steps}, method: PanLinear, target: target}
}

// NewPanMethod is NewPan with an explicit method. PanEased uses ease.InOutQuad;
// see NewPanEased to choose the curve.
func NewPanMethod(target plane.Complex, steps int, method PanMethod) (*Pan, error) {
	switch method {
	case PanLinear:
		return NewPan(target, steps), nil
	case PanEased:
		return NewPanEased(target, steps, ease.InOutQuad), nil
	}

	return nil, fmt.Errorf("pan %s: %w", method, ErrUnsupportedMethod)
}

// NewPanEased moves the center to target with the position along the way given
// by easing, which must map 0 to 0 and 1 to 1.
func NewPanEased(target plane.Complex, steps int, easing Easing) *Pan {
	return &Pan{
		budget: budget{steps: steps},
		method: PanEased,
		target: target,
		easing: easing,
		total:  steps,
	}
}

func (p *Pan) Next(s view.State) (view.State, bool) {
	remaining := p.take()
	if remaining == 0 {
		return s, false
	}

	switch p.method {
	case PanLinear:
		// Dividing by a complex with no imaginary part divides both parts by
		// remaining, so the final step adds exactly target - center.
		s.Center = s.Center.Add(p.target.Sub(s.Center).Div(plane.New(float64(remaining), 0)))
	case PanEased:
		if !p.started {
			p.start = s.Center
			p.started = true
		}
		p.step++
		if remaining == 1 {
			s.Center = p.target
			break
		}
		t := p.easing(float64(p.step) / float64(p.total))
		s.Center = p.start.Add(p.target.Sub(p.start).Mul(plane.New(t, 0)))
	default:
		panic(fmt.Sprintf("pan %s: %v", p.method, ErrUnsupportedMethod))
	}

	return s, true
}

func (*Pan) action() {}
