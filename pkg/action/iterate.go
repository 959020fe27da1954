package action

import "github.com/willbeason/zoom-fractal/pkg/view"

// Iterate moves the iteration limit towards a target. Each step truncates
// toward zero, so the target may be missed by the accumulated remainder.
type Iterate struct {
	budget

	target int
}

func NewIterate(target, steps int) *Iterate {
	return &Iterate{budget: budget{steps: steps}, target: target}
}

func (it *Iterate) Next(s view.State) (view.State, bool) {
	remaining := it.take()
	if remaining == 0 {
		return s, false
	}

	s.Iterations = towards(s.Iterations, it.target, remaining)
	return s, true
}

func (*Iterate) action() {}
