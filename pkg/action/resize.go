package action

import "github.com/willbeason/zoom-fractal/pkg/view"

// Resize moves the image size towards a target, truncating like Iterate.
type Resize struct {
	budget

	target int
}

func NewResize(target, steps int) *Resize {
	return &Resize{budget: budget{steps: steps}, target: target}
}

func (r *Resize) Next(s view.State) (view.State, bool) {
	remaining := r.take()
	if remaining == 0 {
		return s, false
	}

	s.ImageSize = towards(s.ImageSize, r.target, remaining)
	return s, true
}

func (*Resize) action() {}
