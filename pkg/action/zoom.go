package action

import (
	"math"

	"github.com/willbeason/zoom-fractal/pkg/view"
)

type ZoomMethod int

const (
	// ZoomFactor multiplies the depth by a fixed ratio every step.
	ZoomFactor ZoomMethod = iota
	// ZoomTarget reaches an absolute depth on the final step, zooming by the
	// same ratio every step.
	ZoomTarget
)

// Zoom changes the depth of the view.
type Zoom struct {
	budget

	method ZoomMethod
	value  float64
}

// NewZoomFactor multiplies the depth by factor, steps times.
func NewZoomFactor(factor float64, steps int) *Zoom {
	return &Zoom{budget: budget{steps: steps}, method: ZoomFactor, value: factor}
}

// NewZoomTarget moves the depth to target over steps frames.
func NewZoomTarget(target float64, steps int) *Zoom {
	return &Zoom{budget: budget{steps: steps}, method: ZoomTarget, value: target}
}

func (z *Zoom) Next(s view.State) (view.State, bool) {
	remaining := z.take()
	if remaining == 0 {
		return s, false
	}

	switch z.method {
	case ZoomFactor:
		s.Depth *= z.value
	case ZoomTarget:
		// Splitting [depth, target] into n logarithmic pieces means multiplying by
		// the n-th root of target/depth. Only the first piece is taken; the next
		// call recomputes the root from the new depth and n-1, so the last step
		// multiplies by target/depth itself.
		ratio := z.value / s.Depth
		s.Depth *= math.Pow(ratio, 1/float64(remaining))
	}

	return s, true
}

func (*Zoom) action() {}
