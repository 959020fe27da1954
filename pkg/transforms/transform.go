package transforms

import "github.com/willbeason/zoom-fractal/pkg/plane"

// A Transform iterates a passed point.
type Transform interface {
	Next(plane.Complex) plane.Complex
}

var (
	_ Transform = Julia2{}
	_ Transform = Linear{}
)
