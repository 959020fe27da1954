package view

import (
	"github.com/willbeason/zoom-fractal/pkg/plane"
	"github.com/willbeason/zoom-fractal/pkg/transforms"
)

// Defaults for a fresh run, matching a 512 pixel image of the whole set.
const (
	DefaultImageSize  = 512
	DefaultIterations = 200
	DefaultDepth      = 4.0
)

// State is everything that determines what a frame shows.
type State struct {
	// ImageSize is the side length of the square image in pixels.
	ImageSize int

	// Center is the plane coordinate at the middle of the image.
	Center plane.Complex

	// Iterations is the escape-time cutoff.
	Iterations int

	// Depth is the width and height of the visible square in plane units.
	Depth float64
}

func Default() State {
	return State{
		ImageSize:  DefaultImageSize,
		Center:     plane.Zero,
		Iterations: DefaultIterations,
		Depth:      DefaultDepth,
	}
}

// Frame is the rectangle of the plane a State shows. Origin is the corner with
// the smallest real and imaginary parts.
type Frame struct {
	Origin plane.Complex
	Width  float64
	Height float64
}

func (s State) Frame() Frame {
	return Frame{
		Origin: s.Center.Sub(plane.New(s.Depth, s.Depth).Scale(2)),
		Width:  s.Depth,
		Height: s.Depth,
	}
}

// Scale is the plane distance between neighbouring pixels.
func (s State) Scale() float64 {
	return s.Depth / float64(s.ImageSize)
}

// PixelMap maps a pixel position (x, -y) to its plane coordinate. Image rows
// grow downwards while the imaginary axis grows upwards, so callers negate y.
func (s State) PixelMap() transforms.Linear {
	half := s.Depth / 2
	return transforms.Linear{
		Multiply: plane.New(s.Scale(), 0),
		Add:      s.Center.Add(plane.New(-half, half)),
	}
}

// Axes returns the real part of every column and the imaginary part of every
// row. pixels holds the pixel indices 0..ImageSize-1 as floats.
func (s State) Axes(pixels []float64) (reals, imaginaries []float64) {
	m := s.PixelMap()

	reals = make([]float64, len(pixels))
	imaginaries = make([]float64, len(pixels))
	for i, p := range pixels {
		reals[i] = m.Next(plane.New(p, 0)).Real
		imaginaries[i] = m.Next(plane.New(0, -p)).Imaginary
	}

	return reals, imaginaries
}
