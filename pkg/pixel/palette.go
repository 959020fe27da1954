package pixel

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// A Palette turns a hue in [0, 1] into a pixel.
type Palette interface {
	Pixel(hue float64) Pixel
}

// Wheel is the plain hue wheel of FromHue.
type Wheel struct{}

func (Wheel) Pixel(hue float64) Pixel {
	return FromHue(hue)
}

// Stop pins a color hue, in degrees, to a position in [0, 1].
type Stop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// Gradient blends hues between stops in HCL space, which keeps perceived
// lightness even across the range.
type Gradient struct {
	Stops     []Stop
	Chroma    float64
	Luminance float64
}

// NewGradient sorts stops by position.
func NewGradient(stops []Stop, chroma, luminance float64) Gradient {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })

	return Gradient{Stops: sorted, Chroma: chroma, Luminance: luminance}
}

func (g Gradient) Pixel(hue float64) Pixel {
	return FromColor(g.Color(min(max(hue, 0), 1)))
}

func (g Gradient) Color(t float64) colorful.Color {
	if len(g.Stops) == 0 {
		return colorful.Hcl(0, 0, g.Luminance)
	}
	if t <= g.Stops[0].Pos {
		return colorful.Hcl(g.Stops[0].Hue, g.Chroma, g.Luminance)
	}

	for i := 0; i < len(g.Stops)-1; i++ {
		s1 := g.Stops[i]
		s2 := g.Stops[i+1]
		if s1.Pos <= t && t <= s2.Pos {
			if s2.Pos == s1.Pos {
				return colorful.Hcl(s2.Hue, g.Chroma, g.Luminance)
			}
			h := (t-s1.Pos)/(s2.Pos-s1.Pos)*(s2.Hue-s1.Hue) + s1.Hue
			return colorful.Hcl(h, g.Chroma, g.Luminance)
		}
	}

	// Past the last stop.
	return colorful.Hcl(g.Stops[len(g.Stops)-1].Hue, g.Chroma, g.Luminance)
}

// Rainbow is a gradient once around the hue circle.
var Rainbow = NewGradient([]Stop{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquoise
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}, 1.0, 0.6)
