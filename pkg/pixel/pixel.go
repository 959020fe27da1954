package pixel

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is an 8 bit RGB color.
type Pixel struct {
	R, G, B uint8
}

var Black = Pixel{}

// FromHue walks the hue wheel red, yellow, green, cyan, blue, magenta and back
// to red. Each sixth of [0, 1] ramps one channel up or down. Hues outside
// [0, 1] are clamped.
func FromHue(hue float64) Pixel {
	x := 6 * min(max(hue, 0), 1)

	switch {
	case x <= 1:
		return Pixel{R: 255, G: channel(x), B: 0}
	case x <= 2:
		return Pixel{R: channel(2 - x), G: 255, B: 0}
	case x <= 3:
		return Pixel{R: 0, G: 255, B: channel(x - 2)}
	case x <= 4:
		return Pixel{R: 0, G: channel(4 - x), B: 255}
	case x <= 5:
		return Pixel{R: channel(x - 4), G: 0, B: 255}
	default:
		return Pixel{R: 255, G: 0, B: channel(6 - x)}
	}
}

// channel truncates like a byte conversion of 255*v.
func channel(v float64) uint8 {
	return uint8(255 * v)
}

// FromColor converts a colorful color, clamping it into gamut first.
func FromColor(c colorful.Color) Pixel {
	r, g, b := c.Clamped().RGB255()
	return Pixel{R: r, G: g, B: b}
}

func (p Pixel) Colorful() colorful.Color {
	return colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
}

func (p Pixel) RGBA() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}
