package pixel

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestFromHue(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		want Pixel
	}{
		{"red", 0, Pixel{255, 0, 0}},
		{"yellow", 1.0 / 6, Pixel{255, 255, 0}},
		{"green", 2.0 / 6, Pixel{0, 255, 0}},
		{"cyan", 3.0 / 6, Pixel{0, 255, 255}},
		{"blue", 4.0 / 6, Pixel{0, 0, 255}},
		{"magenta", 5.0 / 6, Pixel{255, 0, 255}},
		{"wrap", 1, Pixel{255, 0, 0}},
		{"orange", 1.0 / 12, Pixel{255, 127, 0}},
		{"below range", -0.5, Pixel{255, 0, 0}},
		{"above range", 3, Pixel{255, 0, 0}},
	}

	for _, tc := range tests {
		if got := FromHue(tc.hue); got != tc.want {
			t.Errorf("%s: Expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestColorfulRoundTrip(t *testing.T) {
	p := Pixel{R: 12, G: 200, B: 255}
	if got := FromColor(p.Colorful()); got != p {
		t.Errorf("Expected %v, got %v", p, got)
	}

	// Out of gamut colors are clamped rather than wrapped.
	if got := FromColor(colorful.Color{R: 1.5, G: -0.2, B: 0.5}); got.R != 255 || got.G != 0 {
		t.Errorf("Expected clamped channels, got %v", got)
	}
}

func TestGradient(t *testing.T) {
	g := NewGradient([]Stop{{Hue: 240, Pos: 1}, {Hue: 0, Pos: 0}}, 0.5, 0.5)

	if g.Stops[0].Pos != 0 {
		t.Fatalf("Expected stops sorted by position, got %+v", g.Stops)
	}

	want := colorful.Hcl(120, 0.5, 0.5)
	if got := g.Color(0.5); got.DistanceRgb(want) > 1e-9 {
		t.Errorf("Expected %v halfway, got %v", want, got)
	}

	if got, want := g.Pixel(2), g.Pixel(1); got != want {
		t.Errorf("Expected hue clamped to 1, got %v and %v", got, want)
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(4)
	if b.Size() != 4 || len(b.Pixels()) != 16 {
		t.Fatalf("Expected 4x4 buffer, got size %d with %d pixels", b.Size(), len(b.Pixels()))
	}

	b.Set(1, 2, Pixel{R: 9})
	if b.Pixels()[1+2*4] != (Pixel{R: 9}) {
		t.Error("Expected row-major storage")
	}

	c := b.Clone()
	b.Resize(8)
	if b.Size() != 8 || len(b.Pixels()) != 64 {
		t.Errorf("Expected 8x8 buffer, got size %d with %d pixels", b.Size(), len(b.Pixels()))
	}
	for i, p := range b.Pixels() {
		if p != Black {
			t.Fatalf("Expected black after resize, got %v at %d", p, i)
		}
	}

	if c.At(1, 2) != (Pixel{R: 9}) {
		t.Error("Expected clone to be independent")
	}

	img := c.Image()
	if got := img.RGBAAt(1, 2); got.R != 9 || got.A != 0xff {
		t.Errorf("Expected opaque R=9, got %v", got)
	}
}
