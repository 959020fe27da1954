package pixel

import "image"

// Buffer is a square grid of pixels stored row by row.
type Buffer struct {
	size   int
	pixels []Pixel
}

func NewBuffer(size int) *Buffer {
	b := &Buffer{}
	b.Resize(size)
	return b
}

// Resize reallocates the buffer for a new side length. Every pixel is black
// afterwards, even when the size is unchanged.
func (b *Buffer) Resize(size int) {
	size = max(size, 0)
	b.size = size
	b.pixels = make([]Pixel, size*size)
}

func (b *Buffer) Size() int {
	return b.size
}

func (b *Buffer) At(x, y int) Pixel {
	return b.pixels[x+y*b.size]
}

func (b *Buffer) Set(x, y int, p Pixel) {
	b.pixels[x+y*b.size] = p
}

// Pixels exposes the backing row-major slice.
func (b *Buffer) Pixels() []Pixel {
	return b.pixels
}

// Clone returns an independent copy.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{size: b.size, pixels: make([]Pixel, len(b.pixels))}
	copy(c.pixels, b.pixels)
	return c
}

func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.size, b.size))
	for i, p := range b.pixels {
		img.SetRGBA(i%b.size, i/b.size, p.RGBA())
	}
	return img
}
