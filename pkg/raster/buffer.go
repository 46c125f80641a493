package raster

import (
	"image"
	"image/color"
)

// Buffer is a packed, row-major RGB(A) byte raster. A pixel at (x,y) occupies
// Channels consecutive bytes starting at (y*Width+x)*Channels; bytes 0,1,2 are
// R,G,B and byte 3, when present, is alpha. Filters never read or write alpha.
// Width, Height and Channels are fixed for the lifetime of the buffer.
type Buffer struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// NewBuffer allocates a zeroed buffer. channels must be 3 or 4; that is
// enforced by the filter entry points, not here.
func NewBuffer(width, height, channels int) *Buffer {
	return &Buffer{
		Pix:      make([]uint8, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// PixOffset returns the index of the first byte of the pixel at (x,y).
// Out-of-range coordinates are a programming error; the resulting slice
// access panics rather than corrupting a neighbor.
func (p *Buffer) PixOffset(x, y int) int {
	return (y*p.Width + x) * p.Channels
}

// Clone returns a deep copy sharing no backing storage with p.
func (p *Buffer) Clone() *Buffer {
	out := &Buffer{
		Pix:      make([]uint8, len(p.Pix)),
		Width:    p.Width,
		Height:   p.Height,
		Channels: p.Channels,
	}
	copy(out.Pix, p.Pix)
	return out
}

// RGB reads the color channels of the pixel at (x,y).
func (p *Buffer) RGB(x, y int) (r, g, b uint8) {
	i := p.PixOffset(x, y)
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// SetRGB writes the color channels of the pixel at (x,y), leaving alpha alone.
func (p *Buffer) SetRGB(x, y int, r, g, b uint8) {
	i := p.PixOffset(x, y)
	p.Pix[i] = r
	p.Pix[i+1] = g
	p.Pix[i+2] = b
}

// NRGBAAt returns the pixel at (x,y) as a non-premultiplied color value.
// Three-channel buffers report full alpha.
func (p *Buffer) NRGBAAt(x, y int) color.NRGBA {
	i := p.PixOffset(x, y)
	c := color.NRGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 0xff}
	if p.Channels == 4 {
		c.A = p.Pix[i+3]
	}
	return c
}

// SetNRGBA stores a non-premultiplied color value at (x,y). The alpha byte is
// only written on four-channel buffers.
func (p *Buffer) SetNRGBA(x, y int, c color.NRGBA) {
	i := p.PixOffset(x, y)
	p.Pix[i] = c.R
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.B
	if p.Channels == 4 {
		p.Pix[i+3] = c.A
	}
}

// FromImage converts any image.Image into a four-channel Buffer
// (non-premultiplied, 8 bits per channel).
func FromImage(src image.Image) *Buffer {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := NewBuffer(b.Dx(), b.Dy(), 4)
	if n, ok := src.(*image.NRGBA); ok && n.Stride == 4*b.Dx() {
		copy(out.Pix, n.Pix[n.PixOffset(b.Min.X, b.Min.Y):])
		return out
	}
	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.Pix[idx+0] = c.R
			out.Pix[idx+1] = c.G
			out.Pix[idx+2] = c.B
			out.Pix[idx+3] = c.A
			idx += 4
		}
	}
	return out
}

// Image converts the buffer back to a stdlib NRGBA image for encoding.
func (p *Buffer) Image() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	if p.Channels == 4 {
		copy(out.Pix, p.Pix)
		return out
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			out.SetNRGBA(x, y, p.NRGBAAt(x, y))
		}
	}
	return out
}

func clampFloatToUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
