package raster

// AccessMode selects how filter passes address pixels. The two modes are
// interchangeable and produce identical output; they differ only in cost.
type AccessMode int

const (
	// BulkAccess addresses the backing byte slice directly.
	BulkAccess AccessMode = iota
	// ScalarAccess routes every read and write through a boxed color value,
	// one pixel at a time.
	ScalarAccess
)

// Accessor reads and writes single pixels of one Buffer. Filters hold at most
// two of these per pass: a read side over the input snapshot and a write side
// over the output.
type Accessor interface {
	RGB(x, y int) (r, g, b uint8)
	SetRGB(x, y int, r, g, b uint8)
}

// access returns the accessor implementation for the requested mode.
func (p *Buffer) access(mode AccessMode) Accessor {
	if mode == ScalarAccess {
		return scalarAccessor{p}
	}
	return bulkAccessor{p}
}

type bulkAccessor struct {
	buf *Buffer
}

func (a bulkAccessor) RGB(x, y int) (uint8, uint8, uint8) {
	i := a.buf.PixOffset(x, y)
	return a.buf.Pix[i], a.buf.Pix[i+1], a.buf.Pix[i+2]
}

func (a bulkAccessor) SetRGB(x, y int, r, g, b uint8) {
	i := a.buf.PixOffset(x, y)
	a.buf.Pix[i] = r
	a.buf.Pix[i+1] = g
	a.buf.Pix[i+2] = b
}

// scalarAccessor round-trips every access through color.NRGBA. Slower than
// bulkAccessor but exercises the same conversion path external callers see.
type scalarAccessor struct {
	buf *Buffer
}

func (a scalarAccessor) RGB(x, y int) (uint8, uint8, uint8) {
	c := a.buf.NRGBAAt(x, y)
	return c.R, c.G, c.B
}

func (a scalarAccessor) SetRGB(x, y int, r, g, b uint8) {
	c := a.buf.NRGBAAt(x, y)
	c.R, c.G, c.B = r, g, b
	a.buf.SetNRGBA(x, y, c)
}
