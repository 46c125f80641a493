package raster

import "context"

// pointFunc maps one pixel's own channels to new values. Point filters have
// no neighbor dependency, so workers on disjoint regions never interact.
type pointFunc func(r, g, b uint8) (uint8, uint8, uint8)

// grayscalePoint converts to Rec. 709 luma and writes it to all three
// channels.
func grayscalePoint(r, g, b uint8) (uint8, uint8, uint8) {
	lum := clampFloatToUint8(0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b))
	return lum, lum, lum
}

func invertPoint(r, g, b uint8) (uint8, uint8, uint8) {
	return 255 - r, 255 - g, 255 - b
}

// pointRegion applies fn over reg. The cancellation signal is observed
// between rows; a canceled pass stops where it is and reports the context
// error.
func pointRegion(ctx context.Context, px Accessor, reg Region, fn pointFunc) error {
	for y := reg.Y0; y < reg.Y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := reg.X0; x < reg.X1; x++ {
			r, g, b := px.RGB(x, y)
			r, g, b = fn(r, g, b)
			px.SetRGB(x, y, r, g, b)
		}
	}
	return nil
}
