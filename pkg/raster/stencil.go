package raster

import (
	"context"
	"slices"
)

// Stencil passes are double-buffered: every window read comes from the frozen
// input snapshot and every result goes to the output buffer. No pixel is ever
// read after a worker has rewritten it, so output is independent of visit
// order and of how many workers share the pass.

// blurRegion writes the box mean of each kernelSize x kernelSize window in
// reg. Each channel is summed over the window and integer-divided by the
// window area.
func blurRegion(ctx context.Context, src, dst Accessor, kernelSize int, reg Region) error {
	radius := kernelSize / 2
	area := kernelSize * kernelSize
	for y := reg.Y0; y < reg.Y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := reg.X0; x < reg.X1; x++ {
			var rSum, gSum, bSum int
			for ky := y - radius; ky <= y+radius; ky++ {
				for kx := x - radius; kx <= x+radius; kx++ {
					r, g, b := src.RGB(kx, ky)
					rSum += int(r)
					gSum += int(g)
					bSum += int(b)
				}
			}
			dst.SetRGB(x, y, uint8(rSum/area), uint8(gSum/area), uint8(bSum/area))
		}
	}
	return nil
}

// medianRegion writes, for each window in reg, the median of the window's
// red channel to all three channels. The filter is luminance-only on
// purpose: green and blue distinctness is discarded.
func medianRegion(ctx context.Context, src, dst Accessor, kernelSize int, reg Region) error {
	radius := kernelSize / 2
	window := make([]uint8, kernelSize*kernelSize)
	for y := reg.Y0; y < reg.Y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := reg.X0; x < reg.X1; x++ {
			n := 0
			for ky := y - radius; ky <= y+radius; ky++ {
				for kx := x - radius; kx <= x+radius; kx++ {
					r, _, _ := src.RGB(kx, ky)
					window[n] = r
					n++
				}
			}
			slices.Sort(window)
			m := window[len(window)/2]
			dst.SetRGB(x, y, m, m, m)
		}
	}
	return nil
}
