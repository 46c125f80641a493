package raster

import "context"

// Contrast applies a linear contrast ramp around the mid level. amount is in
// [0,1]: 0 leaves the image unchanged, 1 doubles the distance of every
// channel from 127.5 (clamped). There is no parallel variant; the transform
// is a single cheap per-pixel ramp and is not neighborhood-based.
func Contrast(img *Buffer, amount float64, opts ...Option) (*Buffer, error) {
	if err := validateImage(img); err != nil {
		return nil, err
	}
	if err := validateContrast(amount); err != nil {
		return nil, err
	}
	cfg := buildConfig(opts)
	scale := 1 + amount
	out := img.Clone()
	px := out.access(cfg.access)
	reg := Region{X0: 0, X1: img.Width, Y0: 0, Y1: img.Height}
	err := pointRegion(context.Background(), px, reg, func(r, g, b uint8) (uint8, uint8, uint8) {
		return clampFloatToUint8(scale*(float64(r)-127.5) + 127.5),
			clampFloatToUint8(scale*(float64(g)-127.5) + 127.5),
			clampFloatToUint8(scale*(float64(b)-127.5) + 127.5)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
