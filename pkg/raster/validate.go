package raster

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for buffers whose channel layout is not a
// packed 3- or 4-byte RGB(A) pixel.
var ErrUnsupportedFormat = errors.New("unsupported pixel format")

func validateImage(img *Buffer) error {
	if img == nil {
		return fmt.Errorf("source image is nil")
	}
	if img.Channels != 3 && img.Channels != 4 {
		return fmt.Errorf("%w: %d bytes per pixel", ErrUnsupportedFormat, img.Channels)
	}
	if len(img.Pix) != img.Width*img.Height*img.Channels {
		return fmt.Errorf("%w: buffer is %d bytes, want %d", ErrUnsupportedFormat,
			len(img.Pix), img.Width*img.Height*img.Channels)
	}
	return nil
}

func validateKernel(img *Buffer, kernelSize int) error {
	if kernelSize < 1 {
		return fmt.Errorf("kernel size must be at least 1, got %d", kernelSize)
	}
	if kernelSize%2 == 0 {
		return fmt.Errorf("kernel size must be odd, got %d", kernelSize)
	}
	if kernelSize > img.Width || kernelSize > img.Height {
		return fmt.Errorf("kernel size %d exceeds image dimensions %dx%d",
			kernelSize, img.Width, img.Height)
	}
	return nil
}

func validateTasks(tasks int) error {
	if tasks < 1 {
		return fmt.Errorf("task count must be at least 1, got %d", tasks)
	}
	return nil
}

func validateContrast(amount float64) error {
	if amount < 0 || amount > 1 {
		return fmt.Errorf("contrast must be within [0,1], got %g", amount)
	}
	return nil
}
