// Package raster applies per-pixel and neighborhood filters to packed RGB(A)
// byte rasters, sequentially or fanned out across worker goroutines on
// planned row partitions. The sequential entry points are the parallel
// algorithms run over a single whole-extent partition, not separate code.
// The package performs no I/O; timing, logging and persistence belong to the
// caller.
package raster

import "context"

type config struct {
	access AccessMode
}

// Option adjusts how a filter pass executes without changing its output.
type Option func(*config)

// WithAccess selects the pixel accessor implementation for the pass.
func WithAccess(mode AccessMode) Option {
	return func(c *config) {
		c.access = mode
	}
}

func buildConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Grayscale converts every pixel to its Rec. 709 luma. The input is left
// unmodified; a new buffer is returned.
func Grayscale(img *Buffer, opts ...Option) (*Buffer, error) {
	return GrayscaleParallel(context.Background(), img, 1, opts...)
}

// Invert replaces every channel v with 255-v. Applying it twice restores the
// input exactly.
func Invert(img *Buffer, opts ...Option) (*Buffer, error) {
	return InvertParallel(context.Background(), img, 1, opts...)
}

// Blur applies a box (mean) blur with the given odd kernel size. Pixels
// within kernelSize/2 of any edge keep their original values.
func Blur(img *Buffer, kernelSize int, opts ...Option) (*Buffer, error) {
	return BlurParallel(context.Background(), img, kernelSize, 1, opts...)
}

// Median applies a luminance median filter with the given odd kernel size.
// Border handling matches Blur.
func Median(img *Buffer, kernelSize int, opts ...Option) (*Buffer, error) {
	return MedianParallel(context.Background(), img, kernelSize, 1, opts...)
}

// GrayscaleParallel is Grayscale over tasks concurrent workers.
func GrayscaleParallel(ctx context.Context, img *Buffer, tasks int, opts ...Option) (*Buffer, error) {
	return pointParallel(ctx, img, tasks, grayscalePoint, opts)
}

// InvertParallel is Invert over tasks concurrent workers.
func InvertParallel(ctx context.Context, img *Buffer, tasks int, opts ...Option) (*Buffer, error) {
	return pointParallel(ctx, img, tasks, invertPoint, opts)
}

// BlurParallel is Blur over tasks concurrent workers.
func BlurParallel(ctx context.Context, img *Buffer, kernelSize, tasks int, opts ...Option) (*Buffer, error) {
	return stencilParallel(ctx, img, kernelSize, tasks, blurRegion, opts)
}

// MedianParallel is Median over tasks concurrent workers.
func MedianParallel(ctx context.Context, img *Buffer, kernelSize, tasks int, opts ...Option) (*Buffer, error) {
	return stencilParallel(ctx, img, kernelSize, tasks, medianRegion, opts)
}

func pointParallel(ctx context.Context, img *Buffer, tasks int, fn pointFunc, opts []Option) (*Buffer, error) {
	if err := validateImage(img); err != nil {
		return nil, err
	}
	if err := validateTasks(tasks); err != nil {
		return nil, err
	}
	cfg := buildConfig(opts)
	out := img.Clone()
	px := out.access(cfg.access)
	part := PlanPoint(img.Width, img.Height, tasks)
	err := runParallel(ctx, part, func(ctx context.Context, reg Region) error {
		return pointRegion(ctx, px, reg, fn)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type stencilFunc func(ctx context.Context, src, dst Accessor, kernelSize int, reg Region) error

func stencilParallel(ctx context.Context, img *Buffer, kernelSize, tasks int, fn stencilFunc, opts []Option) (*Buffer, error) {
	if err := validateImage(img); err != nil {
		return nil, err
	}
	if err := validateKernel(img, kernelSize); err != nil {
		return nil, err
	}
	if err := validateTasks(tasks); err != nil {
		return nil, err
	}
	cfg := buildConfig(opts)
	// The clone seeds the halo: border pixels no window fits around stay
	// byte-identical to the input.
	out := img.Clone()
	src := img.access(cfg.access)
	dst := out.access(cfg.access)
	part := PlanStencil(img.Width, img.Height, tasks, kernelSize)
	err := runParallel(ctx, part, func(ctx context.Context, reg Region) error {
		return fn(ctx, src, dst, kernelSize, reg)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
