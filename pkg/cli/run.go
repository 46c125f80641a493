package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/parimg/parimg/pkg/imgio"
	"github.com/parimg/parimg/pkg/raster"
	"github.com/parimg/parimg/pkg/stats"
)

// processOne runs the configured filter over a single file and returns a
// one-line status for the progress output. Failures are reported, not fatal:
// one bad file must not abort a batch.
func processOne(cfg Config, logger *stats.CSVLogger, path string) string {
	img, _, err := imgio.Open(path)
	if err != nil {
		return fmt.Sprintf("%s: %v", path, err)
	}

	parallel := cfg.Tasks > 0
	if parallel && cfg.Tasks > runtime.NumCPU() {
		log.Printf("advisory: %d tasks exceed the %d available CPUs; proceeding anyway", cfg.Tasks, runtime.NumCPU())
	}

	if cfg.Compare {
		return compareOne(cfg, logger, path, img)
	}

	out, elapsed, err := timedApply(cfg, img, parallel)
	record(logger, cfg, parallel, elapsed, describe(err))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Sprintf("%s: canceled after %v; partial result discarded", path, elapsed.Round(time.Millisecond))
		}
		return fmt.Sprintf("%s: %v", path, err)
	}

	dst := outputPath(cfg, path)
	if err := imgio.Save(out, dst); err != nil {
		return fmt.Sprintf("%s: %v", path, err)
	}
	return fmt.Sprintf("%s -> %s (%v)", path, dst, elapsed.Round(time.Millisecond))
}

// compareOne times the sequential pass and the parallel pass over the same
// input and logs both, annotating the parallel record with the speedup. The
// parallel result is the one saved.
func compareOne(cfg Config, logger *stats.CSVLogger, path string, img *raster.Buffer) string {
	_, seqElapsed, err := timedApply(cfg, img, false)
	if err != nil {
		return fmt.Sprintf("%s: sequential pass failed: %v", path, err)
	}
	record(logger, cfg, false, seqElapsed, "compare baseline")

	out, parElapsed, err := timedApply(cfg, img, true)
	if err != nil {
		record(logger, cfg, true, parElapsed, describe(err))
		return fmt.Sprintf("%s: parallel pass failed: %v", path, err)
	}
	speedup := float64(seqElapsed) / float64(parElapsed)
	record(logger, cfg, true, parElapsed, fmt.Sprintf("%.2fx vs sequential", speedup))

	dst := outputPath(cfg, path)
	if err := imgio.Save(out, dst); err != nil {
		return fmt.Sprintf("%s: %v", path, err)
	}
	return fmt.Sprintf("%s -> %s (seq %v, par %v, %.2fx)", path, dst,
		seqElapsed.Round(time.Millisecond), parElapsed.Round(time.Millisecond), speedup)
}

// timedApply wraps one engine call with the caller-owned timeout and a
// wall-clock measurement. The engine itself never starts timers.
func timedApply(cfg Config, img *raster.Buffer, parallel bool) (*raster.Buffer, time.Duration, error) {
	ctx := context.Background()
	if parallel && cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	start := time.Now()
	out, err := apply(ctx, cfg, img, parallel)
	return out, time.Since(start), err
}

func apply(ctx context.Context, cfg Config, img *raster.Buffer, parallel bool) (*raster.Buffer, error) {
	opts := []raster.Option{raster.WithAccess(cfg.Access)}
	switch cfg.Filter {
	case "grayscale":
		if parallel {
			return raster.GrayscaleParallel(ctx, img, cfg.Tasks, opts...)
		}
		return raster.Grayscale(img, opts...)
	case "invert":
		if parallel {
			return raster.InvertParallel(ctx, img, cfg.Tasks, opts...)
		}
		return raster.Invert(img, opts...)
	case "blur":
		if parallel {
			return raster.BlurParallel(ctx, img, cfg.Kernel, cfg.Tasks, opts...)
		}
		return raster.Blur(img, cfg.Kernel, opts...)
	case "median":
		if parallel {
			return raster.MedianParallel(ctx, img, cfg.Kernel, cfg.Tasks, opts...)
		}
		return raster.Median(img, cfg.Kernel, opts...)
	case "contrast":
		return raster.Contrast(img, cfg.Contrast, opts...)
	default:
		return nil, fmt.Errorf("unknown filter: %s", cfg.Filter)
	}
}

func record(logger *stats.CSVLogger, cfg Config, parallel bool, elapsed time.Duration, desc string) {
	if logger == nil {
		return
	}
	tasks := 1
	if parallel {
		tasks = cfg.Tasks
	}
	rec := stats.Record{
		Process:     cfg.Filter,
		Parallel:    parallel,
		Tasks:       tasks,
		Kernel:      cfg.Kernel,
		Elapsed:     elapsed,
		Description: desc,
	}
	if err := logger.Append(rec); err != nil {
		log.Printf("failed to log statistics: %v", err)
	}
}

func describe(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "canceled before completion"
	default:
		return err.Error()
	}
}

// outputPath names results the way the inputs were named, prefixed with the
// filter (and kernel size when one applies), e.g. blur_5_photo.png.
func outputPath(cfg Config, in string) string {
	dir := cfg.OutDir
	if dir == "" {
		dir = filepath.Dir(in)
	}
	prefix := cfg.Filter
	if cfg.Kernel > 0 {
		prefix += "_" + strconv.Itoa(cfg.Kernel)
	}
	return filepath.Join(dir, prefix+"_"+filepath.Base(in))
}
