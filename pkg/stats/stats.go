// Package stats persists one record per filter invocation so runs can be
// compared across worker counts and kernel sizes. The engine itself never
// writes these; the orchestration layer measures elapsed time around each
// engine call and hands the result here.
package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Record describes one filter invocation.
type Record struct {
	Process     string
	Parallel    bool
	Tasks       int
	Kernel      int // 0 for filters without a kernel, logged as "-"
	Elapsed     time.Duration
	Description string
}

var header = []string{"process", "parallel", "tasks", "kernel", "elapsed_ms", "description"}

func (r Record) row() []string {
	parallel := "no"
	if r.Parallel {
		parallel = "yes"
	}
	kernel := "-"
	if r.Kernel > 0 {
		kernel = strconv.Itoa(r.Kernel)
	}
	return []string{
		r.Process,
		parallel,
		strconv.Itoa(r.Tasks),
		kernel,
		strconv.FormatFloat(float64(r.Elapsed)/float64(time.Millisecond), 'f', 3, 64),
		r.Description,
	}
}

// CSVLogger appends records to a CSV file, writing the header when the file
// is new or empty.
type CSVLogger struct {
	path string
}

// NewCSVLogger returns a logger that appends to path. The file is opened per
// append so a batch of runs interleaves cleanly with other writers.
func NewCSVLogger(path string) *CSVLogger {
	return &CSVLogger{path: path}
}

// Append writes one record.
func (l *CSVLogger) Append(rec Record) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open stats file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat stats file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write stats header: %w", err)
		}
	}
	if err := w.Write(rec.row()); err != nil {
		return fmt.Errorf("failed to write stats record: %w", err)
	}
	w.Flush()
	return w.Error()
}
