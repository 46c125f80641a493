// Package cli orchestrates the filter engine for the command line: it opens
// images, wraps engine calls with timing and cancellation, saves results and
// logs run statistics. All side effects live here; the engine stays pure.
package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parimg/parimg/pkg/raster"
	"github.com/parimg/parimg/pkg/stats"
)

// Version is stamped at build time via -ldflags.
var Version = "0.1.0"

type ioMode string

const (
	ioSilent ioMode = "silent"
	ioBasic  ioMode = "basic"
	ioFancy  ioMode = "fancy"
)

// Config collects one invocation's settings, from flags and optional .env
// defaults (PARIMG_STATS, PARIMG_TASKS, PARIMG_IOMODE).
type Config struct {
	Input    string
	OutDir   string
	Filter   string
	Kernel   int
	Contrast float64
	Tasks    int // 0 runs the sequential path
	Compare  bool
	Timeout  time.Duration
	Access   raster.AccessMode
	Stats    string
	IOMode   ioMode
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: parimg [flags]   |   parimg update")
	fmt.Fprintln(os.Stderr, "\nFilters:")
	for _, c := range Commands {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n             %s\n", c.Name, c.Usage, c.Description)
	}
	fmt.Fprintln(os.Stderr, "\nFlags:")
	fs.PrintDefaults()
}

// Run parses args and executes the requested command.
func Run(args []string) error {
	if len(args) > 0 && args[0] == "update" {
		return CheckForUpdates()
	}

	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	paths, err := expandInput(cfg.Input)
	if err != nil {
		return err
	}

	var logger *stats.CSVLogger
	if cfg.Stats != "" {
		logger = stats.NewCSVLogger(cfg.Stats)
	}

	done := make(chan string, len(paths))
	go func() {
		for _, path := range paths {
			done <- processOne(cfg, logger, path)
		}
	}()

	switch cfg.IOMode {
	case ioSilent:
		for range paths {
			<-done
		}
	case ioBasic:
		for range paths {
			log.Println(<-done)
		}
	case ioFancy:
		if _, err := tea.NewProgram(newProgressModel(done, len(paths))).Run(); err != nil {
			return fmt.Errorf("progress UI failed: %w", err)
		}
	}
	return nil
}

func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("parimg", flag.ContinueOnError)
	input := fs.String("i", "", "input image path or glob (required)")
	outDir := fs.String("o", "", "output dir (default: alongside each input)")
	filter := fs.String("f", "", "filter to apply: grayscale, invert, blur, median, contrast")
	kernel := fs.Int("k", 0, "odd kernel size for blur/median")
	contrast := fs.Float64("c", 0, "contrast amount in [0,1]")
	tasks := fs.Int("tasks", envInt("PARIMG_TASKS", 0), "worker count; 0 runs the sequential path")
	compare := fs.Bool("compare", false, "run sequential and parallel back to back and report speedup")
	timeout := fs.Duration("timeout", 0, "cancel a parallel pass after this duration (0 = none)")
	access := fs.String("access", "bulk", "pixel accessor: bulk or scalar")
	statsPath := fs.String("stats", os.Getenv("PARIMG_STATS"), "append run statistics to this CSV file")
	iom := fs.String("iomode", envStr("PARIMG_IOMODE", "basic"), "output mode: silent, basic or fancy")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Input:    *input,
		OutDir:   *outDir,
		Filter:   *filter,
		Kernel:   *kernel,
		Contrast: *contrast,
		Tasks:    *tasks,
		Compare:  *compare,
		Timeout:  *timeout,
		Stats:    *statsPath,
	}

	if cfg.Input == "" || cfg.Filter == "" {
		usage(fs)
		return Config{}, fmt.Errorf("both -i and -f are required")
	}
	cmd, ok := lookupCommand(cfg.Filter)
	if !ok {
		return Config{}, fmt.Errorf("unknown filter: %s", cfg.Filter)
	}
	if cmd.NeedsKernel && cfg.Kernel == 0 {
		return Config{}, fmt.Errorf("%s requires -k", cmd.Name)
	}
	if !cmd.HasParallel && (cfg.Tasks > 0 || cfg.Compare) {
		return Config{}, fmt.Errorf("%s has no parallel variant", cmd.Name)
	}
	if cfg.Compare && cfg.Tasks < 1 {
		return Config{}, fmt.Errorf("-compare requires -tasks >= 1")
	}

	switch *access {
	case "bulk":
		cfg.Access = raster.BulkAccess
	case "scalar":
		cfg.Access = raster.ScalarAccess
	default:
		return Config{}, fmt.Errorf("access must be bulk or scalar, got %q", *access)
	}

	switch ioMode(*iom) {
	case ioSilent, ioBasic, ioFancy:
		cfg.IOMode = ioMode(*iom)
	default:
		return Config{}, fmt.Errorf("iomode must be silent, basic or fancy, got %q", *iom)
	}
	return cfg, nil
}

// expandInput resolves a literal path or a glob into the list of files to
// process.
func expandInput(input string) ([]string, error) {
	if _, err := os.Stat(input); err == nil {
		return []string{input}, nil
	}
	matches, err := filepath.Glob(input)
	if err != nil {
		return nil, fmt.Errorf("bad input pattern %q: %w", input, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no input images match %q", input)
	}
	return matches, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
