// Command ising sweeps a 2-D Ising model over lattice sizes and temperatures
// with the Metropolis algorithm and writes magnetization and susceptibility
// estimates to a results table.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"ising/internal/progress"
	"ising/internal/results"
	"ising/internal/sweep"
)

type options struct {
	out     string
	config  string
	seed    int64
	workers int
	quiet   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.out, "out", "ising.txt", "results table to write")
	flag.StringVar(&opts.config, "config", "", "optional TOML file overriding the sweep grid and protocol")
	flag.Int64Var(&opts.seed, "seed", 0, "base random seed (0 uses the config seed, or the clock)")
	flag.IntVar(&opts.workers, "workers", 0, "concurrent simulations (0 uses the config value, or NumCPU)")
	flag.BoolVar(&opts.quiet, "quiet", false, "disable the progress bar")
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := run(context.Background(), opts, os.Stderr); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(ctx context.Context, opts options, stderr io.Writer) error {
	started := time.Now()

	cfg := sweep.DefaultConfig()
	if opts.config != "" {
		loaded, err := sweep.LoadFile(opts.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = started.UnixNano()
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	total := len(cfg.LatticeSizes) * len(cfg.Temperatures())
	log.Printf("sweeping %d points: sizes %v, T in [%.2f, %.2f) step %.2f, %d workers, seed %d",
		total, cfg.LatticeSizes, cfg.TempMin, cfg.TempMax, cfg.TempStep, cfg.WorkerCount(), cfg.Seed)
	log.Printf("protocol: %d equilibration sweeps, %d sampling sweeps, sample every %d",
		cfg.Protocol.InitialSteps, cfg.Protocol.LaterSteps, cfg.Protocol.MagnCalcStep)

	out, err := results.Create(opts.out)
	if err != nil {
		return err
	}

	var bar *progress.Bar
	var sink sweep.Progress
	if !opts.quiet {
		bar = progress.New(stderr, "Running simulations", total)
		sink = bar
	}

	driver, err := sweep.NewDriver(cfg, sink)
	if err != nil {
		out.Close()
		return err
	}
	runErr := driver.Run(ctx, out)
	if bar != nil {
		bar.Finish()
	}
	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return errors.Wrapf(runErr, "sweep aborted after %d of %d rows", out.Rows(), total)
	}

	log.Printf("wrote %d rows to %s", out.Rows(), opts.out)
	fmt.Fprintf(stderr, "Done in %s\n", time.Since(started).Round(time.Millisecond))
	return nil
}
