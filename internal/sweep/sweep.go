package sweep

import (
	"context"

	"github.com/eapache/queue"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"ising/internal/sims/ising"
	rngcore "ising/pkg/core"
)

// Sink receives completed results. Record is only ever called from one
// goroutine at a time.
type Sink interface {
	Record(ising.Result) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ising.Result) error

// Record calls f(r).
func (f SinkFunc) Record(r ising.Result) error { return f(r) }

// Progress observes completed runs.
type Progress interface {
	Advance(n int)
}

// Driver runs one simulation per grid point on a bounded pool of goroutines.
type Driver struct {
	cfg      Config
	progress Progress
}

// NewDriver validates cfg and returns a Driver for it. progress may be nil.
func NewDriver(cfg Config, progress Progress) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Driver{cfg: cfg, progress: progress}, nil
}

// Config returns the driver configuration.
func (d *Driver) Config() Config { return d.cfg }

// Run simulates every grid point and hands each result to sink exactly once,
// in completion order. Runs share nothing but the result channel; the sink
// and progress are only touched by the collecting goroutine. The first sink
// error stops dispatch of further points and is returned once the runs
// already in flight have finished.
func (d *Driver) Run(ctx context.Context, sink Sink) error {
	points, err := d.cfg.Points()
	if err != nil {
		return err
	}

	pending := queue.New()
	for _, p := range points {
		pending.Add(p)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan ising.Result)
	collected := make(chan error, 1)
	go func() {
		collected <- d.collect(results, sink, cancel)
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.WorkerCount())
	for pending.Length() > 0 {
		if gctx.Err() != nil {
			break
		}
		p := pending.Remove().(Point)
		g.Go(func() error {
			res, err := RunPoint(p, d.cfg.Protocol, d.cfg.Seed)
			if err != nil {
				return err
			}
			results <- res
			return nil
		})
	}
	runErr := g.Wait()
	close(results)
	sinkErr := <-collected

	switch {
	case sinkErr != nil:
		return sinkErr
	case runErr != nil:
		return runErr
	case pending.Length() > 0:
		return errors.Wrapf(ctx.Err(), "sweep stopped with %d of %d points not started", pending.Length(), len(points))
	}
	return nil
}

// collect drains results into sink. After a sink failure it keeps draining
// so in-flight runs can finish, but records nothing further.
func (d *Driver) collect(results <-chan ising.Result, sink Sink, cancel context.CancelFunc) error {
	var failed error
	for res := range results {
		if failed != nil {
			continue
		}
		if err := sink.Record(res); err != nil {
			failed = errors.Wrapf(err, "record l=%d t=%.2f", res.Size, res.Temperature)
			cancel()
			continue
		}
		if d.progress != nil {
			d.progress.Advance(1)
		}
	}
	return failed
}

// RunPoint simulates a single grid point with a stream derived from
// baseSeed and the point index.
func RunPoint(p Point, protocol ising.Protocol, baseSeed int64) (ising.Result, error) {
	src := rngcore.NewRNG(rngcore.DeriveSeed(baseSeed, p.Index))
	res, err := ising.Run(p.Size, p.Table, protocol, src)
	if err != nil {
		return ising.Result{}, errors.Wrapf(err, "run l=%d t=%.2f", p.Size, p.Temperature)
	}
	return res, nil
}
