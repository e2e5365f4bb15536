// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"fmt"
	"time"

	"code.hybscloud.com/interleave"
)

// Run executes the benchmark described by cfg and returns its report.
//
// Every traversal is checked against the group's ground-truth sum; a
// mismatch aborts the run with ErrChecksum. Cancelling ctx stops the run
// before the next repetition. A nil logger discards all events.
func Run(ctx context.Context, cfg Config, logger *Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = discardLogger()
	}

	logger.Info().
		Str("traveller", cfg.Traveller).
		Int("group", cfg.GroupSize).
		Int("array_size", cfg.ArraySize).
		Int("repetitions", cfg.Repetitions).
		Int("parallel", cfg.Parallel).
		Bool("prefetch", interleave.PrefetchAvailable).
		Log("starting benchmark")

	if cfg.Parallel > 1 {
		return runParallel(ctx, cfg, logger)
	}

	var samples []Sample
	w := worker{cfg: cfg, id: 0, logger: logger}
	name, err := w.run(ctx, nil, func(s *Sample) {
		samples = append(samples, *s)
	})
	if err != nil {
		return nil, err
	}
	return newReport(cfg, name, samples), nil
}

// worker owns one group of lists and one traveller.
type worker struct {
	cfg    Config
	id     int
	logger *Logger
}

// run builds the workload, calls ready (if non-nil) once it is about to
// start timing, and publishes one sample per repetition.
func (w *worker) run(ctx context.Context, ready func(), publish func(*Sample)) (string, error) {
	cfg := w.cfg

	if cfg.CPU >= 0 {
		cpu := cfg.CPU + w.id
		unpin, err := pinThread(cpu)
		if err != nil {
			return "", err
		}
		defer unpin()
		w.logger.Debug().
			Int("worker", w.id).
			Int("cpu", cpu).
			Bool("bound", affinitySupported).
			Log("pinned worker thread")
	}

	b := interleave.New(cfg.GroupSize).ListSize(cfg.ArraySize)
	if cfg.Seed != 0 {
		b.Seed(cfg.Seed + uint64(w.id*cfg.GroupSize))
	}
	g := b.Build()
	tr, err := b.BuildTraveller(cfg.Traveller)
	if err != nil {
		return "", err
	}
	want := g.GroundTruthSum()
	name := tr.Name()

	for i := range cfg.Warmup {
		if err := w.warmup(g, tr, want, i); err != nil {
			return name, err
		}
	}

	if ready != nil {
		ready()
	}

	for i := range cfg.Repetitions {
		if err := ctx.Err(); err != nil {
			return name, err
		}

		begin := time.Now()
		sum, err := g.Traverse(tr)
		elapsed := time.Since(begin)
		if err != nil {
			return name, fmt.Errorf("bench: %s#%d: %w", name, i, err)
		}
		if sum != want {
			return name, fmt.Errorf("%w: %s#%d got %d, want %d", ErrChecksum, name, i, sum, want)
		}

		w.logger.Info().
			Str("traveller", name).
			Int("worker", w.id).
			Int("rep", i).
			Dur("elapsed", elapsed).
			Logf("%s#%d: %d ns", name, i, elapsed.Nanoseconds())

		publish(&Sample{Worker: w.id, Repetition: i, Elapsed: elapsed, Sum: sum})
	}
	return name, nil
}

// warmup runs one untimed traversal.
func (w *worker) warmup(g *interleave.Group, tr interleave.Traveller, want uint64, i int) error {
	sum, err := g.Traverse(tr)
	if err != nil {
		return fmt.Errorf("bench: %s warmup: %w", tr.Name(), err)
	}
	if sum != want {
		return fmt.Errorf("%w: %s warmup got %d, want %d", ErrChecksum, tr.Name(), sum, want)
	}
	w.logger.Debug().
		Str("traveller", tr.Name()).
		Int("worker", w.id).
		Int("warmup", i).
		Log("warmup done")
	return nil
}
