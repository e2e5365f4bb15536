// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"errors"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"code.hybscloud.com/spin"
)

// pad fills one cache line between contended fields.
type pad [64]byte

// barrier releases all workers at once, after every worker has built its
// workload.
type barrier struct {
	_     pad
	ready atomix.Int64
	_     pad
	start atomix.Bool
	_     pad
	n     int64
}

// arrive records one worker as ready (or gone).
func (b *barrier) arrive() {
	b.ready.Add(1)
}

// wait spins until release.
func (b *barrier) wait() {
	sw := spin.Wait{}
	for !b.start.LoadAcquire() {
		sw.Once()
	}
}

// release spins until every worker has arrived, then opens the barrier.
func (b *barrier) release() {
	sw := spin.Wait{}
	for b.ready.Load() < b.n {
		sw.Once()
	}
	b.start.StoreRelease(true)
}

// newSampleQueue returns the queue workers publish samples on.
func newSampleQueue(n int) *lfq.MPSC[Sample] {
	return lfq.NewMPSC[Sample](max(n, 2))
}

func runParallel(ctx context.Context, cfg Config, logger *Logger) (*Report, error) {
	// Holds every sample of the run.
	q := newSampleQueue(cfg.Parallel * cfg.Repetitions)
	b := &barrier{n: int64(cfg.Parallel)}

	names := make([]string, cfg.Parallel)
	errs := make([]error, cfg.Parallel)

	var wg sync.WaitGroup
	for id := range cfg.Parallel {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// A worker that fails before timing still counts as arrived,
			// so release never waits on it.
			var once sync.Once
			arrive := func() { once.Do(b.arrive) }
			defer arrive()

			w := worker{cfg: cfg, id: id, logger: logger}
			names[id], errs[id] = w.run(ctx, func() {
				arrive()
				b.wait()
			}, func(s *Sample) {
				sw := spin.Wait{}
				for q.Enqueue(s) != nil {
					sw.Once()
				}
			})
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		q.Drain()
		close(done)
	}()

	b.release()

	samples := make([]Sample, 0, cfg.Parallel*cfg.Repetitions)
	backoff := iox.Backoff{}
collect:
	for {
		s, err := q.Dequeue()
		if err == nil {
			samples = append(samples, s)
			backoff.Reset()
			continue
		}
		select {
		case <-done:
			break collect
		default:
			backoff.Wait()
		}
	}
	// Everything enqueued before done closed is visible now.
	for {
		s, err := q.Dequeue()
		if err != nil {
			break
		}
		samples = append(samples, s)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	logger.Info().
		Int("workers", cfg.Parallel).
		Int("samples", len(samples)).
		Log("parallel run complete")
	return newReport(cfg, names[0], samples), nil
}
