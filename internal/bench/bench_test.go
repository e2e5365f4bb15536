// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/spin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/interleave"
)

func smallConfig(traveller string) Config {
	cfg := DefaultConfig()
	cfg.Traveller = traveller
	cfg.ArraySize = 1 << 10
	cfg.Seed = 1
	return cfg
}

// =============================================================================
// Config
// =============================================================================

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "async", cfg.Traveller)
	assert.Equal(t, 3, cfg.Repetitions)
	assert.Equal(t, 1048576, cfg.ArraySize)
	assert.Equal(t, 4, cfg.GroupSize)
	assert.Equal(t, -1, cfg.CPU)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty traveller", func(c *Config) { c.Traveller = "" }},
		{"unknown traveller", func(c *Config) { c.Traveller = "warp" }},
		{"repetitions", func(c *Config) { c.Repetitions = 0 }},
		{"warmup", func(c *Config) { c.Warmup = -1 }},
		{"array size", func(c *Config) { c.ArraySize = 0 }},
		{"group size", func(c *Config) { c.GroupSize = 0 }},
		{"parallel", func(c *Config) { c.Parallel = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfigUnknownTravellerWraps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Traveller = "warp"
	err := cfg.Validate()
	assert.ErrorIs(t, err, interleave.ErrUnknownTraveller)
}

// =============================================================================
// Run
// =============================================================================

func TestRunTravellers(t *testing.T) {
	for _, name := range []string{"sync", "async", "stepped"} {
		t.Run(name, func(t *testing.T) {
			cfg := smallConfig(name)
			cfg.Warmup = 1
			r, err := Run(context.Background(), cfg, nil)
			require.NoError(t, err)
			require.Len(t, r.Samples, cfg.Repetitions)

			want := uint64(cfg.GroupSize) * uint64(cfg.ArraySize) * uint64(cfg.ArraySize-1) / 2
			for i, s := range r.Samples {
				assert.Equal(t, i, s.Repetition)
				assert.Equal(t, want, s.Sum)
				assert.Positive(t, s.Elapsed)
			}
			assert.LessOrEqual(t, r.Min, r.Median)
			assert.LessOrEqual(t, r.Median, r.Max)
			assert.LessOrEqual(t, r.Min, r.Mean)
			assert.LessOrEqual(t, r.Mean, r.Max)
			assert.Positive(t, r.NsPerStep)
			assert.Equal(t, interleave.PrefetchAvailable, r.Prefetch)
		})
	}
}

func TestRunTravellerNames(t *testing.T) {
	names := map[string]string{
		"sync":    "SimpleTraversal",
		"async":   "AsyncTraversal",
		"stepped": "SteppedTraversal",
	}
	for sel, want := range names {
		r, err := Run(context.Background(), smallConfig(sel), nil)
		require.NoError(t, err)
		assert.Equal(t, want, r.Traveller)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := smallConfig("async")
	cfg.Repetitions = 0
	_, err := Run(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, smallConfig("async"), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsRepetitions(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info")
	require.NoError(t, err)

	cfg := smallConfig("async")
	cfg.Repetitions = 2
	_, err = Run(context.Background(), cfg, logger)
	require.NoError(t, err)

	var reps int
	var started bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var ev map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &ev), line)
		msg, _ := ev["msg"].(string)
		switch {
		case msg == "starting benchmark":
			assert.Equal(t, interleave.PrefetchAvailable, ev["prefetch"])
			started = true
		case strings.HasPrefix(msg, "AsyncTraversal#"):
			assert.True(t, strings.HasSuffix(msg, " ns"), msg)
			assert.Equal(t, "AsyncTraversal", ev["traveller"])
			assert.Contains(t, ev, "elapsed")
			reps++
		}
	}
	assert.True(t, started)
	assert.Equal(t, 2, reps)
}

func TestRunLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "off")
	require.NoError(t, err)
	_, err = Run(context.Background(), smallConfig("sync"), logger)
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// brokenTraveller returns a wrong sum.
type brokenTraveller struct{}

func (brokenTraveller) Name() string { return "Broken" }

func (brokenTraveller) Traverse(lists []*interleave.List) (uint64, error) {
	return interleave.SumSequential(lists...) + 1, nil
}

func TestWorkerWarmupChecksum(t *testing.T) {
	w := worker{cfg: smallConfig("sync"), logger: discardLogger()}
	g := interleave.New(2).ListSize(16).Build()
	err := w.warmup(g, brokenTraveller{}, g.GroundTruthSum(), 0)
	assert.ErrorIs(t, err, ErrChecksum)
}

// =============================================================================
// Parallel
// =============================================================================

func TestRunParallel(t *testing.T) {
	cfg := smallConfig("async")
	cfg.Parallel = 3
	cfg.Repetitions = 4

	r, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, r.Samples, 12)
	assert.Equal(t, "AsyncTraversal", r.Traveller)

	perWorker := map[int]int{}
	for _, s := range r.Samples {
		perWorker[s.Worker]++
	}
	for id := range cfg.Parallel {
		assert.Equal(t, cfg.Repetitions, perWorker[id], "worker %d", id)
	}
}

func TestRunParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := smallConfig("sync")
	cfg.Parallel = 2
	_, err := Run(ctx, cfg, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSampleQueue(t *testing.T) {
	q := newSampleQueue(3)
	assert.Equal(t, 4, q.Cap())

	for i := range 4 {
		require.NoError(t, q.Enqueue(&Sample{Repetition: i}))
	}
	assert.ErrorIs(t, q.Enqueue(&Sample{}), interleave.ErrWouldBlock)

	for i := range 4 {
		s, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, i, s.Repetition)
	}
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, interleave.ErrWouldBlock)
}

func TestSampleQueueConcurrentProducers(t *testing.T) {
	const producers, perProducer = 4, 500
	q := newSampleQueue(64)

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				s := Sample{Worker: p, Repetition: i}
				sw := spin.Wait{}
				for q.Enqueue(&s) != nil {
					sw.Once()
				}
			}
		}()
	}

	next := make([]int, producers)
	got := 0
	deadline := time.Now().Add(10 * time.Second)
	for got < producers*perProducer {
		require.True(t, time.Now().Before(deadline), "timed out after %d samples", got)
		s, err := q.Dequeue()
		if err != nil {
			continue
		}
		// Per-producer FIFO order is preserved.
		require.Equal(t, next[s.Worker], s.Repetition)
		next[s.Worker]++
		got++
	}
	wg.Wait()
}

// =============================================================================
// Report
// =============================================================================

func TestReportStatistics(t *testing.T) {
	cfg := smallConfig("sync")
	cfg.GroupSize, cfg.ArraySize = 2, 50
	samples := []Sample{
		{Elapsed: 300},
		{Elapsed: 100},
		{Elapsed: 200},
	}
	r := newReport(cfg, "SimpleTraversal", samples)
	assert.Equal(t, time.Duration(100), r.Min)
	assert.Equal(t, time.Duration(300), r.Max)
	assert.Equal(t, time.Duration(200), r.Mean)
	assert.Equal(t, time.Duration(200), r.Median)
	assert.Equal(t, time.Duration(100), r.StdDev)
	assert.InDelta(t, 2.0, r.NsPerStep, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf))
	out := buf.String()
	assert.Contains(t, out, "SimpleTraversal")
	assert.Contains(t, out, "2 x 50 cells")
	assert.Contains(t, out, "200 ns")
}

func TestReportSingleSample(t *testing.T) {
	r := newReport(smallConfig("sync"), "SimpleTraversal", []Sample{{Elapsed: 42}})
	assert.Equal(t, time.Duration(0), r.StdDev)
	assert.Equal(t, time.Duration(42), r.Mean)
	assert.Equal(t, time.Duration(42), r.Median)
}
