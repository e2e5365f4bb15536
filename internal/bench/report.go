// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"code.hybscloud.com/interleave"
)

// Sample is one timed traversal.
type Sample struct {
	Worker     int
	Repetition int
	Elapsed    time.Duration
	Sum        uint64
}

// Report summarises the samples of a run.
type Report struct {
	Traveller string
	GroupSize int
	ArraySize int
	Parallel  int
	Prefetch  bool
	Features  []string

	Samples []Sample

	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
	Median time.Duration

	// NsPerStep is the mean time per cell visited.
	NsPerStep float64
}

func newReport(cfg Config, name string, samples []Sample) *Report {
	r := &Report{
		Traveller: name,
		GroupSize: cfg.GroupSize,
		ArraySize: cfg.ArraySize,
		Parallel:  cfg.Parallel,
		Prefetch:  interleave.PrefetchAvailable,
		Features:  cpuFeatures(),
		Samples:   samples,
	}
	if len(samples) == 0 {
		return r
	}

	xs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s.Elapsed.Nanoseconds())
	}
	slices.Sort(xs)

	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		std = 0
	}
	r.Min = time.Duration(floats.Min(xs))
	r.Max = time.Duration(floats.Max(xs))
	r.Mean = time.Duration(mean)
	r.StdDev = time.Duration(std)
	r.Median = time.Duration(stat.Quantile(0.5, stat.Empirical, xs, nil))
	if steps := cfg.GroupSize * cfg.ArraySize; steps > 0 {
		r.NsPerStep = mean / float64(steps)
	}
	return r
}

// Print writes a human-readable summary to w.
func (r *Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "traveller\t%s\n", r.Traveller)
	fmt.Fprintf(tw, "lists\t%d x %d cells\n", r.GroupSize, r.ArraySize)
	fmt.Fprintf(tw, "workers\t%d\n", r.Parallel)
	fmt.Fprintf(tw, "prefetch\t%t\n", r.Prefetch)
	fmt.Fprintf(tw, "cpu\t%s\n", strings.Join(r.Features, " "))
	fmt.Fprintf(tw, "samples\t%d\n", len(r.Samples))
	fmt.Fprintf(tw, "min\t%d ns\n", r.Min.Nanoseconds())
	fmt.Fprintf(tw, "median\t%d ns\n", r.Median.Nanoseconds())
	fmt.Fprintf(tw, "mean\t%d ns\n", r.Mean.Nanoseconds())
	fmt.Fprintf(tw, "max\t%d ns\n", r.Max.Nanoseconds())
	fmt.Fprintf(tw, "stddev\t%d ns\n", r.StdDev.Nanoseconds())
	fmt.Fprintf(tw, "per step\t%.2f ns\n", r.NsPerStep)
	return tw.Flush()
}
