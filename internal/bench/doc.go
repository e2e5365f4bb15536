// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench times the interleave travellers against each other.
//
// It builds the workload once per worker, validates every traversal against
// the closed-form checksum, logs each repetition as a structured event and
// summarises the timings in a [Report].
//
// With Parallel > 1, independent workers run on their own goroutines (and
// optionally their own CPUs). They start together behind a spin barrier and
// publish samples through a bounded multi-producer queue drained by the
// caller.
package bench
