// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package interleave hides memory latency in pointer-chasing workloads by
// interleaving several independent traversals on one goroutine.
//
// A [List] is a flat array of cache-line sized cells whose next indices form
// a single random cycle. Walking it is a chain of dependent loads: each cell
// must arrive before the address of the next one is known. Walking several
// lists one after another pays every miss in full. Walking them together
// lets one list's fetch overlap with another list's progress.
//
// The package offers three strategies with identical results:
//
//   - Sequential: walk each list to completion, no suspension points
//   - Interleaved: one [Traversal] per list, multiplexed by an [Executor]
//   - Stepped: the same traversals, driven one at a time
//
// # Quick Start
//
//	g := interleave.New(4).ListSize(1_000_000).Build()
//
//	seq := interleave.SumSequential(g.Lists()...)
//	sum, err := interleave.NewInterleaved(g.Len()).Traverse(g.Lists())
//	// seq == sum == g.GroundTruthSum()
//
// # Suspension Protocol
//
// Each traversal step issues a [Prefetch] for the cell at the cursor, then
// suspends on a [Fetch]. A Fetch returns [ErrWouldBlock] on its first poll
// and nil afterwards. That single yield is the window in which the executor
// advances the other traversals while the prefetched line is in flight.
//
//	// Advance k: start the step, then yield.
//	Prefetch(unsafe.Pointer(&cells[cursor])) // Non-blocking hint
//	fetch.Poll()                             // ErrWouldBlock
//
//	// Advance k+1: the line is (likely) cached now.
//	fetch.Poll()                             // nil
//	cursor = cells[cursor].next
//
// A list of n cells completes after exactly n+1 calls to Advance.
//
// # Executor
//
// [Executor] holds a fixed number of slots. [Executor.Spawn] fills the first
// empty slot or returns [ErrCapacityExceeded]. [Executor.Run] polls the slots
// round-robin, skipping empty ones, until every spawned task has completed:
//
//	e := interleave.NewExecutor(4)
//	for _, l := range g.Lists() {
//	    if err := e.Spawn(interleave.NewTraversal(l)); err != nil {
//	        return err
//	    }
//	}
//	sum, err := e.Run()
//
// For k traversals of n cells, Run performs exactly k·n + k polls.
//
// # Prefetch
//
// On amd64 [Prefetch] emits PREFETCHT0 and on arm64 PRFM PLDL1KEEP. Other
// architectures get a no-op and [PrefetchAvailable] is false. Prefetching
// never changes results; only timing.
//
// # Error Handling
//
// Suspension is reported with [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox] for ecosystem consistency:
//
//	interleave.IsWouldBlock(err)  // true if the task is pending
//	interleave.IsSemantic(err)    // true if control flow signal
//	interleave.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Contract violations panic: negative sizes, capacity < 1, spawning a nil
// task, and advancing a completed traversal.
//
// # Thread Safety
//
// An Executor and its tasks belong to a single goroutine. Lists are never
// written after construction and may be shared freely, including between
// executors running on different goroutines.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors.
package interleave
