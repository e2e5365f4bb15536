// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interleave

import "fmt"

// Executor is a fixed-capacity, single-goroutine, round-robin task scheduler.
//
// Tasks are placed into slots with Spawn and driven by Run. Run polls slot 0,
// 1, ..., Cap()-1 and wraps around, skipping empty slots. A task that returns
// ErrWouldBlock stays in its slot; a task that completes adds its result to
// the total and frees its slot. Every pending task is polled once per sweep
// of the slot table, so no task waits more than Cap() polls for its turn.
//
// Executor is not safe for concurrent use.
//
// Memory: O(capacity)
type Executor struct {
	slots   []slot
	spawned int // Tasks placed since the last Run or Reset
	stats   Stats
}

type slot struct {
	task     Task
	occupied bool
}

// Stats holds counters for the most recent Run.
type Stats struct {
	Polls     uint64 // Advance calls
	Pending   uint64 // Advance calls that returned ErrWouldBlock
	Completed uint64 // Tasks that returned a result
	Sweeps    uint64 // Passes started over the slot table
}

// NewExecutor creates an executor with capacity slots.
// Panics if capacity < 1.
func NewExecutor(capacity int) *Executor {
	if capacity < 1 {
		panic("interleave: capacity must be >= 1")
	}
	return &Executor{slots: make([]slot, capacity)}
}

// Spawn places t into the first empty slot.
// Returns ErrCapacityExceeded if every slot is occupied; existing tasks are
// left untouched. Panics if t is nil.
func (e *Executor) Spawn(t Task) error {
	if t == nil {
		panic("interleave: spawn of nil task")
	}
	for i := range e.slots {
		if !e.slots[i].occupied {
			e.slots[i] = slot{task: t, occupied: true}
			e.spawned++
			return nil
		}
	}
	return ErrCapacityExceeded
}

// Run polls the spawned tasks round-robin until every one has completed and
// returns the sum of their results.
//
// Run stops once the number of completed tasks equals the number spawned.
// With nothing spawned it returns (0, nil) immediately. If a task fails with
// an error other than ErrWouldBlock, every slot is cleared and the error is
// returned together with the total collected so far.
//
// After Run returns, all slots are empty and the executor may be reused.
func (e *Executor) Run() (uint64, error) {
	e.stats = Stats{}

	var total uint64
	completed := 0
	idx := 0
	for completed < e.spawned {
		if idx == 0 {
			e.stats.Sweeps++
		}

		s := &e.slots[idx]
		if s.occupied {
			v, err := s.task.Advance()
			e.stats.Polls++
			switch {
			case err == nil:
				total += v
				*s = slot{}
				completed++
				e.stats.Completed++
			case IsWouldBlock(err):
				e.stats.Pending++
			default:
				e.clear()
				return total, fmt.Errorf("interleave: task in slot %d: %w", idx, err)
			}
		}

		idx++
		if idx == len(e.slots) {
			idx = 0
		}
	}

	e.spawned = 0
	return total, nil
}

// Reset clears every slot and the counters.
func (e *Executor) Reset() {
	e.clear()
	e.stats = Stats{}
}

func (e *Executor) clear() {
	clear(e.slots)
	e.spawned = 0
}

// Cap returns the number of slots.
func (e *Executor) Cap() int {
	return len(e.slots)
}

// Len returns the number of occupied slots.
func (e *Executor) Len() int {
	n := 0
	for i := range e.slots {
		if e.slots[i].occupied {
			n++
		}
	}
	return n
}

// Stats returns the counters of the most recent Run.
func (e *Executor) Stats() Stats {
	return e.stats
}
