// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interleave

import "unsafe"

// Task is a suspending computation driven by repeated Advance calls.
//
// Advance returns (result, nil) when the task completes, (0, ErrWouldBlock)
// when it suspended and must be polled again, or (0, err) for any other
// failure. A task never schedules itself; it only makes progress when
// polled. Advancing a completed task is a contract violation.
type Task interface {
	Advance() (uint64, error)
}

// Traversal is a Task that walks one List from index 0 and sums the visited
// next indices.
//
// Every step prefetches the cell at the cursor and suspends once on a Fetch.
// The following Advance reads the cell, adds its value to the sum and moves
// the cursor. A list of length n completes after exactly n+1 Advance calls
// (1 for an empty list).
//
// The list is borrowed for the lifetime of the traversal and never written.
type Traversal struct {
	list   *List
	cursor uint64
	sum    uint64
	steps  int
	fetch  Fetch
	armed  bool // prefetch issued for the current step
	done   bool
}

// NewTraversal creates a traversal over l.
func NewTraversal(l *List) *Traversal {
	return &Traversal{list: l}
}

// Reset rebinds the traversal to l and returns it to the not started state.
func (t *Traversal) Reset(l *List) {
	*t = Traversal{list: l}
}

// Advance runs the traversal up to its next suspension point or completion.
// Panics if the traversal has already completed.
func (t *Traversal) Advance() (uint64, error) {
	if t.done {
		panic("interleave: advance on completed traversal")
	}

	n := t.list.Len()
	for t.steps < n {
		if !t.armed {
			Prefetch(unsafe.Pointer(t.list.cell(t.cursor)))
			t.fetch.Reset()
			t.armed = true
		}
		if err := t.fetch.Poll(); err != nil {
			return 0, err
		}
		t.armed = false

		v := t.list.cells[t.cursor].next
		t.sum += v
		t.cursor = v
		t.steps++
	}

	t.done = true
	return t.sum, nil
}

// Steps returns the number of cells consumed so far.
func (t *Traversal) Steps() int {
	return t.steps
}

// Sum returns the running sum.
func (t *Traversal) Sum() uint64 {
	return t.sum
}

// Done reports whether the traversal has completed.
func (t *Traversal) Done() bool {
	return t.done
}

// Drive polls t until it completes or fails, without yielding to any other
// task. It returns the task's result.
func Drive(t Task) (uint64, error) {
	for {
		v, err := t.Advance()
		if err == nil || !IsWouldBlock(err) {
			return v, err
		}
	}
}
