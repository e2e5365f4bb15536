// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interleave

import (
	"fmt"
	"strings"
)

// Traveller is a strategy for summing a set of lists.
//
// Every Traveller returns the same sum for the same lists; they differ only
// in the order memory is touched.
type Traveller interface {
	// Name identifies the strategy in benchmark output.
	Name() string
	// Traverse walks every list fully and returns the combined sum.
	Traverse(lists []*List) (uint64, error)
}

// Sequential walks one list to completion before starting the next, with no
// suspension points. It is the latency baseline.
type Sequential struct{}

// Name returns "SimpleTraversal".
func (Sequential) Name() string { return "SimpleTraversal" }

// Traverse returns SumSequential(lists...).
func (Sequential) Traverse(lists []*List) (uint64, error) {
	return SumSequential(lists...), nil
}

// SumSequential walks each list in turn and returns the combined sum.
func SumSequential(lists ...*List) uint64 {
	var sum uint64
	for _, l := range lists {
		sum += l.Sum()
	}
	return sum
}

// Interleaved spawns one Traversal per list on an Executor and runs them
// together, so the prefetch issued by one traversal overlaps with the
// progress of the others.
type Interleaved struct {
	executor *Executor
	tasks    []Traversal
}

// NewInterleaved creates an Interleaved traveller over an executor with
// capacity slots. Panics if capacity < 1.
func NewInterleaved(capacity int) *Interleaved {
	return &Interleaved{
		executor: NewExecutor(capacity),
		tasks:    make([]Traversal, capacity),
	}
}

// Name returns "AsyncTraversal".
func (*Interleaved) Name() string { return "AsyncTraversal" }

// Traverse runs one traversal per list on the executor.
// Returns ErrCapacityExceeded if there are more lists than slots.
func (t *Interleaved) Traverse(lists []*List) (uint64, error) {
	if len(lists) > t.executor.Cap() {
		return 0, fmt.Errorf("%w: %d lists, capacity %d", ErrCapacityExceeded, len(lists), t.executor.Cap())
	}
	for i, l := range lists {
		t.tasks[i].Reset(l)
		if err := t.executor.Spawn(&t.tasks[i]); err != nil {
			t.executor.Reset()
			return 0, err
		}
	}
	return t.executor.Run()
}

// Executor returns the underlying executor, for inspecting Stats.
func (t *Interleaved) Executor() *Executor {
	return t.executor
}

// Stepped drives each list's Traversal to completion on its own. It pays
// the suspension overhead of Interleaved without any overlap between lists.
type Stepped struct {
	task Traversal
}

// Name returns "SteppedTraversal".
func (*Stepped) Name() string { return "SteppedTraversal" }

// Traverse drives one traversal per list, one after another.
func (s *Stepped) Traverse(lists []*List) (uint64, error) {
	var sum uint64
	for _, l := range lists {
		s.task.Reset(l)
		v, err := Drive(&s.task)
		if err != nil {
			return sum, err
		}
		sum += v
	}
	return sum, nil
}

// ParseTraveller returns the Traveller selected by name.
//
//	"sync", "sequential"  → Sequential
//	"async", "interleaved" → Interleaved with the given capacity
//	"stepped"              → Stepped
//
// Names are case-insensitive; the values returned by Name are accepted too.
func ParseTraveller(name string, capacity int) (Traveller, error) {
	switch strings.ToLower(name) {
	case "sync", "sequential", "simpletraversal":
		return Sequential{}, nil
	case "async", "interleaved", "asynctraversal":
		return NewInterleaved(capacity), nil
	case "stepped", "steppedtraversal":
		return &Stepped{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTraveller, name)
	}
}
