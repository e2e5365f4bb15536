// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interleave

import (
	"fmt"
	"math/rand/v2"
)

// Cell is one slot of a List. It holds the index of the next cell.
//
// Each cell occupies a full cache line so that every step of a traversal
// touches a distinct line and pays a real memory fetch.
type Cell struct {
	next uint64
	_    padShort
}

// Next returns the index of the next cell.
func (c *Cell) Next() uint64 {
	return c.next
}

// List is a flat array of cells whose next indices form a single cycle.
//
// Starting at index 0 and following next indices exactly Len times visits
// every index in [0, Len) once and returns to 0. The values visited sum to
// GroundTruthSum.
//
// A List is immutable after construction and may be read by any number of
// traversals at once.
//
// Memory: 64 bytes per cell
type List struct {
	cells []Cell
}

// NewList creates a List of the given size from a randomly seeded shuffle.
// Panics if size < 0. A size of 0 yields an empty list.
func NewList(size int) *List {
	return NewListRand(size, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewListSeed creates a List whose shuffle is determined by seed.
func NewListSeed(size int, seed uint64) *List {
	return NewListRand(size, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewListRand creates a List by shuffling [1, size) with r and chaining the
// result from index 0: each shuffled value becomes the previous cell's next
// index. The last cell in the chain keeps next index 0, closing the cycle.
func NewListRand(size int, r *rand.Rand) *List {
	if size < 0 {
		panic("interleave: list size must be >= 0")
	}

	l := &List{cells: make([]Cell, size)}
	if size < 2 {
		return l
	}

	order := make([]uint64, size-1)
	for i := range order {
		order[i] = uint64(i + 1)
	}
	r.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	prev := uint64(0)
	for _, v := range order {
		l.cells[prev].next = v
		prev = v
	}
	return l
}

// NewListFrom creates a List whose cell i holds next[i]. The indices are
// copied verbatim; use Verify to check that they form a single cycle.
func NewListFrom(next []uint64) *List {
	l := &List{cells: make([]Cell, len(next))}
	for i, v := range next {
		l.cells[i].next = v
	}
	return l
}

// Len returns the number of cells.
func (l *List) Len() int {
	return len(l.cells)
}

// Next returns the next index stored at index i.
// Panics if i is out of range.
func (l *List) Next(i int) uint64 {
	return l.cells[i].next
}

// GroundTruthSum returns n(n-1)/2, the sum of every index of a list of
// length n. A full traversal of a well-formed list produces this value.
func (l *List) GroundTruthSum() uint64 {
	n := uint64(len(l.cells))
	if n == 0 {
		return 0
	}
	return n * (n - 1) / 2
}

// Sum walks the list from index 0 for Len steps and returns the sum of the
// visited next indices.
func (l *List) Sum() uint64 {
	var sum, idx uint64
	for range l.cells {
		v := l.cells[idx].next
		sum += v
		idx = v
	}
	return sum
}

// Verify walks the list from index 0 and reports ErrBrokenCycle if an index
// is visited twice, a next index is out of range, or the walk does not
// return to index 0 after Len steps.
func (l *List) Verify() error {
	n := uint64(len(l.cells))
	if n == 0 {
		return nil
	}

	seen := make([]bool, n)
	idx := uint64(0)
	for range n {
		if seen[idx] {
			return fmt.Errorf("%w: index %d visited twice", ErrBrokenCycle, idx)
		}
		seen[idx] = true
		next := l.cells[idx].next
		if next >= n {
			return fmt.Errorf("%w: index %d links to %d, out of range", ErrBrokenCycle, idx, next)
		}
		idx = next
	}
	if idx != 0 {
		return fmt.Errorf("%w: walk ended at %d, not 0", ErrBrokenCycle, idx)
	}
	return nil
}

// cell returns a pointer to the cell at idx for prefetching.
func (l *List) cell(idx uint64) *Cell {
	return &l.cells[idx]
}
