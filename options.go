// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interleave

const (
	// DefaultGroupSize is the number of lists traversed together.
	DefaultGroupSize = 4

	// DefaultListSize is the number of cells per list.
	DefaultListSize = 1 << 20
)

// Options configures workload construction.
type Options struct {
	// Number of lists, also the executor capacity
	groupSize int

	// Cells per list
	listSize int

	// Shuffle seed; random per list when unset
	seed   uint64
	seeded bool
}

// Builder creates workloads with fluent configuration.
//
// Example:
//
//	// Four random lists of one million cells
//	g := interleave.New(4).ListSize(1_000_000).Build()
//
//	// Reproducible lists and a matching executor
//	b := interleave.New(4).ListSize(1 << 16).Seed(42)
//	g, e := b.Build(), b.BuildExecutor()
type Builder struct {
	opts Options
}

// New creates a workload builder for groupSize lists of DefaultListSize
// cells each.
//
// Panics if groupSize < 1.
func New(groupSize int) *Builder {
	if groupSize < 1 {
		panic("interleave: group size must be >= 1")
	}
	return &Builder{opts: Options{groupSize: groupSize, listSize: DefaultListSize}}
}

// ListSize sets the number of cells per list.
// Panics if n < 0.
func (b *Builder) ListSize(n int) *Builder {
	if n < 0 {
		panic("interleave: list size must be >= 0")
	}
	b.opts.listSize = n
	return b
}

// Seed makes construction deterministic. List i is shuffled with seed+i.
func (b *Builder) Seed(seed uint64) *Builder {
	b.opts.seed = seed
	b.opts.seeded = true
	return b
}

// GroupSize returns the configured number of lists.
func (b *Builder) GroupSize() int {
	return b.opts.groupSize
}

// Build constructs the lists.
func (b *Builder) Build() *Group {
	lists := make([]*List, b.opts.groupSize)
	for i := range lists {
		if b.opts.seeded {
			lists[i] = NewListSeed(b.opts.listSize, b.opts.seed+uint64(i))
		} else {
			lists[i] = NewList(b.opts.listSize)
		}
	}
	return &Group{lists: lists}
}

// BuildExecutor creates an executor with one slot per list.
func (b *Builder) BuildExecutor() *Executor {
	return NewExecutor(b.opts.groupSize)
}

// BuildTraveller returns the traveller selected by name, sized for the
// group. See ParseTraveller.
func (b *Builder) BuildTraveller(name string) (Traveller, error) {
	return ParseTraveller(name, b.opts.groupSize)
}

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
