// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interleave

import "fmt"

// Group is a set of lists traversed together.
type Group struct {
	lists []*List
}

// NewGroup wraps existing lists.
func NewGroup(lists ...*List) *Group {
	return &Group{lists: lists}
}

// Lists returns the lists. The slice must not be modified.
func (g *Group) Lists() []*List {
	return g.lists
}

// Len returns the number of lists.
func (g *Group) Len() int {
	return len(g.lists)
}

// GroundTruthSum returns the sum every Traveller must produce for the group.
func (g *Group) GroundTruthSum() uint64 {
	var sum uint64
	for _, l := range g.lists {
		sum += l.GroundTruthSum()
	}
	return sum
}

// Verify checks that every list is a single cycle.
func (g *Group) Verify() error {
	for i, l := range g.lists {
		if err := l.Verify(); err != nil {
			return fmt.Errorf("list %d: %w", i, err)
		}
	}
	return nil
}

// Traverse sums the group with t.
func (g *Group) Traverse(t Traveller) (uint64, error) {
	return t.Traverse(g.lists)
}
