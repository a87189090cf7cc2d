package rules

import "github.com/tojo17/seedfinder/internal/galaxy"

// Match returns the indexes of every star in g that satisfies c, in
// ascending star-index order. The returned slice reuses c's scratch
// buffer and is only valid until the next call to Match on the same
// Compiled value — callers (internal/scan) copy it into a Result event
// immediately, never retain it across calls.
func (c *Compiled) Match(g galaxy.Galaxy) []int {
	c.scratch.indexes = c.scratch.indexes[:0]
	for i := range g.Stars {
		if c.root(&g.Stars[i], &c.scratch) {
			c.scratch.indexes = append(c.scratch.indexes, g.Stars[i].Index)
		}
	}
	return c.scratch.indexes
}
