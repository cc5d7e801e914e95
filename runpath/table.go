package runpath

import (
	"math"

	"github.com/katalvlaran/runpath/costgrid"
	"github.com/katalvlaran/runpath/direction"
)

// stride is the number of arrival headings tracked per cell (None + 4).
const stride = direction.Count + 1

// unreached marks a state with no best-cost entry yet.
const unreached = math.MaxInt64

// bestCostTable maps every State to the smallest accumulated cost seen.
// States are keyed densely: (row*width + col)*stride + arrival, so the table
// is three flat slices sized 5×W×H instead of a hash map.
//
// Entries only ever decrease, and only through relax.
type bestCostTable struct {
	width     int
	cost      []int64 // best known cost, unreached if none
	finalized []bool  // cost is proven minimal
	prev      []int   // predecessor key, -1 for none; nil unless path tracking
}

// newBestCostTable allocates a table for g; trackPrev enables predecessors.
func newBestCostTable(g *costgrid.Grid, trackPrev bool) *bestCostTable {
	n := g.Len() * stride
	t := &bestCostTable{
		width:     g.Width,
		cost:      make([]int64, n),
		finalized: make([]bool, n),
	}
	for i := range t.cost {
		t.cost[i] = unreached
	}
	if trackPrev {
		t.prev = make([]int, n)
		for i := range t.prev {
			t.prev[i] = -1
		}
	}

	return t
}

// key maps s to its dense index.
func (t *bestCostTable) key(s State) int {
	return (s.Row*t.width+s.Col)*stride + int(s.Arrival)
}

// state is the inverse of key.
func (t *bestCostTable) state(k int) State {
	cell := k / stride
	return State{
		Row:     cell / t.width,
		Col:     cell % t.width,
		Arrival: direction.Direction(k % stride),
	}
}

// seed records cost 0 for the start key.
func (t *bestCostTable) seed(k int) {
	t.cost[k] = 0
}

// relax stores x for k if it beats the current entry and reports whether it did.
// from is recorded as predecessor when path tracking is on.
func (t *bestCostTable) relax(k int, x int64, from int) bool {
	if t.cost[k] <= x {
		return false
	}
	t.cost[k] = x
	if t.prev != nil {
		t.prev[k] = from
	}

	return true
}

// isStale reports whether a popped (k, x) pair should be discarded: its state
// is already finalized, or a cheaper relaxation superseded it.
func (t *bestCostTable) isStale(k int, x int64) bool {
	return t.finalized[k] || t.cost[k] != x
}

// finalize marks k's cost as proven minimal.
func (t *bestCostTable) finalize(k int) {
	t.finalized[k] = true
}
