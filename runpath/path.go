package runpath

import "github.com/katalvlaran/runpath/costgrid"

// path follows predecessor keys back from goalKey to the start state and
// expands each run into the individual cells it crosses.
func (r *runner) path(goalKey int) []costgrid.Point {
	var states []State
	for k := goalKey; k >= 0; k = r.table.prev[k] {
		states = append(states, r.table.state(k))
	}
	// reverse in place: start first
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}

	out := []costgrid.Point{states[0].Point()}
	for _, s := range states[1:] {
		dr, dc := s.Arrival.Offset()
		cur := out[len(out)-1]
		for cur.Row != s.Row || cur.Col != s.Col {
			cur = costgrid.Point{Row: cur.Row + dr, Col: cur.Col + dc}
			out = append(out, cur)
		}
	}

	return out
}
