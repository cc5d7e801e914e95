// Solve runs a Dijkstra search over (cell, arrival heading)
// states on a costgrid.Grid, where every move is a straight run of
// MinRun..MaxRun cells followed by a mandatory 90° turn.
//
// Complexity:
//
//   - Time:  O(S log S) where S = 5×W×H states; each state is finalized once
//     and emits at most 2×(MaxRun-MinRun+1) candidates.
//   - Space: O(S) for the best-cost table plus O(S×MaxRun) heap entries in the
//     worst case under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Cell costs are 0..9 (validated by costgrid), so the classic Dijkstra
//     invariant holds: a state's cost is final the first time it is popped.
//   - The search stops at the first popped state on the goal cell, whatever
//     its arrival heading.
//   - All requested initial headings are expanded from one start state, so a
//     single search replaces one search per heading.

package runpath

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/runpath/costgrid"
	"github.com/katalvlaran/runpath/direction"
)

// Solve returns the minimum total cost of entering cells on a path from start
// to goal under the run-length rule. The start cell's own cost is not counted.
//
// Returns:
//
//   - cost: minimal accumulated cost; 0 when start == goal.
//   - path: if WithReturnPath() was given, every cell from start to goal
//     inclusive along one optimal path; nil otherwise.
//   - err:  nil, or one of the errors below. On error cost is 0 and path nil.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. 1 <= MinRun <= MaxRun (ErrBadRunLength).
//  3. InitialDirections non-empty and valid (ErrNoInitialDirections, ErrInvalidDirection).
//  4. start and goal inside g (*costgrid.OutOfBoundsError, matches ErrOutOfBounds).
//
// No frontier work happens before all four checks pass. An exhausted
// frontier yields ErrUnreachable; a cancelled Ctx yields ctx.Err().
//
// Solve keeps all mutable state local, so concurrent calls sharing one grid
// are safe.
func Solve(g *costgrid.Grid, start, goal costgrid.Point, opts ...Option) (int64, []costgrid.Point, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid.
	if g == nil {
		return 0, nil, ErrNilGrid
	}

	// 3) Validate run bounds and initial headings.
	initial, err := cfg.validate()
	if err != nil {
		return 0, nil, err
	}

	// 4) Validate endpoints before any search work.
	if err = g.Check(start); err != nil {
		return 0, nil, fmt.Errorf("runpath: start: %w", err)
	}
	if err = g.Check(goal); err != nil {
		return 0, nil, fmt.Errorf("runpath: goal: %w", err)
	}

	// 5) Run the search.
	r := &runner{
		grid:    g,
		options: cfg,
		initial: initial,
		goal:    goal,
		table:   newBestCostTable(g, cfg.ReturnPath),
		pq:      make(frontier, 0, g.Len()),
	}
	r.init(start)
	cost, goalKey, err := r.process()
	r.logStats(cost, err)
	if err != nil {
		return 0, nil, err
	}

	// 6) Optionally rebuild the path from predecessor keys.
	if !cfg.ReturnPath {
		return cost, nil, nil
	}

	return cost, r.path(goalKey), nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	grid    *costgrid.Grid        // read-only terrain
	options Options               // validated configuration
	initial []direction.Direction // deduplicated first-run headings
	goal    costgrid.Point        // target cell
	table   *bestCostTable        // state -> best cost, finalized flags, predecessors
	pq      frontier              // min-heap of pending states
	stats   searchStats
}

// searchStats counts frontier traffic for the Debug log record.
type searchStats struct {
	pops, pushes, stale, finalized int
}

// init seeds the start state (arrival None) at cost 0.
func (r *runner) init(start costgrid.Point) {
	k := r.table.key(State{Row: start.Row, Col: start.Col, Arrival: direction.None})
	r.table.seed(k)
	r.pq.push(k, 0)
	r.stats.pushes++
}

// process is the main loop. It returns the goal cost and the key of the goal
// state that was finalized, or ErrUnreachable once the frontier is empty.
func (r *runner) process() (int64, int, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		// 1) Cooperative cancellation.
		if r.stats.pops%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, -1, err
			}
		}

		// 2) Pop the cheapest entry.
		item := r.pq.pop()
		r.stats.pops++

		// 3) Lazy deletion of superseded entries.
		if r.table.isStale(item.key, item.cost) {
			r.stats.stale++
			continue
		}

		// 4) The cost is now final.
		r.table.finalize(item.key)
		r.stats.finalized++

		// 5) Goal reached, whatever the arrival heading.
		s := r.table.state(item.key)
		if s.Row == r.goal.Row && s.Col == r.goal.Col {
			return item.cost, item.key, nil
		}

		// 6) Expand runs and relax.
		if err := r.expand(s, item.key, item.cost); err != nil {
			return 0, -1, err
		}
	}

	return 0, -1, ErrUnreachable
}

// expand walks MinRun..MaxRun cells along each legal heading from s and
// relaxes every reached state. Walking stops at the grid edge.
func (r *runner) expand(s State, key int, cost int64) error {
	heads := direction.LegalNext(s.Arrival)
	if s.Arrival == direction.None {
		heads = r.initial
	}

	for _, d := range heads {
		dr, dc := d.Offset()
		acc := cost
		for k := 1; k <= r.options.MaxRun; k++ {
			row, col := s.Row+dr*k, s.Col+dc*k
			if !r.grid.InBounds(row, col) {
				break
			}
			c, err := r.grid.CostAt(row, col)
			if err != nil {
				// Safety check: InBounds passed, so this only fires on a broken grid.
				return fmt.Errorf("runpath: expand %v: %w", s, err)
			}
			acc += int64(c)
			if k < r.options.MinRun {
				continue
			}
			next := r.table.key(State{Row: row, Col: col, Arrival: d})
			if r.table.relax(next, acc, key) {
				r.pq.push(next, acc)
				r.stats.pushes++
			}
		}
	}

	return nil
}

// logStats writes one Debug record describing the finished search.
func (r *runner) logStats(cost int64, err error) {
	attrs := []slog.Attr{
		slog.Int("pops", r.stats.pops),
		slog.Int("pushes", r.stats.pushes),
		slog.Int("stale", r.stats.stale),
		slog.Int("finalized", r.stats.finalized),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	} else {
		attrs = append(attrs, slog.Int64("cost", cost))
	}
	r.options.Logger.LogAttrs(r.options.Ctx, slog.LevelDebug, "runpath: search finished", attrs...)
}
