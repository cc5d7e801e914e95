// Package runpath finds minimum-cost paths across a grid of per-cell costs
// when movement comes in straight runs with a mandatory turn between them.
//
// Overview:
//
//   - A path leaves the start cell in one of the allowed initial headings and
//     travels MinRun..MaxRun cells (default 1..3) before it must turn 90°.
//     It may never continue straight past MaxRun and never reverse.
//   - Entering a cell costs that cell's digit; the start cell is free.
//   - The search space is (row, col, arrival heading), not just (row, col):
//     two arrivals at the same cell from different headings have different
//     futures.
//   - A min-heap frontier with lazy decrease-key drives a Dijkstra loop; the
//     first finalized state on the goal cell is the answer.
//
// When to use:
//
//   - Vehicles or agents with momentum limits: carts that cannot go straight
//     for long, robots that must re-align after a fixed distance.
//   - Any grid routing where the legal moves depend on how a cell was entered.
//
// Key features:
//
//   - WithInitialDirections: restrict the first heading (one search seeded
//     with every requested heading, rather than one search per heading).
//   - WithRunLength: change the 1..3 bounds, e.g. 4..10 for long-haul variants.
//   - WithReturnPath: return every cell of one optimal path.
//   - WithContext / WithLogger: cooperative cancellation and Debug statistics.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:             nil grid.
//   - ErrBadRunLength:        MinRun < 1 or MaxRun < MinRun.
//   - ErrNoInitialDirections: empty WithInitialDirections().
//   - ErrInvalidDirection:    an initial heading outside North..West.
//   - ErrOutOfBounds:         start or goal outside the grid (as *costgrid.OutOfBoundsError).
//   - ErrMalformedGrid:       raised by costgrid.New / costgrid.Parse, re-exported here.
//   - ErrUnreachable:         no path satisfies the run-length rule.
//
// API reference:
//
//	func Solve(
//	    g *costgrid.Grid,
//	    start, goal costgrid.Point,
//	    opts ...Option,
//	) (cost int64, path []costgrid.Point, err error)
//
// Thread safety:
//
//   - A costgrid.Grid is immutable, and Solve allocates its own frontier and
//     best-cost table, so any number of Solve calls may share a grid.
//
// Example:
//
//	g, _ := costgrid.ParseString("2413\n3215\n3255\n")
//	cost, _, err := runpath.Solve(g,
//	    costgrid.Point{Row: 0, Col: 0},
//	    costgrid.Point{Row: 2, Col: 3},
//	    runpath.WithInitialDirections(direction.East, direction.South),
//	)
package runpath
