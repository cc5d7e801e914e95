// Package crucible is the root of the runpath module: cheapest routes across
// a grid of digit costs when movement comes in straight runs.
//
// 🚀 What is in the module?
//
//	A small, dependency-light toolkit that brings together:
//		• Cost grids: parse, validate and query rectangular 0..9 digit maps
//		• Headings: North/East/South/West with inverse and turn tables
//		• Run-constrained search: Dijkstra over (cell, arrival heading) states
//		• Rendering: heading overlay on the text grid, Graphviz DOT export
//		• CLI: crucible solve / crucible version
//
// ✨ The movement rule
//
//   - Every move is a straight run of MinRun..MaxRun cells (default 1..3).
//   - After a run the next one must turn 90°; reversing is never allowed.
//   - The start cell is free; every entered cell adds its cost.
//
// Under the hood, everything is organized under these subpackages:
//
//	costgrid/      Grid, Point, Parse, bounds-checked CostAt
//	direction/     Direction enum, Offset, Inverse, LegalNext, Parse
//	runpath/       Solve with functional options (runs, headings, path, ctx, logger)
//	render/        Overlay and DOT
//	internal/cli/  cobra command tree, YAML config, slog setup
//	cmd/crucible/  the executable
//
// Quick ASCII example (runs of 1..3, start top-left, goal bottom-right):
//
//	1 > > 9
//	9 9 v 9
//	9 9 v >
//
//	costs 5: two cells East, two South, one East.
//
//	go install github.com/katalvlaran/runpath/cmd/crucible@latest
package crucible
