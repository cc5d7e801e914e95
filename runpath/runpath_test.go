package runpath_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/runpath/costgrid"
	"github.com/katalvlaran/runpath/direction"
	"github.com/katalvlaran/runpath/runpath"
)

// sampleGrid is the 13×13 crucible map; 102 under 1..3 runs, 94 under 4..10.
const sampleGrid = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// ultraGrid punishes short turns near the end: 71 under 4..10 runs.
const ultraGrid = `111111111111
999999999991
999999999991
999999999991
999999999991
`

// SolveSuite exercises Solve on small hand-checked grids and every option.
type SolveSuite struct {
	suite.Suite
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func (s *SolveSuite) grid(text string) *costgrid.Grid {
	g, err := costgrid.ParseString(text)
	s.Require().NoError(err)
	return g
}

func corner(g *costgrid.Grid) costgrid.Point {
	return costgrid.Point{Row: g.Height - 1, Col: g.Width - 1}
}

// TestSingleCell: start == goal on a 1×1 grid costs nothing.
func (s *SolveSuite) TestSingleCell() {
	g := s.grid("7\n")
	cost, path, err := runpath.Solve(g, costgrid.Point{}, costgrid.Point{}, runpath.WithReturnPath())
	s.Require().NoError(err)
	s.Equal(int64(0), cost)
	s.Equal([]costgrid.Point{{Row: 0, Col: 0}}, path)
}

// TestCorridorForcedTurn: a 1×5 corridor cannot be crossed without turning.
func (s *SolveSuite) TestCorridorForcedTurn() {
	g := s.grid("11111\n")
	_, path, err := runpath.Solve(g,
		costgrid.Point{Row: 0, Col: 0},
		costgrid.Point{Row: 0, Col: 4},
		runpath.WithInitialDirections(direction.East),
		runpath.WithReturnPath(),
	)
	s.Require().ErrorIs(err, runpath.ErrUnreachable)
	s.Nil(path)

	// Column 3 is within one run.
	cost, _, err := runpath.Solve(g,
		costgrid.Point{Row: 0, Col: 0},
		costgrid.Point{Row: 0, Col: 3},
		runpath.WithInitialDirections(direction.East),
	)
	s.Require().NoError(err)
	s.Equal(int64(3), cost)
}

// TestUniform4x4: uniform cost reduces to Manhattan distance.
func (s *SolveSuite) TestUniform4x4() {
	g := s.grid("1111\n1111\n1111\n1111\n")
	cost, _, err := runpath.Solve(g,
		costgrid.Point{Row: 0, Col: 0},
		costgrid.Point{Row: 3, Col: 3},
		runpath.WithInitialDirections(direction.East, direction.South),
	)
	s.Require().NoError(err)
	s.Equal(int64(6), cost)
}

// TestSampleDefaultRuns checks the reference answer for 1..3 runs.
func (s *SolveSuite) TestSampleDefaultRuns() {
	g := s.grid(sampleGrid)
	cost, path, err := runpath.Solve(g,
		costgrid.Point{Row: 0, Col: 0},
		corner(g),
		runpath.WithInitialDirections(direction.East, direction.South),
		runpath.WithReturnPath(),
	)
	s.Require().NoError(err)
	s.Equal(int64(102), cost)
	s.Equal(cost, pathCost(s.T(), g, path))
	assertRunRules(s.T(), path, runpath.DefaultMinRun, runpath.DefaultMaxRun)
}

// TestSampleUltraRuns checks the reference answers for 4..10 runs.
func (s *SolveSuite) TestSampleUltraRuns() {
	for _, tc := range []struct {
		name string
		text string
		want int64
	}{
		{"Sample", sampleGrid, 94},
		{"Ultra", ultraGrid, 71},
	} {
		s.Run(tc.name, func() {
			g := s.grid(tc.text)
			cost, path, err := runpath.Solve(g,
				costgrid.Point{Row: 0, Col: 0},
				corner(g),
				runpath.WithRunLength(4, 10),
				runpath.WithReturnPath(),
			)
			s.Require().NoError(err)
			s.Equal(tc.want, cost)
			s.Equal(cost, pathCost(s.T(), g, path))
			assertRunRules(s.T(), path, 4, 10)
		})
	}
}

// TestSingleSeededSearchMatchesPerHeadingMinimum compares one search seeded
// with both headings against the minimum of one search per heading.
func (s *SolveSuite) TestSingleSeededSearchMatchesPerHeadingMinimum() {
	g := s.grid(sampleGrid)
	start, goal := costgrid.Point{}, corner(g)

	both, _, err := runpath.Solve(g, start, goal,
		runpath.WithInitialDirections(direction.East, direction.South))
	s.Require().NoError(err)

	east, _, errE := runpath.Solve(g, start, goal, runpath.WithInitialDirections(direction.East))
	south, _, errS := runpath.Solve(g, start, goal, runpath.WithInitialDirections(direction.South))
	s.Require().NoError(errE)
	s.Require().NoError(errS)
	s.Equal(min(east, south), both)
}

// TestPathShape verifies the returned cells on a grid with a single cheap lane.
//
//	1 1 1 9
//	9 9 1 9
//	9 9 1 1
func (s *SolveSuite) TestPathShape() {
	g := s.grid("1119\n9919\n9911\n")
	cost, path, err := runpath.Solve(g,
		costgrid.Point{Row: 0, Col: 0},
		costgrid.Point{Row: 2, Col: 3},
		runpath.WithReturnPath(),
	)
	s.Require().NoError(err)
	s.Equal(int64(5), cost)
	want := []costgrid.Point{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 3},
	}
	if diff := cmp.Diff(want, path); diff != "" {
		s.Failf("path mismatch", "(-want +got):\n%s", diff)
	}
}

// TestNoPathWithoutOption keeps path nil unless WithReturnPath is set.
func (s *SolveSuite) TestNoPathWithoutOption() {
	g := s.grid("12\n34\n")
	cost, path, err := runpath.Solve(g, costgrid.Point{}, costgrid.Point{Row: 1, Col: 1})
	s.Require().NoError(err)
	s.Equal(int64(6), cost) // min(2+4, 3+4)
	s.Nil(path)
}

// TestZeroCostGrid allows zero-cost cells.
func (s *SolveSuite) TestZeroCostGrid() {
	g := s.grid("000\n000\n000\n")
	cost, _, err := runpath.Solve(g, costgrid.Point{}, costgrid.Point{Row: 2, Col: 2})
	s.Require().NoError(err)
	s.Zero(cost)
}

// TestMinRunTooLongForGrid: runs of at least 4 never fit a 3×3 grid.
func (s *SolveSuite) TestMinRunTooLongForGrid() {
	g := s.grid("111\n111\n111\n")
	_, _, err := runpath.Solve(g, costgrid.Point{}, costgrid.Point{Row: 2, Col: 2},
		runpath.WithRunLength(4, 10))
	s.ErrorIs(err, runpath.ErrUnreachable)
}

// ------------------------------------------------------------------------
// Validation
// ------------------------------------------------------------------------

// TestValidation checks every precondition error.
func (s *SolveSuite) TestValidation() {
	g := s.grid("12\n34\n")
	origin := costgrid.Point{}
	cases := []struct {
		name  string
		grid  *costgrid.Grid
		start costgrid.Point
		goal  costgrid.Point
		opts  []runpath.Option
		want  error
	}{
		{"NilGrid", nil, origin, origin, nil, runpath.ErrNilGrid},
		{"MinRunZero", g, origin, origin, []runpath.Option{runpath.WithRunLength(0, 3)}, runpath.ErrBadRunLength},
		{"MaxBelowMin", g, origin, origin, []runpath.Option{runpath.WithRunLength(3, 2)}, runpath.ErrBadRunLength},
		{"NoHeadings", g, origin, origin, []runpath.Option{runpath.WithInitialDirections()}, runpath.ErrNoInitialDirections},
		{"NoneHeading", g, origin, origin, []runpath.Option{runpath.WithInitialDirections(direction.None)}, runpath.ErrInvalidDirection},
		{"BogusHeading", g, origin, origin, []runpath.Option{runpath.WithInitialDirections(direction.Direction(8))}, runpath.ErrInvalidDirection},
		{"StartOutside", g, costgrid.Point{Row: -1}, origin, nil, runpath.ErrOutOfBounds},
		{"GoalOutside", g, origin, costgrid.Point{Row: 0, Col: 2}, nil, runpath.ErrOutOfBounds},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			cost, path, err := runpath.Solve(tc.grid, tc.start, tc.goal, tc.opts...)
			s.ErrorIs(err, tc.want)
			s.Zero(cost)
			s.Nil(path)
		})
	}
}

// TestGoalOutOfBoundsBeforeSearch uses a cancelled context as a tripwire:
// if any search work started, Solve would report context.Canceled instead.
func (s *SolveSuite) TestGoalOutOfBoundsBeforeSearch() {
	g := s.grid("12\n34\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := runpath.Solve(g, costgrid.Point{}, costgrid.Point{Row: 5, Col: 5}, runpath.WithContext(ctx))
	s.Require().ErrorIs(err, runpath.ErrOutOfBounds)
	var oob *costgrid.OutOfBoundsError
	s.Require().True(errors.As(err, &oob))
	s.Equal(5, oob.Row)
	s.Equal(5, oob.Col)
}

// TestCancelledContext aborts before the first pop.
func (s *SolveSuite) TestCancelledContext() {
	g := s.grid(sampleGrid)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := runpath.Solve(g, costgrid.Point{}, corner(g), runpath.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

// TestLoggerReceivesStats checks the Debug record emitted per search.
func (s *SolveSuite) TestLoggerReceivesStats() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := s.grid("1111\n1111\n1111\n1111\n")

	_, _, err := runpath.Solve(g, costgrid.Point{}, costgrid.Point{Row: 3, Col: 3}, runpath.WithLogger(logger))
	s.Require().NoError(err)
	out := buf.String()
	s.Contains(out, `"msg":"runpath: search finished"`)
	s.Contains(out, `"cost":6`)
	s.Contains(out, `"pops":`)
}

// TestNilOptionValues falls back to defaults for nil Ctx and Logger.
func (s *SolveSuite) TestNilOptionValues() {
	g := s.grid("11\n11\n")
	cost, _, err := runpath.Solve(g, costgrid.Point{}, costgrid.Point{Row: 1, Col: 1},
		runpath.WithContext(nil), runpath.WithLogger(nil))
	s.Require().NoError(err)
	s.Equal(int64(2), cost)
}

// ------------------------------------------------------------------------
// helpers
// ------------------------------------------------------------------------

// pathCost sums the costs of every cell after the first.
func pathCost(t *testing.T, g *costgrid.Grid, path []costgrid.Point) int64 {
	t.Helper()
	var total int64
	for _, p := range path[1:] {
		c, err := g.CostAt(p.Row, p.Col)
		require.NoError(t, err)
		total += int64(c)
	}
	return total
}

// assertRunRules walks path and checks unit steps, no reversal, and every
// straight run within [minRun, maxRun].
func assertRunRules(t *testing.T, path []costgrid.Point, minRun, maxRun int) {
	t.Helper()
	require.GreaterOrEqual(t, len(path), 2)

	step := func(a, b costgrid.Point) [2]int { return [2]int{b.Row - a.Row, b.Col - a.Col} }
	prev := step(path[0], path[1])
	run := 1
	for i := 2; i < len(path); i++ {
		cur := step(path[i-1], path[i])
		require.Equal(t, 1, abs(cur[0])+abs(cur[1]), "non-unit step at %d", i)
		require.False(t, cur[0] == -prev[0] && cur[1] == -prev[1], "reversal at %d", i)
		if cur == prev {
			run++
			continue
		}
		require.GreaterOrEqual(t, run, minRun, "run too short before %d", i)
		require.LessOrEqual(t, run, maxRun, "run too long before %d", i)
		prev, run = cur, 1
	}
	require.GreaterOrEqual(t, run, minRun, "final run too short")
	require.LessOrEqual(t, run, maxRun, "final run too long")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
