package runpath

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/runpath/costgrid"
	"github.com/katalvlaran/runpath/direction"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *costgrid.Grid was passed to Solve.
	ErrNilGrid = errors.New("runpath: grid is nil")

	// ErrUnreachable indicates the frontier emptied without finalizing any
	// state on the goal cell. It is a normal, reportable outcome.
	ErrUnreachable = errors.New("runpath: goal unreachable under run-length constraints")

	// ErrNoInitialDirections indicates WithInitialDirections was given an empty set.
	ErrNoInitialDirections = errors.New("runpath: at least one initial direction is required")

	// ErrInvalidDirection indicates an initial direction outside North..West.
	ErrInvalidDirection = errors.New("runpath: invalid initial direction")

	// ErrBadRunLength indicates run bounds violating 1 <= MinRun <= MaxRun.
	ErrBadRunLength = errors.New("runpath: run length bounds must satisfy 1 <= MinRun <= MaxRun")

	// ErrMalformedGrid is costgrid.ErrMalformedGrid, re-exported for callers
	// that only import runpath.
	ErrMalformedGrid = costgrid.ErrMalformedGrid

	// ErrOutOfBounds is costgrid.ErrOutOfBounds. Solve returns it (as a wrapped
	// *costgrid.OutOfBoundsError) when start or goal lie outside the grid.
	ErrOutOfBounds = costgrid.ErrOutOfBounds
)

// Default run bounds: every run covers 1 to 3 cells before a mandatory turn.
const (
	DefaultMinRun = 1
	DefaultMaxRun = 3
)

// cancelCheckInterval is how many frontier pops pass between ctx.Err() checks.
const cancelCheckInterval = 1024

// State is the unit of search: a cell plus the heading of the run that
// entered it. The start state has Arrival == direction.None.
type State struct {
	Row, Col int
	Arrival  direction.Direction
}

// Point drops the arrival heading.
func (s State) Point() costgrid.Point {
	return costgrid.Point{Row: s.Row, Col: s.Col}
}

// String renders the state as "(row,col)/Heading".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d)/%s", s.Row, s.Col, s.Arrival)
}

// Options configures Solve.
//
// InitialDirections – headings allowed for the first run out of the start cell.
//
//	Default: all four. Must be non-empty; duplicates are ignored.
//
// MinRun, MaxRun – inclusive bounds on cells per run. Default 1..3.
// ReturnPath     – if true, Solve also returns the cells of one optimal path.
// Ctx            – checked every cancelCheckInterval pops. Default context.Background().
// Logger         – receives one Debug record per search. Default discards.
type Options struct {
	InitialDirections []direction.Direction
	MinRun            int
	MaxRun            int
	ReturnPath        bool
	Ctx               context.Context
	Logger            *slog.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithInitialDirections restricts the heading of the first run.
// Passing no directions is an error reported by Solve (ErrNoInitialDirections).
func WithInitialDirections(ds ...direction.Direction) Option {
	dirs := append([]direction.Direction{}, ds...)
	return func(o *Options) {
		o.InitialDirections = dirs
	}
}

// WithRunLength sets the inclusive bounds on cells travelled per run.
// Invalid bounds are reported by Solve as ErrBadRunLength.
func WithRunLength(minRun, maxRun int) Option {
	return func(o *Options) {
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// WithReturnPath enables path reconstruction; Solve then returns every cell
// entered from start to goal, both included.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithContext lets the caller abandon a long search. Solve returns ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithLogger routes search statistics to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options initialized with:
//   - InitialDirections: North, East, South, West.
//   - MinRun, MaxRun:    DefaultMinRun, DefaultMaxRun.
//   - ReturnPath:        false.
//   - Ctx:               context.Background().
//   - Logger:            a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		InitialDirections: direction.All(),
		MinRun:            DefaultMinRun,
		MaxRun:            DefaultMaxRun,
		ReturnPath:        false,
		Ctx:               context.Background(),
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// validate checks option values and normalizes nil Ctx/Logger.
// It returns the deduplicated initial directions in caller order.
func (o *Options) validate() ([]direction.Direction, error) {
	if o.MinRun < 1 || o.MaxRun < o.MinRun {
		return nil, fmt.Errorf("%w: got %d..%d", ErrBadRunLength, o.MinRun, o.MaxRun)
	}
	if len(o.InitialDirections) == 0 {
		return nil, ErrNoInitialDirections
	}
	var seen [direction.Count + 1]bool
	dirs := make([]direction.Direction, 0, direction.Count)
	for _, d := range o.InitialDirections {
		if !d.IsValid() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDirection, d)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return dirs, nil
}
