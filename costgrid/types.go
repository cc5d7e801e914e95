package costgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for costgrid operations.
var (
	// ErrMalformedGrid indicates the input is empty, ragged, or holds a cost outside [MinCost, MaxCost].
	ErrMalformedGrid = errors.New("costgrid: malformed grid")
	// ErrOutOfBounds indicates a coordinate outside [0,Height)×[0,Width).
	ErrOutOfBounds = errors.New("costgrid: coordinates out of bounds")
)

// Accepted per-cell cost range (single decimal digit).
const (
	MinCost = 0
	MaxCost = 9
)

// Point addresses a single cell by row and column.
type Point struct {
	Row, Col int
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// OutOfBoundsError reports a lookup outside the grid.
// It unwraps to ErrOutOfBounds.
type OutOfBoundsError struct {
	Row, Col      int
	Height, Width int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("costgrid: coordinates (%d,%d) out of bounds for %dx%d grid", e.Row, e.Col, e.Height, e.Width)
}

// Unwrap lets errors.Is(err, ErrOutOfBounds) match.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Grid is an immutable Height×Width table of traversal costs.
// cells holds costs in row-major order; minCost caches the smallest cell.
type Grid struct {
	Height, Width int
	cells         []int
	minCost       int
}
