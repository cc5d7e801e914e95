package costgrid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of costs.
// It copies the input so later changes to rows do not leak into the grid.
// Returns ErrMalformedGrid (wrapped with detail) if rows is empty, any row
// length differs from the first, or any cost lies outside [MinCost, MaxCost].
// Complexity: O(W×H) time and memory.
func New(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	}
	h, w := len(rows), len(rows[0])
	cells := make([]int, 0, h*w)
	minCost := MaxCost
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), w)
		}
		for c, v := range row {
			if v < MinCost || v > MaxCost {
				return nil, fmt.Errorf("%w: cost %d at (%d,%d) outside %d..%d", ErrMalformedGrid, v, r, c, MinCost, MaxCost)
			}
			if v < minCost {
				minCost = v
			}
			cells = append(cells, v)
		}
	}

	return &Grid{
		Height:  h,
		Width:   w,
		cells:   cells,
		minCost: minCost,
	}, nil
}

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Contains reports whether p lies within the grid.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.Row, p.Col)
}

// CostAt returns the cost of entering (row,col), or an *OutOfBoundsError.
// Complexity: O(1).
func (g *Grid) CostAt(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, &OutOfBoundsError{Row: row, Col: col, Height: g.Height, Width: g.Width}
	}

	return g.cells[g.Index(row, col)], nil
}

// Check returns an *OutOfBoundsError if p is outside the grid, nil otherwise.
func (g *Grid) Check(p Point) error {
	if !g.Contains(p) {
		return &OutOfBoundsError{Row: p.Row, Col: p.Col, Height: g.Height, Width: g.Width}
	}

	return nil
}

// Index maps (row,col) to a row-major index: row*Width + col.
// The caller is responsible for bounds.
func (g *Grid) Index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major index back to (row,col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Width, idx % g.Width
}

// Len returns the number of cells, Height×Width.
func (g *Grid) Len() int {
	return len(g.cells)
}

// MinCost returns the cheapest single cell in the grid.
func (g *Grid) MinCost() int {
	return g.minCost
}

// Rows returns a deep copy of the costs as a 2D slice.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.Height)
	for r := 0; r < g.Height; r++ {
		out[r] = make([]int, g.Width)
		copy(out[r], g.cells[r*g.Width:(r+1)*g.Width])
	}

	return out
}

// String renders the grid in its textual form, one line per row.
// Parse(strings.NewReader(g.String())) yields an equal grid.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for i, v := range g.cells {
		sb.WriteByte(byte('0' + v))
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
