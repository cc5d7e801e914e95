// Package costgrid holds an immutable rectangular table of per-cell traversal
// costs, the terrain that runpath searches over.
//
// What:
//
//   - Grid stores Height×Width single-digit costs (0..9) in row-major order.
//   - New validates a [][]int; Parse reads the textual form (one line per row,
//     one ASCII digit per column, no separators).
//   - CostAt answers bounds-checked lookups; InBounds, Index and Coordinate
//     translate between (row, col) and row-major indices.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - CostAt, InBounds, Index, Coordinate: O(1).
//   - MinCost: O(1), computed once at construction.
//
// Errors:
//
//   - ErrMalformedGrid: empty input, ragged rows, or a cost outside 0..9
//     (non-digit characters when parsing). Wrapped with row/column detail.
//   - ErrOutOfBounds: returned as *OutOfBoundsError carrying the offending
//     coordinates; match with errors.Is or errors.As.
package costgrid
