package costgrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads the textual grid form: one line per row, one ASCII digit per
// column, no separators. Trailing '\r' is stripped and blank lines at the end
// of input are ignored; a blank line followed by more rows is malformed.
// Any non-digit character yields ErrMalformedGrid with its line and column.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	var (
		rows    [][]int
		blankAt int // 1-based line of a pending blank line, 0 if none
		line    int
	)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			if blankAt == 0 {
				blankAt = line
			}
			continue
		}
		if blankAt != 0 {
			return nil, fmt.Errorf("%w: blank line %d inside grid", ErrMalformedGrid, blankAt)
		}
		row := make([]int, len(text))
		for i := 0; i < len(text); i++ {
			ch := text[i]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: non-digit %q at line %d, column %d", ErrMalformedGrid, ch, line, i+1)
			}
			row[i] = int(ch - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("costgrid: read grid: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
