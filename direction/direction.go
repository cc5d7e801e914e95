// Package direction models the four cardinal headings on a row/column grid
// and the turn rules between them.
//
// Every relation (unit offset, inverse, perpendiculars, legal next headings)
// is a fixed array indexed by Direction, so callers do one lookup instead of
// comparing direction pairs.
//
// Rows grow southwards and columns grow eastwards:
//
//	        North (-1, 0)
//	West (0,-1)   East (0,+1)
//	        South (+1, 0)
//
// The zero value None means "no heading yet". It is its own inverse, has no
// perpendiculars, and LegalNext(None) returns all four headings, which is how
// a search seeds its start state.
package direction

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by Parse for unrecognised names.
var ErrUnknownDirection = errors.New("direction: unknown direction")

// Direction is a cardinal heading, or None.
type Direction uint8

const (
	None Direction = iota
	North
	East
	South
	West
)

// Count is the number of real headings (excluding None).
const Count = 4

// offsets[d] = (dRow, dCol) for one step in heading d.
var offsets = [...][2]int{
	None:  {0, 0},
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

var inverses = [...]Direction{
	None:  None,
	North: South,
	East:  West,
	South: North,
	West:  East,
}

var perpendiculars = [...][2]Direction{
	None:  {None, None},
	North: {East, West},
	East:  {North, South},
	South: {East, West},
	West:  {North, South},
}

// legalNext is derived from inverses: every heading that is neither d nor its inverse.
var legalNext = func() [Count + 1][]Direction {
	var t [Count + 1][]Direction
	for d := None; d <= West; d++ {
		for _, n := range all {
			if n != d && n != inverses[d] {
				t[d] = append(t[d], n)
			}
		}
	}
	return t
}()

var all = []Direction{North, East, South, West}

var names = [...]string{
	None:  "None",
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// All returns the four headings in clockwise order starting at North.
// The returned slice is freshly allocated.
func All() []Direction {
	return []Direction{North, East, South, West}
}

// IsValid reports whether d is one of the four headings.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Offset returns the row and column delta of one step in heading d.
// None and invalid values yield (0, 0).
func (d Direction) Offset() (dRow, dCol int) {
	if d > West {
		return 0, 0
	}
	o := offsets[d]
	return o[0], o[1]
}

// Inverse returns the opposite heading.
func (d Direction) Inverse() Direction {
	if d > West {
		return None
	}
	return inverses[d]
}

// IsInverseOf reports whether a and b point in opposite directions.
func IsInverseOf(a, b Direction) bool {
	return a.IsValid() && b.IsValid() && inverses[a] == b
}

// Perpendiculars returns the two headings at right angles to d.
// For None (or an invalid value) both entries are None.
func Perpendiculars(d Direction) [2]Direction {
	if d > West {
		return [2]Direction{}
	}
	return perpendiculars[d]
}

// LegalNext returns the headings a path may take after arriving with heading
// arrival: the two perpendiculars, or all four when arrival is None.
// The slice is shared; callers must not modify it.
func LegalNext(arrival Direction) []Direction {
	if arrival > West {
		return nil
	}
	return legalNext[arrival]
}

// String returns the heading name.
func (d Direction) String() string {
	if d > West {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// Parse accepts a heading name or its initial, case-insensitively
// ("north", "N", "East", "e", ...). None is not accepted.
func Parse(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ParseList parses a comma-separated list of headings, e.g. "east,south".
func ParseList(s string) ([]Direction, error) {
	var out []Direction
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
