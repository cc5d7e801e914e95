// Package render draws a costgrid.Grid and a solved path, either as the
// textual grid with heading markers or as a Graphviz DOT graph.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/runpath/costgrid"
)

// ErrBrokenPath indicates consecutive path cells that are not grid neighbours,
// or a cell outside the grid.
var ErrBrokenPath = errors.New("render: path cells must be in-grid orthogonal neighbours")

// Path cell markers, by the heading used to enter the cell.
const (
	markNorth = '^'
	markEast  = '>'
	markSouth = 'v'
	markWest  = '<'
)

// graphName is the DOT graph identifier.
const graphName = "runpath"

// Overlay returns g's textual form with every path cell after the start
// replaced by the arrow of the step that entered it.
func Overlay(g *costgrid.Grid, path []costgrid.Point) (string, error) {
	if err := checkPath(g, path); err != nil {
		return "", err
	}
	rows := make([][]byte, g.Height)
	for r, line := range strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n") {
		rows[r] = []byte(line)
	}
	for i := 1; i < len(path); i++ {
		p := path[i]
		rows[p.Row][p.Col] = marker(path[i-1], p)
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// DOT renders the path as a directed Graphviz graph: one node per path cell
// labelled with its coordinates and cost, one edge per step labelled with the
// accumulated cost after the step.
func DOT(g *costgrid.Grid, path []costgrid.Point) (string, error) {
	if err := checkPath(g, path); err != nil {
		return "", err
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := graph.SetDir(true); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	attrs := map[string]string{
		"rankdir": "LR",
		"nodesep": "0.3",
	}
	for field, value := range attrs {
		if err := graph.AddAttr(graphName, field, value); err != nil {
			return "", fmt.Errorf("render: graph attr %s: %w", field, err)
		}
	}

	var total int
	for i, p := range path {
		c, _ := g.CostAt(p.Row, p.Col)
		nodeAttrs := map[string]string{
			"label": fmt.Sprintf(`"%d,%d\n%d"`, p.Row, p.Col, c),
			"shape": "box",
		}
		if i == 0 || i == len(path)-1 {
			nodeAttrs["style"] = "filled"
			nodeAttrs["fillcolor"] = "lightgrey"
		}
		if !graph.IsNode(nodeID(p)) {
			if err := graph.AddNode(graphName, nodeID(p), nodeAttrs); err != nil {
				return "", fmt.Errorf("render: node %v: %w", p, err)
			}
		}
		if i == 0 {
			continue
		}
		total += c
		edgeAttrs := map[string]string{
			"label": fmt.Sprintf(`"%d"`, total),
		}
		if err := graph.AddEdge(nodeID(path[i-1]), nodeID(p), true, edgeAttrs); err != nil {
			return "", fmt.Errorf("render: edge %v->%v: %w", path[i-1], p, err)
		}
	}

	return graph.String(), nil
}

// nodeID is a DOT-safe identifier for p.
func nodeID(p costgrid.Point) string {
	return fmt.Sprintf("r%dc%d", p.Row, p.Col)
}

// marker picks the arrow for the step from a to b.
func marker(a, b costgrid.Point) byte {
	switch {
	case b.Row < a.Row:
		return markNorth
	case b.Row > a.Row:
		return markSouth
	case b.Col < a.Col:
		return markWest
	default:
		return markEast
	}
}

func checkPath(g *costgrid.Grid, path []costgrid.Point) error {
	if g == nil {
		return fmt.Errorf("%w: grid is nil", ErrBrokenPath)
	}
	for i, p := range path {
		if err := g.Check(p); err != nil {
			return fmt.Errorf("%w: %v", ErrBrokenPath, err)
		}
		if i == 0 {
			continue
		}
		q := path[i-1]
		if abs(p.Row-q.Row)+abs(p.Col-q.Col) != 1 {
			return fmt.Errorf("%w: %v then %v", ErrBrokenPath, q, p)
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
