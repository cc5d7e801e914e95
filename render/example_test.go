package render_test

import (
	"fmt"

	"github.com/katalvlaran/runpath/costgrid"
	"github.com/katalvlaran/runpath/render"
)

// ExampleOverlay draws a hand-built path over its grid.
func ExampleOverlay() {
	g, _ := costgrid.ParseString("123\n456\n")
	path := []costgrid.Point{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}

	out, err := render.Overlay(g, path)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(out)
	// Output:
	// 123
	// v>>
}
