// File: costgrid/example_test.go
package costgrid_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
)

// ExampleParse reads a small digit grid and inspects it.
func ExampleParse() {
	g, err := costgrid.ParseString(`
241
321
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c, _ := g.Cost(g.BottomRight())
	fmt.Printf("%dx%d grid, bottom-right %v costs %d\n", g.Width(), g.Height(), g.BottomRight(), c)
	// Output: 3x2 grid, bottom-right (2,1) costs 1
}
