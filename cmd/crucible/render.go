package main

import (
	"strings"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/runpath"
)

// arrows maps a heading to the glyph drawn on the cell it entered.
var arrows = map[runpath.Heading]byte{
	runpath.Up:    '^',
	runpath.Down:  'v',
	runpath.Left:  '<',
	runpath.Right: '>',
}

// renderRoute draws the grid with every entered cell replaced by the arrow
// of the heading it was entered with. The start cell keeps its digit.
func renderRoute(g *costgrid.Grid, states []runpath.State) string {
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	cells := make([][]byte, len(lines))
	for y, l := range lines {
		cells[y] = []byte(l)
	}

	for _, s := range states {
		glyph, ok := arrows[s.Heading]
		if !ok || !g.InBounds(s.Pos) {
			continue
		}
		cells[s.Pos.Y][s.Pos.X] = glyph
	}

	var sb strings.Builder
	for _, row := range cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
