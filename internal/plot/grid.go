// File: grid.go
// Title: Character Plot Grid
// Description: Fixed-size character cell buffer the rasterizer draws
//              into: blank cells, dashed axis marks and curve points.
//              Renders to text as a box-framed block ready to print.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial grid implementation

package plot

import "strings"

const (
	// GridWidth is the number of plottable columns
	GridWidth = 80

	// GridHeight is the number of plottable rows
	GridHeight = 20
)

// Cell markers
const (
	cellBlank = ' '
	cellCurve = '*'
)

// Grid is a fixed-dimension character buffer. Row 0 is the top line.
// A Grid is created fresh per render call and carries no hidden state.
type Grid struct {
	cells [GridHeight][GridWidth]byte
}

// NewGrid returns a blank grid
func NewGrid() *Grid {
	g := &Grid{}
	for row := 0; row < GridHeight; row++ {
		for col := 0; col < GridWidth; col++ {
			g.cells[row][col] = cellBlank
		}
	}
	return g
}

// At returns the cell at (row, col), or blank when out of bounds
func (g *Grid) At(row, col int) byte {
	if !g.inBounds(row, col) {
		return cellBlank
	}
	return g.cells[row][col]
}

// mark sets a curve point, ignoring out-of-bounds coordinates
func (g *Grid) mark(row, col int) {
	if g.inBounds(row, col) {
		g.cells[row][col] = cellCurve
	}
}

// markIfBlank sets a curve point only into a blank cell, so interpolated
// segments never overwrite axis marks or solved points
func (g *Grid) markIfBlank(row, col int) {
	if g.inBounds(row, col) && g.cells[row][col] == cellBlank {
		g.cells[row][col] = cellCurve
	}
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < GridHeight && col >= 0 && col < GridWidth
}

// drawAxes draws the dashed axis lines through the given center row and
// column. The dashing alternates by cell parity and is purely cosmetic.
// Axis marks are drawn first; the vertical axis wins at the crossing,
// and curve points later overwrite axis cells they land on.
func (g *Grid) drawAxes(centerRow, centerCol int) {
	for row := 0; row < GridHeight; row++ {
		for col := 0; col < GridWidth; col++ {
			if row == centerRow {
				if col%2 == 0 {
					g.cells[row][col] = '+'
				} else {
					g.cells[row][col] = '-'
				}
			}
			if col == centerCol {
				if row%2 == 0 {
					g.cells[row][col] = '+'
				} else {
					g.cells[row][col] = '|'
				}
			}
		}
	}
}

// String renders the grid as a box-framed text block:
//
//	+--------+
//	|  cells |
//	+--------+
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((GridWidth + 3) * (GridHeight + 2))

	frame := "+" + strings.Repeat("-", GridWidth) + "+\n"

	b.WriteString(frame)
	for row := 0; row < GridHeight; row++ {
		b.WriteByte('|')
		b.Write(g.cells[row][:])
		b.WriteString("|\n")
	}
	b.WriteString(frame)

	return b.String()
}
