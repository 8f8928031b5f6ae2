// File: raster.go
// Title: Implicit Curve Rasterizer
// Description: Renders an equation onto the character grid. Every column
//              is sampled at several sub-column x positions; for each, a
//              bank of initial y guesses is handed to the Newton solver
//              and converged roots are projected to grid cells. Adjacent
//              solutions of the same guess index are stitched with
//              Bresenham interpolation to form a continuous curve from
//              independently solved points.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial rasterizer implementation

package plot

import (
	"strings"

	"github.com/msto63/mGW/internal/solver"
)

const (
	// InitialGuesses is the number of initial y seeds per sample
	InitialGuesses = 40

	// PointsPerColumn is the number of sub-column x samples per column
	PointsPerColumn = 10

	// unitsPerCell converts plot units to cells at zoom 1
	unitsPerCell = 5.0
)

// Settings are the view parameters of one render pass. They are read-only
// during rendering; the session layer produces updated copies between
// passes.
type Settings struct {
	Zoom    float64
	XOffset float64
	YOffset float64
}

// DefaultSettings returns the initial view: zoom 1, origin centered
func DefaultSettings() Settings {
	return Settings{Zoom: 1.0}
}

// branchPoint is the last plotted point of one guess index, carried
// across columns to decide whether to interpolate
type branchPoint struct {
	value float64
	row   int
	ok    bool
}

// Render rasterizes equation under the given view settings and returns
// the completed grid. The call is deterministic and keeps no state
// between invocations.
func Render(equation string, s Settings) *Grid {
	g := NewGrid()

	centerCol := int(float64(GridWidth)/2 - s.XOffset*unitsPerCell*s.Zoom)
	centerRow := int(float64(GridHeight)/2 + s.YOffset*unitsPerCell*s.Zoom)
	g.drawAxes(centerRow, centerCol)

	eq := solver.Parse(equation)
	yMin, yMax := guessRange(equation)

	var prev [InitialGuesses]branchPoint

	for col := 0; col < GridWidth; col++ {
		for sub := 0; sub < PointsPerColumn; sub++ {
			xVal := (float64(col) - float64(GridWidth)/2 + float64(sub)/PointsPerColumn) /
				(unitsPerCell * s.Zoom) + s.XOffset

			for k := 0; k < InitialGuesses; k++ {
				guess := yMin + (yMax-yMin)*float64(k)/float64(InitialGuesses-1)

				yVal := solver.SolveEquation(eq, xVal, guess)
				if !solver.IsSolution(yVal) {
					continue
				}

				row := int(float64(GridHeight)/2 - yVal*unitsPerCell*s.Zoom +
					s.YOffset*unitsPerCell*s.Zoom)
				if row < 0 || row >= GridHeight {
					continue
				}

				g.mark(row, col)

				if prev[k].ok && col > 0 {
					g.stitch(col-1, prev[k].row, col, row)
				}

				prev[k] = branchPoint{value: yVal, row: row, ok: true}
			}
		}
	}

	return g
}

// guessRange picks the initial-guess span from the equation text.
// Like the periodic-wrap heuristic this is a raw substring check,
// kept literal for behavioral fidelity.
func guessRange(equation string) (yMin, yMax float64) {
	switch {
	case strings.Contains(equation, "sin") || strings.Contains(equation, "cos"):
		return -1.5, 1.5
	case strings.Contains(equation, "ln") || strings.Contains(equation, "log"):
		return -10, 10
	default:
		return -5, 5
	}
}

// stitch connects two same-branch points in adjacent columns with
// Bresenham interpolation, painting only blank cells so axis marks and
// solved points stay intact.
func (g *Grid) stitch(x0, y0, x1, y1 int) {
	dx := x1 - x0
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	errAcc := dx / 2
	y := y0

	for x := x0; x <= x1; x++ {
		g.markIfBlank(y, x)
		errAcc -= dy
		if errAcc < 0 {
			y += sy
			errAcc += dx
		}
	}
}
