package model

import "github.com/sheikhrachel/gol-window/rules"

// Generation is a double-buffered pair of grids. Step reads only the current
// grid and writes only the next one, then the two swap roles.
type Generation struct {
	current *Grid
	next    *Grid
}

// NewGeneration allocates both buffers with identical dimensions
func NewGeneration(rows, columns int) *Generation {
	return &Generation{
		current: NewGrid(rows, columns),
		next:    NewGrid(rows, columns),
	}
}

// Current returns the grid holding the latest generation
func (gen *Generation) Current() *Grid {
	return gen.current
}

// Step computes the successor of the current grid into the next buffer and
// swaps the buffers.
func (gen *Generation) Step() {
	cur, next := gen.current, gen.next
	for row := 0; row < cur.rows; row++ {
		base := row * cur.columns
		for col := 0; col < cur.columns; col++ {
			next.cells[base+col] = rules.ApplyConwayRules(cur.cells[base+col], cur.CountNeighbors(row, col))
		}
	}
	gen.current, gen.next = next, cur
}
