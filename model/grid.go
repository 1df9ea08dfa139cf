package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/gol-window/rules"
)

// Sampler provides uniform integer sampling over [0, n)
type Sampler interface {
	Intn(n int) int
}

// Grid represents the game board: a fixed rows x columns array of cells stored
// row-major in a flat slice.
type Grid struct {
	rows    int
	columns int
	cells   []rules.Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, columns int) *Grid {
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]rules.Cell, rows*columns),
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns in the grid
func (g *Grid) Columns() int {
	return g.columns
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// Clear sets every cell dead
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = rules.Dead
	}
}

// Set sets the state of a cell, ignoring out-of-range coordinates
func (g *Grid) Set(row, col int, cell rules.Cell) {
	if g.inBounds(row, col) {
		g.cells[row*g.columns+col] = cell
	}
}

// Get returns the state of a cell, Dead outside the grid
func (g *Grid) Get(row, col int) rules.Cell {
	if !g.inBounds(row, col) {
		return rules.Dead
	}
	return g.cells[row*g.columns+col]
}

// Seed clears the grid and marks n uniformly chosen positions alive. Positions
// are drawn with replacement, so the live count may end up below n.
func (g *Grid) Seed(rng Sampler, n int) {
	g.Clear()
	for i := 0; i < n; i++ {
		row := rng.Intn(g.rows)
		col := rng.Intn(g.columns)
		g.cells[row*g.columns+col] = rules.Alive
	}
}

// CountNeighbors counts living cells in the Moore neighborhood of (row, col).
// Positions outside the grid are skipped; the grid does not wrap.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.columns-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		base := r * g.columns
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[base+c] == rules.Alive {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, cell := range g.cells {
		if cell == rules.Alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same shape and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, cell := range g.cells {
		buf[i] = byte(cell)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// AddGlider adds a glider whose bounding box starts at (startRow, startCol)
func (g *Grid) AddGlider(startRow, startCol int) {
	pattern := [][]rules.Cell{
		{rules.Dead, rules.Alive, rules.Dead},
		{rules.Dead, rules.Dead, rules.Alive},
		{rules.Alive, rules.Alive, rules.Alive},
	}

	for r, line := range pattern {
		for c, cell := range line {
			g.Set(startRow+r, startCol+c, cell)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator
func (g *Grid) AddBlinker(startRow, startCol int) {
	g.Set(startRow, startCol, rules.Alive)
	g.Set(startRow, startCol+1, rules.Alive)
	g.Set(startRow, startCol+2, rules.Alive)
}

// AddBlock adds a 2x2 still life
func (g *Grid) AddBlock(startRow, startCol int) {
	g.Set(startRow, startCol, rules.Alive)
	g.Set(startRow, startCol+1, rules.Alive)
	g.Set(startRow+1, startCol, rules.Alive)
	g.Set(startRow+1, startCol+1, rules.Alive)
}
