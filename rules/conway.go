package rules

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns the name of the cell state
func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with two or three living neighbors and dies otherwise.
A dead cell becomes alive with exactly three living neighbors.
*/
func ApplyConwayRules(cell Cell, neighbors int) Cell {
	switch {
	case cell == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case cell == Dead && neighbors == 3:
		return Alive
	default:
		return Dead
	}
}
