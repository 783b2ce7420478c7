package game

import "fmt"

// Position is a cell on the grid, 0-indexed, row-major.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Neighbors returns the four orthogonally adjacent cells, unbounded.
// Callers filter against board limits.
func (p Position) Neighbors() [4]Position {
	return [4]Position{
		{p.Row + 1, p.Col},
		{p.Row - 1, p.Col},
		{p.Row, p.Col + 1},
		{p.Row, p.Col - 1},
	}
}

// ManhattanDistance returns the grid distance to another cell.
func (p Position) ManhattanDistance(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
