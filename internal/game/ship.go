package game

import "fmt"

// Ship is a straight run of cells with per-cell hit tracking.
// A ship starts unplaced; Place commits its cells exactly once.
type Ship struct {
	Name   string
	Length int

	cells []Position
	hits  map[Position]bool
}

func NewShip(name string, length int) *Ship {
	return &Ship{
		Name:   name,
		Length: length,
		hits:   make(map[Position]bool),
	}
}

// StandardFleet returns the classic five-ship fleet.
func StandardFleet() []*Ship {
	return []*Ship{
		NewShip("Carrier", 5),
		NewShip("Battleship", 4),
		NewShip("Cruiser", 3),
		NewShip("Submarine", 3),
		NewShip("Destroyer", 2),
	}
}

// Place commits the ship to the given run of cells. The run must match the
// ship's length and form a straight contiguous line. Re-placement is rejected.
func (s *Ship) Place(cells []Position) error {
	if s.IsPlaced() {
		return fmt.Errorf("%w: %s is already placed", ErrInvalidPlacement, s.Name)
	}
	if len(cells) != s.Length {
		return fmt.Errorf("%w: %s needs %d cells, got %d", ErrInvalidPlacement, s.Name, s.Length, len(cells))
	}
	if !isStraightRun(cells) {
		return fmt.Errorf("%w: %s cells are not a straight contiguous run", ErrInvalidPlacement, s.Name)
	}
	s.cells = append([]Position(nil), cells...)
	return nil
}

// isStraightRun reports whether cells form a contiguous horizontal or
// vertical line in the order given.
func isStraightRun(cells []Position) bool {
	if len(cells) <= 1 {
		return len(cells) == 1
	}
	horizontal := true
	vertical := true
	for i, c := range cells {
		if c.Row != cells[0].Row || c.Col != cells[0].Col+i {
			horizontal = false
		}
		if c.Col != cells[0].Col || c.Row != cells[0].Row+i {
			vertical = false
		}
	}
	return horizontal || vertical
}

func (s *Ship) IsPlaced() bool {
	return len(s.cells) == s.Length
}

// RegisterHit records a hit if the position belongs to the ship.
// Repeated hits on the same cell do not double-count.
func (s *Ship) RegisterHit(pos Position) bool {
	if !s.Occupies(pos) {
		return false
	}
	s.hits[pos] = true
	return true
}

func (s *Ship) Occupies(pos Position) bool {
	for _, c := range s.cells {
		if c == pos {
			return true
		}
	}
	return false
}

func (s *Ship) IsSunk() bool {
	return len(s.hits) == s.Length
}

// Cells returns a copy of the ship's placed run; empty until placed.
func (s *Ship) Cells() []Position {
	return append([]Position(nil), s.cells...)
}
