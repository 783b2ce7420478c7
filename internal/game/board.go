package game

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultSize is the classic 10x10 grid.
	DefaultSize = 10

	// maxPlacementAttempts bounds the random placement retry loop.
	maxPlacementAttempts = 100
)

// CellState is the visibility state of one grid cell.
type CellState int8

const (
	CellMiss  CellState = -1
	CellEmpty CellState = 0
	CellShip  CellState = 1
	CellHit   CellState = 2
)

// Outcome is the result class of a resolved shot.
type Outcome string

const (
	OutcomeMiss        Outcome = "miss"
	OutcomeHit         Outcome = "hit"
	OutcomeSunk        Outcome = "sunk"
	OutcomeAlreadyShot Outcome = "already_shot"
)

// ShotResult is what Fire reports back to the shooter. Ship carries the
// name of the sunk ship and is empty for every other outcome.
type ShotResult struct {
	Outcome Outcome `json:"outcome"`
	Ship    string  `json:"ship,omitempty"`
}

// IsHit reports whether the shot connected, counting sinks as hits.
func (r ShotResult) IsHit() bool {
	return r.Outcome == OutcomeHit || r.Outcome == OutcomeSunk
}

// Board owns ship placement, the chronological shot log, and per-cell
// visibility state for one side of a game.
type Board struct {
	Size int

	ships   []*Ship
	shots   []Position
	shotSet map[Position]bool
	grid    [][]CellState
}

func NewBoard(size int) *Board {
	grid := make([][]CellState, size)
	for r := range grid {
		grid[r] = make([]CellState, size)
	}
	return &Board{
		Size:    size,
		shotSet: make(map[Position]bool),
		grid:    grid,
	}
}

func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// AddShip registers an already-placed ship, rejecting runs that leave the
// grid or overlap another ship's footprint. Prior shots do not block placement.
func (b *Board) AddShip(ship *Ship) error {
	if !ship.IsPlaced() {
		return fmt.Errorf("%w: %s is not placed", ErrInvalidPlacement, ship.Name)
	}
	for _, cell := range ship.Cells() {
		if !b.InBounds(cell) {
			return fmt.Errorf("%w: %s cell %s is out of bounds", ErrInvalidPlacement, ship.Name, cell)
		}
		if b.grid[cell.Row][cell.Col] == CellShip {
			return fmt.Errorf("%w: %s overlaps at %s", ErrInvalidPlacement, ship.Name, cell)
		}
	}
	b.ships = append(b.ships, ship)
	for _, cell := range ship.Cells() {
		b.grid[cell.Row][cell.Col] = CellShip
	}
	return nil
}

// PlaceShipRandomly picks a random orientation and anchor until the ship
// fits without overlapping another ship, giving up after a fixed number
// of attempts.
func (b *Board) PlaceShipRandomly(ship *Ship) error {
	if ship.Length > b.Size {
		return fmt.Errorf("%w: %s is longer than the board", ErrInvalidPlacement, ship.Name)
	}

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		var cells []Position
		if rand.Intn(2) == 0 { // horizontal
			row := rand.Intn(b.Size)
			col := rand.Intn(b.Size - ship.Length + 1)
			for i := 0; i < ship.Length; i++ {
				cells = append(cells, Position{row, col + i})
			}
		} else { // vertical
			row := rand.Intn(b.Size - ship.Length + 1)
			col := rand.Intn(b.Size)
			for i := 0; i < ship.Length; i++ {
				cells = append(cells, Position{row + i, col})
			}
		}

		collides := false
		for _, cell := range cells {
			if b.grid[cell.Row][cell.Col] != CellEmpty {
				collides = true
				break
			}
		}
		if collides {
			continue
		}

		if err := ship.Place(cells); err != nil {
			return err
		}
		return b.AddShip(ship)
	}
	return fmt.Errorf("%w: no room for %s after %d attempts", ErrPlacementFailed, ship.Name, maxPlacementAttempts)
}

// Fire resolves a shot at the given cell. Shooting a cell twice is a
// first-class result, not an error; only out-of-bounds targets fail.
func (b *Board) Fire(pos Position) (ShotResult, error) {
	if !b.InBounds(pos) {
		return ShotResult{}, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	if b.shotSet[pos] {
		return ShotResult{Outcome: OutcomeAlreadyShot}, nil
	}

	b.shots = append(b.shots, pos)
	b.shotSet[pos] = true

	for _, ship := range b.ships {
		if ship.RegisterHit(pos) {
			b.grid[pos.Row][pos.Col] = CellHit
			if ship.IsSunk() {
				return ShotResult{Outcome: OutcomeSunk, Ship: ship.Name}, nil
			}
			return ShotResult{Outcome: OutcomeHit}, nil
		}
	}

	b.grid[pos.Row][pos.Col] = CellMiss
	return ShotResult{Outcome: OutcomeMiss}, nil
}

func (b *Board) HasShot(pos Position) bool {
	return b.shotSet[pos]
}

// Shots returns the chronological shot log.
func (b *Board) Shots() []Position {
	return append([]Position(nil), b.shots...)
}

func (b *Board) ShotCount() int {
	return len(b.shots)
}

// LegalMoves lists every cell not yet shot, in row-major order.
func (b *Board) LegalMoves() []Position {
	moves := make([]Position, 0, b.Size*b.Size-len(b.shots))
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			pos := Position{row, col}
			if !b.shotSet[pos] {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

func (b *Board) AllShipsSunk() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

// ShipCells returns the footprint of the named ship.
func (b *Board) ShipCells(name string) ([]Position, bool) {
	for _, ship := range b.ships {
		if ship.Name == name {
			return ship.Cells(), true
		}
	}
	return nil, false
}

func (b *Board) Ships() []*Ship {
	return append([]*Ship(nil), b.ships...)
}

// CellAt returns the visibility state of one cell.
func (b *Board) CellAt(pos Position) CellState {
	if !b.InBounds(pos) {
		return CellEmpty
	}
	return b.grid[pos.Row][pos.Col]
}
