package game

import (
	"errors"
	"testing"
)

func placeShip(t *testing.T, b *Board, name string, cells ...Position) *Ship {
	t.Helper()
	ship := NewShip(name, len(cells))
	if err := ship.Place(cells); err != nil {
		t.Fatalf("placing %s: %v", name, err)
	}
	if err := b.AddShip(ship); err != nil {
		t.Fatalf("adding %s: %v", name, err)
	}
	return ship
}

func TestFireResolvesMissHitSunk(t *testing.T) {
	b := NewBoard(10)
	placeShip(t, b, "Cruiser", Position{2, 2}, Position{2, 3}, Position{2, 4})

	res, err := b.Fire(Position{0, 0})
	if err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if res.Outcome != OutcomeMiss {
		t.Errorf("expected miss, got %s", res.Outcome)
	}
	if b.CellAt(Position{0, 0}) != CellMiss {
		t.Error("missed cell should be marked CellMiss")
	}

	for _, pos := range []Position{{2, 2}, {2, 3}} {
		res, err = b.Fire(pos)
		if err != nil {
			t.Fatalf("Fire %s: %v", pos, err)
		}
		if res.Outcome != OutcomeHit {
			t.Errorf("expected hit at %s, got %s", pos, res.Outcome)
		}
	}

	res, err = b.Fire(Position{2, 4})
	if err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if res.Outcome != OutcomeSunk || res.Ship != "Cruiser" {
		t.Errorf("expected sunk Cruiser, got %s %q", res.Outcome, res.Ship)
	}
	if !b.AllShipsSunk() {
		t.Error("board with its only ship sunk must report defeated")
	}
}

func TestFireAlreadyShotIsNoOp(t *testing.T) {
	b := NewBoard(10)
	placeShip(t, b, "Destroyer", Position{5, 5}, Position{5, 6})

	if _, err := b.Fire(Position{5, 5}); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	before := b.ShotCount()

	res, err := b.Fire(Position{5, 5})
	if err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if res.Outcome != OutcomeAlreadyShot {
		t.Errorf("expected already_shot, got %s", res.Outcome)
	}
	if b.ShotCount() != before {
		t.Error("repeated shot must not grow the shot log")
	}
}

func TestFireOutOfBounds(t *testing.T) {
	b := NewBoard(10)
	if _, err := b.Fire(Position{10, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := b.Fire(Position{0, -1}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestLegalMovesInvariant(t *testing.T) {
	b := NewBoard(10)

	shots := []Position{{0, 0}, {3, 7}, {9, 9}, {5, 5}}
	for i, pos := range shots {
		if _, err := b.Fire(pos); err != nil {
			t.Fatalf("Fire: %v", err)
		}
		if got := len(b.LegalMoves()) + b.ShotCount(); got != 100 {
			t.Fatalf("after %d shots, legal+shot = %d, want 100", i+1, got)
		}
	}

	for _, move := range b.LegalMoves() {
		if b.HasShot(move) {
			t.Fatalf("legal move %s is already shot", move)
		}
	}
}

func TestLegalMovesRowMajor(t *testing.T) {
	b := NewBoard(3)
	if _, err := b.Fire(Position{0, 0}); err != nil {
		t.Fatalf("Fire: %v", err)
	}

	moves := b.LegalMoves()
	want := []Position{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	if len(moves) != len(want) {
		t.Fatalf("expected %d moves, got %d", len(want), len(moves))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("move %d: got %s, want %s", i, moves[i], want[i])
		}
	}
}

func TestAddShipRejectsOverlap(t *testing.T) {
	b := NewBoard(10)
	placeShip(t, b, "Cruiser", Position{2, 2}, Position{2, 3}, Position{2, 4})

	other := NewShip("Destroyer", 2)
	if err := other.Place([]Position{{1, 3}, {2, 3}}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := b.AddShip(other); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("expected ErrInvalidPlacement on overlap, got %v", err)
	}
}

func TestPlaceShipRandomly(t *testing.T) {
	b := NewBoard(10)
	for _, ship := range StandardFleet() {
		if err := b.PlaceShipRandomly(ship); err != nil {
			t.Fatalf("placing %s: %v", ship.Name, err)
		}
	}

	occupied := map[Position]bool{}
	for _, ship := range b.Ships() {
		cells := ship.Cells()
		if len(cells) != ship.Length {
			t.Errorf("%s placed with %d cells, want %d", ship.Name, len(cells), ship.Length)
		}
		for _, cell := range cells {
			if !b.InBounds(cell) {
				t.Errorf("%s cell %s out of bounds", ship.Name, cell)
			}
			if occupied[cell] {
				t.Errorf("cell %s occupied by two ships", cell)
			}
			occupied[cell] = true
		}
	}
}

func TestPlaceShipRandomlyExhaustsRetries(t *testing.T) {
	// Fill a 2x2 board completely so any further placement must collide.
	b := NewBoard(2)
	placeShip(t, b, "A", Position{0, 0}, Position{1, 0})
	placeShip(t, b, "B", Position{0, 1}, Position{1, 1})

	extra := NewShip("C", 2)
	if err := b.PlaceShipRandomly(extra); !errors.Is(err, ErrPlacementFailed) {
		t.Errorf("expected ErrPlacementFailed on a full board, got %v", err)
	}
}

func TestAllShipsSunkRequiresShips(t *testing.T) {
	b := NewBoard(10)
	if b.AllShipsSunk() {
		t.Error("an empty board is not defeated")
	}
}
