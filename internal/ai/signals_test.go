package ai

import (
	"testing"

	"battleship/internal/game"
	"battleship/internal/history"
)

func TestParityPartition(t *testing.T) {
	b := game.NewBoard(10)
	signal := Parity{}

	ones, zeros := 0, 0
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			switch signal.Score(game.Position{Row: row, Col: col}, b) {
			case 1.0:
				ones++
			case 0.0:
				zeros++
			default:
				t.Fatalf("parity score at (%d,%d) is neither 0 nor 1", row, col)
			}
		}
	}
	if ones != 50 || zeros != 50 {
		t.Errorf("expected a 50/50 checkerboard partition, got %d/%d", ones, zeros)
	}

	// Stable across calls.
	if signal.Score(game.Position{Row: 3, Col: 5}, b) != signal.Score(game.Position{Row: 3, Col: 5}, b) {
		t.Error("parity score must be stable")
	}
}

func TestCenterBiasMaximalOnlyAtCenter(t *testing.T) {
	b := game.NewBoard(10)
	signal := CenterBias{}
	center := game.Position{Row: 5, Col: 5}

	if got := signal.Score(center, b); got != 1.0 {
		t.Fatalf("center score = %v, want 1.0", got)
	}

	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			pos := game.Position{Row: row, Col: col}
			if pos == center {
				continue
			}
			if signal.Score(pos, b) >= 1.0 {
				t.Errorf("score at %s reaches the center maximum", pos)
			}
		}
	}
}

func TestCenterBiasMonotoneInDistance(t *testing.T) {
	b := game.NewBoard(10)
	signal := CenterBias{}
	center := game.Position{Row: 5, Col: 5}

	// Walking outward along a row, the score never increases.
	prev := signal.Score(center, b)
	for col := 6; col < 10; col++ {
		score := signal.Score(game.Position{Row: 5, Col: col}, b)
		if score > prev {
			t.Errorf("score increased moving away from center at col %d", col)
		}
		prev = score
	}

	// Equal distances score equally.
	a := signal.Score(game.Position{Row: 3, Col: 5}, b)
	c := signal.Score(game.Position{Row: 5, Col: 3}, b)
	if a != c {
		t.Errorf("equidistant cells score differently: %v vs %v", a, c)
	}
}

func TestHistoricalDegradesToZero(t *testing.T) {
	b := game.NewBoard(10)

	// Nil lookup: no store configured at all.
	signal := NewHistorical(nil)
	if got := signal.Score(game.Position{Row: 4, Col: 4}, b); got != 0.0 {
		t.Errorf("nil lookup should score 0, got %v", got)
	}

	// Empty store: lookups succeed but match nothing.
	signal = NewHistorical(history.NewMemoryStore())
	if got := signal.Score(game.Position{Row: 4, Col: 4}, b); got != 0.0 {
		t.Errorf("empty store should score 0, got %v", got)
	}
}

func TestHistoricalHitRate(t *testing.T) {
	store := history.NewMemoryStore()

	// Two logged games opening at (4,4): one hit, one miss, then one more
	// hit at the same cell in a third game. Rate = 2/3.
	seed := []struct {
		matchID string
		outcome game.Outcome
	}{
		{"g1", game.OutcomeHit},
		{"g2", game.OutcomeMiss},
		{"g3", game.OutcomeHit},
	}
	for _, s := range seed {
		store.RecordShot(game.ShotEvent{
			MatchID:  s.matchID,
			Round:    1,
			Shooter:  game.ShooterAI,
			Position: game.Position{Row: 4, Col: 4},
			Result:   game.ShotResult{Outcome: s.outcome},
			Shots:    []game.Position{{Row: 4, Col: 4}},
		})
	}

	b := game.NewBoard(10)
	signal := NewHistorical(store)

	got := signal.Score(game.Position{Row: 4, Col: 4}, b)
	want := 2.0 / 3.0 * 10
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("hit-rate score = %v, want %v", got, want)
	}

	// A cell with no history contributes nothing.
	if got := signal.Score(game.Position{Row: 0, Col: 0}, b); got != 0.0 {
		t.Errorf("unlogged cell should score 0, got %v", got)
	}
}

func TestHistoricalPrefixFilter(t *testing.T) {
	store := history.NewMemoryStore()

	// A game whose opening diverges from the current board's shot prefix
	// must not contribute.
	store.RecordShot(game.ShotEvent{
		MatchID:  "g1",
		Round:    1,
		Shooter:  game.ShooterAI,
		Position: game.Position{Row: 7, Col: 7},
		Result:   game.ShotResult{Outcome: game.OutcomeHit},
		Shots:    []game.Position{{Row: 9, Col: 9}, {Row: 7, Col: 7}},
	})

	b := game.NewBoard(10)
	if _, err := b.Fire(game.Position{Row: 0, Col: 0}); err != nil {
		t.Fatalf("Fire: %v", err)
	}

	signal := NewHistorical(store)
	if got := signal.Score(game.Position{Row: 7, Col: 7}, b); got != 0.0 {
		t.Errorf("mismatched prefix should score 0, got %v", got)
	}
}
