// Package ai implements the computer opponent: a weighted-signal move
// scorer for open search and a hunt-target state machine that takes over
// once a ship has been hit.
package ai

import (
	"math/rand"

	"battleship/internal/game"
	"battleship/internal/history"
)

// Signal scores one candidate cell in isolation. Signals are combined as
// a weighted sum; they never see each other.
type Signal interface {
	Name() string
	Score(pos game.Position, board *game.Board) float64
}

// WeightedSignal tags a signal with its contribution weight.
type WeightedSignal struct {
	Signal Signal
	Weight float64
}

// Weights are the tunable signal contributions.
type Weights struct {
	Center  float64
	Parity  float64
	History float64
}

// DefaultWeights are the shipped tuning values.
var DefaultWeights = Weights{
	Center:  1.0,
	Parity:  1.5,
	History: 2.0,
}

// CenterBias favors cells near the middle of the grid, where long ships
// are statistically more likely to land under random placement.
type CenterBias struct{}

func (CenterBias) Name() string { return "center" }

func (CenterBias) Score(pos game.Position, board *game.Board) float64 {
	center := game.Position{Row: board.Size / 2, Col: board.Size / 2}
	maxDistance := board.Size - 1
	return float64(maxDistance-pos.ManhattanDistance(center)) / float64(maxDistance)
}

// Parity scores the checkerboard pattern. The smallest ship is two cells
// long, so sweeping one color class of the board cannot miss a ship.
type Parity struct{}

func (Parity) Name() string { return "parity" }

func (Parity) Score(pos game.Position, board *game.Board) float64 {
	if (pos.Row+pos.Col)%2 == 0 {
		return 1.0
	}
	return 0.0
}

// Random scores uniformly at random. It exists as the baseline strategy
// for the "random" difficulty.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Score(pos game.Position, board *game.Board) float64 {
	return rand.Float64()
}

// HistoryLookup is the read side of the match log the historical signal
// consults. The store itself stays outside the AI.
type HistoryLookup interface {
	LookupSimilar(prefix []game.Position) ([]history.ShotRecord, error)
}

type cellRate struct {
	hits   int
	misses int
}

// Historical scores a cell by its empirical hit-rate across logged games
// whose shot prefix matches the current board. No data, no match, or a
// failing store all degrade to zero, never an error.
type Historical struct {
	lookup HistoryLookup

	// one lookup per board state: tallies are cached under the encoded
	// prefix and reused for every cell scored that turn
	cachedPrefix string
	cachedValid  bool
	rates        map[game.Position]cellRate
}

func NewHistorical(lookup HistoryLookup) *Historical {
	return &Historical{lookup: lookup}
}

func (*Historical) Name() string { return "history" }

func (h *Historical) Score(pos game.Position, board *game.Board) float64 {
	if h.lookup == nil {
		return 0.0
	}

	prefix := board.Shots()
	key := history.EncodeShots(prefix)
	if !h.cachedValid || key != h.cachedPrefix {
		records, err := h.lookup.LookupSimilar(prefix)
		if err != nil {
			return 0.0
		}
		h.rates = make(map[game.Position]cellRate, len(records))
		for _, rec := range records {
			rate := h.rates[rec.Position]
			switch rec.Outcome {
			case game.OutcomeHit, game.OutcomeSunk:
				rate.hits++
			case game.OutcomeMiss:
				rate.misses++
			}
			h.rates[rec.Position] = rate
		}
		h.cachedPrefix = key
		h.cachedValid = true
	}

	rate, ok := h.rates[pos]
	if !ok || rate.hits+rate.misses == 0 {
		return 0.0
	}
	return float64(rate.hits) / float64(rate.hits+rate.misses) * 10
}
