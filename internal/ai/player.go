package ai

import (
	"fmt"

	"battleship/internal/game"
)

// Difficulty modes for NewPlayer.
const (
	ModeStandard = "standard"
	ModeRandom   = "random"
)

// Player is the computer opponent. It asks the hunt-target engine for a
// forced target first and only scores the open board when none exists.
type Player struct {
	hunt    *HuntTarget
	signals []WeightedSignal
}

// NewPlayer builds a player for the given difficulty mode. The lookup may
// be nil; the historical signal then contributes nothing.
func NewPlayer(mode string, lookup HistoryLookup, weights Weights) (*Player, error) {
	switch mode {
	case ModeStandard:
		return &Player{
			hunt: NewHuntTarget(),
			signals: []WeightedSignal{
				{Signal: CenterBias{}, Weight: weights.Center},
				{Signal: Parity{}, Weight: weights.Parity},
				{Signal: NewHistorical(lookup), Weight: weights.History},
			},
		}, nil
	case ModeRandom:
		return &Player{
			hunt:    NewHuntTarget(),
			signals: []WeightedSignal{{Signal: Random{}, Weight: 1.0}},
		}, nil
	default:
		return nil, fmt.Errorf("unknown AI mode %q", mode)
	}
}

// Hunt exposes the engine state for inspection.
func (p *Player) Hunt() *HuntTarget {
	return p.hunt
}

// ChooseShot picks the next cell to fire at on the opponent's board.
// Candidates are scored in row-major order and ties go to the first
// maximal cell, so the choice is reproducible for fixed history data.
func (p *Player) ChooseShot(board *game.Board) (game.Position, error) {
	if target, ok := p.hunt.NextTarget(board); ok {
		return target, nil
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Position{}, game.ErrNoLegalMoves
	}

	best := moves[0]
	bestScore := p.score(moves[0], board)
	for _, move := range moves[1:] {
		if s := p.score(move, board); s > bestScore {
			best = move
			bestScore = s
		}
	}
	return best, nil
}

func (p *Player) score(pos game.Position, board *game.Board) float64 {
	total := 0.0
	for _, ws := range p.signals {
		total += ws.Signal.Score(pos, board) * ws.Weight
	}
	return total
}

// ProcessShotResult feeds a resolved shot back into the hunt engine.
func (p *Player) ProcessShotResult(pos game.Position, result game.ShotResult, board *game.Board) {
	p.hunt.ProcessResult(pos, result, board)
}
