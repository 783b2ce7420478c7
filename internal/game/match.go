package game

import (
	"fmt"
	"sync"
	"time"
)

// Match statuses.
const (
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

// Shooter labels used in shot records.
const (
	ShooterPlayer = "player"
	ShooterAI     = "ai"
)

// Opponent is what a match needs from the computer player: pick a cell on
// the human's board, then learn from the result.
type Opponent interface {
	ChooseShot(board *Board) (Position, error)
	ProcessShotResult(pos Position, result ShotResult, board *Board)
}

// ShotEvent is one effective shot, snapshotted for recording. Shots holds
// the board's full shot log including this shot.
type ShotEvent struct {
	MatchID  string
	Round    int
	Shooter  string
	Position Position
	Result   ShotResult
	Shots    []Position
}

// Recorder receives every effective shot and the final result of a match.
// Implementations must not fail the game; they absorb their own errors.
type Recorder interface {
	RecordShot(ev ShotEvent)
	RecordResult(matchID, winner string, rounds int)
}

// Match is one game: the human's board, the AI's board, and the AI player
// driving shots at the human. A mutex guards turns because the transport
// layer paces AI replies from a separate goroutine.
type Match struct {
	ID        string
	CreatedAt time.Time

	PlayerBoard *Board // the human's ships; the AI fires here
	AIBoard     *Board // the AI's ships; the human fires here

	opponent Opponent
	recorder Recorder

	mu     sync.Mutex
	round  int
	status string
	winner string
}

// NewMatch builds a fresh match with both fleets placed randomly.
func NewMatch(id string, size int, opponent Opponent, recorder Recorder) (*Match, error) {
	m := &Match{
		ID:          id,
		CreatedAt:   time.Now(),
		PlayerBoard: NewBoard(size),
		AIBoard:     NewBoard(size),
		opponent:    opponent,
		recorder:    recorder,
		status:      StatusPlaying,
	}
	for _, ship := range StandardFleet() {
		if err := m.AIBoard.PlaceShipRandomly(ship); err != nil {
			return nil, fmt.Errorf("placing AI fleet: %w", err)
		}
	}
	for _, ship := range StandardFleet() {
		if err := m.PlayerBoard.PlaceShipRandomly(ship); err != nil {
			return nil, fmt.Errorf("placing player fleet: %w", err)
		}
	}
	return m, nil
}

// PlayerFire resolves the human's shot against the AI's board.
// An already-shot cell is a no-op result and is not recorded.
func (m *Match) PlayerFire(pos Position) (ShotResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusPlaying {
		return ShotResult{}, ErrMatchFinished
	}

	result, err := m.AIBoard.Fire(pos)
	if err != nil {
		return ShotResult{}, err
	}
	if result.Outcome == OutcomeAlreadyShot {
		return result, nil
	}

	// Only effective shots advance the round counter; no-ops would
	// inflate the round totals the stats aggregate over.
	m.round++
	m.record(ShooterPlayer, pos, result, m.AIBoard)

	if m.AIBoard.AllShipsSunk() {
		m.finish(ShooterPlayer)
	}
	return result, nil
}

// AITurn asks the opponent for its shot, fires it at the human's board,
// and feeds the result back into the opponent's strategy state.
func (m *Match) AITurn() (Position, ShotResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusPlaying {
		return Position{}, ShotResult{}, ErrMatchFinished
	}

	pos, err := m.opponent.ChooseShot(m.PlayerBoard)
	if err != nil {
		return Position{}, ShotResult{}, fmt.Errorf("choosing AI shot: %w", err)
	}

	result, err := m.PlayerBoard.Fire(pos)
	if err != nil {
		return Position{}, ShotResult{}, err
	}

	m.opponent.ProcessShotResult(pos, result, m.PlayerBoard)

	if result.Outcome != OutcomeAlreadyShot {
		m.record(ShooterAI, pos, result, m.PlayerBoard)
	}

	if m.PlayerBoard.AllShipsSunk() {
		m.finish(ShooterAI)
	}
	return pos, result, nil
}

func (m *Match) record(shooter string, pos Position, result ShotResult, target *Board) {
	if m.recorder == nil {
		return
	}
	m.recorder.RecordShot(ShotEvent{
		MatchID:  m.ID,
		Round:    m.round,
		Shooter:  shooter,
		Position: pos,
		Result:   result,
		Shots:    target.Shots(),
	})
}

func (m *Match) finish(winner string) {
	m.status = StatusFinished
	m.winner = winner
	if m.recorder != nil {
		m.recorder.RecordResult(m.ID, winner, m.round)
	}
}

func (m *Match) IsOver() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status == StatusFinished
}

// Winner returns "player" or "ai", or "" while the match is still running.
func (m *Match) Winner() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.winner
}

func (m *Match) Round() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.round
}
