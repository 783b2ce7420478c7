package game

import "errors"

var (
	// ErrInvalidPlacement signals a malformed or mismatched ship run.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrPlacementFailed signals that random placement ran out of attempts.
	ErrPlacementFailed = errors.New("placement failed")

	// ErrOutOfBounds signals a shot outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrMatchFinished signals a turn taken after the match ended.
	ErrMatchFinished = errors.New("match already finished")

	// ErrNoLegalMoves signals a full board with no cell left to target.
	ErrNoLegalMoves = errors.New("no legal moves remain")
)
