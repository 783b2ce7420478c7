package ai

import "battleship/internal/game"

// State is the hunt-target engine's search phase.
type State int

const (
	// Idle: no unresolved hits; the move scorer picks freely.
	Idle State = iota
	// Seeking: at least one unresolved hit, ship axis still unknown.
	Seeking
	// Tracking: axis known, probing the two ends of the hit line.
	Tracking
)

// Orientation is the inferred axis of the ship being pursued.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

// HuntTarget drives the directed search after a hit: collect adjacent
// candidates, infer the ship's axis once two hits line up, then extend
// strictly along that line until the ship sinks.
type HuntTarget struct {
	state       State
	orientation Orientation
	hits        []game.Position // unresolved hits on the pursued ship(s)
	frontier    []game.Position // candidate stack, popped LIFO
	misses      map[game.Position]bool
}

func NewHuntTarget() *HuntTarget {
	return &HuntTarget{misses: make(map[game.Position]bool)}
}

func (h *HuntTarget) State() State             { return h.state }
func (h *HuntTarget) Orientation() Orientation { return h.orientation }

// Frontier returns the current candidate stack, bottom first.
func (h *HuntTarget) Frontier() []game.Position {
	return append([]game.Position(nil), h.frontier...)
}

// NextTarget pops the most recent frontier candidate. A stale entry (shot
// since it was queued) yields no target for this turn; the caller falls
// back to the move scorer. An empty frontier with live hits is rebuilt
// from those hits so the engine cannot deadlock.
func (h *HuntTarget) NextTarget(board *game.Board) (game.Position, bool) {
	if len(h.frontier) == 0 && len(h.hits) > 0 {
		h.rebuildFrontier(board)
	}
	if len(h.frontier) == 0 {
		return game.Position{}, false
	}

	target := h.frontier[len(h.frontier)-1]
	h.frontier = h.frontier[:len(h.frontier)-1]
	if board.InBounds(target) && !board.HasShot(target) {
		return target, true
	}
	return game.Position{}, false
}

// ProcessResult feeds a resolved shot back into the state machine.
func (h *HuntTarget) ProcessResult(pos game.Position, result game.ShotResult, board *game.Board) {
	switch result.Outcome {
	case game.OutcomeHit:
		h.onHit(pos, board)
	case game.OutcomeMiss:
		h.onMiss(pos, board)
	case game.OutcomeSunk:
		h.onSunk(pos, result.Ship, board)
	}
}

func (h *HuntTarget) onHit(pos game.Position, board *game.Board) {
	h.hits = append(h.hits, pos)

	if len(h.hits) >= 2 {
		h.identifyOrientation()
	}

	if h.orientation != OrientationUnknown {
		h.state = Tracking
		h.rebuildExtremities(board)
		return
	}

	h.state = Seeking
	for _, n := range pos.Neighbors() {
		h.pushCandidate(n, board)
	}
}

func (h *HuntTarget) onMiss(pos game.Position, board *game.Board) {
	h.misses[pos] = true

	// A miss beyond one end of a known line means the ship extends only
	// toward the other end; the missed cell is now in the shot log, so
	// rebuilding the extremities leaves just the opposite probe.
	if h.state == Tracking && len(h.hits) >= 2 {
		h.rebuildExtremities(board)
	}
}

func (h *HuntTarget) onSunk(pos game.Position, shipName string, board *game.Board) {
	h.hits = append(h.hits, pos)

	// The frontier may still reference cells queued for the sunk ship.
	// No adjacency purge beyond that: placement does not forbid ships
	// touching, so a neighboring cell can legitimately hold another ship.
	if cells, ok := board.ShipCells(shipName); ok {
		sunk := make(map[game.Position]bool, len(cells))
		for _, c := range cells {
			sunk[c] = true
		}
		remaining := h.hits[:0]
		for _, hit := range h.hits {
			if !sunk[hit] {
				remaining = append(remaining, hit)
			}
		}
		h.hits = remaining
	} else {
		h.hits = nil
	}

	if len(h.hits) == 0 {
		h.reset()
		return
	}

	// Hits from a second, still-floating ship remain: re-derive the axis
	// from what is left and start over from those cells.
	h.orientation = OrientationUnknown
	if len(h.hits) >= 2 {
		h.identifyOrientation()
	}
	if h.orientation != OrientationUnknown {
		h.state = Tracking
	} else {
		h.state = Seeking
	}
	h.rebuildFrontier(board)
}

func (h *HuntTarget) reset() {
	h.state = Idle
	h.orientation = OrientationUnknown
	h.hits = nil
	h.frontier = nil
	h.misses = make(map[game.Position]bool)
}

// identifyOrientation resolves the axis only when every unresolved hit is
// collinear; mixed hits from two ships keep it unknown.
func (h *HuntTarget) identifyOrientation() {
	sameRow := true
	sameCol := true
	for _, hit := range h.hits {
		if hit.Row != h.hits[0].Row {
			sameRow = false
		}
		if hit.Col != h.hits[0].Col {
			sameCol = false
		}
	}
	switch {
	case sameRow && !sameCol:
		h.orientation = OrientationHorizontal
	case sameCol && !sameRow:
		h.orientation = OrientationVertical
	}
}

// rebuildExtremities replaces the frontier with the two open cells one
// step beyond the hit line's extents, filtered against bounds, prior
// shots, and exhausted misses.
func (h *HuntTarget) rebuildExtremities(board *game.Board) {
	h.frontier = nil

	switch h.orientation {
	case OrientationHorizontal:
		row := h.hits[0].Row
		minCol, maxCol := h.hits[0].Col, h.hits[0].Col
		for _, hit := range h.hits {
			if hit.Col < minCol {
				minCol = hit.Col
			}
			if hit.Col > maxCol {
				maxCol = hit.Col
			}
		}
		h.pushCandidate(game.Position{Row: row, Col: minCol - 1}, board)
		h.pushCandidate(game.Position{Row: row, Col: maxCol + 1}, board)

	case OrientationVertical:
		col := h.hits[0].Col
		minRow, maxRow := h.hits[0].Row, h.hits[0].Row
		for _, hit := range h.hits {
			if hit.Row < minRow {
				minRow = hit.Row
			}
			if hit.Row > maxRow {
				maxRow = hit.Row
			}
		}
		h.pushCandidate(game.Position{Row: minRow - 1, Col: col}, board)
		h.pushCandidate(game.Position{Row: maxRow + 1, Col: col}, board)
	}
}

// rebuildFrontier regenerates candidates from all unresolved hits: the
// line extremities when the axis is known, otherwise every hit's open
// orthogonal neighbors.
func (h *HuntTarget) rebuildFrontier(board *game.Board) {
	if h.orientation != OrientationUnknown {
		h.rebuildExtremities(board)
		return
	}
	h.frontier = nil
	for _, hit := range h.hits {
		for _, n := range hit.Neighbors() {
			h.pushCandidate(n, board)
		}
	}
}

func (h *HuntTarget) pushCandidate(pos game.Position, board *game.Board) {
	if !board.InBounds(pos) || board.HasShot(pos) || h.misses[pos] {
		return
	}
	for _, existing := range h.frontier {
		if existing == pos {
			return
		}
	}
	h.frontier = append(h.frontier, pos)
}
