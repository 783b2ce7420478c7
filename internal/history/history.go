// Package history defines the shot-log contract the AI and the stats
// endpoints read from. The log itself lives behind the Store interface:
// Postgres in production, an in-memory fallback otherwise.
package history

import (
	"strings"

	"battleship/internal/game"
)

// ShotRecord is one logged shot from a past game whose shot prefix
// matched a lookup.
type ShotRecord struct {
	Position game.Position
	Outcome  game.Outcome
}

// Summary aggregates finished games for the reporting endpoints.
type Summary struct {
	Games         int                `json:"games"`
	Wins          map[string]int     `json:"wins"`
	Accuracy      map[string]float64 `json:"accuracy"`
	AverageRounds float64            `json:"average_rounds"`
}

// Store is the append-only match log. Writes must never fail a game;
// reads degrade to empty results when no data exists.
type Store interface {
	game.Recorder
	LookupSimilar(prefix []game.Position) ([]ShotRecord, error)
	Summary() (Summary, error)
	Heatmap(size int) ([][]int, error)
}

// EncodeShots renders an ordered shot log as "r,c;r,c;...". This is the
// board-state key recorded with every shot; prefix matching over it is
// how similar games are found. Every position carries its trailing
// separator so a prefix only ever matches on whole-shot boundaries:
// "1,2;" cannot match a state starting "1,23;".
func EncodeShots(shots []game.Position) string {
	var sb strings.Builder
	for _, s := range shots {
		sb.WriteString(s.String())
		sb.WriteByte(';')
	}
	return sb.String()
}
