package history

import (
	"strings"
	"sync"

	"github.com/dolthub/swiss"

	"battleship/internal/game"
)

type shotRow struct {
	matchID string
	round   int
	shooter string
	pos     game.Position
	outcome game.Outcome
	state   string
}

type matchResult struct {
	matchID string
	winner  string
	rounds  int
}

type cellTally struct {
	shots int
	hits  int
}

// MemoryStore keeps the shot log in memory. It backs the server when
// Postgres is unreachable and doubles as the test store.
type MemoryStore struct {
	mu      sync.Mutex
	rows    []shotRow
	results []matchResult
	cells   *swiss.Map[int64, cellTally]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cells: swiss.NewMap[int64, cellTally](64),
	}
}

func packCell(pos game.Position) int64 {
	return int64(pos.Row)<<32 | int64(uint32(pos.Col))
}

func unpackCell(key int64) game.Position {
	return game.Position{Row: int(key >> 32), Col: int(int32(key))}
}

func (s *MemoryStore) RecordShot(ev game.ShotEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, shotRow{
		matchID: ev.MatchID,
		round:   ev.Round,
		shooter: ev.Shooter,
		pos:     ev.Position,
		outcome: ev.Result.Outcome,
		state:   EncodeShots(ev.Shots),
	})

	key := packCell(ev.Position)
	tally, _ := s.cells.Get(key)
	tally.shots++
	if ev.Result.IsHit() {
		tally.hits++
	}
	s.cells.Put(key, tally)
}

func (s *MemoryStore) RecordResult(matchID, winner string, rounds int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, matchResult{matchID: matchID, winner: winner, rounds: rounds})
}

// LookupSimilar returns every logged shot from games whose recorded board
// state starts with the given shot prefix. An empty prefix matches all.
func (s *MemoryStore) LookupSimilar(prefix []game.Position) ([]ShotRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := EncodeShots(prefix)
	var out []ShotRecord
	for _, row := range s.rows {
		if strings.HasPrefix(row.state, key) {
			out = append(out, ShotRecord{Position: row.pos, Outcome: row.outcome})
		}
	}
	return out, nil
}

func (s *MemoryStore) Summary() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Wins:     map[string]int{},
		Accuracy: map[string]float64{},
	}

	totalRounds := 0
	for _, res := range s.results {
		sum.Games++
		sum.Wins[res.winner]++
		totalRounds += res.rounds
	}
	if sum.Games > 0 {
		sum.AverageRounds = float64(totalRounds) / float64(sum.Games)
	}

	shots := map[string]int{}
	hits := map[string]int{}
	for _, row := range s.rows {
		shots[row.shooter]++
		if row.outcome == game.OutcomeHit || row.outcome == game.OutcomeSunk {
			hits[row.shooter]++
		}
	}
	for shooter, total := range shots {
		sum.Accuracy[shooter] = float64(hits[shooter]) / float64(total)
	}
	return sum, nil
}

// Heatmap returns per-cell shot counts for a size x size grid.
func (s *MemoryStore) Heatmap(size int) ([][]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid := make([][]int, size)
	for r := range grid {
		grid[r] = make([]int, size)
	}
	s.cells.Iter(func(key int64, tally cellTally) bool {
		pos := unpackCell(key)
		if pos.Row >= 0 && pos.Row < size && pos.Col >= 0 && pos.Col < size {
			grid[pos.Row][pos.Col] = tally.shots
		}
		return false
	})
	return grid, nil
}
