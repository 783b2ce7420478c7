package db

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/lib/pq" // Postgres driver

	"battleship/internal/game"
	"battleship/internal/history"
)

// Repository is the Postgres-backed match log. It implements
// history.Store; shot writes absorb their own errors so a flaky database
// never stops a running game.
type Repository struct {
	db *sql.DB
}

func NewRepository(dsn string) (*Repository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	// Auto-migration: create tables if they don't exist
	migration := `
	CREATE TABLE IF NOT EXISTS games (
		id UUID PRIMARY KEY,
		winner TEXT NOT NULL,
		rounds INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS shots (
		id SERIAL PRIMARY KEY,
		game_id UUID NOT NULL,
		round INT NOT NULL,
		shooter TEXT NOT NULL,
		target_row INT NOT NULL,
		target_col INT NOT NULL,
		outcome TEXT NOT NULL,
		board_state TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_shots_board_state ON shots (board_state text_pattern_ops);
	`
	if _, err := db.Exec(migration); err != nil {
		return nil, fmt.Errorf("failed to migrate db: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RecordShot(ev game.ShotEvent) {
	query := `INSERT INTO shots (game_id, round, shooter, target_row, target_col, outcome, board_state)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(query, ev.MatchID, ev.Round, ev.Shooter,
		ev.Position.Row, ev.Position.Col, string(ev.Result.Outcome), history.EncodeShots(ev.Shots))
	if err != nil {
		log.Error("failed to record shot", "game", ev.MatchID, "err", err)
	}
}

func (r *Repository) RecordResult(matchID, winner string, rounds int) {
	query := `INSERT INTO games (id, winner, rounds) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(query, matchID, winner, rounds); err != nil {
		log.Error("failed to record result", "game", matchID, "err", err)
	} else {
		log.Info("game saved", "game", matchID, "winner", winner, "rounds", rounds)
	}
}

// LookupSimilar returns shots from games whose recorded board state
// starts with the given shot prefix.
func (r *Repository) LookupSimilar(prefix []game.Position) ([]history.ShotRecord, error) {
	query := `SELECT target_row, target_col, outcome FROM shots WHERE board_state LIKE $1 || '%'`
	rows, err := r.db.Query(query, history.EncodeShots(prefix))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []history.ShotRecord
	for rows.Next() {
		var rec history.ShotRecord
		var outcome string
		if err := rows.Scan(&rec.Position.Row, &rec.Position.Col, &outcome); err != nil {
			continue
		}
		rec.Outcome = game.Outcome(outcome)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *Repository) Summary() (history.Summary, error) {
	sum := history.Summary{
		Wins:     map[string]int{},
		Accuracy: map[string]float64{},
	}

	rows, err := r.db.Query(`SELECT winner, COUNT(*) FROM games GROUP BY winner`)
	if err != nil {
		return sum, err
	}
	defer rows.Close()
	for rows.Next() {
		var winner string
		var wins int
		if err := rows.Scan(&winner, &wins); err != nil {
			continue
		}
		sum.Wins[winner] = wins
		sum.Games += wins
	}

	row := r.db.QueryRow(`SELECT COALESCE(AVG(rounds), 0) FROM games`)
	if err := row.Scan(&sum.AverageRounds); err != nil {
		return sum, err
	}

	accRows, err := r.db.Query(`
		SELECT shooter,
			COUNT(*) FILTER (WHERE outcome IN ('hit', 'sunk'))::float / COUNT(*)
		FROM shots
		GROUP BY shooter`)
	if err != nil {
		return sum, err
	}
	defer accRows.Close()
	for accRows.Next() {
		var shooter string
		var accuracy float64
		if err := accRows.Scan(&shooter, &accuracy); err != nil {
			continue
		}
		sum.Accuracy[shooter] = accuracy
	}
	return sum, nil
}

// Heatmap returns per-cell shot counts for a size x size grid.
func (r *Repository) Heatmap(size int) ([][]int, error) {
	grid := make([][]int, size)
	for i := range grid {
		grid[i] = make([]int, size)
	}

	rows, err := r.db.Query(`SELECT target_row, target_col, COUNT(*) FROM shots GROUP BY target_row, target_col`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row, col, count int
		if err := rows.Scan(&row, &col, &count); err != nil {
			continue
		}
		if row >= 0 && row < size && col >= 0 && col < size {
			grid[row][col] = count
		}
	}
	return grid, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
