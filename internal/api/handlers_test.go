package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"battleship/internal/game"
	"battleship/internal/history"
)

func seededStore(t *testing.T) *history.MemoryStore {
	t.Helper()
	store := history.NewMemoryStore()
	store.RecordShot(game.ShotEvent{
		MatchID:  "g1",
		Round:    1,
		Shooter:  game.ShooterPlayer,
		Position: game.Position{Row: 4, Col: 4},
		Result:   game.ShotResult{Outcome: game.OutcomeHit},
		Shots:    []game.Position{{Row: 4, Col: 4}},
	})
	store.RecordResult("g1", game.ShooterPlayer, 30)
	return store
}

func TestHandleSummary(t *testing.T) {
	handler := HandleSummary(seededStore(t))

	req := httptest.NewRequest("GET", "/stats/summary", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("missing CORS header, got %q", got)
	}

	var sum history.Summary
	if err := json.Unmarshal(rr.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if sum.Games != 1 || sum.Wins[game.ShooterPlayer] != 1 {
		t.Errorf("unexpected summary %+v", sum)
	}
	if sum.Accuracy[game.ShooterPlayer] != 1.0 {
		t.Errorf("player accuracy = %v, want 1.0", sum.Accuracy[game.ShooterPlayer])
	}
}

func TestHandleHeatmap(t *testing.T) {
	handler := HandleHeatmap(seededStore(t), 10)

	req := httptest.NewRequest("GET", "/stats/heatmap", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var grid [][]int
	if err := json.Unmarshal(rr.Body.Bytes(), &grid); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(grid) != 10 {
		t.Fatalf("heatmap has %d rows, want 10", len(grid))
	}
	if grid[4][4] != 1 {
		t.Errorf("cell (4,4) count = %d, want 1", grid[4][4])
	}
}

func TestHandleSummaryPreflight(t *testing.T) {
	handler := HandleSummary(seededStore(t))

	req := httptest.NewRequest("OPTIONS", "/stats/summary", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != 200 {
		t.Fatalf("preflight status = %d, want 200", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Error("preflight response should have no body")
	}
}
