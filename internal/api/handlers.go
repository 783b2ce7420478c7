package api

import (
	"encoding/json"
	"net/http"

	"battleship/internal/history"
)

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleSummary serves aggregated win/accuracy statistics from the match log.
func HandleSummary(store history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORS(w)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		summary, err := store.Summary()
		if err != nil {
			http.Error(w, "failed to fetch summary", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// HandleHeatmap serves per-cell shot counts for the default grid size.
func HandleHeatmap(store history.Store, size int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORS(w)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		heatmap, err := store.Heatmap(size)
		if err != nil {
			http.Error(w, "failed to fetch heatmap", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(heatmap)
	}
}
