package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"battleship/internal/config"
	"battleship/internal/history"
)

// NewRouter wires the HTTP surface: health, the stats endpoints, and the
// websocket the UI plays through.
func NewRouter(cfg config.Config, hub *Hub, store history.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Get("/stats/summary", HandleSummary(store))
	r.Options("/stats/summary", HandleSummary(store))
	r.Get("/stats/heatmap", HandleHeatmap(store, cfg.BoardSize))
	r.Options("/stats/heatmap", HandleHeatmap(store, cfg.BoardSize))

	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})

	return r
}
