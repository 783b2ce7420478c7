package main

import (
	"net/http"

	"github.com/charmbracelet/log"

	"battleship/internal/api"
	"battleship/internal/config"
	"battleship/internal/db"
	"battleship/internal/event"
	"battleship/internal/game"
	"battleship/internal/history"
)

func main() {
	log.Info("starting battleship server")

	cfg := config.Load()

	// Match log: Postgres when reachable, in-memory otherwise. The AI's
	// historical signal and the stats endpoints read from whichever is up.
	var store history.Store
	repository, err := db.NewRepository(cfg.DSN())
	if err != nil {
		log.Warn("database unavailable, using in-memory match log", "err", err)
		store = history.NewMemoryStore()
	} else {
		log.Info("connected to postgres")
		store = repository
		defer repository.Close()
	}

	// Analytics stream; the game runs fine without it.
	var producer game.Recorder
	kafkaProducer, err := event.NewProducer(cfg.KafkaBrokers)
	if err != nil {
		log.Warn("kafka producer unavailable", "err", err)
	} else {
		producer = kafkaProducer
		defer kafkaProducer.Close()
	}

	consumer, err := event.NewConsumer(cfg.KafkaBrokers)
	if err != nil {
		log.Warn("kafka consumer unavailable", "err", err)
	} else {
		consumer.Start()
	}

	hub := api.NewHub(cfg, store, producer)
	router := api.NewRouter(cfg, hub, store)

	log.Info("server listening", "addr", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
