package event

import (
	"crypto/tls"
	"encoding/json"
	"os"

	"github.com/IBM/sarama"
	"github.com/charmbracelet/log"

	"battleship/internal/game"
)

const analyticsTopic = "battleship-analytics"

// Producer streams shot and game-over events to Kafka. It implements
// game.Recorder; delivery failures are logged and dropped, the game never
// waits on the broker.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// ShotAnalyticsEvent is one effective shot on the analytics stream.
type ShotAnalyticsEvent struct {
	Event   string `json:"event"`
	GameID  string `json:"gameId"`
	Round   int    `json:"round"`
	Shooter string `json:"shooter"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Outcome string `json:"outcome"`
	Ship    string `json:"ship,omitempty"`
}

// GameOverEvent closes out a game on the analytics stream.
type GameOverEvent struct {
	Event  string `json:"event"`
	GameID string `json:"gameId"`
	Winner string `json:"winner"`
	Rounds int    `json:"rounds"`
}

func NewProducer(brokers []string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	// SASL auth for managed brokers, enabled via env
	if user := os.Getenv("KAFKA_USER"); user != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.User = user
		config.Net.SASL.Password = os.Getenv("KAFKA_PASSWORD")
		config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		config.Net.TLS.Enable = true
		config.Net.TLS.Config = &tls.Config{InsecureSkipVerify: true}
	}

	p, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &Producer{producer: p, topic: analyticsTopic}, nil
}

func (p *Producer) RecordShot(ev game.ShotEvent) {
	p.emit(ev.MatchID, ShotAnalyticsEvent{
		Event:   "SHOT",
		GameID:  ev.MatchID,
		Round:   ev.Round,
		Shooter: ev.Shooter,
		Row:     ev.Position.Row,
		Col:     ev.Position.Col,
		Outcome: string(ev.Result.Outcome),
		Ship:    ev.Result.Ship,
	})
}

func (p *Producer) RecordResult(matchID, winner string, rounds int) {
	p.emit(matchID, GameOverEvent{
		Event:  "GAME_OVER",
		GameID: matchID,
		Winner: winner,
		Rounds: rounds,
	})
}

func (p *Producer) emit(key string, event interface{}) {
	val, _ := json.Marshal(event)

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(val),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Warn("kafka send failed", "game", key, "err", err)
	}
}

func (p *Producer) Close() {
	p.producer.Close()
}
