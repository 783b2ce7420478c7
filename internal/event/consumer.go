package event

import (
	"encoding/json"
	"os"
	"os/signal"

	"github.com/IBM/sarama"
	"github.com/charmbracelet/log"
)

// Consumer is the reporting layer's ingest: it tails the analytics topic
// and keeps a running shot tally per shooter.
type Consumer struct {
	consumer sarama.Consumer
	topic    string
}

func NewConsumer(brokers []string) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Return.Errors = true

	c, err := sarama.NewConsumer(brokers, config)
	if err != nil {
		return nil, err
	}
	return &Consumer{consumer: c, topic: analyticsTopic}, nil
}

func (c *Consumer) Start() {
	partitionConsumer, err := c.consumer.ConsumePartition(c.topic, 0, sarama.OffsetNewest)
	if err != nil {
		log.Warn("analytics consumer not started", "err", err)
		return
	}

	// Trap SIGINT to trigger a shutdown.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	log.Info("analytics consumer started", "topic", c.topic)

	go func() {
		shots := map[string]int{}
		hits := map[string]int{}

		for {
			select {
			case msg := <-partitionConsumer.Messages():
				var event ShotAnalyticsEvent
				if err := json.Unmarshal(msg.Value, &event); err != nil {
					continue
				}
				switch event.Event {
				case "SHOT":
					shots[event.Shooter]++
					if event.Outcome == "hit" || event.Outcome == "sunk" {
						hits[event.Shooter]++
					}
					log.Debug("shot processed",
						"game", event.GameID, "shooter", event.Shooter, "outcome", event.Outcome)
				case "GAME_OVER":
					var over GameOverEvent
					if err := json.Unmarshal(msg.Value, &over); err != nil {
						continue
					}
					for shooter, total := range shots {
						accuracy := 0.0
						if total > 0 {
							accuracy = float64(hits[shooter]) / float64(total)
						}
						log.Info("running accuracy", "shooter", shooter, "shots", total, "accuracy", accuracy)
					}
					log.Info("game finished", "game", over.GameID, "winner", over.Winner, "rounds", over.Rounds)
				}
			case err := <-partitionConsumer.Errors():
				log.Warn("analytics error", "err", err)
			case <-signals:
				return
			}
		}
	}()
}
