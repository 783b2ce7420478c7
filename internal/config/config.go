// Package config loads server configuration from the environment with
// sensible local-development defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	KafkaBrokers []string

	BoardSize int
	AIMode    string
	AIDelay   time.Duration

	CenterWeight  float64
	ParityWeight  float64
	HistoryWeight float64
}

func Load() Config {
	return Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBHost:     getEnv("DB_HOST", "localhost:5432"),
		DBName:     getEnv("DB_NAME", "battleship"),

		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),

		BoardSize: getEnvInt("BOARD_SIZE", 10),
		AIMode:    getEnv("AI_MODE", "standard"),
		AIDelay:   getEnvDuration("AI_TURN_DELAY", 500*time.Millisecond),

		CenterWeight:  getEnvFloat("AI_CENTER_WEIGHT", 1.0),
		ParityWeight:  getEnvFloat("AI_PARITY_WEIGHT", 1.5),
		HistoryWeight: getEnvFloat("AI_HISTORY_WEIGHT", 2.0),
	}
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBName)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
