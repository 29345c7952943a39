package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"straightsix/internal/game"
)

// Config holds everything the server needs at startup. Game parameters are
// validated here, before any session can deal a card.
type Config struct {
	Port     int
	Database string // empty disables data recording
	Rules    game.Rules
}

// Load reads the environment (and a .env file if present) into a validated
// Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     8080,
		Database: getEnv("DATABASE", "straightsix.db"),
		Rules:    game.DefaultRules(),
	}

	if s := os.Getenv("PORT"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", s)
		}
		cfg.Port = p
	}

	var err error
	if cfg.Rules.ReturnProb, err = getProb("RESHUFFLE_P", cfg.Rules.ReturnProb); err != nil {
		return nil, err
	}
	if cfg.Rules.FrontProb, err = getProb("DECK_BIAS_P", cfg.Rules.FrontProb); err != nil {
		return nil, err
	}
	if s := os.Getenv("RIGGED"); s != "" {
		rigged, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid RIGGED %q", s)
		}
		cfg.Rules.Rigged = rigged
	}
	if cfg.Rules.CardsPerHand, err = getCount("CARDS_PER_HAND", cfg.Rules.CardsPerHand); err != nil {
		return nil, err
	}
	if cfg.Rules.CardsOnTable, err = getCount("CARDS_ON_TABLE", cfg.Rules.CardsOnTable); err != nil {
		return nil, err
	}

	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getProb(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || p < 0 || p > 1 {
		return 0, fmt.Errorf("%s must be a probability in [0,1], got %q", key, s)
	}
	return p, nil
}

func getCount(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, s)
	}
	return n, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
