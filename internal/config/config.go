package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr       string
	LogLevel       slog.Level
	CardsPath      string
	BasicLandsPath string
	// SpecialSlotsPath overrides the built-in special land slot
	// configuration when set.
	SpecialSlotsPath string
	// Seed makes land picks reproducible when HasSeed is true.
	Seed    uint64
	HasSeed bool
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:         envOr("HTTP_ADDR", ":8080"),
		CardsPath:        envOr("CARDS_PATH", "data/cards.json"),
		BasicLandsPath:   envOr("BASIC_LANDS_PATH", "data/basic_lands.json"),
		SpecialSlotsPath: os.Getenv("SPECIAL_SLOTS_PATH"),
	}

	if v := os.Getenv("RNG_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RNG_SEED %q: %w", v, err)
		}
		c.Seed = seed
		c.HasSeed = true
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
