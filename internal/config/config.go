// Package config loads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	DBPath     string
	Addr       string
	LogPath    string
	MasterPath string
}

// Load reads an optional .env file and then the environment, falling back
// to defaults for unset values. Variables already set in the environment
// win over the .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env file", "error", err)
	}

	return Config{
		DBPath:     getEnv("CARDLEDGER_DB", "cardledger.sqlite3"),
		Addr:       getEnv("CARDLEDGER_ADDR", ":8080"),
		LogPath:    strings.TrimSpace(os.Getenv("CARDLEDGER_LOG")),
		MasterPath: getEnv("CARDLEDGER_MASTER", "masterdata.json"),
	}
}

func getEnv(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}
