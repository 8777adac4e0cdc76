// Package config loads the CLI's environment configuration. The core
// pipeline itself reads no configuration; only the driver and the optional
// history store are tunable.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the environment-driven settings of the forgec driver.
type Config struct {
	// HistoryDB is the SQLite path of the compile-history store. Empty
	// disables recording.
	HistoryDB string
	// NoColor disables ANSI colors in diagnostic rendering.
	NoColor bool
	// Debug enables verbose logging of the history store.
	Debug bool
}

// Load reads an optional .env file, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HistoryDB: os.Getenv("FORGE_HISTORY_DB"),
		NoColor:   envBool("FORGE_NO_COLOR") || envBool("NO_COLOR"),
		Debug:     envBool("FORGE_DEBUG"),
	}
}

func envBool(name string) bool {
	switch os.Getenv(name) {
	case "", "0", "false", "no":
		return false
	default:
		return true
	}
}
