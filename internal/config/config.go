// Package config resolves runtime configuration from the environment. A .env
// file in the working directory is honored when present.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultModel is the text model used when WASSAF_MODEL is unset.
	DefaultModel = "gemini-2.5-flash"

	// DefaultRateInterval spaces gateway calls for free-tier quotas (15 RPM).
	DefaultRateInterval = 4 * time.Second

	historyDir  = ".wassaf"
	historyFile = "sessions.json"
)

// Provider names accepted in WASSAF_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds everything the CLI wires together at startup.
type Config struct {
	Provider     string
	Model        string
	HistoryPath  string
	RateInterval time.Duration
}

// Load reads configuration from the environment, applying defaults for every
// unset key. It never fails: a missing .env is normal and bad values fall back
// to defaults with a warning.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded configuration from .env")
	}

	cfg := &Config{
		Provider:     getenv("WASSAF_PROVIDER", ProviderGemini),
		Model:        getenv("WASSAF_MODEL", DefaultModel),
		HistoryPath:  getenv("WASSAF_HISTORY_FILE", defaultHistoryPath()),
		RateInterval: DefaultRateInterval,
	}

	if raw := os.Getenv("WASSAF_RATE_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			log.Warn().Str("value", raw).Msg("Ignoring invalid WASSAF_RATE_INTERVAL")
		} else {
			cfg.RateInterval = d
		}
	}

	if cfg.Provider != ProviderGemini && cfg.Provider != ProviderOpenAI {
		log.Warn().Str("provider", cfg.Provider).Msg("Unknown provider, falling back to gemini")
		cfg.Provider = ProviderGemini
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultHistoryPath places the session blob under the user's home directory,
// next to nothing else; the directory is created lazily by the file blob.
func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(historyDir, historyFile)
	}
	return filepath.Join(home, historyDir, historyFile)
}
