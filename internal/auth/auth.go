// Package auth resolves and validates the API credential for the configured
// text-generation provider.
package auth

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// EnvVar returns the environment variable carrying the API key for provider.
func EnvVar(provider string) string {
	if provider == "openai" {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// GetAPIKey retrieves the API key for the given provider from the
// environment. There is no credential file fallback: the key lives in the
// environment (optionally via .env).
func GetAPIKey(provider string) (string, error) {
	envVar := EnvVar(provider)
	if key := os.Getenv(envVar); key != "" {
		log.Debug().Str("provider", provider).Msg("Using API key from environment variable")
		return key, nil
	}

	log.Error().Str("provider", provider).Str("env", envVar).Msg("API key not found")
	return "", &ValidationError{
		Type:    ErrTypeNoKey,
		Message: fmt.Sprintf("API key not found. Set %s", envVar),
	}
}
