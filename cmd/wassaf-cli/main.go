package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wassaf/wassaf-cli/internal/auth"
	"github.com/wassaf/wassaf-cli/internal/config"
	"github.com/wassaf/wassaf-cli/internal/gateway"
	"github.com/wassaf/wassaf-cli/internal/logging"
	"github.com/wassaf/wassaf-cli/internal/orchestrator"
	"github.com/wassaf/wassaf-cli/internal/session"
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "wassaf-cli",
	Short: "AI-powered product copy generation",
	Long: `Wassaf CLI turns a short product brief into ready-to-use marketing copy.

Describe your product (name, keywords, audience, tone) and the tool generates
product descriptions in your chosen language, or analyzes a competitor's
description and writes superior ones. Each description can then grow a full
marketing suite: SEO assets, social posts, ad copy, FAQs, a video script, and
an audio ad script. Every generation is saved to a local history.

Examples:
  wassaf-cli generate --name "Leather Backpack" --keywords "handmade, durable, waterproof"
  wassaf-cli generate -n "Leather Backpack" -k "handmade" --tone friendly --language Arabic --variations 3
  wassaf-cli analyze -n "Leather Backpack" --competitor-file rival.txt
  wassaf-cli history list
  wassaf-cli history show 1715000000000-1a2b3c4d --suite 1`,
}

func main() {
	cobra.OnInitialize(logging.Init)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildOrchestrator wires configuration, credentials, the text service, the
// gateway, and the session store together. Called by every subcommand that
// talks to the generation service.
func buildOrchestrator(ctx context.Context) (*orchestrator.Orchestrator, *config.Config) {
	cfg := config.Load()

	apiKey, err := auth.GetAPIKey(cfg.Provider)
	if err != nil {
		handleAuthError(err)
	}

	var service gateway.TextService
	switch cfg.Provider {
	case config.ProviderOpenAI:
		service = gateway.NewOpenAIService(apiKey, cfg.Model)
	default:
		client, err := gateway.NewGeminiClient(ctx, apiKey)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create Gemini client")
		}
		if err := auth.ValidateAPIKey(ctx, client, cfg.Model); err != nil {
			handleAuthError(err)
		}
		service = gateway.NewGeminiService(client, cfg.Model)
	}

	log.Debug().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Str("history", cfg.HistoryPath).
		Msg("Orchestrator wired")

	gw := gateway.New(service, cfg.RateInterval)
	store := session.New(&session.FileBlob{Path: cfg.HistoryPath})
	return orchestrator.New(gw, store), cfg
}

// historyOnlyOrchestrator wires the store without a text service, for history
// subcommands that never generate.
func historyOnlyOrchestrator() *orchestrator.Orchestrator {
	cfg := config.Load()
	store := session.New(&session.FileBlob{Path: cfg.HistoryPath})
	return orchestrator.New(nil, store)
}

// handleAuthError exits with messaging matched to the credential failure.
func handleAuthError(err error) {
	log.Fatal().Err(err).Msg(authErrorMessage(err))
}

// authErrorMessage maps a credential failure to its user-facing exit message.
func authErrorMessage(err error) string {
	var validationErr *auth.ValidationError
	if errors.As(err, &validationErr) {
		switch validationErr.Type {
		case auth.ErrTypeNoKey:
			return fmt.Sprintf("No API key configured. Set %s", auth.EnvVar(config.Load().Provider))
		case auth.ErrTypeInvalidKey:
			return "Invalid API key. Please check your API key and try again"
		case auth.ErrTypeNetworkError:
			return "Network error. Please check your internet connection"
		case auth.ErrTypeQuotaExceeded:
			return "API quota exceeded. Please try again later"
		default:
			return "API key validation failed"
		}
	}
	return "unexpected credential error"
}
