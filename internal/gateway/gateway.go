package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/wassaf/wassaf-cli/internal/content"
	"github.com/wassaf/wassaf-cli/internal/jsonutil"
	"github.com/wassaf/wassaf-cli/internal/prompt"
)

// Gateway wraps a TextService with call pacing, reply parsing, and schema
// enforcement, exposing one typed method per content kind.
type Gateway struct {
	service TextService
	limiter *rate.Limiter
}

// New builds a gateway over service. rateInterval spaces outbound calls;
// zero disables pacing.
func New(service TextService, rateInterval time.Duration) *Gateway {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if rateInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(rateInterval), 1)
	}
	return &Gateway{service: service, limiter: limiter}
}

// invoke runs one gateway call end to end: pace, send, parse, verify against
// the declared schema, decode into T. Every failure is a *GenerationError.
func invoke[T any](ctx context.Context, g *Gateway, p prompt.Prompt) (T, error) {
	var zero T

	requestID := uuid.NewString()
	logger := log.With().
		Str("request_id", requestID).
		Str("kind", string(p.Kind)).
		Str("service", g.service.Name()).
		Logger()

	if err := g.limiter.Wait(ctx); err != nil {
		return zero, &GenerationError{Type: ErrTypeTransport, Kind: p.Kind, Err: err}
	}

	logger.Debug().Int("instruction_length", len(p.Instruction)).Msg("Invoking text service")
	start := time.Now()
	raw, err := g.service.GenerateJSON(ctx, p.Instruction, p.Schema)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error().Err(err).Dur("duration", elapsed).Msg("Text service call failed")
		return zero, &GenerationError{Type: ErrTypeTransport, Kind: p.Kind, Err: err}
	}
	logger.Debug().Dur("duration", elapsed).Int("response_length", len(raw)).Msg("Text service call complete")

	decoded, err := jsonutil.DecodeMap(raw)
	if err != nil {
		logger.Error().Err(err).Msg("Reply is not parseable JSON")
		return zero, &GenerationError{Type: ErrTypeMalformed, Kind: p.Kind, Err: err}
	}
	if err := verifySchema(decoded, p.Schema); err != nil {
		logger.Error().Err(err).Msg("Reply violates declared schema")
		return zero, &GenerationError{Type: ErrTypeMalformed, Kind: p.Kind, Err: err}
	}

	out, err := jsonutil.Decode[T](raw)
	if err != nil {
		logger.Error().Err(err).Msg("Reply does not decode into typed payload")
		return zero, &GenerationError{Type: ErrTypeMalformed, Kind: p.Kind, Err: err}
	}
	return out, nil
}

// GenerateContent runs the primary generation for the request, in either
// mode. The request must already be validated.
func (g *Gateway) GenerateContent(ctx context.Context, req content.GenerationRequest) (*content.GenerationResult, error) {
	p := prompt.Primary(req)

	result, err := invoke[content.GenerationResult](ctx, g, p)
	if err != nil {
		return nil, err
	}

	usable := result.Descriptions[:0:0]
	for _, d := range result.Descriptions {
		if strings.TrimSpace(d) != "" {
			usable = append(usable, d)
		}
	}
	if len(usable) == 0 {
		return nil, &GenerationError{Type: ErrTypeEmpty, Kind: p.Kind}
	}
	result.Descriptions = usable

	if req.Mode != content.ModeAnalyze {
		// Belt and braces: generate mode persists no analysis even if the
		// model volunteers one.
		result.Analysis = nil
	}

	log.Info().
		Str("kind", string(p.Kind)).
		Int("descriptions", len(result.Descriptions)).
		Bool("has_analysis", result.Analysis != nil).
		Msg("Primary generation complete")
	return &result, nil
}

// MarketingAssets generates the marketing suite for one description.
func (g *Gateway) MarketingAssets(ctx context.Context, description, keywords string, lang content.OutputLanguage) (*content.MarketingAssets, error) {
	assets, err := invoke[content.MarketingAssets](ctx, g, prompt.Assets(description, keywords, lang))
	if err != nil {
		return nil, err
	}
	return &assets, nil
}

// FAQs generates the question/answer list for one description.
func (g *Gateway) FAQs(ctx context.Context, description string, lang content.OutputLanguage) ([]content.FAQItem, error) {
	// The reply nests the list under a "faqs" field.
	wrapped, err := invoke[struct {
		FAQs []content.FAQItem `json:"faqs"`
	}](ctx, g, prompt.FAQs(description, lang))
	if err != nil {
		return nil, err
	}
	return wrapped.FAQs, nil
}

// VideoScript generates a storyboard script for one description.
func (g *Gateway) VideoScript(ctx context.Context, description string, lang content.OutputLanguage) (*content.VideoScript, error) {
	script, err := invoke[content.VideoScript](ctx, g, prompt.VideoScript(description, lang))
	if err != nil {
		return nil, err
	}
	return &script, nil
}

// AudioAd generates an audio spot script for one description.
func (g *Gateway) AudioAd(ctx context.Context, description string, lang content.OutputLanguage) (*content.AudioAd, error) {
	ad, err := invoke[content.AudioAd](ctx, g, prompt.AudioAd(description, lang))
	if err != nil {
		return nil, err
	}
	return &ad, nil
}
