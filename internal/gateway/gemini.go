package gateway

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// GeminiService backs the gateway with the Gemini API, using native
// structured output: the declared schema is passed as response config and the
// API is asked for an application/json reply.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService wraps an initialized genai client.
func NewGeminiService(client *genai.Client, model string) *GeminiService {
	return &GeminiService{client: client, model: model}
}

// NewGeminiClient creates the underlying genai client for the Gemini API
// backend with the given key.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func (s *GeminiService) Name() string { return "gemini:" + s.model }

// GenerateJSON sends the instruction with the schema attached as structured
// output config and returns the raw reply text.
func (s *GeminiService) GenerateJSON(ctx context.Context, instruction string, schema *genai.Schema) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(instruction), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	text := resp.Text()
	log.Debug().
		Str("model", s.model).
		Int("response_length", len(text)).
		Msg("Gemini reply received")
	return text, nil
}
