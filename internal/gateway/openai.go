package gateway

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const openaiSystemPrompt = "You are a structured content generator. " +
	"Respond with ONLY a single JSON document matching the schema in the user message. " +
	"No prose, no markdown fences."

// OpenAIService backs the gateway with the OpenAI chat-completions API. The
// API has no use for the genai schema type, so the declared schema is
// rendered as JSON inside the instruction instead.
type OpenAIService struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIService builds a chat-completions backend for the given model.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		model: model,
		opts:  []option.RequestOption{option.WithAPIKey(apiKey)},
	}
}

func (s *OpenAIService) Name() string { return "openai:" + s.model }

// GenerateJSON embeds the schema in the instruction, requests a completion,
// and returns the raw reply text.
func (s *OpenAIService) GenerateJSON(ctx context.Context, instruction string, schema *genai.Schema) (string, error) {
	client := openai.NewClient(s.opts...)

	user := instruction +
		"\n\nRespond with ONLY a JSON document matching this JSON schema:\n" +
		schemaJSON(schema)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openaiSystemPrompt),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	text := resp.Choices[0].Message.Content
	log.Debug().
		Str("model", s.model).
		Int("response_length", len(text)).
		Msg("OpenAI reply received")
	return text, nil
}
