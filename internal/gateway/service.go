// Package gateway invokes the external text-generation service for each
// content kind, enforcing the schema contract and parsing raw replies into
// typed results or typed failures. It never retries and never touches the
// session store or operation state.
package gateway

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"
)

// TextService is the black-box generative text backend: given an instruction
// and the desired output shape, return raw text expected to parse as JSON
// matching the schema.
type TextService interface {
	// GenerateJSON sends the instruction requesting a structured reply.
	GenerateJSON(ctx context.Context, instruction string, schema *genai.Schema) (string, error)
	// Name identifies the backend for logs.
	Name() string
}

// schemaJSON renders a declared schema as JSON for backends without native
// structured-output support.
func schemaJSON(schema *genai.Schema) string {
	if schema == nil {
		return "{}"
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
