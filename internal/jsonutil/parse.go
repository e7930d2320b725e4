// Package jsonutil extracts and decodes the JSON payload of a generative
// model reply. Even with structured output requested, replies occasionally
// arrive wrapped in ```json fences or padded with prose, so every gateway
// parse goes through here.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TrimFences removes a surrounding ```json ... ``` (or bare ```) block and
// returns the inner text. Text without a leading fence is returned unchanged.
func TrimFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	idx := strings.Index(text, "\n")
	if idx < 0 {
		return text
	}
	body := text[idx+1:] // drop the opening fence line, including any language tag
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// Payload returns the JSON object or array embedded in text, located by the
// first opening delimiter and the matching closer at the end of the document.
func Payload(text string) (string, error) {
	text = strings.TrimSpace(text)

	start := -1
	var closer byte
	for i := 0; i < len(text); i++ {
		if text[i] == '{' {
			start, closer = i, '}'
			break
		}
		if text[i] == '[' {
			start, closer = i, ']'
			break
		}
	}
	if start < 0 {
		return "", fmt.Errorf("no JSON payload in reply")
	}

	end := strings.LastIndexByte(text, closer)
	if end < start {
		return "", fmt.Errorf("unterminated JSON payload in reply")
	}
	return text[start : end+1], nil
}

// Decode trims fences, locates the JSON payload, and unmarshals it into T.
func Decode[T any](raw string) (T, error) {
	var out T

	payload, err := Payload(TrimFences(raw))
	if err != nil {
		return out, fmt.Errorf("%w (reply length %d)", err, len(raw))
	}

	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		preview := payload
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return out, fmt.Errorf("decode reply JSON: %w (payload: %s)", err, preview)
	}
	return out, nil
}

// DecodeMap is Decode specialized to a generic object, used for schema
// verification before a typed decode.
func DecodeMap(raw string) (map[string]any, error) {
	return Decode[map[string]any](raw)
}
