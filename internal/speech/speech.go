// Package speech defines the text-to-speech capability the core hands
// narration text to. The core supplies plain text and the user's voice
// choice; audio hardware and playback live behind the Synthesizer interface.
package speech

import (
	"strings"

	"github.com/wassaf/wassaf-cli/internal/content"
)

// Voice identifies one available synthesizer voice.
type Voice struct {
	Name     string
	Language string // BCP-47 tag, e.g. "ar-SA", "en-US"
}

// Synthesizer is the playback capability. Implementations are platform
// plumbing; none of the core packages depend on a concrete one.
type Synthesizer interface {
	Voices() []Voice
	Speak(text string, voice Voice, rate, pitch float64) error
	Pause()
	Resume()
	Cancel()
	Speaking() bool
	Paused() bool
}

// VoicesForLanguage filters voices down to those matching the output
// language's primary subtag.
func VoicesForLanguage(voices []Voice, lang content.OutputLanguage) []Voice {
	code := lang.Code()
	if code == "" {
		return nil
	}
	var matched []Voice
	for _, v := range voices {
		if strings.HasPrefix(strings.ToLower(v.Language), code) {
			matched = append(matched, v)
		}
	}
	return matched
}
