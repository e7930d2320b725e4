package speech

import (
	"strings"
	"testing"

	"github.com/wassaf/wassaf-cli/internal/content"
)

func TestPlainNarrationStripsMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading",
			input: "## The Perfect Kettle",
			want:  "The Perfect Kettle",
		},
		{
			name:  "emphasis",
			input: "This kettle is **amazing** and *elegant*.",
			want:  "This kettle is amazing and elegant.",
		},
		{
			name:  "bullet list",
			input: "Features:\n\n* Fast boil\n* Quiet\n- Matte finish",
			want:  "Features:\nFast boil\nQuiet\nMatte finish",
		},
		{
			name:  "link keeps text",
			input: "See [our store](https://example.com) today.",
			want:  "See our store today.",
		},
		{
			name:  "plain text unchanged",
			input: "Just a sentence.",
			want:  "Just a sentence.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainNarration(tt.input); got != tt.want {
				t.Errorf("PlainNarration() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlainNarrationJoinsSoftBreaks(t *testing.T) {
	got := PlainNarration("A kettle\nthat pours well.")
	if got != "A kettle that pours well." {
		t.Errorf("soft line break not joined: %q", got)
	}
}

func TestPlainNarrationCollapsesBlankLines(t *testing.T) {
	got := PlainNarration("# Title\n\n\nBody paragraph.\n\n\n")
	if strings.Contains(got, "\n\n") {
		t.Errorf("blank lines survived: %q", got)
	}
}

func TestVoicesForLanguage(t *testing.T) {
	voices := []Voice{
		{Name: "Hoda", Language: "ar-SA"},
		{Name: "Amira", Language: "AR-EG"},
		{Name: "Daniel", Language: "en-GB"},
		{Name: "Amelie", Language: "fr-CA"},
	}

	arabic := VoicesForLanguage(voices, content.LanguageArabic)
	if len(arabic) != 2 {
		t.Fatalf("expected 2 Arabic voices, got %d", len(arabic))
	}
	for _, v := range arabic {
		if !strings.HasPrefix(strings.ToLower(v.Language), "ar") {
			t.Errorf("non-Arabic voice matched: %+v", v)
		}
	}

	french := VoicesForLanguage(voices, content.LanguageFrench)
	if len(french) != 1 || french[0].Name != "Amelie" {
		t.Errorf("unexpected French voices: %+v", french)
	}

	if got := VoicesForLanguage(voices, content.OutputLanguage("Klingon")); got != nil {
		t.Errorf("unknown language should match nothing, got %+v", got)
	}
}
