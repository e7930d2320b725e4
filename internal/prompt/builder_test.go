package prompt

import (
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/wassaf/wassaf-cli/internal/content"
)

func sampleRequest() content.GenerationRequest {
	return content.GenerationRequest{
		ProductName: "Thermal Carafe",
		Keywords:    "stainless steel, 12h heat retention",
		Tone:        content.ToneFriendly,
		Variations:  3,
		Language:    content.LanguageFrench,
		Length:      content.LengthShort,
		Mode:        content.ModeGenerate,
	}
}

func TestGeneratePrompt(t *testing.T) {
	p := Generate(sampleRequest())

	if p.Kind != content.KindPrimaryGenerate {
		t.Errorf("expected kind %q, got %q", content.KindPrimaryGenerate, p.Kind)
	}
	for _, want := range []string{
		"Your output language MUST be French",
		"Generate 3 unique product descriptions",
		"Thermal Carafe",
		"stainless steel, 12h heat retention",
		"friendly",
	} {
		if !strings.Contains(p.Instruction, want) {
			t.Errorf("instruction missing %q", want)
		}
	}
	if p.Schema == nil || p.Schema.Type != genai.TypeObject {
		t.Fatal("expected an object response schema")
	}
}

func TestGeneratePromptOmitsEmptyAudience(t *testing.T) {
	req := sampleRequest()
	req.Audience = ""
	if strings.Contains(Generate(req).Instruction, "Target Audience") {
		t.Error("audience line present for empty audience")
	}

	req.Audience = "home baristas"
	if !strings.Contains(Generate(req).Instruction, "Target Audience: home baristas") {
		t.Error("audience line missing when audience is set")
	}
}

func TestGeneratePromptCoercesVariations(t *testing.T) {
	req := sampleRequest()
	req.Variations = 0
	if !strings.Contains(Generate(req).Instruction, "Generate 1 unique") {
		t.Error("zero variations should be coerced to one")
	}
}

func TestAnalyzePrompt(t *testing.T) {
	req := sampleRequest()
	req.Mode = content.ModeAnalyze
	req.CompetitorDescription = "Our carafe keeps drinks warm."

	p := Analyze(req)
	if p.Kind != content.KindPrimaryAnalyze {
		t.Errorf("expected kind %q, got %q", content.KindPrimaryAnalyze, p.Kind)
	}
	for _, want := range []string{
		"Step 1: Analyze the Competitor's Description",
		"Our carafe keeps drinks warm.",
		"Step 2: Write Superior Descriptions",
		"write 3 new, much better product descriptions",
	} {
		if !strings.Contains(p.Instruction, want) {
			t.Errorf("instruction missing %q", want)
		}
	}

	if !contains(p.Schema.Required, "analysis") {
		t.Error("analyze schema must require the analysis field")
	}
}

func TestPrimaryDispatch(t *testing.T) {
	req := sampleRequest()
	if Primary(req).Kind != content.KindPrimaryGenerate {
		t.Error("generate mode should build a generate prompt")
	}

	req.Mode = content.ModeAnalyze
	req.CompetitorDescription = "text"
	if Primary(req).Kind != content.KindPrimaryAnalyze {
		t.Error("analyze mode should build an analyze prompt")
	}
}

func TestSecondaryPromptsCarryLanguage(t *testing.T) {
	desc := "A carafe that keeps coffee hot."

	tests := []struct {
		name string
		p    Prompt
		kind content.Kind
	}{
		{"assets", Assets(desc, "carafe", content.LanguageSpanish), content.KindMarketingAssets},
		{"faqs", FAQs(desc, content.LanguageSpanish), content.KindFAQs},
		{"video", VideoScript(desc, content.LanguageSpanish), content.KindVideoScript},
		{"audio", AudioAd(desc, content.LanguageSpanish), content.KindAudioAd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Kind != tt.kind {
				t.Errorf("expected kind %q, got %q", tt.kind, tt.p.Kind)
			}
			if !strings.Contains(tt.p.Instruction, "Spanish") {
				t.Error("instruction missing output language")
			}
			if !strings.Contains(tt.p.Instruction, desc) {
				t.Error("instruction missing the source description")
			}
			if tt.p.Schema == nil {
				t.Error("missing response schema")
			}
		})
	}
}

func TestSchemaRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		schema   *genai.Schema
		required []string
	}{
		{"generate", generateSchema(), []string{"descriptions"}},
		{"analyze", analyzeSchema(), []string{"descriptions", "analysis"}},
		{"assets", assetsSchema(), []string{"seoTitle", "seoMetaDescription", "socialPosts", "adCopy"}},
		{"faq", faqSchema(), []string{"faqs"}},
		{"video", videoScriptSchema(), []string{"title", "targetDuration", "scenes"}},
		{"audio", audioAdSchema(), []string{"title", "targetDuration", "hook", "body", "callToAction", "sfxSuggestions"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, field := range tt.required {
				if !contains(tt.schema.Required, field) {
					t.Errorf("schema missing required field %q", field)
				}
				if _, ok := tt.schema.Properties[field]; !ok {
					t.Errorf("schema missing property %q", field)
				}
			}
		})
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
