package content

import (
	"errors"
	"testing"
)

func validGenerateRequest() GenerationRequest {
	return GenerationRequest{
		ProductName: "Ceramic Pour-Over Kettle",
		Keywords:    "gooseneck, 1L, matte finish",
		Tone:        ToneProfessional,
		Variations:  2,
		Language:    LanguageEnglish,
		Length:      LengthMedium,
		Mode:        ModeGenerate,
	}
}

func TestValidateGenerateMode(t *testing.T) {
	req := validGenerateRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("valid generate request rejected: %v", err)
	}
}

func TestValidateAnalyzeMode(t *testing.T) {
	req := validGenerateRequest()
	req.Mode = ModeAnalyze
	req.Keywords = ""
	req.CompetitorDescription = "A kettle that pours water."

	if err := req.Validate(); err != nil {
		t.Fatalf("valid analyze request rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*GenerationRequest)
		wantField string
	}{
		{
			name:      "missing product name",
			mutate:    func(r *GenerationRequest) { r.ProductName = "   " },
			wantField: "productName",
		},
		{
			name:      "generate mode without keywords",
			mutate:    func(r *GenerationRequest) { r.Keywords = "" },
			wantField: "keywords",
		},
		{
			name: "analyze mode without competitor description",
			mutate: func(r *GenerationRequest) {
				r.Mode = ModeAnalyze
				r.CompetitorDescription = ""
			},
			wantField: "competitorDescription",
		},
		{
			name:      "unknown mode",
			mutate:    func(r *GenerationRequest) { r.Mode = "remix" },
			wantField: "mode",
		},
		{
			name:      "unknown tone",
			mutate:    func(r *GenerationRequest) { r.Tone = "sarcastic" },
			wantField: "tone",
		},
		{
			name:      "unknown language",
			mutate:    func(r *GenerationRequest) { r.Language = "Klingon" },
			wantField: "language",
		},
		{
			name:      "unknown length",
			mutate:    func(r *GenerationRequest) { r.Length = "epic" },
			wantField: "length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGenerateRequest()
			tt.mutate(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestVariationCountCoercion(t *testing.T) {
	tests := []struct {
		variations int
		want       int
	}{
		{variations: -1, want: 1},
		{variations: 0, want: 1},
		{variations: 1, want: 1},
		{variations: 5, want: 5},
	}

	for _, tt := range tests {
		req := GenerationRequest{Variations: tt.variations}
		if got := req.VariationCount(); got != tt.want {
			t.Errorf("VariationCount() with %d = %d, want %d", tt.variations, got, tt.want)
		}
	}
}

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		lang OutputLanguage
		want string
	}{
		{LanguageArabic, "ar"},
		{LanguageEnglish, "en"},
		{LanguageFrench, "fr"},
		{LanguageSpanish, "es"},
		{OutputLanguage("Klingon"), ""},
	}

	for _, tt := range tests {
		if got := tt.lang.Code(); got != tt.want {
			t.Errorf("Code() for %q = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestPrimaryKind(t *testing.T) {
	req := validGenerateRequest()
	if got := req.PrimaryKind(); got != KindPrimaryGenerate {
		t.Errorf("expected %q, got %q", KindPrimaryGenerate, got)
	}

	req.Mode = ModeAnalyze
	if got := req.PrimaryKind(); got != KindPrimaryAnalyze {
		t.Errorf("expected %q, got %q", KindPrimaryAnalyze, got)
	}
}

func TestSecondaryKindsOrder(t *testing.T) {
	want := []Kind{KindMarketingAssets, KindFAQs, KindVideoScript, KindAudioAd}
	got := SecondaryKinds()
	if len(got) != len(want) {
		t.Fatalf("expected %d kinds, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kind %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
