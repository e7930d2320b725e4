package gateway

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/wassaf/wassaf-cli/internal/content"
)

// fakeService returns canned replies and records how often it was called.
type fakeService struct {
	reply string
	err   error
	calls int
}

func (f *fakeService) GenerateJSON(ctx context.Context, instruction string, schema *genai.Schema) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeService) Name() string { return "fake" }

func newTestGateway(reply string, err error) (*Gateway, *fakeService) {
	svc := &fakeService{reply: reply, err: err}
	return New(svc, 0), svc
}

func generateRequest() content.GenerationRequest {
	return content.GenerationRequest{
		ProductName: "Kettle",
		Keywords:    "gooseneck",
		Tone:        content.ToneProfessional,
		Variations:  2,
		Language:    content.LanguageEnglish,
		Length:      content.LengthMedium,
		Mode:        content.ModeGenerate,
	}
}

func TestGenerateContent(t *testing.T) {
	gw, svc := newTestGateway(`{"descriptions": ["first", "second"]}`, nil)

	result, err := gw.GenerateContent(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Descriptions) != 2 {
		t.Errorf("expected 2 descriptions, got %d", len(result.Descriptions))
	}
	if result.Analysis != nil {
		t.Error("generate mode must not carry an analysis")
	}
	if svc.calls != 1 {
		t.Errorf("service called %d times, want 1", svc.calls)
	}
}

func TestGenerateContentFencedReply(t *testing.T) {
	gw, _ := newTestGateway("```json\n{\"descriptions\": [\"fenced\"]}\n```", nil)

	result, err := gw.GenerateContent(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("fenced reply should parse: %v", err)
	}
	if len(result.Descriptions) != 1 || result.Descriptions[0] != "fenced" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestGenerateContentDropsVolunteeredAnalysis(t *testing.T) {
	gw, _ := newTestGateway(`{"descriptions": ["d"], "analysis": {"strengths": ["s"], "weaknesses": ["w"], "opportunities": ["o"]}}`, nil)

	result, err := gw.GenerateContent(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Analysis != nil {
		t.Error("generate mode must discard a volunteered analysis")
	}
}

func TestAnalyzeContentKeepsAnalysis(t *testing.T) {
	gw, _ := newTestGateway(`{"descriptions": ["better"], "analysis": {"strengths": ["clear"], "weaknesses": ["flat"], "opportunities": ["seo"]}}`, nil)

	req := generateRequest()
	req.Mode = content.ModeAnalyze
	req.CompetitorDescription = "their copy"

	result, err := gw.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Analysis == nil {
		t.Fatal("analyze mode must carry the analysis")
	}
	if len(result.Analysis.Strengths) != 1 || result.Analysis.Strengths[0] != "clear" {
		t.Errorf("unexpected analysis: %+v", result.Analysis)
	}
}

func TestAnalyzeContentMissingAnalysisIsMalformed(t *testing.T) {
	// The analyze schema requires the analysis field.
	gw, _ := newTestGateway(`{"descriptions": ["better"]}`, nil)

	req := generateRequest()
	req.Mode = content.ModeAnalyze
	req.CompetitorDescription = "their copy"

	_, err := gw.GenerateContent(context.Background(), req)
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Type != ErrTypeMalformed {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestGenerateContentErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		svcErr   error
		wantType ErrorType
	}{
		{
			name:     "transport failure",
			svcErr:   errors.New("connection refused"),
			wantType: ErrTypeTransport,
		},
		{
			name:     "unparseable reply",
			reply:    "I'd be happy to help with descriptions!",
			wantType: ErrTypeMalformed,
		},
		{
			name:     "missing required field",
			reply:    `{"notDescriptions": []}`,
			wantType: ErrTypeMalformed,
		},
		{
			name:     "empty description list",
			reply:    `{"descriptions": []}`,
			wantType: ErrTypeEmpty,
		},
		{
			name:     "only blank descriptions",
			reply:    `{"descriptions": ["", "   "]}`,
			wantType: ErrTypeEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, _ := newTestGateway(tt.reply, tt.svcErr)

			_, err := gw.GenerateContent(context.Background(), generateRequest())
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected *GenerationError, got %v", err)
			}
			if genErr.Type != tt.wantType {
				t.Errorf("expected error type %v, got %v", tt.wantType, genErr.Type)
			}
		})
	}
}

func TestMarketingAssets(t *testing.T) {
	gw, _ := newTestGateway(`{
		"seoTitle": "Kettle",
		"seoMetaDescription": "Buy the kettle.",
		"socialPosts": {"facebook": "f", "instagram": "i", "twitter": "t"},
		"adCopy": {
			"google": {"headlines": ["h1"], "descriptions": ["d1"]},
			"facebook": {"primaryText": "p", "headline": "h"}
		}
	}`, nil)

	assets, err := gw.MarketingAssets(context.Background(), "desc", "kw", content.LanguageEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assets.SEOTitle != "Kettle" || assets.SocialPosts.Twitter != "t" {
		t.Errorf("unexpected assets: %+v", assets)
	}
	if assets.AdCopy.Facebook.PrimaryText != "p" {
		t.Errorf("unexpected ad copy: %+v", assets.AdCopy)
	}
}

func TestMarketingAssetsMissingNestedField(t *testing.T) {
	// socialPosts present but missing its required twitter field.
	gw, _ := newTestGateway(`{
		"seoTitle": "Kettle",
		"seoMetaDescription": "Buy the kettle.",
		"socialPosts": {"facebook": "f", "instagram": "i"},
		"adCopy": {
			"google": {"headlines": ["h1"], "descriptions": ["d1"]},
			"facebook": {"primaryText": "p", "headline": "h"}
		}
	}`, nil)

	_, err := gw.MarketingAssets(context.Background(), "desc", "kw", content.LanguageEnglish)
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Type != ErrTypeMalformed {
		t.Fatalf("expected malformed error for missing nested field, got %v", err)
	}
}

func TestFAQsUnwrapsList(t *testing.T) {
	gw, _ := newTestGateway(`{"faqs": [{"question": "Q1", "answer": "A1"}, {"question": "Q2", "answer": "A2"}]}`, nil)

	faqs, err := gw.FAQs(context.Background(), "desc", content.LanguageEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(faqs) != 2 || faqs[0].Question != "Q1" {
		t.Errorf("unexpected faqs: %+v", faqs)
	}
}

func TestVideoScript(t *testing.T) {
	gw, _ := newTestGateway(`{
		"title": "Kettle Ad",
		"targetDuration": "30 seconds",
		"scenes": [{"visual": "close-up", "narration": "meet the kettle"}]
	}`, nil)

	script, err := gw.VideoScript(context.Background(), "desc", content.LanguageEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if script.Title != "Kettle Ad" || len(script.Scenes) != 1 {
		t.Errorf("unexpected script: %+v", script)
	}
}

func TestAudioAd(t *testing.T) {
	gw, _ := newTestGateway(`{
		"title": "Kettle Spot",
		"targetDuration": "15-20 seconds",
		"hook": "Tired of cold coffee?",
		"body": "The kettle keeps it hot.",
		"callToAction": "Order today.",
		"sfxSuggestions": ["pouring water"]
	}`, nil)

	ad, err := gw.AudioAd(context.Background(), "desc", content.LanguageEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ad.Hook != "Tired of cold coffee?" || len(ad.SFXSuggestions) != 1 {
		t.Errorf("unexpected ad: %+v", ad)
	}
}

func TestGenerationErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &GenerationError{Type: ErrTypeTransport, Kind: content.KindFAQs, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("GenerationError must unwrap to its cause")
	}
	if err.Error() == "" {
		t.Error("empty error string")
	}
}
