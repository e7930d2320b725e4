// Package content defines the typed data model shared by the prompt builder,
// the generation gateway, the session store, and the orchestrator. The JSON
// tags are the persisted wire shape; changing them breaks stored history.
package content

import "strings"

// --- Request enums ---

// Tone is the requested voice of the generated copy.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneWitty        Tone = "witty"
	TonePersuasive   Tone = "persuasive"
	ToneLuxurious    Tone = "luxurious"
	ToneSimple       Tone = "simple"
)

// Valid reports whether t is one of the known tones.
func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneWitty, TonePersuasive, ToneLuxurious, ToneSimple:
		return true
	}
	return false
}

// OutputLanguage is the language every generated artifact must be written in.
type OutputLanguage string

const (
	LanguageArabic  OutputLanguage = "Arabic"
	LanguageEnglish OutputLanguage = "English"
	LanguageFrench  OutputLanguage = "French"
	LanguageSpanish OutputLanguage = "Spanish"
)

// Valid reports whether l is one of the supported output languages.
func (l OutputLanguage) Valid() bool {
	switch l {
	case LanguageArabic, LanguageEnglish, LanguageFrench, LanguageSpanish:
		return true
	}
	return false
}

// Code returns the BCP-47 primary subtag for the language, used to filter
// text-to-speech voices.
func (l OutputLanguage) Code() string {
	switch l {
	case LanguageArabic:
		return "ar"
	case LanguageEnglish:
		return "en"
	case LanguageFrench:
		return "fr"
	case LanguageSpanish:
		return "es"
	}
	return ""
}

// Length is the requested size of each description.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Valid reports whether l is one of the known lengths.
func (l Length) Valid() bool {
	switch l {
	case LengthShort, LengthMedium, LengthLong:
		return true
	}
	return false
}

// Mode selects between writing fresh descriptions and rewriting against a
// competitor's description.
type Mode string

const (
	ModeGenerate Mode = "generate"
	ModeAnalyze  Mode = "analyze"
)

// --- Content kinds ---

// Kind enumerates the categories of content the gateway can produce.
type Kind string

const (
	KindPrimaryGenerate Kind = "primary-generate"
	KindPrimaryAnalyze  Kind = "primary-analyze"
	KindMarketingAssets Kind = "marketing-assets"
	KindFAQs            Kind = "faqs"
	KindVideoScript     Kind = "video-script"
	KindAudioAd         Kind = "audio-ad"
)

// SecondaryKinds lists the per-description content kinds, in display order.
func SecondaryKinds() []Kind {
	return []Kind{KindMarketingAssets, KindFAQs, KindVideoScript, KindAudioAd}
}

// --- Request / result types ---

// GenerationRequest is the form input for one primary generation. It is
// created on submit, consumed by the gateway, and persisted verbatim inside
// the session it produced.
type GenerationRequest struct {
	ProductName           string         `json:"productName"`
	Keywords              string         `json:"keywords"`
	Audience              string         `json:"audience"`
	Tone                  Tone           `json:"tone"`
	Variations            int            `json:"variations"`
	Language              OutputLanguage `json:"language"`
	Length                Length         `json:"length"`
	Mode                  Mode           `json:"mode"`
	CompetitorDescription string         `json:"competitorDescription"`
}

// VariationCount returns the requested number of descriptions, coerced to at
// least one.
func (r GenerationRequest) VariationCount() int {
	if r.Variations < 1 {
		return 1
	}
	return r.Variations
}

// CompetitorAnalysis is the strategic breakdown produced in analyze mode.
type CompetitorAnalysis struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
}

// GenerationResult is the payload of a successful primary generation.
// Analysis is nil in generate mode.
type GenerationResult struct {
	Descriptions []string            `json:"descriptions"`
	Analysis     *CompetitorAnalysis `json:"analysis"`
}

// --- Secondary artifact types ---

// SocialPosts holds one post per supported network.
type SocialPosts struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// GoogleAdCopy is the Google Ads portion of the ad copy suite.
type GoogleAdCopy struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
}

// FacebookAdCopy is the Facebook Ads portion of the ad copy suite.
type FacebookAdCopy struct {
	PrimaryText string `json:"primaryText"`
	Headline    string `json:"headline"`
}

// AdCopy groups the per-platform ad variants.
type AdCopy struct {
	Google   GoogleAdCopy   `json:"google"`
	Facebook FacebookAdCopy `json:"facebook"`
}

// MarketingAssets is the full marketing suite derived from one description.
type MarketingAssets struct {
	SEOTitle           string      `json:"seoTitle"`
	SEOMetaDescription string      `json:"seoMetaDescription"`
	SocialPosts        SocialPosts `json:"socialPosts"`
	AdCopy             AdCopy      `json:"adCopy"`
}

// FAQItem is one generated question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// VideoScene is one storyboard entry of a video script.
type VideoScene struct {
	Visual    string `json:"visual"`
	Narration string `json:"narration"`
}

// VideoScript is a storyboard-style script for a short social media ad video.
type VideoScript struct {
	Title          string       `json:"title"`
	TargetDuration string       `json:"targetDuration"`
	Scenes         []VideoScene `json:"scenes"`
}

// AudioAd is a script for a short podcast/streaming audio spot.
type AudioAd struct {
	Title          string   `json:"title"`
	TargetDuration string   `json:"targetDuration"`
	Hook           string   `json:"hook"`
	Body           string   `json:"body"`
	CallToAction   string   `json:"callToAction"`
	SFXSuggestions []string `json:"sfxSuggestions"`
}

// --- Validation ---

// ValidationError reports a request field that fails the per-mode invariants.
// It is raised before any external call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Field + ": " + e.Message
}

// Validate enforces the request invariants: generate mode requires a product
// name and keywords, analyze mode requires a product name and the competitor's
// description. Enum fields must carry known values.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.ProductName) == "" {
		return &ValidationError{Field: "productName", Message: "must not be empty"}
	}
	switch r.Mode {
	case ModeGenerate:
		if strings.TrimSpace(r.Keywords) == "" {
			return &ValidationError{Field: "keywords", Message: "must not be empty in generate mode"}
		}
	case ModeAnalyze:
		if strings.TrimSpace(r.CompetitorDescription) == "" {
			return &ValidationError{Field: "competitorDescription", Message: "must not be empty in analyze mode"}
		}
	default:
		return &ValidationError{Field: "mode", Message: "must be generate or analyze"}
	}
	if !r.Tone.Valid() {
		return &ValidationError{Field: "tone", Message: "unknown tone " + string(r.Tone)}
	}
	if !r.Language.Valid() {
		return &ValidationError{Field: "language", Message: "unknown language " + string(r.Language)}
	}
	if !r.Length.Valid() {
		return &ValidationError{Field: "length", Message: "unknown length " + string(r.Length)}
	}
	return nil
}

// PrimaryKind maps the request mode to the content kind of its primary
// generation.
func (r GenerationRequest) PrimaryKind() Kind {
	if r.Mode == ModeAnalyze {
		return KindPrimaryAnalyze
	}
	return KindPrimaryGenerate
}
