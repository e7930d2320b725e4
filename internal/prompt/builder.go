// Package prompt builds the natural-language instruction plus declared
// response schema for every content kind. Builders are pure: the same inputs
// always produce the same prompt.
package prompt

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/wassaf/wassaf-cli/internal/content"
)

// Prompt pairs an instruction with the structured-output shape the gateway
// requests and verifies.
type Prompt struct {
	Kind        content.Kind
	Instruction string
	Schema      *genai.Schema
}

// lengthInstruction expands the requested length enum into concrete writing
// guidance, mirroring the product's original copywriting brief.
func lengthInstruction(l content.Length) string {
	switch l {
	case content.LengthShort:
		return "around 50 words, in a single paragraph"
	case content.LengthLong:
		return "over 250 words, very detailed, with a title, introduction, multiple sections with subheadings, and bullet points"
	default:
		return "around 150 words, with a title, introduction, and a few bullet points"
	}
}

// Generate builds the primary-generation prompt for generate mode.
func Generate(req content.GenerationRequest) Prompt {
	var sb strings.Builder

	sb.WriteString("You are an expert e-commerce copywriter specializing in creating compelling, SEO-friendly product descriptions that convert.\n")
	fmt.Fprintf(&sb, "Your output language MUST be %s. The entire response must be in that language.\n\n", req.Language)

	fmt.Fprintf(&sb, "Generate %d unique product descriptions based on the following details.\n", req.VariationCount())
	fmt.Fprintf(&sb, "- Product Name: %s\n", req.ProductName)
	fmt.Fprintf(&sb, "- Key Features & Keywords: %s\n", req.Keywords)
	if req.Audience != "" {
		fmt.Fprintf(&sb, "- Target Audience: %s\n", req.Audience)
	}
	fmt.Fprintf(&sb, "- Tone of Voice: %s\n", req.Tone)
	fmt.Fprintf(&sb, "- Desired Length: %s\n\n", lengthInstruction(req.Length))

	sb.WriteString("Instructions:\n")
	sb.WriteString("1. Each description must be engaging and highlight the product's key benefits.\n")
	sb.WriteString("2. Naturally integrate the provided keywords for SEO.\n")
	sb.WriteString("3. Tailor the language and style to the specified target audience and tone.\n")
	sb.WriteString("4. For medium and long descriptions, structure them with a catchy title, introduction, and bullet points.\n")
	sb.WriteString("5. Do not include placeholders like \"[Your Brand Name]\".\n")

	return Prompt{
		Kind:        content.KindPrimaryGenerate,
		Instruction: sb.String(),
		Schema:      generateSchema(),
	}
}

// Analyze builds the primary-generation prompt for analyze mode: dissect the
// competitor's description, then write superior descriptions.
func Analyze(req content.GenerationRequest) Prompt {
	var sb strings.Builder

	sb.WriteString("You are a world-class marketing strategist and copywriter.\n")
	sb.WriteString("Your task is to analyze a competitor's product description and then write a new set of SUPERIOR descriptions.\n")
	fmt.Fprintf(&sb, "Your output language MUST be %s.\n\n", req.Language)

	sb.WriteString("**Step 1: Analyze the Competitor's Description**\n")
	sb.WriteString("Analyze the following text for its strengths, weaknesses, and strategic opportunities for improvement.\n\n")
	sb.WriteString("Competitor's Description:\n---\n")
	sb.WriteString(req.CompetitorDescription)
	sb.WriteString("\n---\n\n")

	sb.WriteString("**Step 2: Write Superior Descriptions**\n")
	fmt.Fprintf(&sb, "Now, using your analysis, write %d new, much better product descriptions for our product.\n", req.VariationCount())
	sb.WriteString("Use the following details to guide your writing:\n")
	fmt.Fprintf(&sb, "- Product Name: %s\n", req.ProductName)
	if req.Keywords != "" {
		fmt.Fprintf(&sb, "- Key Features & Keywords: %s\n", req.Keywords)
	}
	if req.Audience != "" {
		fmt.Fprintf(&sb, "- Target Audience: %s\n", req.Audience)
	}
	fmt.Fprintf(&sb, "- Tone of Voice: %s\n", req.Tone)
	sb.WriteString("- Desired Length: Same as the competitor's, or as specified if available.\n")

	return Prompt{
		Kind:        content.KindPrimaryAnalyze,
		Instruction: sb.String(),
		Schema:      analyzeSchema(),
	}
}

// Primary dispatches to Generate or Analyze based on the request mode.
func Primary(req content.GenerationRequest) Prompt {
	if req.Mode == content.ModeAnalyze {
		return Analyze(req)
	}
	return Generate(req)
}

// Assets builds the marketing-asset suite prompt for one description.
func Assets(description, keywords string, lang content.OutputLanguage) Prompt {
	var sb strings.Builder

	fmt.Fprintf(&sb, "As an expert digital marketer, analyze the following product description and generate a full suite of marketing assets in %s.\n\n", lang)
	sb.WriteString("Product Description:\n---\n")
	sb.WriteString(description)
	sb.WriteString("\n---\n")
	if keywords != "" {
		fmt.Fprintf(&sb, "Keywords: %s\n", keywords)
	}
	sb.WriteString("\nYour task is to generate:\n")
	sb.WriteString("1. **SEO Title:** A concise, keyword-rich title under 60 characters.\n")
	sb.WriteString("2. **SEO Meta Description:** A compelling summary under 160 characters, with a call-to-action.\n")
	sb.WriteString("3. **Social Media Posts:**\n")
	sb.WriteString("   * Facebook: An engaging post with emojis and a question to drive comments.\n")
	sb.WriteString("   * Instagram: A visually-focused caption, suggesting an image type, and including relevant hashtags.\n")
	sb.WriteString("   * Twitter (X): A short, punchy tweet under 280 characters with a strong hook and key hashtags.\n")
	sb.WriteString("4. **Ad Copy:**\n")
	sb.WriteString("   * Google Ads: 3 distinct headlines (max 30 chars each) and 2 descriptions (max 90 chars each).\n")
	sb.WriteString("   * Facebook Ads: 1 primary text (engaging, longer form) and 1 headline (short, punchy).\n\n")
	fmt.Fprintf(&sb, "The entire output must be in %s.\n", lang)

	return Prompt{
		Kind:        content.KindMarketingAssets,
		Instruction: sb.String(),
		Schema:      assetsSchema(),
	}
}

// FAQCount is how many question/answer pairs an FAQ generation asks for.
const FAQCount = 5

// FAQs builds the frequently-asked-questions prompt for one description.
func FAQs(description string, lang content.OutputLanguage) Prompt {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Based on the following product description, generate a list of %d frequently asked questions (FAQs) that a potential customer might have.\n", FAQCount)
	sb.WriteString("Provide a clear and concise answer for each question.\n")
	fmt.Fprintf(&sb, "The entire output (questions and answers) must be in %s.\n\n", lang)
	sb.WriteString("Product Description:\n---\n")
	sb.WriteString(description)
	sb.WriteString("\n---\n")

	return Prompt{
		Kind:        content.KindFAQs,
		Instruction: sb.String(),
		Schema:      faqSchema(),
	}
}

// VideoScript builds the storyboard-script prompt for one description.
func VideoScript(description string, lang content.OutputLanguage) Prompt {
	var sb strings.Builder

	sb.WriteString("You are an expert video scriptwriter for social media ads. Create a short, punchy video script based on the provided product description.\n")
	sb.WriteString("The script should be for a video of approximately 30 seconds.\n")
	fmt.Fprintf(&sb, "The output must be in %s.\n\n", lang)
	sb.WriteString("Product Description:\n---\n")
	sb.WriteString(description)
	sb.WriteString("\n---\n\n")
	sb.WriteString("Create a storyboard-style script with distinct scenes. Each scene needs a \"visual\" description and the corresponding \"narration\" text.\n")
	sb.WriteString("The tone should be engaging and direct.\n")

	return Prompt{
		Kind:        content.KindVideoScript,
		Instruction: sb.String(),
		Schema:      videoScriptSchema(),
	}
}

// AudioAd builds the audio-spot prompt for one description.
func AudioAd(description string, lang content.OutputLanguage) Prompt {
	var sb strings.Builder

	sb.WriteString("You are a professional audio ad producer. Create a script for a short audio ad (e.g., for a podcast or streaming service) based on the provided product description.\n")
	sb.WriteString("The target duration is 15-20 seconds.\n")
	fmt.Fprintf(&sb, "The entire output must be in %s.\n\n", lang)
	sb.WriteString("Product Description:\n---\n")
	sb.WriteString(description)
	sb.WriteString("\n---\n\n")
	sb.WriteString("The script must include:\n")
	sb.WriteString("1. A strong \"hook\" to grab attention in the first 3 seconds.\n")
	sb.WriteString("2. The main \"body\" of the ad, highlighting key benefits.\n")
	sb.WriteString("3. A clear \"callToAction\".\n")
	sb.WriteString("4. Suggestions for \"sfxSuggestions\" (sound effects) to make the ad more immersive.\n")

	return Prompt{
		Kind:        content.KindAudioAd,
		Instruction: sb.String(),
		Schema:      audioAdSchema(),
	}
}
