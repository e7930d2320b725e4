package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wassaf/wassaf-cli/internal/clipboard"
	"github.com/wassaf/wassaf-cli/internal/content"
	"github.com/wassaf/wassaf-cli/internal/orchestrator"
	"github.com/wassaf/wassaf-cli/internal/session"
	"github.com/wassaf/wassaf-cli/internal/speech"
)

const separator = "============================================================"

// synth is the platform speech backend. It stays nil unless an audio backend
// is wired in, in which case --speak plays the narration instead of printing
// it.
var synth speech.Synthesizer

// printSessionLine renders one history entry in the list view.
func printSessionLine(w io.Writer, s session.Session) {
	fmt.Fprintf(w, "%s  %s  %s (%s, %d variation(s))\n",
		s.ID,
		s.Timestamp.Format("2006-01-02 15:04"),
		s.FormData.ProductName,
		s.FormData.Mode,
		len(s.Results.Descriptions))
}

// printSession renders a full session: the analysis when present, then every
// description variation.
func printSession(w io.Writer, s *session.Session) {
	if s == nil {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Session %s: %s\n", s.ID, s.FormData.ProductName)
	fmt.Fprintln(w, separator)

	if s.Results.Analysis != nil {
		printAnalysis(w, s.Results.Analysis)
	}

	for i, desc := range s.Results.Descriptions {
		fmt.Fprintf(w, "\n--- Description %d ---\n\n", i+1)
		fmt.Fprintln(w, desc)
	}
	fmt.Fprintln(w)
}

func printAnalysis(w io.Writer, a *content.CompetitorAnalysis) {
	fmt.Fprintln(w, "\n📊 Competitor Analysis")
	printBullets(w, "Strengths", a.Strengths)
	printBullets(w, "Weaknesses", a.Weaknesses)
	printBullets(w, "Opportunities", a.Opportunities)
}

func printBullets(w io.Writer, label string, items []string) {
	fmt.Fprintf(w, "\n%s:\n", label)
	for _, item := range items {
		fmt.Fprintln(w, "  • "+item)
	}
}

// runSuite fans out the four secondary generations for description i and
// renders each artifact.
func runSuite(ctx context.Context, orch *orchestrator.Orchestrator, i int) {
	fmt.Printf("\n⏳ Generating marketing suite for description %d...\n", i+1)

	if err := orch.GenerateAllArtifacts(ctx, i); err != nil {
		log.Error().Err(err).Int("description", i).Msg("marketing suite generation failed")
		fmt.Println("❌ " + err.Error())
		os.Exit(1)
	}

	assets, err := orch.MarketingAssets(ctx, i)
	if err == nil {
		printAssets(os.Stdout, assets)
	}
	faqs, err := orch.FAQs(ctx, i)
	if err == nil {
		printFAQs(os.Stdout, faqs)
	}
	script, err := orch.VideoScript(ctx, i)
	if err == nil {
		printVideoScript(os.Stdout, script)
	}
	ad, err := orch.AudioAd(ctx, i)
	if err == nil {
		printAudioAd(os.Stdout, ad)
	}
}

func printAssets(w io.Writer, a content.MarketingAssets) {
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "🔍 SEO")
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "Title:            "+a.SEOTitle)
	fmt.Fprintln(w, "Meta description: "+a.SEOMetaDescription)

	fmt.Fprintln(w, "\n📣 Social posts")
	fmt.Fprintln(w, "\nFacebook:\n"+a.SocialPosts.Facebook)
	fmt.Fprintln(w, "\nInstagram:\n"+a.SocialPosts.Instagram)
	fmt.Fprintln(w, "\nTwitter:\n"+a.SocialPosts.Twitter)

	fmt.Fprintln(w, "\n💰 Ad copy")
	fmt.Fprintln(w, "\nGoogle headlines:")
	for _, h := range a.AdCopy.Google.Headlines {
		fmt.Fprintln(w, "  • "+h)
	}
	fmt.Fprintln(w, "Google descriptions:")
	for _, d := range a.AdCopy.Google.Descriptions {
		fmt.Fprintln(w, "  • "+d)
	}
	fmt.Fprintln(w, "\nFacebook primary text:\n"+a.AdCopy.Facebook.PrimaryText)
	fmt.Fprintln(w, "Facebook headline: "+a.AdCopy.Facebook.Headline)
}

func printFAQs(w io.Writer, faqs []content.FAQItem) {
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "❓ FAQ")
	fmt.Fprintln(w, separator)
	for _, f := range faqs {
		fmt.Fprintln(w, "\nQ: "+f.Question)
		fmt.Fprintln(w, "A: "+f.Answer)
	}
}

func printVideoScript(w io.Writer, s content.VideoScript) {
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintf(w, "🎬 %s (%s)\n", s.Title, s.TargetDuration)
	fmt.Fprintln(w, separator)
	for i, scene := range s.Scenes {
		fmt.Fprintf(w, "\nScene %d\n", i+1)
		fmt.Fprintln(w, "  Visual:    "+scene.Visual)
		fmt.Fprintln(w, "  Narration: "+scene.Narration)
	}
}

func printAudioAd(w io.Writer, a content.AudioAd) {
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintf(w, "🎙️  %s (%s)\n", a.Title, a.TargetDuration)
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "\nHook: "+a.Hook)
	fmt.Fprintln(w, "\n"+a.Body)
	fmt.Fprintln(w, "\nCall to action: "+a.CallToAction)
	if len(a.SFXSuggestions) > 0 {
		fmt.Fprintln(w, "\nSFX: "+strings.Join(a.SFXSuggestions, ", "))
	}
}

// copyDescription puts description i of the session on the system clipboard.
func copyDescription(w io.Writer, s *session.Session, i int) {
	if s == nil || i < 0 || i >= len(s.Results.Descriptions) {
		fmt.Fprintln(w, "No such description to copy.")
		return
	}
	copier := clipboard.SystemCopier{}
	if err := copier.CopyText(s.Results.Descriptions[i]); err != nil {
		log.Warn().Err(err).Msg("clipboard copy failed")
		fmt.Fprintln(w, "Could not copy to clipboard.")
		return
	}
	fmt.Fprintf(w, "📋 Description %d copied to clipboard.\n", i+1)
}

// speakDescription narrates description i: through the speech backend with a
// voice matching the session's output language when one is wired in,
// otherwise by printing the plain voiceover text.
func speakDescription(w io.Writer, s *session.Session, i int) {
	if s == nil || i < 0 || i >= len(s.Results.Descriptions) {
		fmt.Fprintln(w, "No such description to speak.")
		return
	}

	text := speech.PlainNarration(s.Results.Descriptions[i])
	if synth != nil {
		voices := speech.VoicesForLanguage(synth.Voices(), s.FormData.Language)
		if len(voices) == 0 {
			log.Warn().Str("language", string(s.FormData.Language)).Msg("No voice matches the output language")
		} else if err := synth.Speak(text, voices[0], 1.0, 1.0); err != nil {
			log.Warn().Err(err).Msg("Speech playback failed")
		} else {
			return
		}
	}

	fmt.Fprintln(w, "\n🔊 Voiceover text:")
	fmt.Fprintln(w, text)
}
