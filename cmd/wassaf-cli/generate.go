package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wassaf/wassaf-cli/internal/content"
)

// Shared form flags for generate and analyze.
var (
	nameFlag       string
	keywordsFlag   string
	audienceFlag   string
	toneFlag       string
	variationsFlag int
	languageFlag   string
	lengthFlag     string

	competitorFlag     string
	competitorFileFlag string

	suiteFlag int
	copyFlag  int
	speakFlag int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate product descriptions from a brief",
	Run:   runGenerate,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a competitor's description and write superior ones",
	Run:   runAnalyze,
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, analyzeCmd} {
		cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Product name")
		cmd.Flags().StringVarP(&keywordsFlag, "keywords", "k", "", "Key features and keywords, comma separated")
		cmd.Flags().StringVarP(&audienceFlag, "audience", "a", "", "Target audience (optional)")
		cmd.Flags().StringVar(&toneFlag, "tone", string(content.ToneProfessional), "Tone of voice: professional, friendly, witty, persuasive, luxurious, simple")
		cmd.Flags().IntVar(&variationsFlag, "variations", 1, "Number of description variations")
		cmd.Flags().StringVar(&languageFlag, "language", string(content.LanguageArabic), "Output language: Arabic, English, French, Spanish")
		cmd.Flags().StringVar(&lengthFlag, "length", string(content.LengthMedium), "Description length: short, medium, long")
		cmd.Flags().IntVar(&suiteFlag, "suite", 0, "Also generate the full marketing suite for description N (1-based)")
		cmd.Flags().IntVar(&copyFlag, "copy", 0, "Copy description N to the clipboard (1-based)")
		cmd.Flags().IntVar(&speakFlag, "speak", 0, "Print the voiceover text for description N (1-based)")
	}
	analyzeCmd.Flags().StringVar(&competitorFlag, "competitor", "", "Competitor's description text")
	analyzeCmd.Flags().StringVar(&competitorFileFlag, "competitor-file", "", "File containing the competitor's description")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// formRequest assembles the request from flags, prompting interactively for
// required fields that are missing.
func formRequest(mode content.Mode) content.GenerationRequest {
	name := nameFlag
	if name == "" {
		name = promptFor("Product name")
	}

	keywords := keywordsFlag
	if mode == content.ModeGenerate && keywords == "" {
		keywords = promptFor("Key features & keywords")
	}

	return content.GenerationRequest{
		ProductName: name,
		Keywords:    keywords,
		Audience:    audienceFlag,
		Tone:        content.Tone(strings.ToLower(toneFlag)),
		Variations:  variationsFlag,
		Language:    content.OutputLanguage(languageFlag),
		Length:      content.Length(strings.ToLower(lengthFlag)),
		Mode:        mode,
	}
}

func runGenerate(cmd *cobra.Command, args []string) {
	req := formRequest(content.ModeGenerate)
	submit(cmd, req)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	req := formRequest(content.ModeAnalyze)

	req.CompetitorDescription = competitorFlag
	if req.CompetitorDescription == "" && competitorFileFlag != "" {
		data, err := os.ReadFile(competitorFileFlag)
		if err != nil {
			log.Fatal().Err(err).Str("path", competitorFileFlag).Msg("failed to read competitor description")
		}
		req.CompetitorDescription = strings.TrimSpace(string(data))
	}
	if req.CompetitorDescription == "" {
		req.CompetitorDescription = promptFor("Competitor's description")
	}

	submit(cmd, req)
}

// submit runs the primary generation and renders the resulting session,
// then drives any requested follow-up actions.
func submit(cmd *cobra.Command, req content.GenerationRequest) {
	ctx := cmd.Context()
	orch, _ := buildOrchestrator(ctx)

	if err := req.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid request")
	}

	fmt.Println()
	fmt.Println("⏳ Generating content...")

	if err := orch.Submit(ctx, req); err != nil {
		log.Error().Err(err).Msg("generation failed")
		fmt.Println()
		fmt.Println("❌ " + orch.Err())
		os.Exit(1)
	}

	sess := orch.Current()
	printSession(os.Stdout, sess)

	if suiteFlag > 0 {
		runSuite(ctx, orch, suiteFlag-1)
	}
	if copyFlag > 0 {
		copyDescription(os.Stdout, sess, copyFlag-1)
	}
	if speakFlag > 0 {
		speakDescription(os.Stdout, sess, speakFlag-1)
	}
}

// promptFor reads one required value interactively.
func promptFor(label string) string {
	fmt.Printf("%s: ", label)

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read input")
		return ""
	}
	return strings.TrimSpace(input)
}
