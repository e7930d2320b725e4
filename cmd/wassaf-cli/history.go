package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wassaf/wassaf-cli/internal/orchestrator"
)

var historySuiteFlag int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved generation sessions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions, most recent first",
	Run: func(cmd *cobra.Command, args []string) {
		orch := historyOnlyOrchestrator()
		sessions := orch.Sessions()
		if len(sessions) == 0 {
			fmt.Println("No saved sessions.")
			return
		}
		for _, s := range sessions {
			printSessionLine(os.Stdout, s)
		}
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a saved session's results",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		// Regenerating the marketing suite needs a live provider; plain
		// display does not.
		var orch *orchestrator.Orchestrator
		if historySuiteFlag > 0 {
			orch, _ = buildOrchestrator(ctx)
		} else {
			orch = historyOnlyOrchestrator()
		}

		if err := orch.LoadSession(args[0]); err != nil {
			log.Error().Err(err).Str("session_id", args[0]).Msg("session not found")
			fmt.Printf("No session with id %s.\n", args[0])
			os.Exit(1)
		}
		printSession(os.Stdout, orch.Current())

		if historySuiteFlag > 0 {
			runSuite(ctx, orch, historySuiteFlag-1)
		}
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a saved session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		orch := historyOnlyOrchestrator()
		orch.DeleteSession(args[0])
		fmt.Printf("Deleted session %s.\n", args[0])
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved sessions",
	Run: func(cmd *cobra.Command, args []string) {
		orch := historyOnlyOrchestrator()
		orch.ClearHistory()
		fmt.Println("History cleared.")
	},
}

func init() {
	historyShowCmd.Flags().IntVar(&historySuiteFlag, "suite", 0, "Also generate the full marketing suite for description N (1-based)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
