package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solheim/moodlog/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for moodlog.

The TUI provides a full-featured interface for journaling with keyboard
navigation, multiple views, and live sentiment scoring.

Views available:
  - Write: Compose a new entry and save it with ctrl+s
  - Entries: Browse past entries with date-range filtering
  - Stats: Mood distribution, mean score, best and worst days
  - Trend: Mood over time, bucketed by day or week

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-4: Jump to specific view
  - j/k or arrows: Navigate within lists
  - ?: Show help
  - q: Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes services and runs the TUI application
func runTUI() {
	services, ok := requireServices()
	if !ok {
		return
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to run the terminal UI\n")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}
