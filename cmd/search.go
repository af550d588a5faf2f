package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solheim/moodlog/internal/cli"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entry text",
	Long: `Search all journal entries for a case-insensitive substring.

Usage:
  moodlog search coffee
  moodlog search "long walk"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Search query cannot be empty")
		deps.Exit(1)
		return
	}

	svcs, ok := requireServices()
	if !ok {
		return
	}

	result, err := svcs.Journal.Search(query)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read the journal")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries matching %q\n", query)
		return
	}

	word := "entries"
	if len(result.Entries) == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Found %d %s matching %q:\n\n", len(result.Entries), word, query)
	for _, ie := range result.Entries {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryLine(ie))
	}
}
