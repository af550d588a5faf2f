package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solheim/moodlog/internal/cli"
	"github.com/solheim/moodlog/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "moodlog",
	Short: "A sentiment journal for the command line",
	Long: `moodlog is a private, offline journal that scores each entry's mood.

Write what happened; moodlog analyzes the text and records it with a
sentiment label (Positive, Neutral, Negative) and a score from -1 to 1.
Everything stays in a single local file.

Usage:
  moodlog <text of your entry>     Log a new entry
  moodlog                          List today's entries
  moodlog y                        List yesterday's entries
  moodlog w                        List this week's entries
  moodlog lw                       List last week's entries
  moodlog list --last 7            List entries from the last 7 days
  moodlog stats                    Summary statistics and best/worst days
  moodlog trend --by week          Mood trend over time
  moodlog export csv               Export the journal
  moodlog clear                    Erase all entries (with confirmation)`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			listEntries(service.DateRangeSpec{Type: service.DateRangeToday})
			return
		}
		addEntry(args)
	},
}

// yCmd represents the yesterday command
var yCmd = &cobra.Command{
	Use:   "y",
	Short: "List yesterday's entries",
	Long:  `List all journal entries logged yesterday.`,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(service.DateRangeSpec{Type: service.DateRangeYesterday})
	},
}

// wCmd represents the this week command
var wCmd = &cobra.Command{
	Use:   "w",
	Short: "List this week's entries",
	Long:  `List all journal entries logged this week.`,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(service.DateRangeSpec{Type: service.DateRangeThisWeek})
	},
}

// lwCmd represents the last week command
var lwCmd = &cobra.Command{
	Use:   "lw",
	Short: "List last week's entries",
	Long:  `List all journal entries logged last week.`,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(service.DateRangeSpec{Type: service.DateRangePrevWeek})
	},
}

func init() {
	rootCmd.AddCommand(yCmd)
	rootCmd.AddCommand(wCmd)
	rootCmd.AddCommand(lwCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"moodlog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// addEntry scores the given text and appends it to the journal
func addEntry(args []string) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Entry text cannot be empty")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: moodlog <text of your entry>")
		deps.Exit(1)
		return
	}

	svcs, ok := requireServices()
	if !ok {
		return
	}

	e, err := svcs.Journal.Add(text)
	if err != nil {
		printStorageError(err, svcs.Journal.StoragePath())
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged %s %s (%s): %s\n",
		cli.EmojiForLabel(e.Sentiment), e.Sentiment, cli.FormatScore(e.Score), e.Text)
}

// listEntries displays entries for the given date range
func listEntries(spec service.DateRangeSpec) {
	listEntriesFiltered(spec, nil)
}
