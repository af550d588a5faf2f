package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solheim/moodlog/internal/cli"
	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/service"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mood statistics",
	Long: `Show summary statistics: entry count, mean mood score, sentiment
distribution, and the best and worst entries.

Usage:
  moodlog stats                Statistics over the whole journal
  moodlog stats --week         This week only
  moodlog stats --month        This month only
  moodlog stats --last 30      The last 30 days`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runStats(cmd)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().Bool("week", false, "Limit to this week")
	statsCmd.Flags().Bool("month", false, "Limit to this month")
	statsCmd.Flags().Int("last", 0, "Limit to the last N days")
}

func runStats(cmd *cobra.Command) {
	week, _ := cmd.Flags().GetBool("week")
	month, _ := cmd.Flags().GetBool("month")
	lastDays, _ := cmd.Flags().GetInt("last")

	spec := service.DateRangeSpec{Type: service.DateRangeAll}
	switch {
	case week:
		spec = service.DateRangeSpec{Type: service.DateRangeThisWeek}
	case month:
		spec = service.DateRangeSpec{Type: service.DateRangeThisMonth}
	case lastDays > 0:
		spec = service.DateRangeSpec{Type: service.DateRangeLast, LastDays: lastDays}
	}

	svcs, ok := requireServices()
	if !ok {
		return
	}

	result, err := svcs.Stats.Summary(spec)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to compute statistics")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	s := result.Summary
	if s.Count == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries found for %s\n", result.Period)
		return
	}

	word := "entries"
	if s.Count == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Mood statistics for %s\n\n", result.Period)
	_, _ = fmt.Fprintf(deps.Stdout, "Entries:    %d %s\n", s.Count, word)
	_, _ = fmt.Fprintf(deps.Stdout, "Mean mood:  %s %s\n\n",
		cli.FormatScore(s.MeanScore), cli.EmojiForLabel(entry.LabelForScore(s.MeanScore)))

	_, _ = fmt.Fprintf(deps.Stdout, "  Positive  %4d  %s\n", s.PositiveCount, cli.FormatCountBar(s.PositiveCount, s.Count))
	_, _ = fmt.Fprintf(deps.Stdout, "  Neutral   %4d  %s\n", s.NeutralCount, cli.FormatCountBar(s.NeutralCount, s.Count))
	_, _ = fmt.Fprintf(deps.Stdout, "  Negative  %4d  %s\n", s.NegativeCount, cli.FormatCountBar(s.NegativeCount, s.Count))

	if result.Best != nil && result.Worst != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "\nBest:  %s\n", cli.FormatEntryDetail(*result.Best))
		_, _ = fmt.Fprintf(deps.Stdout, "Worst: %s\n", cli.FormatEntryDetail(*result.Worst))
	}
}
