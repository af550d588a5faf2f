package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solheim/moodlog/internal/cli"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/stats"
)

// trendCmd represents the trend command
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show mood trend over time",
	Long: `Show the mean mood score per day or per week as a bar chart.
Periods with no entries are skipped.

Usage:
  moodlog trend                 Daily trend over the whole journal
  moodlog trend --by week       Weekly trend
  moodlog trend --last 30       Daily trend over the last 30 days`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTrend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)

	trendCmd.Flags().String("by", "day", "Bucket size: day or week")
	trendCmd.Flags().Int("last", 0, "Limit to the last N days")
}

func runTrend(cmd *cobra.Command) {
	by, _ := cmd.Flags().GetString("by")
	lastDays, _ := cmd.Flags().GetInt("last")

	bucket := stats.Bucket(strings.ToLower(strings.TrimSpace(by)))
	if !bucket.Valid() {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid bucket %q\n", by)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --by day or --by week")
		deps.Exit(1)
		return
	}

	spec := service.DateRangeSpec{Type: service.DateRangeAll}
	if lastDays > 0 {
		spec = service.DateRangeSpec{Type: service.DateRangeLast, LastDays: lastDays}
	}

	svcs, ok := requireServices()
	if !ok {
		return
	}

	result, err := svcs.Stats.Trend(bucket, spec)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to compute trend")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(result.Points) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries found for %s\n", result.Period)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Mood trend by %s for %s:\n\n", result.Bucket, result.Period)
	for _, p := range result.Points {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatTrendLine(p, result.Bucket))
	}
}
