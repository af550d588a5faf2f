package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/solheim/moodlog/internal/cli"
	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/filter"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/timeutil"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	Long: `List journal entries, optionally filtered by sentiment or date.

Usage:
  moodlog list                          List all entries
  moodlog list --last 7                 Entries from the last 7 days
  moodlog list --sentiment positive     Only positive entries
  moodlog list --from 2024-01-01 --to 2024-01-31

Dates accept YYYY-MM-DD or DD/MM/YYYY.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runList(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringSlice("sentiment", nil, "Filter by sentiment: positive, neutral, negative (repeatable)")
	listCmd.Flags().Int("last", 0, "Only entries from the last N days")
	listCmd.Flags().String("from", "", "Start date (inclusive)")
	listCmd.Flags().String("to", "", "End date (inclusive)")
}

func runList(cmd *cobra.Command) {
	sentiments, _ := cmd.Flags().GetStringSlice("sentiment")
	lastDays, _ := cmd.Flags().GetInt("last")
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")

	labels, err := parseLabels(sentiments)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Valid sentiments are positive, neutral, negative")
		deps.Exit(1)
		return
	}

	spec := service.DateRangeSpec{Type: service.DateRangeAll}
	switch {
	case lastDays > 0:
		if fromStr != "" || toStr != "" {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: --last cannot be combined with --from/--to")
			deps.Exit(1)
			return
		}
		spec = service.DateRangeSpec{Type: service.DateRangeLast, LastDays: lastDays}
	case fromStr != "" || toStr != "":
		from, to, err := parseDateBounds(fromStr, toStr)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD or DD/MM/YYYY")
			deps.Exit(1)
			return
		}
		spec = service.DateRangeSpec{Type: service.DateRangeCustom, From: from, To: to}
	}

	listEntriesFiltered(spec, &filter.Filter{Labels: labels})
}

// listEntriesFiltered displays entries for the date range and filter,
// followed by a mood summary line.
func listEntriesFiltered(spec service.DateRangeSpec, f *filter.Filter) {
	svcs, ok := requireServices()
	if !ok {
		return
	}

	result, err := svcs.Journal.List(spec, f)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read the journal")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(result.Entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries found for %s\n", result.Period)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entries for %s:\n\n", result.Period)
	for _, ie := range result.Entries {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryLine(ie))
	}

	var total float64
	for _, ie := range result.Entries {
		total += ie.Entry.Score
	}
	mean := total / float64(len(result.Entries))
	word := "entries"
	if len(result.Entries) == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "\n%d %s, mean mood %s %s\n",
		len(result.Entries), word, cli.FormatScore(mean), cli.EmojiForLabel(entry.LabelForScore(mean)))
}

// parseLabels converts sentiment flag values to labels
func parseLabels(values []string) ([]entry.Label, error) {
	var labels []entry.Label
	for _, v := range values {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "positive":
			labels = append(labels, entry.LabelPositive)
		case "neutral":
			labels = append(labels, entry.LabelNeutral)
		case "negative":
			labels = append(labels, entry.LabelNegative)
		case "":
		default:
			return nil, fmt.Errorf("unknown sentiment %q", v)
		}
	}
	return labels, nil
}

// parseDateBounds parses --from/--to flags into day-aligned bounds.
// Either side may be empty, leaving that bound open.
func parseDateBounds(fromStr, toStr string) (from, to time.Time, err error) {
	if fromStr != "" {
		d, err := timeutil.ParseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = timeutil.StartOfDay(d)
	}
	if toStr != "" {
		d, err := timeutil.ParseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = timeutil.EndOfDay(d)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to date is before --from date")
	}
	return from, to, nil
}
