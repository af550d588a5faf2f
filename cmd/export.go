package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal",
	Long: `Export the journal as JSON or CSV.

JSON exports the full journal document in the same schema as the
journal file. CSV exports one row per entry with columns
timestamp, text, sentiment, score.

Usage:
  moodlog export json                   Print JSON to stdout
  moodlog export csv --output mood.csv  Write CSV to a file`,
}

// exportJSONCmd represents the export json subcommand
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		runExport("json", output)
	},
}

// exportCSVCmd represents the export csv subcommand
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export as CSV",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		runExport("csv", output)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)

	exportJSONCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	exportCSVCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}

func runExport(format, output string) {
	svcs, ok := requireServices()
	if !ok {
		return
	}

	var data []byte
	var err error
	if format == "csv" {
		data, err = svcs.Journal.ExportCSV()
	} else {
		data, err = svcs.Journal.ExportJSON()
	}
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to export the journal")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if output == "" {
		_, _ = deps.Stdout.Write(data)
		return
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write %s\n", output)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	count := svcs.Journal.Count()
	word := "entries"
	if count == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Exported %d %s to %s\n", count, word, output)
}
