package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [n]",
	Short: "Restore the journal from a backup",
	Long: `Restore the journal from a rotated backup. Backups are created
automatically before destructive operations like 'moodlog clear'.

Without an argument, lists available backups. With a backup number,
restores that backup (1 is the most recent). The current journal is
backed up before restoring, so a restore can itself be undone.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRestore(args)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(args []string) {
	svcs, ok := requireServices()
	if !ok {
		return
	}

	if len(args) == 0 {
		backups := svcs.Journal.ListBackups()
		if len(backups) == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
			return
		}
		_, _ = fmt.Fprintln(deps.Stdout, "Available backups (1 is most recent):")
		for _, b := range backups {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d. %s\n", b.Number, b.Path)
		}
		_, _ = fmt.Fprintln(deps.Stdout, "\nRun 'moodlog restore <n>' to restore one")
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number %q\n", args[0])
		deps.Exit(1)
		return
	}

	if err := svcs.Journal.RestoreBackup(n); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to restore backup")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'moodlog restore' to list available backups")
		deps.Exit(1)
		return
	}

	count := svcs.Journal.Count()
	word := "entries"
	if count == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Restored backup %d (%d %s)\n", n, count, word)
}
