package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solheim/moodlog/internal/storage"
)

// repairCmd represents the repair command
var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Recover from a corrupted journal file",
	Long: `Check the journal file and, if it cannot be parsed, start a fresh
journal. The damaged file is never deleted: it is renamed with a
.corrupt suffix next to the new journal so it can be inspected or
recovered by hand.

Asks for confirmation before setting the damaged file aside, unless
--yes is given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		runRepair(yes)
	},
}

func init() {
	rootCmd.AddCommand(repairCmd)

	repairCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runRepair(skipConfirm bool) {
	storagePath, err := deps.StoragePath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine storage location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	store, err := storage.Open(storagePath)
	if err == nil {
		count := store.Len()
		word := "entries"
		if count == 1 {
			word = "entry"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "The journal is healthy (%d %s), nothing to repair\n", count, word)
		return
	}

	if !errors.Is(err, storage.ErrRead) {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to check the journal")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "The journal file at %s cannot be parsed\n", storagePath)
	if !skipConfirm {
		prompt := fmt.Sprintf("Set it aside as %s%s and start a fresh journal?", storagePath, storage.CorruptSuffix)
		if !confirm(prompt) {
			_, _ = fmt.Fprintln(deps.Stdout, "Cancelled, the journal file was not touched")
			return
		}
	}

	if _, err := storage.Reinitialize(storagePath); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to reinitialize the journal")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Started a fresh journal; the old file was kept as %s%s\n",
		storagePath, storage.CorruptSuffix)
}
