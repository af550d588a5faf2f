package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase all journal entries",
	Long: `Erase every entry from the journal. The journal file is backed up
first, so a mistaken clear can be undone with 'moodlog restore'.

Asks for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		runClear(yes)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runClear(skipConfirm bool) {
	svcs, ok := requireServices()
	if !ok {
		return
	}

	count := svcs.Journal.Count()
	if count == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "The journal is already empty")
		return
	}

	if !skipConfirm {
		word := "entries"
		if count == 1 {
			word = "entry"
		}
		prompt := fmt.Sprintf("Erase all %d %s? A backup will be kept", count, word)
		if !confirm(prompt) {
			_, _ = fmt.Fprintln(deps.Stdout, "Cancelled")
			return
		}
	}

	removed, err := svcs.Journal.Clear()
	if err != nil {
		printStorageError(err, svcs.Journal.StoragePath())
		deps.Exit(1)
		return
	}

	word := "entries"
	if removed == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Erased %d %s (backup kept, see 'moodlog restore')\n", removed, word)
}
