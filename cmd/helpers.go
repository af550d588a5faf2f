package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/solheim/moodlog/internal/sentiment"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/storage"
)

// requireServices constructs the service layer, printing a diagnostic
// and exiting on failure. Returns false when the caller should bail out
// (the test Exit stub doesn't terminate the process).
func requireServices() (*service.Services, bool) {
	svcs, err := deps.Services()
	if err == nil {
		return svcs, true
	}

	switch {
	case errors.Is(err, storage.ErrRead):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: The journal file is unreadable or corrupted")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'moodlog repair' to set the damaged file aside and start fresh")
	case errors.Is(err, sentiment.ErrLexiconUnavailable):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: The sentiment lexicon could not be loaded")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Reinstall moodlog; the lexicon ships inside the binary")
	default:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to initialize")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
	}
	deps.Exit(1)
	return nil, false
}

// confirm prompts on stdout and reads a yes/no answer from stdin.
// Only "y" and "yes" (case-insensitive) count as confirmation.
func confirm(prompt string) bool {
	_, _ = fmt.Fprintf(deps.Stdout, "%s [y/N]: ", prompt)

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// printStorageError prints a standardized write failure message.
func printStorageError(err error, storagePath string) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save to the journal")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that directory exists and is writable: %s\n", storagePath)
}
