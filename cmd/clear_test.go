package cmd

import (
	"strings"
	"testing"
)

func TestRunClear_EmptyJournal(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	runClear(false)

	if !strings.Contains(stdout.String(), "The journal is already empty") {
		t.Errorf("Expected empty message, got: %s", stdout.String())
	}
}

func TestRunClear_Declined(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	d.Stdin = strings.NewReader("n\n")
	SetDeps(d)
	defer ResetDeps()

	addEntry([]string{"keep", "me"})
	stdout.Reset()

	runClear(false)

	output := stdout.String()
	if !strings.Contains(output, "Erase all 1 entry?") {
		t.Errorf("Expected confirmation prompt, got: %s", output)
	}
	if !strings.Contains(output, "Cancelled") {
		t.Errorf("Expected cancellation, got: %s", output)
	}

	// Entry must still be there
	stdout.Reset()
	runSearch("keep")
	if !strings.Contains(stdout.String(), "keep me") {
		t.Errorf("Expected entry to survive a declined clear, got: %s", stdout.String())
	}
}

func TestRunClear_Confirmed(t *testing.T) {
	d, stdout, stderr, _ := testDeps(t)
	d.Stdin = strings.NewReader("y\n")
	SetDeps(d)
	defer ResetDeps()

	addEntry([]string{"first"})
	addEntry([]string{"second"})
	stdout.Reset()

	runClear(false)

	if stderr.Len() > 0 {
		t.Errorf("Unexpected stderr output: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Erased 2 entries (backup kept") {
		t.Errorf("Expected erased message, got: %s", stdout.String())
	}

	stdout.Reset()
	runClear(false)
	if !strings.Contains(stdout.String(), "The journal is already empty") {
		t.Errorf("Expected empty journal after clear, got: %s", stdout.String())
	}
}

func TestRunClear_YesFlagSkipsPrompt(t *testing.T) {
	d, stdout, _, _ := testDeps(t)
	// No stdin input available; --yes must not prompt
	SetDeps(d)
	defer ResetDeps()

	addEntry([]string{"gone"})
	stdout.Reset()

	runClear(true)

	output := stdout.String()
	if strings.Contains(output, "[y/N]") {
		t.Errorf("Did not expect a prompt with --yes, got: %s", output)
	}
	if !strings.Contains(output, "Erased 1 entry") {
		t.Errorf("Expected erased message, got: %s", output)
	}
}
