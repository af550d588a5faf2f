package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeJournalFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readFileString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestCreateBackup_MissingJournal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, JournalFile)

	if err := CreateBackup(path); err != nil {
		t.Fatalf("CreateBackup should succeed with no journal: %v", err)
	}
	if len(ListBackups(path)) != 0 {
		t.Error("No backup should exist when there was nothing to back up")
	}
}

func TestCreateBackup_CopiesJournal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, JournalFile)
	writeJournalFile(t, path, "version 1")

	if err := CreateBackup(path); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if got := readFileString(t, BackupPath(path, 1)); got != "version 1" {
		t.Errorf("Backup content = %q, expected \"version 1\"", got)
	}
}

func TestCreateBackup_Rotation(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, JournalFile)

	// Four generations; only the newest three survive
	for _, version := range []string{"v1", "v2", "v3", "v4"} {
		writeJournalFile(t, path, version)
		if err := CreateBackup(path); err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
	}

	backups := ListBackups(path)
	if len(backups) != MaxBackupCount {
		t.Fatalf("Expected %d backups, got %d", MaxBackupCount, len(backups))
	}

	if got := readFileString(t, BackupPath(path, 1)); got != "v4" {
		t.Errorf(".bak.1 = %q, expected \"v4\"", got)
	}
	if got := readFileString(t, BackupPath(path, 2)); got != "v3" {
		t.Errorf(".bak.2 = %q, expected \"v3\"", got)
	}
	if got := readFileString(t, BackupPath(path, 3)); got != "v2" {
		t.Errorf(".bak.3 = %q, expected \"v2\"", got)
	}
}

func TestListBackups_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, JournalFile)

	if backups := ListBackups(path); len(backups) != 0 {
		t.Errorf("Expected no backups, got %d", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, JournalFile)

	writeJournalFile(t, path, "old state")
	if err := CreateBackup(path); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	writeJournalFile(t, path, "new state")

	if err := RestoreBackup(path, 1); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	if got := readFileString(t, path); got != "old state" {
		t.Errorf("Journal after restore = %q, expected \"old state\"", got)
	}

	// The pre-restore state was backed up, so the restore is reversible
	if got := readFileString(t, BackupPath(path, 1)); got != "new state" {
		t.Errorf(".bak.1 after restore = %q, expected \"new state\"", got)
	}
}

func TestRestoreBackup_InvalidNumber(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, JournalFile)

	for _, n := range []int{0, -1, MaxBackupCount + 1} {
		if err := RestoreBackup(path, n); err == nil {
			t.Errorf("Expected error for backup number %d", n)
		}
	}
}

func TestRestoreBackup_MissingBackup(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, JournalFile)

	if err := RestoreBackup(path, 1); err == nil {
		t.Error("Expected error restoring a backup that doesn't exist")
	}
}
