package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path to a backup of the journal file with the
// given rotation number. Backups are named journal_log.json.bak.N where
// lower numbers are more recent (.bak.1 is the newest).
func BackupPath(storagePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storagePath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new
// backup: .bak.2 -> .bak.3, then .bak.1 -> .bak.2. The oldest backup is
// deleted so at most MaxBackupCount are kept. Missing files are skipped.
func rotateBackups(storagePath string) error {
	oldest := BackupPath(storagePath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		current := BackupPath(storagePath, i)
		next := BackupPath(storagePath, i+1)
		if err := os.Rename(current, next); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the journal file to .bak.1 after rotating any
// existing backups. If the journal file doesn't exist, no backup is
// created and no error is returned.
func CreateBackup(storagePath string) error {
	if _, err := os.Stat(storagePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storagePath); err != nil {
		return err
	}

	return copyFile(storagePath, BackupPath(storagePath, 1))
}

// BackupInfo describes an available backup file.
type BackupInfo struct {
	Number int    // The backup number (1 is most recent)
	Path   string // The full path to the backup file
}

// ListBackups returns available backups for the journal at storagePath,
// most recent first. Returns an empty slice if no backups exist.
func ListBackups(storagePath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		path := BackupPath(storagePath, i)
		if _, err := os.Stat(path); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: path})
		}
	}
	return backups
}

// RestoreBackup copies backup number backupNum over the journal file.
// The current journal state is backed up first so a restore is itself
// reversible. Returns an error if the backup doesn't exist.
func RestoreBackup(storagePath string, backupNum int) error {
	if backupNum < 1 || backupNum > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", backupNum, MaxBackupCount)
	}

	backupPath := BackupPath(storagePath, backupNum)
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", backupNum)
		}
		return err
	}

	if err := CreateBackup(storagePath); err != nil {
		return err
	}

	return copyFile(backupPath, storagePath)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return nil
}
