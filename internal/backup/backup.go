// Package backup manages timestamped export files next to the data file:
// create, list, rotate, and restore of the versioned JSON export format.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arifmahmud/nishwash/internal/logger"
	"github.com/arifmahmud/nishwash/internal/storage"
)

const (
	// MaxBackups is how many export files are kept before rotation.
	MaxBackups = 14
	// BackupDirName is the directory next to the data file.
	BackupDirName = "backups"
	// BackupFilePrefix and BackupFileSuffix frame the timestamp in filenames.
	BackupFilePrefix = "nishwash-"
	BackupFileSuffix = ".json"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates and restores export files through the gateway.
type Manager struct {
	gateway   *storage.Gateway
	backupDir string
}

func NewManager(gw *storage.Gateway, dataPath string) *Manager {
	return &Manager{
		gateway:   gw,
		backupDir: filepath.Join(filepath.Dir(dataPath), BackupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// CreateBackup exports all data to a new timestamped file and rotates old
// backups. Returns the path of the written file.
func (m *Manager) CreateBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	export, err := m.gateway.ExportAll()
	if err != nil {
		return "", fmt.Errorf("failed to export data: %w", err)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}

	backupPath, err := m.nextBackupPath(export.ExportDate)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		// Rotation failure should not fail the backup itself.
		logger.Warn("failed to rotate old backups", "err", err)
	}

	return backupPath, nil
}

// nextBackupPath picks a free timestamped filename, adding seconds and then a
// counter when backups land within the same minute.
func (m *Manager) nextBackupPath(at time.Time) (string, error) {
	path := m.pathFor(at.Format("20060102-1504"))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	stamp := at.Format("20060102-150405")
	path = m.pathFor(stamp)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	for counter := 1; counter <= 100; counter++ {
		path = m.pathFor(fmt.Sprintf("%s-%d", stamp, counter))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

func (m *Manager) pathFor(stamp string) string {
	return filepath.Join(m.backupDir, BackupFilePrefix+stamp+BackupFileSuffix)
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	dirEntries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, BackupFilePrefix), BackupFileSuffix)
		ts, ok := parseStamp(stamp)
		if !ok {
			continue
		}

		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      fi.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func parseStamp(stamp string) (time.Time, bool) {
	// Strip a trailing -N counter when present.
	if i := strings.LastIndex(stamp, "-"); i > 0 {
		tail := stamp[i+1:]
		if len(tail) != 4 && len(tail) != 6 && isDigits(tail) {
			stamp = stamp[:i]
		}
	}
	for _, layout := range []string{"20060102-1504", "20060102-150405"} {
		if ts, err := time.Parse(layout, stamp); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup imports a backup file, creating a safety backup of current
// data first. The file is verified as a parseable versioned export before
// anything is written.
func (m *Manager) RestoreBackup(backupPath string) (storage.ImportReport, error) {
	var report storage.ImportReport

	data, err := os.ReadFile(backupPath)
	if err != nil {
		return report, fmt.Errorf("failed to read backup file: %w", err)
	}

	var export storage.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return report, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}
	if err := storage.ValidateExport(export); err != nil {
		return report, fmt.Errorf("backup file is not a nishwash export: %w", err)
	}

	if current, err := m.CreateBackup(); err == nil {
		logger.Info("created safety backup before restore", "path", filepath.Base(current))
	} else {
		logger.Warn("failed to create safety backup before restore", "err", err)
	}

	if err := m.gateway.ClearAll(); err != nil {
		return report, err
	}
	return m.gateway.ImportAll(export)
}
