package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arifmahmud/nishwash/internal/backup"
	"github.com/arifmahmud/nishwash/internal/storage"
)

type ExportCmd struct {
	Out string `short:"o" help:"Output file. Defaults to a timestamped file in the backup directory."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	if c.Out == "" {
		mgr := backup.NewManager(ctx.Gateway, ctx.DataPath)
		path, err := mgr.CreateBackup()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("✓ Exported to %s\n", path)
		return nil
	}

	export, err := ctx.Gateway.ExportAll()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}
	if err := os.WriteFile(c.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("✓ Exported to %s\n", c.Out)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Export file to import."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var export storage.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return fmt.Errorf("import file is not valid JSON: %w", err)
	}
	if err := storage.ValidateExport(export); err != nil {
		return fmt.Errorf("import file is not a nishwash export: %w", err)
	}

	report, err := ctx.Gateway.ImportAll(export)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("✓ Imported %d journal entries, %d craving logs, %d task completions\n",
		report.JournalEntries, report.CravingLogs, report.TaskCompletions)
	if report.Skipped > 0 {
		fmt.Printf("  %d invalid records skipped\n", report.Skipped)
	}
	return nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Gateway, ctx.DataPath)
	path, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	fmt.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Gateway, ctx.DataPath)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.BackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), backup.MaxBackups)
	for _, b := range backups {
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Gateway, ctx.DataPath)

	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		if candidate := filepath.Join(mgr.BackupDir(), c.BackupFile); fileExists(candidate) {
			backupPath = candidate
		}
	}
	if !fileExists(backupPath) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	fmt.Println("⚠️  WARNING: This will replace your current data with the backup.")
	fmt.Println("A backup of your current data will be created before restoring.")
	fmt.Printf("\nRestore from: %s\n", filepath.Base(backupPath))
	if !confirm("Continue? [y/N]: ") {
		fmt.Println("Restore cancelled.")
		return nil
	}

	report, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Printf("✓ Restored %d journal entries, %d craving logs, %d task completions\n",
		report.JournalEntries, report.CravingLogs, report.TaskCompletions)
	return nil
}

type WipeCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *WipeCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This permanently deletes all profile, journal, craving and task data.")
		if !confirm("Continue? [y/N]: ") {
			fmt.Println("Wipe cancelled.")
			return nil
		}
	}

	if err := ctx.Gateway.ClearAll(); err != nil {
		return err
	}
	if err := ctx.Locker.ClearPIN(); err != nil {
		return err
	}

	fmt.Println("All data wiped.")
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
