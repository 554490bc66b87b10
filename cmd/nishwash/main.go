package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/arifmahmud/nishwash/internal/cli"
	"github.com/arifmahmud/nishwash/internal/logger"
	"github.com/arifmahmud/nishwash/internal/privacy"
	"github.com/arifmahmud/nishwash/internal/progress"
	"github.com/arifmahmud/nishwash/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path." type:"path" default:"~/.config/nishwash/nishwash.db" env:"NISHWASH_CONFIG"`
	Debug   bool   `help:"Enable debug logging." env:"NISHWASH_DEBUG"`

	Init       cli.InitCmd       `cmd:"" help:"Set up your profile and quit date."`
	Status     cli.StatusCmd     `cmd:"" help:"Show smoke-free progress." default:"1"`
	Milestones cli.MilestonesCmd `cmd:"" help:"Show program milestones."`
	Benefits   cli.BenefitsCmd   `cmd:"" help:"Show health benefits achieved and upcoming."`
	Journal    struct {
		Add    cli.JournalAddCmd    `cmd:"" help:"Add a journal entry."`
		List   cli.JournalListCmd   `cmd:"" help:"List journal entries."`
		Delete cli.JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
	} `cmd:"" help:"Manage your journal."`
	Craving struct {
		Add   cli.CravingAddCmd   `cmd:"" help:"Log a craving episode."`
		List  cli.CravingListCmd  `cmd:"" help:"List craving logs."`
		Stats cli.CravingStatsCmd `cmd:"" help:"Show craving statistics."`
	} `cmd:"" help:"Track cravings."`
	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a task for a program day."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks for a program day."`
		Toggle cli.TaskToggleCmd `cmd:"" help:"Toggle a task's completion."`
	} `cmd:"" help:"Manage daily tasks."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show settings."`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change settings."`
	} `cmd:"" help:"Manage settings."`
	Pin struct {
		Set   cli.PinSetCmd   `cmd:"" help:"Enable the app-lock PIN."`
		Clear cli.PinClearCmd `cmd:"" help:"Disable the app-lock PIN."`
	} `cmd:"" help:"Manage the app-lock PIN."`
	Export cli.ExportCmd `cmd:"" help:"Export all data to a versioned JSON file."`
	Import cli.ImportCmd `cmd:"" help:"Import data from an export file."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
	Wipe cli.WipeCmd `cmd:"" help:"Delete all stored data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("nishwash"),
		kong.Description("নিঃশ্বাস — personal quit-smoking tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:   CLI.Debug,
		DataDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Storage backend follows the data file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	store = storage.WithRetry(store, storage.NewRetryer(storage.DefaultAttempts, storage.DefaultRetryDelay))

	appCtx := &cli.Context{
		Gateway:  storage.NewGateway(store),
		Calc:     progress.New(),
		Locker:   privacy.New(),
		DataPath: CLI.Config,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
