package storage

import (
	"errors"
	"time"

	"github.com/arifmahmud/nishwash/internal/apperr"
	"github.com/arifmahmud/nishwash/internal/models"
)

var errInvalidExport = errors.New("missing export version")

// ExportVersion is the version string stamped on every export payload.
const ExportVersion = "1.0"

// Export is the versioned portable dump of all stored data.
type Export struct {
	Version    string     `json:"version"`
	ExportDate time.Time  `json:"export_date"`
	Data       ExportData `json:"data"`
}

type ExportData struct {
	User            *models.User          `json:"user,omitempty"`
	Progress        *models.Progress      `json:"progress,omitempty"`
	JournalEntries  []models.JournalEntry `json:"journal_entries"`
	CravingLogs     []models.CravingLog   `json:"craving_logs"`
	TaskCompletions []models.DailyTask    `json:"task_completions"`
	Settings        *models.Settings      `json:"settings,omitempty"`
}

// ExportAll assembles the full export. Reads are independent per key; the
// export reflects each key as of its own read instant.
func (g *Gateway) ExportAll() (*Export, error) {
	user, err := g.GetUser()
	if err != nil {
		return nil, err
	}
	progress, err := g.GetProgress()
	if err != nil {
		return nil, err
	}
	entries, err := g.GetJournalEntries()
	if err != nil {
		return nil, err
	}
	logs, err := g.GetCravingLogs()
	if err != nil {
		return nil, err
	}
	tasks, err := g.GetAllTaskCompletions()
	if err != nil {
		return nil, err
	}
	settings, err := g.GetSettings()
	if err != nil {
		return nil, err
	}

	return &Export{
		Version:    ExportVersion,
		ExportDate: g.now().UTC(),
		Data: ExportData{
			User:            user,
			Progress:        progress,
			JournalEntries:  entries,
			CravingLogs:     logs,
			TaskCompletions: tasks,
			Settings:        &settings,
		},
	}, nil
}

// ImportAll restores an export payload. Missing sections are skipped, not
// errors, so older exports import cleanly; unknown extra fields were already
// dropped during JSON decoding. Entities failing validation are skipped so
// one bad record cannot poison the rest of the import.
func (g *Gateway) ImportAll(ex Export) (ImportReport, error) {
	var report ImportReport

	if ex.Data.User != nil {
		res, err := g.SaveUser(*ex.Data.User)
		if err != nil {
			return report, err
		}
		if res.Valid {
			report.Users = 1
		} else {
			report.Skipped++
		}
	}
	if ex.Data.Settings != nil {
		res, err := g.SaveSettings(*ex.Data.Settings)
		if err != nil {
			return report, err
		}
		if res.Valid {
			report.SettingsRestored = true
		} else {
			report.Skipped++
		}
	}
	if ex.Data.Progress != nil {
		res, err := g.SaveProgress(*ex.Data.Progress)
		if err != nil {
			return report, err
		}
		if !res.Valid {
			report.Skipped++
		}
	}

	for _, entry := range ex.Data.JournalEntries {
		res, err := g.SaveJournalEntry(entry)
		if err != nil {
			return report, err
		}
		if res.Valid {
			report.JournalEntries++
		} else {
			report.Skipped++
		}
	}
	for _, log := range ex.Data.CravingLogs {
		res, err := g.SaveCravingLog(log)
		if err != nil {
			return report, err
		}
		if res.Valid {
			report.CravingLogs++
		} else {
			report.Skipped++
		}
	}
	for _, task := range ex.Data.TaskCompletions {
		res, err := g.SaveTaskCompletion(task)
		if err != nil {
			return report, err
		}
		if res.Valid {
			report.TaskCompletions++
		} else {
			report.Skipped++
		}
	}

	return report, nil
}

// ImportReport summarizes what an import restored.
type ImportReport struct {
	Users            int
	JournalEntries   int
	CravingLogs      int
	TaskCompletions  int
	SettingsRestored bool
	Skipped          int
}

// ValidateExport checks that a decoded payload looks like a nishwash export.
func ValidateExport(ex Export) error {
	if ex.Version == "" {
		return apperr.New(apperr.KindValidation, "storage.import", errInvalidExport)
	}
	return nil
}
