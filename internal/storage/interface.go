package storage

import "github.com/arifmahmud/nishwash/internal/models"

// Key names one stored JSON value. Every key is an independent resource;
// there are no cross-key transactions.
type Key string

const (
	KeyUser     Key = "user"
	KeyProgress Key = "progress"
	KeySettings Key = "settings"
	KeyJournal  Key = "journal"
	KeyCravings Key = "cravings"
	KeyTasks    Key = "tasks"
)

func AllKeys() []Key {
	return []Key{KeyUser, KeyProgress, KeySettings, KeyJournal, KeyCravings, KeyTasks}
}

// Provider is the raw key-value persistence layer. Single-entity getters
// return (nil, nil) when the key has never been written. Implementations
// serialize individual operations internally; cycles spanning a read and a
// write are ordered one level up, by the Gateway.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Single-entity keys (wholesale overwrite)
	GetUser() (*models.User, error)
	SaveUser(models.User) error
	GetProgress() (*models.Progress, error)
	SaveProgress(models.Progress) error
	GetSettings() (*models.Settings, error)
	SaveSettings(models.Settings) error

	// Collection keys (whole-array read/write)
	GetJournalEntries() ([]models.JournalEntry, error)
	SaveJournalEntries([]models.JournalEntry) error
	GetCravingLogs() ([]models.CravingLog, error)
	SaveCravingLogs([]models.CravingLog) error
	GetDailyTasks() ([]models.DailyTask, error)
	SaveDailyTasks([]models.DailyTask) error

	// Maintenance
	DeleteKey(Key) error
	ClearAll() error

	// Utils
	ConfigPath() string
}
