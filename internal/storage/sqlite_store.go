package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/arifmahmud/nishwash/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps one serialized JSON value per storage key in a kv table.
// The mutex serializes individual operations; multi-call read-modify-write
// cycles are ordered by the Gateway.
type SQLiteStore struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.open()
}

func (s *SQLiteStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'nishwash init' first")
	}

	return s.open()
}

// open must be called with the mutex held.
func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// get unmarshals the value stored under key into dst, reporting whether the
// key exists. Unknown JSON fields in an older value are ignored.
func (s *SQLiteStore) get(key Key, dst any) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", string(key)).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return false, fmt.Errorf("failed to parse key %s: %w", key, err)
	}
	return true, nil
}

func (s *SQLiteStore) put(key Key, v any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize key %s: %w", key, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		string(key), string(value), now,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetUser() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user models.User
	ok, err := s.get(KeyUser, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (s *SQLiteStore) SaveUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(KeyUser, user)
}

func (s *SQLiteStore) GetProgress() (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var progress models.Progress
	ok, err := s.get(KeyProgress, &progress)
	if err != nil || !ok {
		return nil, err
	}
	return &progress, nil
}

func (s *SQLiteStore) SaveProgress(progress models.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(KeyProgress, progress)
}

func (s *SQLiteStore) GetSettings() (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var settings models.Settings
	ok, err := s.get(KeySettings, &settings)
	if err != nil || !ok {
		return nil, err
	}
	return &settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(KeySettings, settings)
}

func (s *SQLiteStore) GetJournalEntries() ([]models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := []models.JournalEntry{}
	if _, err := s.get(KeyJournal, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *SQLiteStore) SaveJournalEntries(entries []models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	return s.put(KeyJournal, entries)
}

func (s *SQLiteStore) GetCravingLogs() ([]models.CravingLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := []models.CravingLog{}
	if _, err := s.get(KeyCravings, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *SQLiteStore) SaveCravingLogs(logs []models.CravingLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if logs == nil {
		logs = []models.CravingLog{}
	}
	return s.put(KeyCravings, logs)
}

func (s *SQLiteStore) GetDailyTasks() ([]models.DailyTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := []models.DailyTask{}
	if _, err := s.get(KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *SQLiteStore) SaveDailyTasks(tasks []models.DailyTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tasks == nil {
		tasks = []models.DailyTask{}
	}
	return s.put(KeyTasks, tasks)
}

func (s *SQLiteStore) DeleteKey(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", string(key)); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, err := s.db.Exec("DELETE FROM kv"); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ConfigPath() string {
	return s.path
}
