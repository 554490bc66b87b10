package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/arifmahmud/nishwash/internal/models"
)

const schemaVersion = 1

// document is the single on-disk JSON value holding every storage key.
// Unknown fields in an older or newer file are ignored on load; missing
// collections are default-filled.
type document struct {
	Version  int                   `json:"version"`
	User     *models.User          `json:"user,omitempty"`
	Progress *models.Progress      `json:"progress,omitempty"`
	Settings *models.Settings      `json:"settings,omitempty"`
	Journal  []models.JournalEntry `json:"journal"`
	Cravings []models.CravingLog   `json:"cravings"`
	Tasks    []models.DailyTask    `json:"tasks"`
}

func emptyDocument() *document {
	return &document{
		Version:  schemaVersion,
		Journal:  []models.JournalEntry{},
		Cravings: []models.CravingLog{},
		Tasks:    []models.DailyTask{},
	}
}

// JSONStore keeps all keys in one JSON file. The mutex serializes individual
// operations; multi-call read-modify-write cycles are ordered by the Gateway.
type JSONStore struct {
	path string

	mu  sync.Mutex
	doc *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = emptyDocument()
	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'nishwash init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Default-fill collections missing from older files.
	if s.doc.Journal == nil {
		s.doc.Journal = []models.JournalEntry{}
	}
	if s.doc.Cravings == nil {
		s.doc.Cravings = []models.CravingLog{}
	}
	if s.doc.Tasks == nil {
		s.doc.Tasks = []models.DailyTask{}
	}
	if s.doc.Version == 0 {
		s.doc.Version = schemaVersion
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save must be called with the mutex held.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetUser() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	if s.doc.User == nil {
		return nil, nil
	}
	user := *s.doc.User
	return &user, nil
}

func (s *JSONStore) SaveUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.User = &user
	return s.save()
}

func (s *JSONStore) GetProgress() (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	if s.doc.Progress == nil {
		return nil, nil
	}
	progress := *s.doc.Progress
	return &progress, nil
}

func (s *JSONStore) SaveProgress(progress models.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Progress = &progress
	return s.save()
}

func (s *JSONStore) GetSettings() (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	if s.doc.Settings == nil {
		return nil, nil
	}
	settings := *s.doc.Settings
	return &settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Settings = &settings
	return s.save()
}

func (s *JSONStore) GetJournalEntries() ([]models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	entries := make([]models.JournalEntry, len(s.doc.Journal))
	copy(entries, s.doc.Journal)
	return entries, nil
}

func (s *JSONStore) SaveJournalEntries(entries []models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	s.doc.Journal = entries
	return s.save()
}

func (s *JSONStore) GetCravingLogs() ([]models.CravingLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	logs := make([]models.CravingLog, len(s.doc.Cravings))
	copy(logs, s.doc.Cravings)
	return logs, nil
}

func (s *JSONStore) SaveCravingLogs(logs []models.CravingLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	if logs == nil {
		logs = []models.CravingLog{}
	}
	s.doc.Cravings = logs
	return s.save()
}

func (s *JSONStore) GetDailyTasks() ([]models.DailyTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	tasks := make([]models.DailyTask, len(s.doc.Tasks))
	copy(tasks, s.doc.Tasks)
	return tasks, nil
}

func (s *JSONStore) SaveDailyTasks(tasks []models.DailyTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	if tasks == nil {
		tasks = []models.DailyTask{}
	}
	s.doc.Tasks = tasks
	return s.save()
}

func (s *JSONStore) DeleteKey(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	switch key {
	case KeyUser:
		s.doc.User = nil
	case KeyProgress:
		s.doc.Progress = nil
	case KeySettings:
		s.doc.Settings = nil
	case KeyJournal:
		s.doc.Journal = []models.JournalEntry{}
	case KeyCravings:
		s.doc.Cravings = []models.CravingLog{}
	case KeyTasks:
		s.doc.Tasks = []models.DailyTask{}
	default:
		return fmt.Errorf("unknown storage key: %s", key)
	}
	return s.save()
}

func (s *JSONStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc = emptyDocument()
	return s.save()
}

func (s *JSONStore) ConfigPath() string {
	return s.path
}
