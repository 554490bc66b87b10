package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/arifmahmud/nishwash/internal/apperr"
	"github.com/arifmahmud/nishwash/internal/models"
)

// Gateway is the validated CRUD surface over a Provider. Every write
// validates the candidate entity first; a failed check rejects the write and
// leaves the stored collection untouched. The gateway mutex is held across
// each full read-modify-write cycle, so concurrent mutations of the same key
// are strictly ordered and cannot lose updates.
type Gateway struct {
	store Provider
	now   func() time.Time

	mu sync.Mutex
}

func NewGateway(store Provider) *Gateway {
	return &Gateway{store: store, now: time.Now}
}

// NewGatewayWithClock fixes the gateway clock for deterministic tests.
func NewGatewayWithClock(store Provider, now func() time.Time) *Gateway {
	return &Gateway{store: store, now: now}
}

func (g *Gateway) Store() Provider {
	return g.store
}

// writeResult wraps a provider write that already passed validation.
func writeResult(op string, err error) (models.ValidationResult, error) {
	if err != nil {
		return models.ValidationResult{Valid: true}, apperr.Classify(op, err)
	}
	return models.ValidationResult{Valid: true}, nil
}

// --- User ---

func (g *Gateway) GetUser() (*models.User, error) {
	user, err := g.store.GetUser()
	if err != nil {
		return nil, apperr.Classify("storage.user.get", err)
	}
	return user, nil
}

func (g *Gateway) SaveUser(user models.User) (models.ValidationResult, error) {
	if res := models.ValidateUser(user); !res.Valid {
		return res, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return writeResult("storage.user.save", g.store.SaveUser(user))
}

// UpdateUser does a read-merge-write of the profile under the gateway lock.
func (g *Gateway) UpdateUser(patch models.UserPatch) (models.ValidationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	user, err := g.store.GetUser()
	if err != nil {
		return models.ValidationResult{}, apperr.Classify("storage.user.get", err)
	}
	if user == nil {
		return models.ValidationResult{}, apperr.New(apperr.KindStorage, "storage.user.update", fmt.Errorf("no user profile exists"))
	}

	updated := models.UpdateUser(*user, patch, g.now())
	if res := models.ValidateUser(updated); !res.Valid {
		return res, nil
	}
	return writeResult("storage.user.save", g.store.SaveUser(updated))
}

// --- Progress ---

func (g *Gateway) GetProgress() (*models.Progress, error) {
	progress, err := g.store.GetProgress()
	if err != nil {
		return nil, apperr.Classify("storage.progress.get", err)
	}
	return progress, nil
}

func (g *Gateway) SaveProgress(progress models.Progress) (models.ValidationResult, error) {
	if res := models.ValidateProgress(progress); !res.Valid {
		return res, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return writeResult("storage.progress.save", g.store.SaveProgress(progress))
}

// UpdateProgress merges a patch into the cached snapshot. A missing snapshot
// is an error; callers refresh via SaveProgress with a full recomputation.
func (g *Gateway) UpdateProgress(patch models.ProgressPatch) (models.ValidationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	progress, err := g.store.GetProgress()
	if err != nil {
		return models.ValidationResult{}, apperr.Classify("storage.progress.get", err)
	}
	if progress == nil {
		return models.ValidationResult{}, apperr.New(apperr.KindStorage, "storage.progress.update", fmt.Errorf("no progress snapshot exists"))
	}

	updated := models.UpdateProgress(*progress, patch, g.now())
	if res := models.ValidateProgress(updated); !res.Valid {
		return res, nil
	}
	return writeResult("storage.progress.save", g.store.SaveProgress(updated))
}

// --- Settings ---

// GetSettings default-fills when no settings were ever written, so callers
// always see a usable value.
func (g *Gateway) GetSettings() (models.Settings, error) {
	settings, err := g.store.GetSettings()
	if err != nil {
		return models.Settings{}, apperr.Classify("storage.settings.get", err)
	}
	if settings == nil {
		return models.DefaultSettings(g.now()), nil
	}
	return *settings, nil
}

func (g *Gateway) SaveSettings(settings models.Settings) (models.ValidationResult, error) {
	if res := models.ValidateSettings(settings); !res.Valid {
		return res, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return writeResult("storage.settings.save", g.store.SaveSettings(settings))
}

func (g *Gateway) UpdateSettings(patch models.SettingsPatch) (models.ValidationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	stored, err := g.store.GetSettings()
	if err != nil {
		return models.ValidationResult{}, apperr.Classify("storage.settings.get", err)
	}
	settings := models.DefaultSettings(g.now())
	if stored != nil {
		settings = *stored
	}

	updated := models.UpdateSettings(settings, patch, g.now())
	if res := models.ValidateSettings(updated); !res.Valid {
		return res, nil
	}
	return writeResult("storage.settings.save", g.store.SaveSettings(updated))
}

// --- Journal ---

func (g *Gateway) GetJournalEntries() ([]models.JournalEntry, error) {
	entries, err := g.store.GetJournalEntries()
	if err != nil {
		return nil, apperr.Classify("storage.journal.get", err)
	}
	return entries, nil
}

func (g *Gateway) GetJournalEntry(id string) (*models.JournalEntry, error) {
	entries, err := g.GetJournalEntries()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// SaveJournalEntry appends a new entry or replaces an existing one by id.
func (g *Gateway) SaveJournalEntry(entry models.JournalEntry) (models.ValidationResult, error) {
	if res := models.ValidateJournalEntry(entry); !res.Valid {
		return res, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	entries, err := g.store.GetJournalEntries()
	if err != nil {
		return models.ValidationResult{Valid: true}, apperr.Classify("storage.journal.get", err)
	}
	entries = upsertEntry(entries, entry)
	return writeResult("storage.journal.save", g.store.SaveJournalEntries(entries))
}

// UpdateJournalEntry merges a patch into the stored entry; id and created_at
// are immutable.
func (g *Gateway) UpdateJournalEntry(id string, patch models.JournalEntryPatch) (models.ValidationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entries, err := g.store.GetJournalEntries()
	if err != nil {
		return models.ValidationResult{}, apperr.Classify("storage.journal.get", err)
	}

	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		updated := models.UpdateJournalEntry(entries[i], patch, g.now())
		if res := models.ValidateJournalEntry(updated); !res.Valid {
			return res, nil
		}
		entries[i] = updated
		return writeResult("storage.journal.save", g.store.SaveJournalEntries(entries))
	}
	return models.ValidationResult{}, apperr.New(apperr.KindStorage, "storage.journal.update", fmt.Errorf("journal entry not found: %s", id))
}

func (g *Gateway) DeleteJournalEntry(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	entries, err := g.store.GetJournalEntries()
	if err != nil {
		return apperr.Classify("storage.journal.get", err)
	}
	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return apperr.New(apperr.KindStorage, "storage.journal.delete", fmt.Errorf("journal entry not found: %s", id))
	}
	if err := g.store.SaveJournalEntries(kept); err != nil {
		return apperr.Classify("storage.journal.delete", err)
	}
	return nil
}

// --- Cravings ---

func (g *Gateway) GetCravingLogs() ([]models.CravingLog, error) {
	logs, err := g.store.GetCravingLogs()
	if err != nil {
		return nil, apperr.Classify("storage.cravings.get", err)
	}
	return logs, nil
}

func (g *Gateway) SaveCravingLog(log models.CravingLog) (models.ValidationResult, error) {
	if res := models.ValidateCravingLog(log); !res.Valid {
		return res, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	logs, err := g.store.GetCravingLogs()
	if err != nil {
		return models.ValidationResult{Valid: true}, apperr.Classify("storage.cravings.get", err)
	}
	logs = upsertLog(logs, log)
	return writeResult("storage.cravings.save", g.store.SaveCravingLogs(logs))
}

// --- Task completions ---

func (g *Gateway) GetAllTaskCompletions() ([]models.DailyTask, error) {
	tasks, err := g.store.GetDailyTasks()
	if err != nil {
		return nil, apperr.Classify("storage.tasks.get", err)
	}
	return tasks, nil
}

// GetTaskCompletions returns the completions recorded for one program day.
func (g *Gateway) GetTaskCompletions(day int) ([]models.DailyTask, error) {
	tasks, err := g.GetAllTaskCompletions()
	if err != nil {
		return nil, err
	}
	var filtered []models.DailyTask
	for _, t := range tasks {
		if t.Day == day {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (g *Gateway) SaveTaskCompletion(task models.DailyTask) (models.ValidationResult, error) {
	if res := models.ValidateDailyTask(task); !res.Valid {
		return res, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	tasks, err := g.store.GetDailyTasks()
	if err != nil {
		return models.ValidationResult{Valid: true}, apperr.Classify("storage.tasks.get", err)
	}
	tasks = upsertTask(tasks, task)
	return writeResult("storage.tasks.save", g.store.SaveDailyTasks(tasks))
}

// --- Maintenance ---

// DeleteByType wipes one storage key. Unknown keys are rejected before the
// store is touched.
func (g *Gateway) DeleteByType(key Key) error {
	known := false
	for _, k := range AllKeys() {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return apperr.New(apperr.KindValidation, "storage.delete_type", fmt.Errorf("unknown storage key: %s", key))
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.store.DeleteKey(key); err != nil {
		return apperr.Classify("storage.delete_type", err)
	}
	return nil
}

// ClearAll wipes every storage key. This is the full data wipe; there is no
// undo beyond a prior export.
func (g *Gateway) ClearAll() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.store.ClearAll(); err != nil {
		return apperr.Classify("storage.clear_all", err)
	}
	return nil
}

func upsertEntry(entries []models.JournalEntry, entry models.JournalEntry) []models.JournalEntry {
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			return entries
		}
	}
	return append(entries, entry)
}

func upsertLog(logs []models.CravingLog, log models.CravingLog) []models.CravingLog {
	for i := range logs {
		if logs[i].ID == log.ID {
			logs[i] = log
			return logs
		}
	}
	return append(logs, log)
}

func upsertTask(tasks []models.DailyTask, task models.DailyTask) []models.DailyTask {
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			return tasks
		}
	}
	return append(tasks, task)
}
