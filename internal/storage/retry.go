package storage

import (
	"time"

	"github.com/arifmahmud/nishwash/internal/apperr"
	"github.com/arifmahmud/nishwash/internal/logger"
	"github.com/arifmahmud/nishwash/internal/models"
)

const (
	// DefaultAttempts bounds how often a failed storage operation is retried.
	DefaultAttempts = 3
	// DefaultRetryDelay is the base backoff; the wait grows linearly as
	// delay * attempt.
	DefaultRetryDelay = 200 * time.Millisecond
)

// Retryer re-runs failed storage operations with linear backoff. Validation
// failures are values, not errors, so they never reach the retry loop.
type Retryer struct {
	attempts int
	delay    time.Duration
	sleep    func(time.Duration)
}

func NewRetryer(attempts int, delay time.Duration) *Retryer {
	if attempts < 1 {
		attempts = 1
	}
	return &Retryer{attempts: attempts, delay: delay, sleep: time.Sleep}
}

// Do runs fn up to the configured attempt count. On exhaustion the last
// error is returned classified, leaving prior persisted state untouched.
func (r *Retryer) Do(op string, fn func() error) error {
	var last error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		last = err
		logger.Warn("storage operation failed", "op", op, "attempt", attempt, "err", err)
		if attempt < r.attempts {
			r.sleep(r.delay * time.Duration(attempt))
		}
	}
	classified := apperr.Classify(op, last)
	logger.Error("storage operation exhausted retries", "op", op, "kind", classified.Kind, "err", last)
	return classified
}

// WithRetry decorates a Provider so each operation is retried independently.
// Only the single failed operation is re-run; there are no cross-operation
// transactions to replay.
func WithRetry(p Provider, r *Retryer) Provider {
	return &retryingProvider{p: p, r: r}
}

type retryingProvider struct {
	p Provider
	r *Retryer
}

func (rp *retryingProvider) Init() error {
	return rp.r.Do("storage.init", rp.p.Init)
}

func (rp *retryingProvider) Load() error {
	return rp.r.Do("storage.load", rp.p.Load)
}

func (rp *retryingProvider) Close() error {
	return rp.p.Close()
}

func (rp *retryingProvider) GetUser() (user *models.User, err error) {
	err = rp.r.Do("storage.user.get", func() error {
		var e error
		user, e = rp.p.GetUser()
		return e
	})
	return
}

func (rp *retryingProvider) SaveUser(user models.User) error {
	return rp.r.Do("storage.user.save", func() error { return rp.p.SaveUser(user) })
}

func (rp *retryingProvider) GetProgress() (progress *models.Progress, err error) {
	err = rp.r.Do("storage.progress.get", func() error {
		var e error
		progress, e = rp.p.GetProgress()
		return e
	})
	return
}

func (rp *retryingProvider) SaveProgress(progress models.Progress) error {
	return rp.r.Do("storage.progress.save", func() error { return rp.p.SaveProgress(progress) })
}

func (rp *retryingProvider) GetSettings() (settings *models.Settings, err error) {
	err = rp.r.Do("storage.settings.get", func() error {
		var e error
		settings, e = rp.p.GetSettings()
		return e
	})
	return
}

func (rp *retryingProvider) SaveSettings(settings models.Settings) error {
	return rp.r.Do("storage.settings.save", func() error { return rp.p.SaveSettings(settings) })
}

func (rp *retryingProvider) GetJournalEntries() (entries []models.JournalEntry, err error) {
	err = rp.r.Do("storage.journal.get", func() error {
		var e error
		entries, e = rp.p.GetJournalEntries()
		return e
	})
	return
}

func (rp *retryingProvider) SaveJournalEntries(entries []models.JournalEntry) error {
	return rp.r.Do("storage.journal.save", func() error { return rp.p.SaveJournalEntries(entries) })
}

func (rp *retryingProvider) GetCravingLogs() (logs []models.CravingLog, err error) {
	err = rp.r.Do("storage.cravings.get", func() error {
		var e error
		logs, e = rp.p.GetCravingLogs()
		return e
	})
	return
}

func (rp *retryingProvider) SaveCravingLogs(logs []models.CravingLog) error {
	return rp.r.Do("storage.cravings.save", func() error { return rp.p.SaveCravingLogs(logs) })
}

func (rp *retryingProvider) GetDailyTasks() (tasks []models.DailyTask, err error) {
	err = rp.r.Do("storage.tasks.get", func() error {
		var e error
		tasks, e = rp.p.GetDailyTasks()
		return e
	})
	return
}

func (rp *retryingProvider) SaveDailyTasks(tasks []models.DailyTask) error {
	return rp.r.Do("storage.tasks.save", func() error { return rp.p.SaveDailyTasks(tasks) })
}

func (rp *retryingProvider) DeleteKey(key Key) error {
	return rp.r.Do("storage.delete_key", func() error { return rp.p.DeleteKey(key) })
}

func (rp *retryingProvider) ClearAll() error {
	return rp.r.Do("storage.clear_all", func() error { return rp.p.ClearAll() })
}

func (rp *retryingProvider) ConfigPath() string {
	return rp.p.ConfigPath()
}
