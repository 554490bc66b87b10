package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arifmahmud/nishwash/internal/models"
	"github.com/arifmahmud/nishwash/internal/storage"
)

func newTestManager(t *testing.T, now func() time.Time) (*Manager, *storage.Gateway) {
	t.Helper()
	dataPath := filepath.Join(t.TempDir(), "nishwash.json")
	store := storage.NewJSONStore(dataPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	gw := storage.NewGatewayWithClock(store, now)
	return NewManager(gw, dataPath), gw
}

func seedUser(t *testing.T, gw *storage.Gateway, now time.Time) models.User {
	t.Helper()
	user := models.NewUser(now.Add(-72*time.Hour), 20, 350, 20, now)
	if res, err := gw.SaveUser(user); err != nil || !res.Valid {
		t.Fatalf("SaveUser failed: res=%+v err=%v", res, err)
	}
	return user
}

func TestCreateBackup_WritesTimestampedExport(t *testing.T) {
	now := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	m, gw := newTestManager(t, func() time.Time { return now })
	seedUser(t, gw, now)

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	name := filepath.Base(path)
	if name != "nishwash-20260815-0930.json" {
		t.Errorf("backup name = %q, want nishwash-20260815-0930.json", name)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
}

func TestCreateBackup_SameMinuteGetsDistinctNames(t *testing.T) {
	now := time.Date(2026, 8, 15, 9, 30, 42, 0, time.UTC)
	m, gw := newTestManager(t, func() time.Time { return now })
	seedUser(t, gw, now)

	first, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	third, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	if first == second || second == third || first == third {
		t.Errorf("paths must be distinct: %s, %s, %s", first, second, third)
	}
}

func TestListBackups_NewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	current := base
	m, gw := newTestManager(t, func() time.Time { return current })
	seedUser(t, gw, base)

	// Three backups a minute apart.
	times := []time.Time{base, base.Add(time.Minute), base.Add(2 * time.Minute)}
	for _, at := range times {
		current = at
		if _, err := m.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup at %v failed: %v", at, err)
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups must be ordered newest first")
		}
	}
	if !backups[0].Timestamp.Equal(times[2]) {
		t.Errorf("newest = %v, want %v", backups[0].Timestamp, times[2])
	}
}

func TestRotation_KeepsAtMostMaxBackups(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	current := base
	m, gw := newTestManager(t, func() time.Time { return current })
	seedUser(t, gw, base)

	for i := 0; i < MaxBackups+3; i++ {
		current = base.Add(time.Duration(i) * time.Minute)
		if _, err := m.CreateBackup(); err != nil {
			t.Fatalf("backup %d failed: %v", i, err)
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
	// The oldest three must be the ones rotated away.
	oldest := backups[len(backups)-1].Timestamp
	if oldest.Before(base.Add(3 * time.Minute)) {
		t.Errorf("oldest surviving backup = %v, want none before %v", oldest, base.Add(3*time.Minute))
	}
}

func TestRestoreBackup_RoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	m, gw := newTestManager(t, func() time.Time { return now })
	user := seedUser(t, gw, now)
	entry := models.NewJournalEntry("ব্যাকআপ পরীক্ষা", models.MoodGood, nil, nil, now)
	if _, err := gw.SaveJournalEntry(entry); err != nil {
		t.Fatal(err)
	}

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	// Wipe, then restore.
	if err := gw.ClearAll(); err != nil {
		t.Fatal(err)
	}
	report, err := m.RestoreBackup(path)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if report.Users != 1 || report.JournalEntries != 1 {
		t.Errorf("report = %+v, want 1 user and 1 entry", report)
	}

	restored, err := gw.GetUser()
	if err != nil || restored == nil {
		t.Fatalf("restored user missing: %v", err)
	}
	if restored.ID != user.ID {
		t.Errorf("restored user id = %q, want %q", restored.ID, user.ID)
	}
}

func TestRestoreBackup_RejectsGarbage(t *testing.T) {
	now := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	m, gw := newTestManager(t, func() time.Time { return now })
	user := seedUser(t, gw, now)

	garbage := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(garbage, []byte("not json at all"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RestoreBackup(garbage); err == nil {
		t.Error("corrupt file must be rejected")
	}

	unversioned := filepath.Join(t.TempDir(), "unversioned.json")
	if err := os.WriteFile(unversioned, []byte(`{"data":{}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RestoreBackup(unversioned); err == nil {
		t.Error("payload without a version must be rejected")
	}

	// A rejected restore must not touch current data.
	got, err := gw.GetUser()
	if err != nil || got == nil || got.ID != user.ID {
		t.Errorf("current data must survive a rejected restore, got %v, %v", got, err)
	}
}
