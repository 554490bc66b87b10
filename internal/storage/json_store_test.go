package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arifmahmud/nishwash/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "nishwash.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func testStoreUser() models.User {
	return models.NewUser(
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		20, 350, 20,
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	)
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nishwash.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("second Init must fail")
	}
}

func TestJSONStore_LoadWithoutInitFails(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("Load of missing file must fail")
	}
}

func TestJSONStore_SingleEntityRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)

	if user, err := store.GetUser(); err != nil || user != nil {
		t.Fatalf("expected no user yet, got %v, %v", user, err)
	}

	user := testStoreUser()
	if err := store.SaveUser(user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	// Reload from disk to prove persistence.
	reloaded := NewJSONStore(store.ConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, err := reloaded.GetUser()
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil || got.ID != user.ID || !got.QuitDate.Equal(user.QuitDate) {
		t.Errorf("reloaded user = %+v, want %+v", got, user)
	}
}

func TestJSONStore_CollectionsDefaultFilledOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nishwash.json")
	// An older data file: no collections, plus a field this version ignores.
	raw := `{"version":1,"user":null,"legacy_field":{"anything":true}}`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load of older file failed: %v", err)
	}

	entries, err := store.GetJournalEntries()
	if err != nil {
		t.Fatalf("GetJournalEntries failed: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("expected empty journal, got %v", entries)
	}
	if logs, err := store.GetCravingLogs(); err != nil || len(logs) != 0 {
		t.Errorf("expected empty cravings, got %v, %v", logs, err)
	}
	if tasks, err := store.GetDailyTasks(); err != nil || len(tasks) != 0 {
		t.Errorf("expected empty tasks, got %v, %v", tasks, err)
	}
}

func TestJSONStore_DeleteKey(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.SaveUser(testStoreUser()); err != nil {
		t.Fatal(err)
	}
	entry := models.NewJournalEntry("note", models.MoodGood, nil, nil, time.Now())
	if err := store.SaveJournalEntries([]models.JournalEntry{entry}); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteKey(KeyJournal); err != nil {
		t.Fatalf("DeleteKey failed: %v", err)
	}

	entries, _ := store.GetJournalEntries()
	if len(entries) != 0 {
		t.Error("journal must be empty after DeleteKey")
	}
	if user, _ := store.GetUser(); user == nil {
		t.Error("other keys must be untouched")
	}

	if err := store.DeleteKey(Key("bogus")); err == nil {
		t.Error("unknown key must be rejected")
	}
}

func TestJSONStore_ClearAll(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.SaveUser(testStoreUser()); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	if user, _ := store.GetUser(); user != nil {
		t.Error("user must be gone after ClearAll")
	}
}
