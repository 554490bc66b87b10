package timeline

import "testing"

func TestEntries_StrictlyAscending(t *testing.T) {
	entries := Entries()
	if len(entries) == 0 {
		t.Fatal("timeline must not be empty")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].TimeInMinutes <= entries[i-1].TimeInMinutes {
			t.Errorf("entry %s (%d min) not after %s (%d min)",
				entries[i].ID, entries[i].TimeInMinutes, entries[i-1].ID, entries[i-1].TimeInMinutes)
		}
	}
}

func TestEntries_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Entries() {
		if e.ID == "" || e.Title == "" || e.Description == "" {
			t.Errorf("entry %+v has empty fields", e)
		}
		if seen[e.ID] {
			t.Errorf("duplicate id: %s", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	first := Entries()
	first[0].TimeInMinutes = -1

	if Entries()[0].TimeInMinutes == -1 {
		t.Error("mutating the returned slice must not affect the timeline")
	}
	if Len() != len(first) {
		t.Errorf("Len() = %d, want %d", Len(), len(first))
	}
}
