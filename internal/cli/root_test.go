package cli

import (
	"testing"

	"github.com/arifmahmud/nishwash/internal/models"
)

func TestParseTriggers(t *testing.T) {
	if got := parseTriggers(""); got != nil {
		t.Errorf("empty input must yield nil, got %v", got)
	}
	if got := parseTriggers(" , ,"); got != nil {
		t.Errorf("blank parts must yield nil, got %v", got)
	}

	got := parseTriggers(" Stress, tea_coffee ,BOREDOM")
	want := []models.Trigger{models.TriggerStress, models.TriggerTeaCoffee, models.TriggerBoredom}
	if len(got) != len(want) {
		t.Fatalf("got %d triggers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trigger %d = %q, want %q", i, got[i], want[i])
		}
	}
}
