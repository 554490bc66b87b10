package models

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

func TestNewUser_RoundTripValidates(t *testing.T) {
	quit := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	user := NewUser(quit, 20, 350, 20, testNow)

	if user.ID == "" {
		t.Error("expected generated id")
	}
	if res := ValidateUser(user); !res.Valid {
		t.Errorf("expected valid user, got errors: %v", res.Errors)
	}
}

func TestValidateUser_Invariants(t *testing.T) {
	quit := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		user User
	}{
		{"negative cigarettes per day", User{QuitDate: quit, CigarettesPerDay: -1, PricePerPack: 350, CigarettesPerPack: 20}},
		{"zero price per pack", User{QuitDate: quit, CigarettesPerDay: 20, PricePerPack: 0, CigarettesPerPack: 20}},
		{"zero cigarettes per pack", User{QuitDate: quit, CigarettesPerDay: 20, PricePerPack: 350, CigarettesPerPack: 0}},
		{"missing quit date", User{CigarettesPerDay: 20, PricePerPack: 350, CigarettesPerPack: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateUser(tt.user)
			if res.Valid {
				t.Error("expected invalid user")
			}
			if len(res.Errors) == 0 {
				t.Error("expected at least one error message")
			}
		})
	}
}

func TestUpdateUser_PreservesIdentity(t *testing.T) {
	quit := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	user := NewUser(quit, 20, 350, 20, testNow)

	newPrice := 400.0
	later := testNow.Add(time.Hour)
	updated := UpdateUser(user, UserPatch{PricePerPack: &newPrice}, later)

	if updated.ID != user.ID {
		t.Error("update must not change id")
	}
	if !updated.CreatedAt.Equal(user.CreatedAt) {
		t.Error("update must not change created_at")
	}
	if updated.PricePerPack != 400 {
		t.Errorf("expected price 400, got %v", updated.PricePerPack)
	}
	if updated.CigarettesPerDay != 20 {
		t.Error("unpatched field must be preserved")
	}
	if !updated.UpdatedAt.After(user.UpdatedAt) {
		t.Error("updated_at must be refreshed")
	}
}

func TestValidateJournalEntry(t *testing.T) {
	entry := NewJournalEntry("আজ ভালো লাগছে", MoodGood, []Trigger{TriggerStress}, nil, testNow)
	if res := ValidateJournalEntry(entry); !res.Valid {
		t.Errorf("expected valid entry, got errors: %v", res.Errors)
	}

	blank := NewJournalEntry("   ", MoodGood, nil, nil, testNow)
	if res := ValidateJournalEntry(blank); res.Valid {
		t.Error("blank content must be rejected")
	}

	intensity := 11
	outOfRange := NewJournalEntry("note", MoodGood, nil, &intensity, testNow)
	if res := ValidateJournalEntry(outOfRange); res.Valid {
		t.Error("intensity over 10 must be rejected")
	}

	badMood := NewJournalEntry("note", Mood("euphoric"), nil, nil, testNow)
	if res := ValidateJournalEntry(badMood); res.Valid {
		t.Error("unknown mood must be rejected")
	}
}

func TestValidateCravingLog(t *testing.T) {
	log := NewCravingLog(7, []Trigger{TriggerTeaCoffee, TriggerStress}, true, testNow)
	if res := ValidateCravingLog(log); !res.Valid {
		t.Errorf("expected valid log, got errors: %v", res.Errors)
	}

	noTriggers := NewCravingLog(7, nil, true, testNow)
	if res := ValidateCravingLog(noTriggers); res.Valid {
		t.Error("empty trigger set must be rejected")
	}

	for _, intensity := range []int{0, 11, -3} {
		bad := NewCravingLog(intensity, []Trigger{TriggerStress}, true, testNow)
		if res := ValidateCravingLog(bad); res.Valid {
			t.Errorf("intensity %d must be rejected", intensity)
		}
	}
}

func TestValidateDailyTask_CompletedAtConsistency(t *testing.T) {
	task := NewDailyTask(3, "পানি পান করুন", "৮ গ্লাস", testNow)
	if res := ValidateDailyTask(task); !res.Valid {
		t.Errorf("expected valid task, got errors: %v", res.Errors)
	}

	// Completed without a timestamp violates the invariant.
	task.Completed = true
	if res := ValidateDailyTask(task); res.Valid {
		t.Error("completed task without completed_at must be rejected")
	}

	toggled := ToggleTask(NewDailyTask(3, "পানি পান করুন", "", testNow), testNow)
	if !toggled.Completed || toggled.CompletedAt == nil {
		t.Error("toggle must set both completed and completed_at")
	}
	if res := ValidateDailyTask(toggled); !res.Valid {
		t.Errorf("toggled task should validate, got errors: %v", res.Errors)
	}

	untoggled := ToggleTask(toggled, testNow)
	if untoggled.Completed || untoggled.CompletedAt != nil {
		t.Error("second toggle must clear both completed and completed_at")
	}

	outOfProgram := NewDailyTask(42, "x", "", testNow)
	if res := ValidateDailyTask(outOfProgram); res.Valid {
		t.Error("day beyond 41 must be rejected")
	}
}

func TestValidateSettings_FontSize(t *testing.T) {
	settings := DefaultSettings(testNow)
	if res := ValidateSettings(settings); !res.Valid {
		t.Errorf("default settings must validate, got errors: %v", res.Errors)
	}

	settings.Appearance.FontSize = "gigantic"
	if res := ValidateSettings(settings); res.Valid {
		t.Error("unknown font size must be rejected")
	}
}

func TestNewID_Shape(t *testing.T) {
	id := NewID(testNow)
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("expected <millis>-<suffix>, got %q", id)
	}
	if len(parts[1]) != 8 {
		t.Errorf("expected 8-char suffix, got %q", parts[1])
	}
	if id == NewID(testNow) {
		t.Error("ids generated at the same instant must differ")
	}
}
