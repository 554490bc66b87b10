package models

import "time"

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

type NotificationSettings struct {
	Enabled         bool   `json:"enabled"`
	DailyReminder   bool   `json:"daily_reminder"`
	ReminderTime    string `json:"reminder_time"` // HH:MM
	MilestoneAlerts bool   `json:"milestone_alerts"`
}

type AppearanceSettings struct {
	FontSize FontSize `json:"font_size"`
	DarkMode bool     `json:"dark_mode"`
}

type PrivacySettings struct {
	PinEnabled bool `json:"pin_enabled"`
}

type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation,omitempty"`
}

type Settings struct {
	Notifications     NotificationSettings `json:"notifications"`
	Appearance        AppearanceSettings   `json:"appearance"`
	Privacy           PrivacySettings      `json:"privacy"`
	EmergencyContacts []EmergencyContact   `json:"emergency_contacts,omitempty"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// SettingsPatch carries a partial settings update. Nil sections are left
// untouched; a non-nil section overwrites that section wholesale.
type SettingsPatch struct {
	Notifications     *NotificationSettings
	Appearance        *AppearanceSettings
	Privacy           *PrivacySettings
	EmergencyContacts *[]EmergencyContact
}

func DefaultSettings(now time.Time) Settings {
	return Settings{
		Notifications: NotificationSettings{
			Enabled:         true,
			DailyReminder:   true,
			ReminderTime:    "09:00",
			MilestoneAlerts: true,
		},
		Appearance: AppearanceSettings{
			FontSize: FontMedium,
		},
		UpdatedAt: now.UTC(),
	}
}

func UpdateSettings(s Settings, patch SettingsPatch, now time.Time) Settings {
	if patch.Notifications != nil {
		s.Notifications = *patch.Notifications
	}
	if patch.Appearance != nil {
		s.Appearance = *patch.Appearance
	}
	if patch.Privacy != nil {
		s.Privacy = *patch.Privacy
	}
	if patch.EmergencyContacts != nil {
		s.EmergencyContacts = *patch.EmergencyContacts
	}
	s.UpdatedAt = now.UTC()
	return s
}

func ValidateSettings(s Settings) ValidationResult {
	var errs []string
	switch s.Appearance.FontSize {
	case FontSmall, FontMedium, FontLarge:
	default:
		errs = append(errs, "ফন্ট সাইজ small, medium বা large হতে হবে")
	}
	if len(errs) > 0 {
		return invalidResult(errs)
	}
	return validResult()
}
