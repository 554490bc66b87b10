package models

import (
	"strings"
	"time"
)

type Mood string

const (
	MoodExcellent Mood = "excellent"
	MoodGood      Mood = "good"
	MoodNeutral   Mood = "neutral"
	MoodBad       Mood = "bad"
	MoodTerrible  Mood = "terrible"
)

// Trigger is a circumstance that provokes a craving. Shared between journal
// entries and craving logs by value, never by reference.
type Trigger string

const (
	TriggerStress     Trigger = "stress"
	TriggerBoredom    Trigger = "boredom"
	TriggerSocial     Trigger = "social"
	TriggerAfterMeal  Trigger = "after_meal"
	TriggerTeaCoffee  Trigger = "tea_coffee"
	TriggerWorkBreak  Trigger = "work_break"
	TriggerLoneliness Trigger = "loneliness"
	TriggerHabit      Trigger = "habit"
	TriggerOther      Trigger = "other"
)

func validMood(m Mood) bool {
	switch m {
	case MoodExcellent, MoodGood, MoodNeutral, MoodBad, MoodTerrible:
		return true
	}
	return false
}

func validTrigger(tr Trigger) bool {
	switch tr {
	case TriggerStress, TriggerBoredom, TriggerSocial, TriggerAfterMeal,
		TriggerTeaCoffee, TriggerWorkBreak, TriggerLoneliness, TriggerHabit, TriggerOther:
		return true
	}
	return false
}

type JournalEntry struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	Content          string    `json:"content"`
	Mood             Mood      `json:"mood"`
	Triggers         []Trigger `json:"triggers,omitempty"`
	CravingIntensity *int      `json:"craving_intensity,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// JournalEntryPatch carries the mutable fields of an entry update.
type JournalEntryPatch struct {
	Content          *string
	Mood             *Mood
	Triggers         *[]Trigger
	CravingIntensity *int
}

func NewJournalEntry(content string, mood Mood, triggers []Trigger, intensity *int, now time.Time) JournalEntry {
	return JournalEntry{
		ID:               NewID(now),
		Date:             now.UTC(),
		Content:          content,
		Mood:             mood,
		Triggers:         triggers,
		CravingIntensity: intensity,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}
}

func UpdateJournalEntry(e JournalEntry, patch JournalEntryPatch, now time.Time) JournalEntry {
	if patch.Content != nil {
		e.Content = *patch.Content
	}
	if patch.Mood != nil {
		e.Mood = *patch.Mood
	}
	if patch.Triggers != nil {
		e.Triggers = *patch.Triggers
	}
	if patch.CravingIntensity != nil {
		e.CravingIntensity = patch.CravingIntensity
	}
	e.UpdatedAt = now.UTC()
	return e
}

func ValidateJournalEntry(e JournalEntry) ValidationResult {
	var errs []string
	if strings.TrimSpace(e.Content) == "" {
		errs = append(errs, "কনটেন্ট খালি রাখা যাবে না")
	}
	if !validMood(e.Mood) {
		errs = append(errs, "মেজাজ নির্বাচন সঠিক নয়")
	}
	for _, tr := range e.Triggers {
		if !validTrigger(tr) {
			errs = append(errs, "ট্রিগার নির্বাচন সঠিক নয়: "+string(tr))
		}
	}
	if e.CravingIntensity != nil && (*e.CravingIntensity < 1 || *e.CravingIntensity > 10) {
		errs = append(errs, "তীব্রতা ১ থেকে ১০ এর মধ্যে হতে হবে")
	}
	if len(errs) > 0 {
		return invalidResult(errs)
	}
	return validResult()
}
