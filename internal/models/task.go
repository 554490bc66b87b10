package models

import (
	"strings"
	"time"
)

// ProgramDays is the length of the 41-day program. Day 1 is the quit day.
const ProgramDays = 41

// DailyTask is one task of a program day, created from static day content and
// toggled by the user. Completions persist per program day.
type DailyTask struct {
	ID          string     `json:"id"`
	Day         int        `json:"day"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewDailyTask(day int, title, description string, now time.Time) DailyTask {
	return DailyTask{
		ID:          NewID(now),
		Day:         day,
		Title:       title,
		Description: description,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
}

// ToggleTask flips the completion state, keeping CompletedAt consistent with
// Completed.
func ToggleTask(t DailyTask, now time.Time) DailyTask {
	if t.Completed {
		t.Completed = false
		t.CompletedAt = nil
	} else {
		t.Completed = true
		completed := now.UTC()
		t.CompletedAt = &completed
	}
	t.UpdatedAt = now.UTC()
	return t
}

func ValidateDailyTask(t DailyTask) ValidationResult {
	var errs []string
	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, "শিরোনাম খালি রাখা যাবে না")
	}
	if t.Day < 1 || t.Day > ProgramDays {
		errs = append(errs, "দিন ১ থেকে ৪১ এর মধ্যে হতে হবে")
	}
	if t.Completed != (t.CompletedAt != nil) {
		errs = append(errs, "সম্পন্নের সময় শুধু সম্পন্ন টাস্কে থাকতে পারে")
	}
	if len(errs) > 0 {
		return invalidResult(errs)
	}
	return validResult()
}
