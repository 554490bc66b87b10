package models

import "time"

// SmokeFreeTime is elapsed time since the quit date decomposed for display.
// All components are non-negative; a future quit date yields all zeros.
type SmokeFreeTime struct {
	Days         int   `json:"days"`
	Hours        int   `json:"hours"`
	Minutes      int   `json:"minutes"`
	Seconds      int   `json:"seconds"`
	TotalSeconds int64 `json:"total_seconds"`
}

// MoneySaved holds floored integer amounts for stable display. Total is the
// historical amount; Daily/Weekly/Monthly/Yearly are projections at the
// current daily rate and deliberately do not reconcile with Total.
type MoneySaved struct {
	Daily   int64 `json:"daily"`
	Weekly  int64 `json:"weekly"`
	Monthly int64 `json:"monthly"`
	Yearly  int64 `json:"yearly"`
	Total   int64 `json:"total"`
}

type BadgeTier string

const (
	BadgeBronze  BadgeTier = "bronze"
	BadgeSilver  BadgeTier = "silver"
	BadgeGold    BadgeTier = "gold"
	BadgeDiamond BadgeTier = "diamond"
)

// Milestone is a fixed program-day threshold with a badge tier.
type Milestone struct {
	Day          int        `json:"day"`
	Title        string     `json:"title"`
	Badge        BadgeTier  `json:"badge"`
	Achieved     bool       `json:"achieved"`
	AchievedDate *time.Time `json:"achieved_date,omitempty"`
}

// HealthBenefit is an achieved health-timeline entry with the instant it was
// reached.
type HealthBenefit struct {
	ID            string    `json:"id"`
	TimeInMinutes int       `json:"time_in_minutes"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	AchievedDate  time.Time `json:"achieved_date"`
}

// Progress is the cached snapshot of derived metrics. It is recomputed and
// overwritten periodically and is never a source of truth.
type Progress struct {
	SmokeFreeTime       SmokeFreeTime   `json:"smoke_free_time"`
	MoneySaved          int64           `json:"money_saved"`
	CigarettesNotSmoked int64           `json:"cigarettes_not_smoked"`
	CurrentDay          int             `json:"current_day"`
	Milestones          []Milestone     `json:"milestones"`
	HealthBenefits      []HealthBenefit `json:"health_benefits"`
	LastUpdated         time.Time       `json:"last_updated"`
}

// ProgressPatch carries a partial snapshot refresh. Nil fields keep the
// stored value.
type ProgressPatch struct {
	SmokeFreeTime       *SmokeFreeTime
	MoneySaved          *int64
	CigarettesNotSmoked *int64
	CurrentDay          *int
	Milestones          *[]Milestone
	HealthBenefits      *[]HealthBenefit
}

func UpdateProgress(p Progress, patch ProgressPatch, now time.Time) Progress {
	if patch.SmokeFreeTime != nil {
		p.SmokeFreeTime = *patch.SmokeFreeTime
	}
	if patch.MoneySaved != nil {
		p.MoneySaved = *patch.MoneySaved
	}
	if patch.CigarettesNotSmoked != nil {
		p.CigarettesNotSmoked = *patch.CigarettesNotSmoked
	}
	if patch.CurrentDay != nil {
		p.CurrentDay = *patch.CurrentDay
	}
	if patch.Milestones != nil {
		p.Milestones = *patch.Milestones
	}
	if patch.HealthBenefits != nil {
		p.HealthBenefits = *patch.HealthBenefits
	}
	p.LastUpdated = now.UTC()
	return p
}

func ValidateProgress(p Progress) ValidationResult {
	var errs []string
	if p.SmokeFreeTime.TotalSeconds < 0 {
		errs = append(errs, "মোট সেকেন্ড শূন্য বা তার বেশি হতে হবে")
	}
	if p.CurrentDay < 1 || p.CurrentDay > ProgramDays {
		errs = append(errs, "দিন ১ থেকে ৪১ এর মধ্যে হতে হবে")
	}
	if len(errs) > 0 {
		return invalidResult(errs)
	}
	return validResult()
}
