package models

import "time"

// CravingLog records one craving episode, written at the end of the SOS flow.
// Append-only in practice; updates are rare but supported.
type CravingLog struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Intensity      int       `json:"intensity"`
	Triggers       []Trigger `json:"triggers"`
	DurationMin    *int      `json:"duration_min,omitempty"`
	CopingStrategy string    `json:"coping_strategy,omitempty"`
	Overcome       bool      `json:"overcome"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CravingLogPatch struct {
	Intensity      *int
	Triggers       *[]Trigger
	DurationMin    *int
	CopingStrategy *string
	Overcome       *bool
	Notes          *string
}

func NewCravingLog(intensity int, triggers []Trigger, overcome bool, now time.Time) CravingLog {
	return CravingLog{
		ID:        NewID(now),
		Timestamp: now.UTC(),
		Intensity: intensity,
		Triggers:  triggers,
		Overcome:  overcome,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

func UpdateCravingLog(c CravingLog, patch CravingLogPatch, now time.Time) CravingLog {
	if patch.Intensity != nil {
		c.Intensity = *patch.Intensity
	}
	if patch.Triggers != nil {
		c.Triggers = *patch.Triggers
	}
	if patch.DurationMin != nil {
		c.DurationMin = patch.DurationMin
	}
	if patch.CopingStrategy != nil {
		c.CopingStrategy = *patch.CopingStrategy
	}
	if patch.Overcome != nil {
		c.Overcome = *patch.Overcome
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	c.UpdatedAt = now.UTC()
	return c
}

func ValidateCravingLog(c CravingLog) ValidationResult {
	var errs []string
	if c.Intensity < 1 || c.Intensity > 10 {
		errs = append(errs, "তীব্রতা ১ থেকে ১০ এর মধ্যে হতে হবে")
	}
	if len(c.Triggers) == 0 {
		errs = append(errs, "অন্তত একটি ট্রিগার নির্বাচন করুন")
	}
	for _, tr := range c.Triggers {
		if !validTrigger(tr) {
			errs = append(errs, "ট্রিগার নির্বাচন সঠিক নয়: "+string(tr))
		}
	}
	if c.DurationMin != nil && *c.DurationMin < 0 {
		errs = append(errs, "স্থায়িত্ব শূন্য বা তার বেশি মিনিট হতে হবে")
	}
	if len(errs) > 0 {
		return invalidResult(errs)
	}
	return validResult()
}
