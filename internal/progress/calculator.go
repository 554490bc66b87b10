// Package progress derives every display metric from the quit date and the
// user profile. All functions are pure given the calculator's clock; nothing
// here touches storage.
package progress

import (
	"math"
	"time"

	"github.com/arifmahmud/nishwash/internal/models"
	"github.com/arifmahmud/nishwash/internal/timeline"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60

	// upcomingBenefits is how many not-yet-reached timeline entries are shown.
	upcomingBenefits = 5
)

type milestoneDef struct {
	day   int
	title string
	badge models.BadgeTier
}

// Fixed program-day thresholds. The program runs 41 days; day 1 is the quit
// day itself.
var milestoneDefs = []milestoneDef{
	{1, "প্রথম দিন", models.BadgeBronze},
	{3, "তিন দিন", models.BadgeBronze},
	{7, "এক সপ্তাহ", models.BadgeSilver},
	{14, "দুই সপ্তাহ", models.BadgeSilver},
	{21, "তিন সপ্তাহ", models.BadgeGold},
	{30, "এক মাস", models.BadgeGold},
	{41, "প্রোগ্রাম সম্পন্ন", models.BadgeDiamond},
}

type Calculator struct {
	now func() time.Time
}

func New() *Calculator {
	return &Calculator{now: time.Now}
}

// NewWithClock builds a calculator reading "now" from the given func, for
// deterministic tests.
func NewWithClock(now func() time.Time) *Calculator {
	return &Calculator{now: now}
}

// SmokeFreeTime decomposes the elapsed time since quitDate. A quit date in
// the future yields all zeros, never negative components.
func (c *Calculator) SmokeFreeTime(quitDate time.Time) models.SmokeFreeTime {
	total := c.elapsedSeconds(quitDate)
	return models.SmokeFreeTime{
		Days:         int(total / secondsPerDay),
		Hours:        int(total % secondsPerDay / secondsPerHour),
		Minutes:      int(total % secondsPerHour / secondsPerMinute),
		Seconds:      int(total % secondsPerMinute),
		TotalSeconds: total,
	}
}

// MoneySaved computes the historical total alongside rate projections. The
// projections are "at this rate" figures (daily cost times 7/30/365) and do
// not reconcile with Total by design. All figures are floored for stable
// display.
func (c *Calculator) MoneySaved(user models.User) models.MoneySaved {
	dailyCost := c.dailyCost(user)
	days := c.daysSinceQuit(user.QuitDate)
	return models.MoneySaved{
		Daily:   int64(math.Floor(dailyCost)),
		Weekly:  int64(math.Floor(dailyCost * 7)),
		Monthly: int64(math.Floor(dailyCost * 30)),
		Yearly:  int64(math.Floor(dailyCost * 365)),
		Total:   int64(math.Floor(dailyCost * days)),
	}
}

// CigarettesNotSmoked floors cigarettes-per-day times fractional elapsed days.
func (c *Calculator) CigarettesNotSmoked(user models.User) int64 {
	return int64(math.Floor(float64(user.CigarettesPerDay) * c.daysSinceQuit(user.QuitDate)))
}

// CurrentDay returns the current program day, clamped to [1, 41].
func (c *Calculator) CurrentDay(quitDate time.Time) int {
	day := int(c.elapsedSeconds(quitDate)/secondsPerDay) + 1
	if day > models.ProgramDays {
		return models.ProgramDays
	}
	return day
}

// HealthBenefits splits the timeline into achieved entries and the next
// upcoming ones.
type HealthBenefits struct {
	Achieved []models.HealthBenefit
	Upcoming []timeline.Entry
}

func (c *Calculator) HealthBenefits(quitDate time.Time) HealthBenefits {
	elapsed := c.elapsedSeconds(quitDate) / secondsPerMinute
	var hb HealthBenefits
	for _, entry := range timeline.Entries() {
		if int64(entry.TimeInMinutes) <= elapsed {
			hb.Achieved = append(hb.Achieved, models.HealthBenefit{
				ID:            entry.ID,
				TimeInMinutes: entry.TimeInMinutes,
				Title:         entry.Title,
				Description:   entry.Description,
				AchievedDate:  quitDate.Add(time.Duration(entry.TimeInMinutes) * time.Minute),
			})
		} else if len(hb.Upcoming) < upcomingBenefits {
			hb.Upcoming = append(hb.Upcoming, entry)
		}
	}
	return hb
}

// NextMilestone describes progress toward the first unachieved timeline
// entry.
type NextMilestone struct {
	Entry            timeline.Entry
	Percent          int
	RemainingDays    int
	RemainingHours   int
	RemainingMinutes int
}

// NextMilestone returns nil when every timeline entry has been reached.
// Percent measures elapsed time between the previously achieved threshold and
// the next one, clamped to [0, 100].
func (c *Calculator) NextMilestone(quitDate time.Time) *NextMilestone {
	elapsed := c.elapsedSeconds(quitDate) / secondsPerMinute

	prevThreshold := int64(0)
	for _, entry := range timeline.Entries() {
		threshold := int64(entry.TimeInMinutes)
		if threshold <= elapsed {
			prevThreshold = threshold
			continue
		}

		percent := int(math.Round(float64(elapsed-prevThreshold) / float64(threshold-prevThreshold) * 100))
		if percent < 0 {
			percent = 0
		} else if percent > 100 {
			percent = 100
		}

		remaining := threshold - elapsed
		return &NextMilestone{
			Entry:            entry,
			Percent:          percent,
			RemainingDays:    int(remaining / (24 * 60)),
			RemainingHours:   int(remaining % (24 * 60) / 60),
			RemainingMinutes: int(remaining % 60),
		}
	}
	return nil
}

// Milestones evaluates the fixed day thresholds. Always exactly 7 entries,
// ascending by day; achieved iff day <= CurrentDay.
func (c *Calculator) Milestones(quitDate time.Time) []models.Milestone {
	currentDay := c.CurrentDay(quitDate)
	milestones := make([]models.Milestone, 0, len(milestoneDefs))
	for _, def := range milestoneDefs {
		m := models.Milestone{
			Day:   def.day,
			Title: def.title,
			Badge: def.badge,
		}
		if def.day <= currentDay {
			m.Achieved = true
			achieved := quitDate.Add(time.Duration(def.day-1) * 24 * time.Hour)
			m.AchievedDate = &achieved
		}
		milestones = append(milestones, m)
	}
	return milestones
}

// Snapshot assembles the cached Progress entity from the current metrics.
func (c *Calculator) Snapshot(user models.User) models.Progress {
	hb := c.HealthBenefits(user.QuitDate)
	return models.Progress{
		SmokeFreeTime:       c.SmokeFreeTime(user.QuitDate),
		MoneySaved:          c.MoneySaved(user).Total,
		CigarettesNotSmoked: c.CigarettesNotSmoked(user),
		CurrentDay:          c.CurrentDay(user.QuitDate),
		Milestones:          c.Milestones(user.QuitDate),
		HealthBenefits:      hb.Achieved,
		LastUpdated:         c.now().UTC(),
	}
}

func (c *Calculator) elapsedSeconds(quitDate time.Time) int64 {
	secs := int64(c.now().Sub(quitDate) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

func (c *Calculator) daysSinceQuit(quitDate time.Time) float64 {
	return float64(c.elapsedSeconds(quitDate)) / secondsPerDay
}

func (c *Calculator) dailyCost(user models.User) float64 {
	if user.CigarettesPerPack <= 0 {
		return 0
	}
	return float64(user.CigarettesPerDay) / float64(user.CigarettesPerPack) * user.PricePerPack
}
