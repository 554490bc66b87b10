package models

import (
	"sort"
	"time"
)

// SortEntriesByDate returns a sorted copy of the entries, newest first unless
// ascending is set. The sort is stable so equal dates keep their input order.
func SortEntriesByDate(entries []JournalEntry, ascending bool) []JournalEntry {
	sorted := make([]JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// SortLogsByTimestamp returns a sorted copy of the logs, newest first unless
// ascending is set.
func SortLogsByTimestamp(logs []CravingLog, ascending bool) []CravingLog {
	sorted := make([]CravingLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted
}

// FilterEntriesByDateRange keeps entries whose date falls within [start, end],
// bounds inclusive.
func FilterEntriesByDateRange(entries []JournalEntry, start, end time.Time) []JournalEntry {
	var filtered []JournalEntry
	for _, e := range entries {
		if inRange(e.Date, start, end) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// FilterLogsByDateRange keeps logs whose timestamp falls within [start, end],
// bounds inclusive.
func FilterLogsByDateRange(logs []CravingLog, start, end time.Time) []CravingLog {
	var filtered []CravingLog
	for _, c := range logs {
		if inRange(c.Timestamp, start, end) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// AverageIntensity returns the mean craving intensity, 0 for no logs.
func AverageIntensity(logs []CravingLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, c := range logs {
		sum += c.Intensity
	}
	return float64(sum) / float64(len(logs))
}

// TriggerCount pairs a trigger with its occurrence count across logs.
type TriggerCount struct {
	Trigger Trigger `json:"trigger"`
	Count   int     `json:"count"`
}

// MostCommonTriggers counts trigger occurrences across all logs and returns
// them most frequent first. Ties keep first-seen order (stable sort).
func MostCommonTriggers(logs []CravingLog) []TriggerCount {
	counts := make(map[Trigger]int)
	var order []Trigger
	for _, c := range logs {
		for _, tr := range c.Triggers {
			if _, seen := counts[tr]; !seen {
				order = append(order, tr)
			}
			counts[tr]++
		}
	}

	result := make([]TriggerCount, 0, len(order))
	for _, tr := range order {
		result = append(result, TriggerCount{Trigger: tr, Count: counts[tr]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}
