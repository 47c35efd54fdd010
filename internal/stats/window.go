// Package stats derives aggregates from raw tracker records. Every function
// here is pure: callers pass in the records and the current time.
package stats

import (
	"time"

	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/utils"
)

// Window is a trailing range of calendar days. A day is inside the window
// when it is on or after Start; later days, including future ones, are
// never rejected.
type Window struct {
	Days     int
	Start    string // YYYY-MM-DD
	Today    string // YYYY-MM-DD
	Location *time.Location
}

// NewWindow returns the window of the last days days ending at now. Days are
// evaluated in now's location.
func NewWindow(now time.Time, days int) Window {
	if days < 0 {
		days = 0
	}
	return Window{
		Days:     days,
		Start:    utils.DaysAgo(now, days),
		Today:    utils.Day(now),
		Location: now.Location(),
	}
}

// Contains reports whether day (YYYY-MM-DD) falls inside the window.
func (w Window) Contains(day string) bool {
	return day >= w.Start
}

// ContainsTime reports whether t's calendar day, in the window's location,
// falls inside the window.
func (w Window) ContainsTime(t time.Time) bool {
	loc := w.Location
	if loc == nil {
		loc = time.Local
	}
	return w.Contains(utils.Day(t.In(loc)))
}

// Filter returns the records whose day falls inside w. Input order is kept.
func Filter[T any](records []T, w Window, dayOf func(T) string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if w.Contains(dayOf(r)) {
			out = append(out, r)
		}
	}
	return out
}

func FilterLogs(logs []models.ConsumptionLog, w Window) []models.ConsumptionLog {
	return Filter(logs, w, func(l models.ConsumptionLog) string { return l.Date })
}

func FilterActivities(activities []models.HabitActivity, w Window) []models.HabitActivity {
	return Filter(activities, w, func(a models.HabitActivity) string { return a.Date })
}

func FilterEntries(entries []models.JournalEntry, w Window) []models.JournalEntry {
	return Filter(entries, w, func(e models.JournalEntry) string { return e.Date })
}

func FilterEvents(events []models.CrisisEvent, w Window) []models.CrisisEvent {
	out := make([]models.CrisisEvent, 0, len(events))
	for _, e := range events {
		if w.ContainsTime(e.Timestamp) {
			out = append(out, e)
		}
	}
	return out
}
