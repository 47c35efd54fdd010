package models

import "time"

// DataExport is a full snapshot of every collection. On import a nil slice
// means "not present" and leaves the stored collection alone; an empty one
// clears it.
type DataExport struct {
	Users             []User             `json:"users"`
	ConsumptionLogs   []ConsumptionLog   `json:"consumption_logs"`
	HabitReplacements []HabitReplacement `json:"habit_replacements"`
	UserActivities    []HabitActivity    `json:"user_activities"`
	JournalEntries    []JournalEntry     `json:"journal_entries"`
	CrisisEvents      []CrisisEvent      `json:"crisis_events"`
	Settings          *Settings          `json:"settings,omitempty"`
	ExportDate        time.Time          `json:"export_date"`
	AppVersion        string             `json:"app_version"`
}
