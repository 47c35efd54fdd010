package models

// Settings represents application-wide settings
type Settings struct {
	Theme                string `json:"theme"`                 // "light" or "dark"
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether reminders are sent
	ReminderFrequency    string `json:"reminder_frequency"`    // "daily", "hourly", "weekly" or a cron expression
	PrivacyMode          bool   `json:"privacy_mode"`          // keep all data on this device
	DataExportFormat     string `json:"data_export_format"`    // export file format
	Timezone             string `json:"timezone"`              // IANA timezone name (e.g. "Europe/London", or "Local" for system timezone)
}
