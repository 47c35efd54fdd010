package constants

import "time"

const (
	AppName            = "recoverwise"
	AppVersion         = "1.0.0"
	Version            = "v1.0.0"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/recoverwise/recoverwise.db"
	MemoryConfigPath   = ":memory:"
	KeyringConfigPath  = "keyring"
	ConnectionEnvVar   = "RECOVERWISE_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "recoverwise-"
	BackupFileSuffix = ".db"

	// Reminder constants
	ReminderCheckTimeout = 30 * time.Second
)

// Collection keys in the key/value store.
const (
	KeyUsers             = "users"
	KeyConsumptionLogs   = "consumption_logs"
	KeyHabitReplacements = "habit_replacements"
	KeyUserActivities    = "user_activities"
	KeyJournalEntries    = "journal_entries"
	KeyCrisisEvents      = "crisis_events"
	KeyAppSettings       = "app_settings"
)

// AllKeys lists every collection key, in export order.
var AllKeys = []string{
	KeyUsers,
	KeyConsumptionLogs,
	KeyHabitReplacements,
	KeyUserActivities,
	KeyJournalEntries,
	KeyCrisisEvents,
	KeyAppSettings,
}

const (
	// SyncWindowDays is the trailing window the synchronizer averages over.
	SyncWindowDays = 7
	// StatsWindowDays is the default reporting window for statistics.
	StatsWindowDays = 30
	// StreakLookbackDays bounds how far back the streak walk goes.
	StreakLookbackDays = 30
	// TopK is the length of trigger and strategy rankings.
	TopK = 3
)

// Profile defaults applied when a field is left empty.
const (
	DefaultUsername     = "User"
	DefaultAge          = 25
	DefaultGender       = "other"
	DefaultDrinkingType = "stress"
	DefaultGoalType     = "harm_reduction"
	DefaultMood         = 5
	DefaultRating       = 5
	DefaultEntryType    = "daily_reflection"
	DefaultCrisisType   = "urge"
)

// Settings defaults
const (
	DefaultTheme                = "light"
	DefaultNotificationsEnabled = true
	DefaultReminderFrequency    = "daily"
	DefaultPrivacyMode          = true
	DefaultExportFormat         = "json"
	DefaultTimezone             = "Local"
)
