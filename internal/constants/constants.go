package constants

const (
	AppName            = "wird"
	DefaultKeyringUser = "sync-token"
	DefaultConfigPath  = "~/.config/wird/wird.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MaxStreakLookbackDays bounds the backward walk when computing streaks.
	MaxStreakLookbackDays = 365

	// DefaultRetentionDays is the completion-history window kept by 'wird cleanup'.
	DefaultRetentionDays = 90

	// DefaultLogDays is the history window shown by 'wird log'.
	DefaultLogDays = 14

	// CustomHabitPrefix is the id prefix for user-added standalone duas.
	CustomHabitPrefix = "custom-"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wird-"
	BackupFileSuffix = ".db"

	// OutboxFileName is the sync outbox kept beside the store.
	OutboxFileName = "outbox.jsonl"
)

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateToday SessionState = iota
	StateJourneys
	StateAddHabit
)
