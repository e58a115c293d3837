package config

// Picker defaults.
const (
	DefaultFormat      = "YYYY-MM-DD"
	DefaultMonthFormat = "MMM YYYY"
	DefaultColor       = "primary"
	DefaultWeekStart   = 0

	// MultiFormatLayout is the string encoding used in month-change payloads.
	MultiFormatLayout = "YYYY-MM-DD"
)

// DefaultWeekdays are the weekday labels starting on Sunday.
var DefaultWeekdays = [7]string{"S", "M", "T", "W", "T", "F", "S"}

// View modes.
const (
	ViewModeInteractive = iota
	ViewModeReadonly
)

// Database/application settings.
const (
	AppName          = "calpick"
	DBFileName       = "calpick.db"
	LogFileName      = "calpick.log"
	MaxHistoryListed = 20
)

// Settings keys.
const (
	SettingLastTheme = "last_theme"
	SettingLastMonth = "last_month"
)
