package config

// Layout constants.
const (
	// DayCellWidth is the rendered width of one day in the month grid.
	DayCellWidth = 4

	// WeekLength is the number of columns in the month grid.
	WeekLength = 7

	// MinGridWidth is the narrowest width that still fits a full week.
	MinGridWidth = DayCellWidth * WeekLength

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Display limits.
const (
	// MaxSubTitleWidth limits the subtitle shown under the grid.
	MaxSubTitleWidth = 40
)
