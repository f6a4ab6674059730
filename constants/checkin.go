package constants

import "time"

// Check-in sources
const (
	SourceShortcut = "shortcut"
	SourceManual   = "manual"
)

// Insight period types
const (
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

// Valid mood bounds (inclusive)
const (
	MoodMin = 1
	MoodMax = 10
)

// App setting keys
const (
	SettingCustomBackground = "custom_background"
)

// Redis cache for dashboard stats
const (
	StatsCachePrefix = "stats:daily:"
	StatsCacheTTL    = 10 * time.Minute
)

// Default windows (days) warmed into the stats cache by the nightly job
var StatsWarmWindows = []int{7, 30, 90}
