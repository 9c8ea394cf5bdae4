package domain

import "github.com/fillinv/lesson-scheduler/pkg/types"

// Default scheduling values
const (
	DefaultGridMinutes        = types.DefaultGridMinutes
	DefaultAdvanceBookingDays = 0 // 0 = unlimited
	DefaultTimezone           = "Asia/Seoul"
)

// Business validation constants
const (
	MinutesPerDay         = types.MinutesPerDay
	MinGridMinutes        = 5
	MaxGridMinutes        = 60
	MinAdvanceBookingDays = 0
	MaxAdvanceBookingDays = 365
	MaxMessageLength      = 500

	// CellPreviewLimit sessions shown in a one-day calendar cell before the overflow counter
	CellPreviewLimit = 3
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
