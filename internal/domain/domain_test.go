package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLessonType(t *testing.T) {
	lt, err := ParseLessonType("MENTORING")
	require.NoError(t, err)
	assert.Equal(t, LessonTypeMentoring, lt)

	lt, err = ParseLessonType(" OneDay ")
	require.NoError(t, err)
	assert.Equal(t, LessonTypeOneDay, lt)
	assert.True(t, lt.HasFixedSessions())

	_, err = ParseLessonType("webinar")
	assert.Error(t, err)
}

func TestServiceOption_DurationLabel(t *testing.T) {
	assert.Equal(t, "30m", ServiceOption{DurationMinutes: 30}.DurationLabel())
	assert.Equal(t, "1h", ServiceOption{DurationMinutes: 60}.DurationLabel())
	assert.Equal(t, "1h 30m", ServiceOption{DurationMinutes: 90}.DurationLabel())
}

func TestClockRange_IsValid(t *testing.T) {
	assert.True(t, ClockRange{Start: 0, End: 1440}.IsValid())
	assert.False(t, ClockRange{Start: 600, End: 600}.IsValid())
	assert.False(t, ClockRange{Start: -10, End: 20}.IsValid())
	assert.False(t, ClockRange{Start: 1400, End: 1450}.IsValid())
}

func TestFixedSession_IsValid(t *testing.T) {
	assert.True(t, FixedSession{RemainingSeats: 0, CapacitySeats: 4}.IsValid())
	assert.False(t, FixedSession{RemainingSeats: 5, CapacitySeats: 4}.IsValid())
	assert.False(t, FixedSession{RemainingSeats: 0, CapacitySeats: 0}.IsValid())
}

func TestSchedulingConfig_IsBeyondHorizon(t *testing.T) {
	today := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	unlimited := DefaultSchedulingConfig()
	assert.False(t, unlimited.IsBeyondHorizon(today.AddDate(5, 0, 0), today))

	cfg := &SchedulingConfig{GridMinutes: 10, AdvanceBookingDays: 7}
	assert.False(t, cfg.IsBeyondHorizon(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), today))
	assert.True(t, cfg.IsBeyondHorizon(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), today))
}
