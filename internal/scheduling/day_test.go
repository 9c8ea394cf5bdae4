package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

func TestBuildDay(t *testing.T) {
	lesson := &domain.Lesson{
		OpenRanges: []domain.TimeRange{{SourceID: "at-1", Start: at(2, 9, 0), End: at(2, 12, 0)}},
		Booked:     []domain.TimeRange{{Start: at(2, 10, 0), End: at(2, 11, 0)}},
	}

	day := BuildDay(lesson, at(2, 15, 0), kst)

	assert.Equal(t, at(2, 0, 0), day.Date)
	require.Len(t, day.Available, 1)
	require.Len(t, day.Booked, 1)
	assert.Equal(t, ReasonConflict, Validate(domain.ClockRange{Start: 600, End: 630}, day.Available, day.Booked))
	assert.Equal(t, ReasonNone, Validate(domain.ClockRange{Start: 660, End: 720}, day.Available, day.Booked))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-02", kst)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, kst), d)

	_, err = ParseDate("2025-13-01", kst)
	assert.Error(t, err)
}

func TestDatePolicy_Check(t *testing.T) {
	policy := DatePolicy{Today: time.Date(2025, 6, 1, 20, 0, 0, 0, kst), AdvanceBookingDays: 3}

	assert.Equal(t, ReasonPastDate, policy.Check("2025-05-31"))
	assert.Equal(t, ReasonNone, policy.Check("2025-06-01"))
	assert.Equal(t, ReasonNone, policy.Check("2025-06-04"))
	assert.Equal(t, ReasonBeyondHorizon, policy.Check("2025-06-05"))
}
