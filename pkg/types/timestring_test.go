package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinuteOfDay(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{label: "00:00", want: 0},
		{label: "09:05", want: 545},
		{label: "12:00", want: 720},
		{label: "23:59", want: 1439},
		{label: "24:00", wantErr: true},
		{label: "9:05", wantErr: true},
		{label: "09:60", wantErr: true},
		{label: "ab:cd", wantErr: true},
		{label: "", wantErr: true},
		{label: "09-05", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ToMinuteOfDay(tt.label)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToClockLabel_RejectsOutOfRange(t *testing.T) {
	for _, m := range []int{-1, 1440, 5000} {
		_, err := ToClockLabel(m)
		assert.ErrorIs(t, err, ErrMinuteOutOfRange, "minute %d", m)
	}

	label, err := ToClockLabel(545)
	require.NoError(t, err)
	assert.Equal(t, "09:05", label)
}

func TestClockLabel_RoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		label, err := ToClockLabel(m)
		require.NoError(t, err)

		back, err := ToMinuteOfDay(label)
		require.NoError(t, err)
		require.Equal(t, m, back)

		again, err := ToClockLabel(back)
		require.NoError(t, err)
		require.Equal(t, label, again)
	}
}

func TestEndLabels(t *testing.T) {
	m, err := ToEndMinute("24:00")
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay, m)

	m, err = ToEndMinute("00:00")
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay, m)

	m, err = ToEndMinute("12:30")
	require.NoError(t, err)
	assert.Equal(t, 750, m)

	label, err := ToEndLabel(MinutesPerDay)
	require.NoError(t, err)
	assert.Equal(t, "24:00", label)

	_, err = ToEndLabel(0)
	assert.ErrorIs(t, err, ErrMinuteOutOfRange)
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, 540, Quantize(545, 10))
	assert.Equal(t, 710, Quantize(715, 10))
	assert.Equal(t, 0, Quantize(9, 10))
	assert.Equal(t, 540, Quantize(545, 0))
	assert.Equal(t, 525, Quantize(539, 15))
}

func TestQuantize_Idempotent(t *testing.T) {
	for _, grid := range []int{5, 10, 15, 30} {
		for m := 0; m < MinutesPerDay; m += grid {
			require.Equal(t, m, Quantize(m, grid))
			require.Equal(t, Quantize(m+grid-1, grid), Quantize(Quantize(m+grid-1, grid), grid))
		}
	}
}

func TestTimeString(t *testing.T) {
	assert.Equal(t, "07:08", NewTimeString(time.Date(2025, 6, 1, 7, 8, 0, 0, time.UTC)).String())

	ts, err := NewTimeStringFromMinutes(690)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), ts)

	_, err = NewTimeStringFromMinutes(MinutesPerDay)
	assert.ErrorIs(t, err, ErrMinuteOutOfRange)
}
