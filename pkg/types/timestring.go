package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MinutesPerDay number of minutes in a 24-hour clock day
	MinutesPerDay = 24 * 60

	// DefaultGridMinutes quantization step for click-derived start times
	DefaultGridMinutes = 10

	endOfDayLabel = "24:00"
)

var (
	// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrMinuteOutOfRange возвращается, когда минута выходит за пределы суток
	ErrMinuteOutOfRange = errors.New("minute of day out of range")
)

// TimeString clock time of day in HH:MM form
type TimeString string

// NewTimeString builds a TimeString from the local clock of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromMinutes converts a minute of day into a TimeString
func NewTimeStringFromMinutes(minute int) (TimeString, error) {
	label, err := ToClockLabel(minute)
	if err != nil {
		return "", err
	}
	return TimeString(label), nil
}

// String returns the HH:MM representation
func (t TimeString) String() string {
	return string(t)
}

// ToMinuteOfDay parses an HH:MM label into a minute in [0, 1440)
func ToMinuteOfDay(label string) (int, error) {
	if len(label) != 5 || label[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, label)
	}
	digits := []byte{label[0], label[1], label[3], label[4]}
	for _, d := range digits {
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, label)
		}
	}

	hours := int(label[0]-'0')*10 + int(label[1]-'0')
	minutes := int(label[3]-'0')*10 + int(label[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, label)
	}

	return hours*60 + minutes, nil
}

// ToClockLabel formats a minute in [0, 1440) as a zero-padded HH:MM label.
// Values outside the day are rejected, never clamped.
func ToClockLabel(minute int) (string, error) {
	if minute < 0 || minute >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrMinuteOutOfRange, minute)
	}
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60), nil
}

// ToEndMinute parses the exclusive end of a range; "24:00" maps to 1440
func ToEndMinute(label string) (int, error) {
	if label == endOfDayLabel {
		return MinutesPerDay, nil
	}
	m, err := ToMinuteOfDay(label)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		// 00:00 as an end bound means the range runs to midnight
		return MinutesPerDay, nil
	}
	return m, nil
}

// ToEndLabel formats the exclusive end of a range; 1440 renders as "24:00"
func ToEndLabel(minute int) (string, error) {
	if minute == MinutesPerDay {
		return endOfDayLabel, nil
	}
	if minute <= 0 {
		return "", fmt.Errorf("%w: %d", ErrMinuteOutOfRange, minute)
	}
	return ToClockLabel(minute)
}

// Quantize rounds minute down to the nearest multiple of grid.
// A non-positive grid falls back to DefaultGridMinutes.
func Quantize(minute, grid int) int {
	if grid <= 0 {
		grid = DefaultGridMinutes
	}
	if minute < 0 {
		return -((-minute + grid - 1) / grid) * grid
	}
	return minute / grid * grid
}
