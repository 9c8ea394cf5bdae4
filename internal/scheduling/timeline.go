package scheduling

import (
	"fmt"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// Timeline pixel widths
const (
	DefaultTimelineWidth = 1600
	MinTimelineWidth     = 1000
	MaxTimelineWidth     = 5000

	// a 30-minute option renders on a 2400px bar; shorter options zoom in
	referenceWidth    = 2400
	referenceDuration = 30
)

// BarLayout horizontal position of a range on the 24-hour bar, in percent
type BarLayout struct {
	LeftPercent  float64
	WidthPercent float64
}

// Layout maps a clock range to its proportional position on the bar
func Layout(r domain.ClockRange) BarLayout {
	return BarLayout{
		LeftPercent:  float64(r.Start) / domain.MinutesPerDay * 100,
		WidthPercent: float64(r.End-r.Start) / domain.MinutesPerDay * 100,
	}
}

// TimelineWidth returns the minimum bar width in pixels for an option duration.
// durationMinutes <= 0 means no option is selected.
func TimelineWidth(durationMinutes int) int {
	if durationMinutes <= 0 {
		return DefaultTimelineWidth
	}
	width := referenceWidth * referenceDuration / durationMinutes
	if width < MinTimelineWidth {
		return MinTimelineWidth
	}
	if width > MaxTimelineWidth {
		return MaxTimelineWidth
	}
	return width
}

// HourTick hour label above the bar
type HourTick struct {
	Label   string
	Percent float64
}

// HourTicks returns the 25 labels 0:00 .. 24:00
func HourTicks() []HourTick {
	ticks := make([]HourTick, 0, 25)
	for h := 0; h <= 24; h++ {
		ticks = append(ticks, HourTick{
			Label:   fmt.Sprintf("%d:00", h),
			Percent: float64(h) / 24 * 100,
		})
	}
	return ticks
}

// FocusPercent position of the first available range, used to scroll it into view
func FocusPercent(available []domain.ClockRange) (float64, bool) {
	if len(available) == 0 {
		return 0, false
	}
	return float64(available[0].Start) / domain.MinutesPerDay * 100, true
}
