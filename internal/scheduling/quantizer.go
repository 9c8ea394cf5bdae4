package scheduling

import (
	"errors"
	"math"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/pkg/types"
)

// ErrInvalidClick возвращается при некорректных координатах клика по таймлайну
var ErrInvalidClick = errors.New("invalid timeline click")

// SelectionState caller-owned mentoring selection.
// Slot is nil until a slot is accepted and is cleared whenever the option changes.
type SelectionState struct {
	Option *domain.ServiceOption
	Slot   *domain.CandidateSlot
}

// SlotRequest input of one quantizer call
type SlotRequest struct {
	Date        time.Time // calendar date of the clicked timeline
	Fraction    float64   // click position along the 24-hour bar, [0, 1)
	Available   []domain.ClockRange
	Booked      []domain.BookedRange
	GridMinutes int
	Location    *time.Location
}

// SlotResult Accepted(slot) or Rejected(reason), plus the state to keep
type SlotResult struct {
	Accepted bool
	Slot     *domain.CandidateSlot
	Reason   RejectReason
	State    SelectionState
}

// SelectOption switches the selected option; a different option clears the slot
func SelectOption(state SelectionState, option domain.ServiceOption) SelectionState {
	if state.Option != nil && state.Option.ID == option.ID {
		return state
	}
	opt := option
	return SelectionState{Option: &opt}
}

// FractionFromClick converts a click offset within a bar of the given width to a fraction
func FractionFromClick(clickX, barWidth float64) (float64, error) {
	if barWidth <= 0 || math.IsNaN(clickX) || math.IsNaN(barWidth) {
		return 0, ErrInvalidClick
	}
	if clickX < 0 || clickX >= barWidth {
		return 0, ErrInvalidClick
	}
	return clickX / barWidth, nil
}

// SelectSlot snaps a click to a grid-aligned, duration-sized slot and validates it.
// On rejection the returned state is the input state unchanged.
func SelectSlot(state SelectionState, req SlotRequest) SlotResult {
	reject := func(reason RejectReason) SlotResult {
		return SlotResult{Reason: reason, State: state}
	}

	if state.Option == nil {
		return reject(ReasonNoOption)
	}
	if math.IsNaN(req.Fraction) || req.Fraction < 0 || req.Fraction >= 1 {
		return reject(ReasonInvalidPosition)
	}

	rawMinute := int(math.Floor(req.Fraction * domain.MinutesPerDay))
	start := types.Quantize(rawMinute, req.GridMinutes)

	match, reason := CheckSlot(start, state.Option.DurationMinutes, req.GridMinutes, req.Available, req.Booked)
	if reason.IsRejected() {
		return reject(reason)
	}

	slot := newCandidate(req.Date, req.Location, domain.ClockRange{
		Start:    start,
		End:      start + state.Option.DurationMinutes,
		SourceID: match.SourceID,
	})

	return SlotResult{
		Accepted: true,
		Slot:     &slot,
		State:    SelectionState{Option: state.Option, Slot: &slot},
	}
}

// CheckSlot validates a slot starting at start and lasting duration minutes.
// Returns the availability range containing it.
func CheckSlot(
	start, duration, grid int,
	available []domain.ClockRange,
	booked []domain.BookedRange,
) (domain.ClockRange, RejectReason) {
	if duration <= 0 || start < 0 || start >= domain.MinutesPerDay {
		return domain.ClockRange{}, ReasonInvalidRange
	}
	if types.Quantize(start, grid) != start {
		return domain.ClockRange{}, ReasonMisaligned
	}

	end := start + duration
	if end > domain.MinutesPerDay {
		return domain.ClockRange{}, ReasonExceedsDay
	}

	candidate := domain.ClockRange{Start: start, End: end}
	match, ok := ContainingRange(candidate, available)
	if !ok {
		return domain.ClockRange{}, ReasonUnavailable
	}
	if !IsFree(candidate, booked) {
		return domain.ClockRange{}, ReasonConflict
	}

	return match, ReasonNone
}

func newCandidate(date time.Time, loc *time.Location, r domain.ClockRange) domain.CandidateSlot {
	day := DayStart(date, loc)
	return domain.CandidateSlot{
		Date:     day,
		Range:    r,
		SourceID: r.SourceID,
		StartAt:  time.Date(day.Year(), day.Month(), day.Day(), r.Start/60, r.Start%60, 0, 0, day.Location()),
	}
}
