package scheduling

import "github.com/fillinv/lesson-scheduler/internal/domain"

// Overlaps reports whether two half-open ranges share at least one minute.
// Touching ranges (a.End == b.Start) do not overlap.
func Overlaps(a, b domain.ClockRange) bool {
	return a.Start < b.End && a.End > b.Start
}

// Contains reports whether inner lies fully inside outer
func Contains(outer, inner domain.ClockRange) bool {
	return outer.Start <= inner.Start && inner.End <= outer.End
}

// IsFree reports whether candidate overlaps none of the booked ranges.
// booked must belong to the candidate's date.
func IsFree(candidate domain.ClockRange, booked []domain.BookedRange) bool {
	for _, b := range booked {
		if Overlaps(candidate, b.Range) {
			return false
		}
	}
	return true
}

// ContainingRange returns the first availability range that fully contains candidate.
// Partial overlap does not count; the candidate is never clipped.
func ContainingRange(candidate domain.ClockRange, available []domain.ClockRange) (domain.ClockRange, bool) {
	for _, a := range available {
		if Contains(a, candidate) {
			return a, true
		}
	}
	return domain.ClockRange{}, false
}

// Validate checks candidate against the day's availability and booked ranges
func Validate(candidate domain.ClockRange, available []domain.ClockRange, booked []domain.BookedRange) RejectReason {
	if !candidate.IsValid() {
		return ReasonInvalidRange
	}
	if _, ok := ContainingRange(candidate, available); !ok {
		return ReasonUnavailable
	}
	if !IsFree(candidate, booked) {
		return ReasonConflict
	}
	return ReasonNone
}
