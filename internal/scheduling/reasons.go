package scheduling

// RejectReason explains why a selection was refused; ReasonNone means accepted
type RejectReason string

const (
	ReasonNone RejectReason = ""

	// slot selection
	ReasonNoOption        RejectReason = "no_option"        // no service option selected
	ReasonInvalidPosition RejectReason = "invalid_position" // click fraction outside [0, 1)
	ReasonInvalidRange    RejectReason = "invalid_range"    // candidate violates 0 <= start < end <= 1440
	ReasonMisaligned      RejectReason = "misaligned"       // start not on the quantization grid
	ReasonExceedsDay      RejectReason = "exceeds_day"      // slot would run past midnight
	ReasonUnavailable     RejectReason = "unavailable"      // not contained in any open range
	ReasonConflict        RejectReason = "conflict"         // overlaps a booked range

	// calendar date selection
	ReasonNoSessions    RejectReason = "no_sessions"
	ReasonPastDate      RejectReason = "past_date"
	ReasonBeyondHorizon RejectReason = "beyond_horizon"
	ReasonSessionFull   RejectReason = "session_full"
)

// String returns the reason code
func (r RejectReason) String() string {
	return string(r)
}

// IsRejected returns true for any reason other than ReasonNone
func (r RejectReason) IsRejected() bool {
	return r != ReasonNone
}
