package scheduling

import "mindhaven/models"

// ValidateBooking is the gatekeeper run before an appointment is persisted.
// candidates is the grid produced by ExpandAvailability for the psychologist
// and date; existing is the psychologist's appointment list for the window's
// day. Returns nil on accept, otherwise a typed *Error.
//
// This check is necessary but not sufficient under concurrency: two requests
// racing for the same window can both pass it. The appointment repository's
// unique index on (psychologist_id, start) is the final arbiter.
func ValidateBooking(requested models.BookingWindow, candidates []models.CandidateSlot, existing []models.Appointment) error {
	if !requested.Start.Before(requested.End) {
		return ErrMalformedWindow
	}

	onGrid := false
	for _, c := range candidates {
		if c.Start.Equal(requested.Start) {
			onGrid = true
			break
		}
	}
	if !onGrid {
		return ErrNotOnGrid
	}

	for _, a := range existing {
		if a.Status.Terminal() {
			continue
		}
		if a.Start.Before(requested.End) && requested.Start.Before(a.End) {
			return ErrSlotUnavailable
		}
	}
	return nil
}

// FilterAvailable drops every candidate slot that overlaps a non-terminal
// appointment, leaving only windows a client can still book.
func FilterAvailable(candidates []models.CandidateSlot, existing []models.Appointment) []models.CandidateSlot {
	if len(existing) == 0 {
		return candidates
	}
	var out []models.CandidateSlot
	for _, c := range candidates {
		blocked := false
		for _, a := range existing {
			if a.Status.Terminal() {
				continue
			}
			if a.Start.Before(c.End) && c.Start.Before(a.End) {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, c)
		}
	}
	return out
}
