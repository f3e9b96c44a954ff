// Package availability decides whether a venue is free for a proposed interval.
//
// Intervals are half-open: a booking ending at 11:00 does not conflict with
// one starting at 11:00. Cancelled bookings never conflict.
package availability

import (
	"time"

	"event-planner/internal/data/entity"

	"github.com/google/uuid"
)

// Overlaps reports whether [s1, e1) and [s2, e2) share any instant.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// Conflicts returns the non-cancelled bookings of venueID that overlap
// [start, end). Bookings whose id is in exclude are ignored, which lets a
// booking be rescheduled against its own calendar.
func Conflicts(venueID string, start, end time.Time, existing []entity.Booking, exclude ...uuid.UUID) []entity.Booking {
	var conflicts []entity.Booking
	for _, b := range existing {
		if b.VenueID != venueID || b.Status == entity.BookingStatusCancelled {
			continue
		}
		if excluded(b.ID, exclude) {
			continue
		}
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// IsAvailable reports whether venueID has no conflicting booking in [start, end).
func IsAvailable(venueID string, start, end time.Time, existing []entity.Booking, exclude ...uuid.UUID) bool {
	return len(Conflicts(venueID, start, end, existing, exclude...)) == 0
}

func excluded(id uuid.UUID, exclude []uuid.UUID) bool {
	for _, x := range exclude {
		if x == id {
			return true
		}
	}
	return false
}
