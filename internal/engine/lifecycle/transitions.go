package lifecycle

import (
	"slices"

	"event-planner/internal/data/entity"
)

// transitions lists the allowed next states. Cancelled and completed are
// terminal.
var transitions = map[entity.BookingStatus][]entity.BookingStatus{
	entity.BookingStatusInquiry: {
		entity.BookingStatusPending,
		entity.BookingStatusConfirmed,
		entity.BookingStatusCancelled,
	},
	entity.BookingStatusPending: {
		entity.BookingStatusConfirmed,
		entity.BookingStatusCancelled,
	},
	entity.BookingStatusConfirmed: {
		entity.BookingStatusCompleted,
		entity.BookingStatusCancelled,
	},
	entity.BookingStatusCancelled: nil,
	entity.BookingStatusCompleted: nil,
}

// IsValidStatus reports whether s is a known booking status.
func IsValidStatus(s entity.BookingStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether a booking in from may move to to.
func CanTransition(from, to entity.BookingStatus) bool {
	return slices.Contains(transitions[from], to)
}

// AllowedTransitions returns the states reachable from from in one step.
func AllowedTransitions(from entity.BookingStatus) []entity.BookingStatus {
	return slices.Clone(transitions[from])
}
