package usecase

import (
	"errors"
	"fmt"
	"strings"

	"event-planner/internal/engine/lifecycle"
	"event-planner/pkg/utils"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrVendorNotFound   = errors.New("vendor not found")
	ErrVenueUnavailable = errors.New("venue is not available")
)

// ConflictError names the bookings that already hold the requested slot.
type ConflictError struct {
	VenueID    string
	BookingIDs []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("venue %s is booked by %s", e.VenueID, strings.Join(e.BookingIDs, ", "))
}

func (e *ConflictError) Unwrap() error {
	return ErrVenueUnavailable
}

// validateRequest turns validator output into a *lifecycle.ValidationError.
func validateRequest(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &lifecycle.ValidationError{Fields: errs}
	}
	return nil
}
