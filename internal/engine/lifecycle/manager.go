// Package lifecycle creates bookings and moves them through their status,
// payment and vendor changes. Every operation returns a new booking and
// leaves its input untouched.
package lifecycle

import (
	"fmt"
	"slices"
	"time"

	"event-planner/internal/data/entity"
	"event-planner/internal/engine/availability"
	"event-planner/pkg/utils"
)

type Manager struct {
	now func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type BookingOptions struct {
	DepositDueDate      *time.Time
	FinalPaymentDueDate *time.Time
	TimeBlocks          []entity.EventTimeBlock
	RequirementIDs      []string
	BudgetBreakdown     *entity.BudgetBreakdown
	Notes               string
}

type NewBooking struct {
	EventName     string           `validate:"required"`
	EventType     entity.EventType `validate:"required"`
	VenueID       string           `validate:"required"`
	Customer      entity.Customer
	StartDate     time.Time `validate:"required"`
	EndDate       time.Time `validate:"required,gtfield=StartDate"`
	AttendeeCount int       `validate:"gte=0"`
	TotalAmount   float64   `validate:"gte=0"`
	DepositAmount float64   `validate:"gte=0,ltefield=TotalAmount"`
	Options       BookingOptions
}

// CreateBooking returns a booking in state (inquiry, unpaid). A customer
// without id gets a generated one.
func (m *Manager) CreateBooking(in NewBooking) (*entity.Booking, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	now := m.now()
	customer := in.Customer
	if customer.ID == "" {
		customer.ID = utils.GenerateUUIDString()
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:           utils.GenerateBookingReference(now),
		EventName:           in.EventName,
		EventType:           in.EventType,
		VenueID:             in.VenueID,
		Customer:            customer,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		AttendeeCount:       in.AttendeeCount,
		Status:              entity.BookingStatusInquiry,
		PaymentStatus:       entity.PaymentStatusUnpaid,
		TotalAmount:         in.TotalAmount,
		DepositAmount:       in.DepositAmount,
		DepositDueDate:      in.Options.DepositDueDate,
		FinalPaymentDueDate: in.Options.FinalPaymentDueDate,
		TimeBlocks:          slices.Clone(in.Options.TimeBlocks),
		BudgetBreakdown:     in.Options.BudgetBreakdown,
		RequirementIDs:      slices.Clone(in.Options.RequirementIDs),
	}

	if in.Options.Notes != "" {
		booking.Notes = append(booking.Notes, entity.Note{At: now, Status: booking.Status, Text: in.Options.Notes})
	}

	return booking, nil
}

// UpdateBookingStatus moves the booking to status and logs notes, or a
// default message, in the note log.
func (m *Manager) UpdateBookingStatus(booking *entity.Booking, status entity.BookingStatus, notes string) (*entity.Booking, error) {
	if !IsValidStatus(status) {
		return nil, fieldError("Status", fmt.Sprintf("Unknown status %q", status))
	}
	if !CanTransition(booking.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	now := m.now()
	if notes == "" {
		notes = fmt.Sprintf("Status changed from %s to %s", booking.Status, status)
	}

	next := clone(booking)
	next.Status = status
	next.UpdatedAt = now
	next.Notes = append(next.Notes, entity.Note{At: now, Status: status, Text: notes})

	return next, nil
}

// CheckVenueAvailability reports whether venueID is free in [start, end)
// given the existing bookings.
func (m *Manager) CheckVenueAvailability(venueID string, start, end time.Time, existing []entity.Booking) bool {
	return availability.IsAvailable(venueID, start, end, existing)
}

// clone copies the booking and the slices an operation may append to.
func clone(b *entity.Booking) *entity.Booking {
	next := *b
	next.TimeBlocks = slices.Clone(b.TimeBlocks)
	next.VendorBookings = slices.Clone(b.VendorBookings)
	next.RequirementIDs = slices.Clone(b.RequirementIDs)
	next.Payments = slices.Clone(b.Payments)
	next.Notes = slices.Clone(b.Notes)
	return &next
}
