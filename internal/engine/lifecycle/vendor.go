package lifecycle

import (
	"fmt"
	"time"

	"event-planner/internal/data/entity"
	"event-planner/internal/engine/pricing"
	"event-planner/internal/engine/timeline"
	"event-planner/pkg/utils"
)

const (
	DefaultVendorHours = 4
	VendorDepositRate  = 0.30
)

type VendorOptions struct {
	// Quantity defaults to the attendee count.
	Quantity int
	// Hours defaults to DefaultVendorHours.
	Hours float64
	// ServiceDate defaults to the booking's start date.
	ServiceDate *time.Time
	ExcludeFees bool
	Notes       string
}

type vendorInput struct {
	PackageID string  `validate:"required"`
	StartTime string  `validate:"required,hhmm"`
	EndTime   string  `validate:"required,hhmm"`
	Quantity  int     `validate:"gte=0"`
	Hours     float64 `validate:"gte=0"`
}

// AddVendorBooking prices packageID of vendor, attaches it to the booking
// in state inquiry with a 30% deposit and adds its total and deposit to the
// booking's own amounts.
func (m *Manager) AddVendorBooking(booking *entity.Booking, vendor *entity.Vendor, packageID, startTime, endTime string, opts VendorOptions) (*entity.Booking, *entity.VendorBooking, error) {
	if err := validate(vendorInput{PackageID: packageID, StartTime: startTime, EndTime: endTime, Quantity: opts.Quantity, Hours: opts.Hours}); err != nil {
		return nil, nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, nil, fmt.Errorf("add vendor to booking %s: %w", booking.ID, ErrBookingClosed)
	}

	serviceDate := dateOf(booking.StartDate)
	if opts.ServiceDate != nil {
		serviceDate = dateOf(*opts.ServiceDate)
	}
	if _, _, err := timeline.ServiceWindow(serviceDate, startTime, endTime); err != nil {
		return nil, nil, fieldError("EndTime", "Must be after StartTime")
	}

	quantity := opts.Quantity
	if quantity == 0 {
		quantity = booking.AttendeeCount
	}
	hours := opts.Hours
	if hours == 0 {
		hours = DefaultVendorHours
	}

	cost, err := pricing.CalculateVendorBookingCost(vendor, packageID, quantity, hours, !opts.ExcludeFees)
	if err != nil {
		return nil, nil, fmt.Errorf("add vendor to booking %s: %w", booking.ID, err)
	}

	vb := entity.VendorBooking{
		ID:            utils.GenerateUUIDString(),
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		PackageID:     packageID,
		ServiceDate:   serviceDate,
		StartTime:     startTime,
		EndTime:       endTime,
		Quantity:      quantity,
		Hours:         hours,
		Cost:          *cost,
		TotalAmount:   cost.Total,
		DepositAmount: cost.Total * VendorDepositRate,
		Status:        entity.BookingStatusInquiry,
		Notes:         opts.Notes,
	}

	now := m.now()
	next := clone(booking)
	next.VendorBookings = append(next.VendorBookings, vb)
	next.TotalAmount += vb.TotalAmount
	next.DepositAmount += vb.DepositAmount
	next.UpdatedAt = now
	next.Notes = append(next.Notes, entity.Note{
		At:     now,
		Status: next.Status,
		Text:   fmt.Sprintf("Vendor %s package %s added (%.2f)", vendor.Name, packageID, vb.TotalAmount),
	})

	// the new totals may no longer be covered
	next.PaymentStatus = derivePaymentStatus(PaidToDate(next), next.TotalAmount, next.DepositAmount,
		booking.PaymentStatus == entity.PaymentStatusDepositPaid, booking.PaymentStatus)

	return next, &vb, nil
}

func dateOf(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
