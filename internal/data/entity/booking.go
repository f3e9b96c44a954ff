package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusInquiry   BookingStatus = "inquiry"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type EventType string

const (
	EventTypeWedding    EventType = "wedding"
	EventTypeConference EventType = "conference"
	EventTypeCorporate  EventType = "corporate"
	EventTypeBirthday   EventType = "birthday"
	EventTypeConcert    EventType = "concert"
	EventTypeGala       EventType = "gala"
	EventTypeSocial     EventType = "social"
	EventTypeOther      EventType = "other"
)

type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
}

// Note is one entry of a booking's internal log.
type Note struct {
	At     time.Time     `json:"at"`
	Status BookingStatus `json:"status"`
	Text   string        `json:"text"`
}

type Booking struct {
	Base
	Reference           string           `json:"reference"`
	EventName           string           `json:"event_name"`
	EventType           EventType        `json:"event_type"`
	VenueID             string           `json:"venue_id"`
	Customer            Customer         `json:"customer"`
	StartDate           time.Time        `json:"start_date"`
	EndDate             time.Time        `json:"end_date"`
	AttendeeCount       int              `json:"attendee_count"`
	Status              BookingStatus    `json:"status"`
	PaymentStatus       PaymentStatus    `json:"payment_status"`
	TotalAmount         float64          `json:"total_amount"`
	DepositAmount       float64          `json:"deposit_amount"`
	DepositDueDate      *time.Time       `json:"deposit_due_date,omitempty"`
	FinalPaymentDueDate *time.Time       `json:"final_payment_due_date,omitempty"`
	TimeBlocks          []EventTimeBlock `json:"time_blocks,omitempty"`
	VendorBookings      []VendorBooking  `json:"vendor_bookings,omitempty"`
	BudgetBreakdown     *BudgetBreakdown `json:"budget_breakdown,omitempty"`
	RequirementIDs      []string         `json:"requirement_ids,omitempty"`
	Payments            []Payment        `json:"payments,omitempty"`
	Notes               []Note           `json:"notes,omitempty"`
}

// IsTerminal reports whether no further status change is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// EventTimeBlock is a titled interval [StartTime, EndTime).
type EventTimeBlock struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsRequired  bool      `json:"is_required"`
	Color       *string   `json:"color,omitempty"`
	Description *string   `json:"description,omitempty"`
}
