package response

import (
	"time"

	"event-planner/internal/data/entity"
)

type BookingResponse struct {
	ID                  string                  `json:"id"`
	Reference           string                  `json:"reference"`
	EventName           string                  `json:"event_name"`
	EventType           entity.EventType        `json:"event_type"`
	VenueID             string                  `json:"venue_id"`
	Customer            entity.Customer         `json:"customer"`
	StartDate           time.Time               `json:"start_date"`
	EndDate             time.Time               `json:"end_date"`
	AttendeeCount       int                     `json:"attendee_count"`
	Status              entity.BookingStatus    `json:"status"`
	NextStatuses        []entity.BookingStatus  `json:"next_statuses"`
	PaymentStatus       entity.PaymentStatus    `json:"payment_status"`
	TotalAmount         float64                 `json:"total_amount"`
	DepositAmount       float64                 `json:"deposit_amount"`
	PaidToDate          float64                 `json:"paid_to_date"`
	BalanceDue          float64                 `json:"balance_due"`
	DepositDueDate      *time.Time              `json:"deposit_due_date,omitempty"`
	FinalPaymentDueDate *time.Time              `json:"final_payment_due_date,omitempty"`
	TimeBlocks          []entity.EventTimeBlock `json:"time_blocks,omitempty"`
	VendorBookings      []entity.VendorBooking  `json:"vendor_bookings,omitempty"`
	BudgetBreakdown     *entity.BudgetBreakdown `json:"budget_breakdown,omitempty"`
	RequirementIDs      []string                `json:"requirement_ids,omitempty"`
	Payments            []entity.Payment        `json:"payments,omitempty"`
	Notes               []entity.Note           `json:"notes,omitempty"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

type BookingSummaryResponse struct {
	ID            string               `json:"id"`
	Reference     string               `json:"reference"`
	EventName     string               `json:"event_name"`
	StartDate     time.Time            `json:"start_date"`
	EndDate       time.Time            `json:"end_date"`
	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
}

type AvailabilityResponse struct {
	VenueID   string                   `json:"venue_id"`
	Start     time.Time                `json:"start"`
	End       time.Time                `json:"end"`
	Available bool                     `json:"available"`
	Conflicts []BookingSummaryResponse `json:"conflicts"`
}

type PaymentResponse struct {
	Payment entity.Payment   `json:"payment"`
	Booking *BookingResponse `json:"booking"`
}

type VendorBookingResponse struct {
	VendorBooking entity.VendorBooking `json:"vendor_booking"`
	Booking       *BookingResponse     `json:"booking"`
}

type TimelineResponse struct {
	BookingID string                  `json:"booking_id"`
	Blocks    []entity.EventTimeBlock `json:"blocks"`
}

type CompletionResponse struct {
	Completed []string `json:"completed"`
}
