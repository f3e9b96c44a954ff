package request

import "time"

type CustomerRequest struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name" validate:"required,max=200"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
}

type TimeBlockRequest struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	IsRequired  bool      `json:"is_required"`
	Color       *string   `json:"color,omitempty"`
	Description *string   `json:"description,omitempty"`
}

type CreateBookingRequest struct {
	EventName           string             `json:"event_name" validate:"required,max=200"`
	EventType           string             `json:"event_type" validate:"required,oneof=wedding conference corporate birthday concert gala social other"`
	VenueID             string             `json:"venue_id" validate:"required"`
	Customer            CustomerRequest    `json:"customer"`
	StartDate           time.Time          `json:"start_date" validate:"required"`
	EndDate             time.Time          `json:"end_date" validate:"required,gtfield=StartDate"`
	AttendeeCount       int                `json:"attendee_count" validate:"gte=0"`
	TotalAmount         float64            `json:"total_amount" validate:"gte=0"`
	DepositAmount       float64            `json:"deposit_amount" validate:"gte=0,ltefield=TotalAmount"`
	DepositDueDate      *time.Time         `json:"deposit_due_date,omitempty"`
	FinalPaymentDueDate *time.Time         `json:"final_payment_due_date,omitempty"`
	TimeBlocks          []TimeBlockRequest `json:"time_blocks,omitempty" validate:"dive"`
	// Requirements are priced into a budget breakdown when GenerateBudget
	// is set. Their ids are kept on the booking either way.
	Requirements   []RequirementRequest `json:"requirements,omitempty" validate:"dive"`
	GenerateBudget bool                 `json:"generate_budget"`
	Notes          string               `json:"notes,omitempty" validate:"max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=inquiry pending confirmed cancelled completed"`
	Notes  string `json:"notes,omitempty" validate:"max=2000"`
}

type RecordPaymentRequest struct {
	Amount        float64    `json:"amount" validate:"gt=0"`
	Method        string     `json:"method" validate:"required,oneof=card bank_transfer cash check other"`
	IsDeposit     bool       `json:"is_deposit"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

type RecordRefundRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Method string  `json:"method" validate:"required,oneof=card bank_transfer cash check other"`
	Notes  string  `json:"notes,omitempty"`
}

type AddVendorRequest struct {
	VendorID    string     `json:"vendor_id" validate:"required"`
	PackageID   string     `json:"package_id" validate:"required"`
	ServiceDate *time.Time `json:"service_date,omitempty"`
	StartTime   string     `json:"start_time" validate:"required,hhmm"`
	EndTime     string     `json:"end_time" validate:"required,hhmm"`
	Quantity    int        `json:"quantity" validate:"gte=0"`
	Hours       float64    `json:"hours" validate:"gte=0"`
	ExcludeFees bool       `json:"exclude_fees"`
	Notes       string     `json:"notes,omitempty"`
}

type AvailabilityRequest struct {
	Start time.Time `validate:"required"`
	End   time.Time `validate:"required,gtfield=Start"`
}
