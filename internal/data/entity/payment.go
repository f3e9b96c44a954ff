package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusDepositPaid   PaymentStatus = "deposit_paid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusRefunded      PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodOther        PaymentMethod = "other"
)

// Payment is an immutable record of one money transfer against a booking.
type Payment struct {
	BaseSimple
	BookingID     uuid.UUID     `json:"booking_id"`
	Amount        float64       `json:"amount"`
	Method        PaymentMethod `json:"method"`
	IsDeposit     bool          `json:"is_deposit"`
	IsRefund      bool          `json:"is_refund,omitempty"`
	TransactionID *string       `json:"transaction_id,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	PaidAt        time.Time     `json:"paid_at"`
}
