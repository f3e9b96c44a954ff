package lifecycle

import (
	"fmt"
	"time"

	"event-planner/internal/data/entity"
	"event-planner/pkg/utils"
)

// tolerance for float money comparisons
const epsilon = 1e-9

type PaymentOptions struct {
	TransactionID *string
	Notes         string
	PaidAt        time.Time
}

type paymentInput struct {
	Amount float64              `validate:"gt=0"`
	Method entity.PaymentMethod `validate:"required,oneof=card bank_transfer cash check other"`
}

// RecordPayment appends a payment to the booking ledger and derives the
// payment status from the amount paid to date:
//
//   - paid to date covers the total: paid
//   - it covers the deposit: deposit_paid when this payment is a deposit,
//     partially_paid otherwise
//   - otherwise the status is unchanged
func (m *Manager) RecordPayment(booking *entity.Booking, amount float64, method entity.PaymentMethod, isDeposit bool, opts PaymentOptions) (*entity.Booking, *entity.Payment, error) {
	if err := validate(paymentInput{Amount: amount, Method: method}); err != nil {
		return nil, nil, err
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, nil, fmt.Errorf("record payment on booking %s: %w", booking.ID, ErrBookingClosed)
	}

	payment := m.newPayment(booking, amount, method, opts)
	payment.IsDeposit = isDeposit

	next := clone(booking)
	next.Payments = append(next.Payments, payment)
	next.PaymentStatus = derivePaymentStatus(PaidToDate(next), next.TotalAmount, next.DepositAmount, isDeposit, booking.PaymentStatus)
	next.UpdatedAt = payment.CreatedAt

	return next, &payment, nil
}

// RecordRefund returns money to the customer. The booking is marked refunded
// once nothing is held any more; otherwise the status follows the ledger.
func (m *Manager) RecordRefund(booking *entity.Booking, amount float64, method entity.PaymentMethod, notes string) (*entity.Booking, *entity.Payment, error) {
	if err := validate(paymentInput{Amount: amount, Method: method}); err != nil {
		return nil, nil, err
	}
	if amount > PaidToDate(booking)+epsilon {
		return nil, nil, fieldError("Amount", "Must not exceed the amount paid")
	}

	refund := m.newPayment(booking, amount, method, PaymentOptions{Notes: notes})
	refund.IsRefund = true

	next := clone(booking)
	next.Payments = append(next.Payments, refund)
	if paid := PaidToDate(next); paid <= epsilon {
		next.PaymentStatus = entity.PaymentStatusRefunded
	} else {
		next.PaymentStatus = derivePaymentStatus(paid, next.TotalAmount, next.DepositAmount,
			booking.PaymentStatus == entity.PaymentStatusDepositPaid, booking.PaymentStatus)
	}
	next.UpdatedAt = refund.CreatedAt

	return next, &refund, nil
}

func (m *Manager) newPayment(booking *entity.Booking, amount float64, method entity.PaymentMethod, opts PaymentOptions) entity.Payment {
	now := m.now()
	paidAt := opts.PaidAt
	if paidAt.IsZero() {
		paidAt = now
	}
	return entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		BookingID:     booking.ID,
		Amount:        amount,
		Method:        method,
		TransactionID: opts.TransactionID,
		Notes:         opts.Notes,
		PaidAt:        paidAt,
	}
}

// PaidToDate sums the ledger, refunds counted negative.
func PaidToDate(booking *entity.Booking) float64 {
	var paid float64
	for _, p := range booking.Payments {
		if p.IsRefund {
			paid -= p.Amount
			continue
		}
		paid += p.Amount
	}
	return paid
}

// BalanceDue is what is left to pay, never negative.
func BalanceDue(booking *entity.Booking) float64 {
	due := booking.TotalAmount - PaidToDate(booking)
	if due < 0 {
		return 0
	}
	return due
}

// derivePaymentStatus maps the ledger sum onto a status. Below the deposit
// an unpaid booking stays unpaid; any other booking still holding money is
// partially paid.
func derivePaymentStatus(paid, total, deposit float64, isDeposit bool, current entity.PaymentStatus) entity.PaymentStatus {
	switch {
	case paid <= epsilon:
		if current == entity.PaymentStatusUnpaid || current == entity.PaymentStatusRefunded {
			return current
		}
		return entity.PaymentStatusUnpaid
	case paid >= total-epsilon:
		return entity.PaymentStatusPaid
	case paid >= deposit-epsilon:
		if isDeposit {
			return entity.PaymentStatusDepositPaid
		}
		return entity.PaymentStatusPartiallyPaid
	case current == entity.PaymentStatusUnpaid:
		return current
	default:
		return entity.PaymentStatusPartiallyPaid
	}
}
