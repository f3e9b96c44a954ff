package lifecycle

import (
	"errors"
	"testing"
	"time"

	"event-planner/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestManager() *Manager {
	return NewManager(WithClock(func() time.Time { return fixedNow }))
}

func validNewBooking() NewBooking {
	return NewBooking{
		EventName:     "Spring Gala",
		EventType:     entity.EventTypeGala,
		VenueID:       "venue-1",
		Customer:      entity.Customer{Name: "Dana Reyes", Email: "dana@example.com"},
		StartDate:     time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 5, 10, 23, 0, 0, 0, time.UTC),
		AttendeeCount: 120,
		TotalAmount:   1000,
		DepositAmount: 500,
	}
}

func mustCreate(t *testing.T, m *Manager) *entity.Booking {
	t.Helper()
	b, err := m.CreateBooking(validNewBooking())
	require.NoError(t, err)
	return b
}

func TestCreateBooking(t *testing.T) {
	m := newTestManager()

	b, err := m.CreateBooking(validNewBooking())
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusInquiry, b.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, b.PaymentStatus)
	assert.NotEmpty(t, b.Customer.ID)
	assert.Equal(t, "EVT-20260301-093000", b.Reference[:19])
	assert.Equal(t, fixedNow, b.CreatedAt)
	assert.Equal(t, 1000.0, b.TotalAmount)
	assert.Empty(t, b.Payments)
}

func TestCreateBooking_KeepsCustomerID(t *testing.T) {
	in := validNewBooking()
	in.Customer.ID = "cust-42"

	b, err := newTestManager().CreateBooking(in)
	require.NoError(t, err)
	assert.Equal(t, "cust-42", b.Customer.ID)
}

func TestCreateBooking_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewBooking)
		field  string
	}{
		{"end before start", func(in *NewBooking) { in.EndDate = in.StartDate.Add(-time.Hour) }, "EndDate"},
		{"end equals start", func(in *NewBooking) { in.EndDate = in.StartDate }, "EndDate"},
		{"deposit above total", func(in *NewBooking) { in.DepositAmount = 1500 }, "DepositAmount"},
		{"negative total", func(in *NewBooking) { in.TotalAmount = -1; in.DepositAmount = -2 }, "TotalAmount"},
		{"negative attendees", func(in *NewBooking) { in.AttendeeCount = -1 }, "AttendeeCount"},
		{"missing venue", func(in *NewBooking) { in.VenueID = "" }, "VenueID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validNewBooking()
			tt.mutate(&in)

			b, err := newTestManager().CreateBooking(in)
			require.Error(t, err)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	m := newTestManager()
	b := mustCreate(t, m)

	confirmed, err := m.UpdateBookingStatus(b, entity.BookingStatusConfirmed, "")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)
	require.Len(t, confirmed.Notes, 1)
	assert.Equal(t, "Status changed from inquiry to confirmed", confirmed.Notes[0].Text)

	// input untouched
	assert.Equal(t, entity.BookingStatusInquiry, b.Status)
	assert.Empty(t, b.Notes)

	completed, err := m.UpdateBookingStatus(confirmed, entity.BookingStatusCompleted, "wrapped up")
	require.NoError(t, err)
	assert.Equal(t, "wrapped up", completed.Notes[1].Text)
}

func TestUpdateBookingStatus_Rejected(t *testing.T) {
	m := newTestManager()
	b := mustCreate(t, m)

	_, err := m.UpdateBookingStatus(b, entity.BookingStatusCompleted, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	cancelled, err := m.UpdateBookingStatus(b, entity.BookingStatusCancelled, "")
	require.NoError(t, err)
	for _, to := range []entity.BookingStatus{entity.BookingStatusInquiry, entity.BookingStatusPending, entity.BookingStatusConfirmed} {
		_, err := m.UpdateBookingStatus(cancelled, to, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}

	_, err = m.UpdateBookingStatus(b, entity.BookingStatus("archived"), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]entity.BookingStatus{entity.BookingStatusCompleted, entity.BookingStatusCancelled},
		AllowedTransitions(entity.BookingStatusConfirmed))
	assert.Empty(t, AllowedTransitions(entity.BookingStatusCompleted))
	assert.True(t, CanTransition(entity.BookingStatusPending, entity.BookingStatusConfirmed))
	assert.False(t, CanTransition(entity.BookingStatusPending, entity.BookingStatusInquiry))
}

func TestCheckVenueAvailability(t *testing.T) {
	m := newTestManager()
	b := mustCreate(t, m)
	existing := []entity.Booking{*b}

	assert.False(t, m.CheckVenueAvailability("venue-1", b.StartDate.Add(time.Hour), b.EndDate.Add(time.Hour), existing))
	assert.True(t, m.CheckVenueAvailability("venue-1", b.EndDate, b.EndDate.Add(time.Hour), existing))
	assert.True(t, m.CheckVenueAvailability("venue-2", b.StartDate, b.EndDate, existing))
}
