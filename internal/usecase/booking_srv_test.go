package usecase

import (
	"context"
	"sync"
	"testing"

	"event-planner/internal/data/entity"
	"event-planner/internal/dto/request"
	"event-planner/internal/engine/lifecycle"
	"event-planner/internal/engine/pricing"
	"event-planner/pkg/events"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.svc.Booking.CreateBooking(context.Background(), createRequest("hall-a", 18, 23))
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusInquiry, resp.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, resp.PaymentStatus)
	assert.Equal(t, 1000.0, resp.BalanceDue)
	assert.NotEmpty(t, resp.Customer.ID)
	assert.ElementsMatch(t,
		[]entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusCancelled},
		resp.NextStatuses)

	assert.Equal(t, []string{events.BookingCreated}, env.publisher.types())
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.BookingsCreated.WithLabelValues("gala")))
}

func TestCreateBooking_Validation(t *testing.T) {
	env := newTestEnv(t)

	req := createRequest("hall-a", 18, 23)
	req.EndDate = req.StartDate
	req.Customer.Email = "not-an-email"

	_, err := env.svc.Booking.CreateBooking(context.Background(), req)
	require.ErrorIs(t, err, lifecycle.ErrValidation)

	var verr *lifecycle.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "EndDate")
	assert.Contains(t, verr.Fields, "Email")
	assert.Empty(t, env.publisher.types())
}

func TestCreateBooking_VenueConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.mustCreate(t, "hall-a", 10, 14)

	_, err := env.svc.Booking.CreateBooking(ctx, createRequest("hall-a", 12, 16))
	require.ErrorIs(t, err, ErrVenueUnavailable)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{first}, conflict.BookingIDs)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.AvailabilityConflicts))

	// back to back and other venues are fine
	env.mustCreate(t, "hall-a", 14, 18)
	env.mustCreate(t, "hall-b", 12, 16)

	// a cancelled booking frees its slot
	_, err = env.svc.Booking.UpdateStatus(ctx, first, &request.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	env.mustCreate(t, "hall-a", 12, 14)
}

func TestCreateBooking_ConcurrentRequestsForOneSlot(t *testing.T) {
	env := newTestEnv(t)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.svc.Booking.CreateBooking(context.Background(), createRequest("hall-a", 18, 23)); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestCreateBooking_GeneratesBudget(t *testing.T) {
	env := newTestEnv(t)

	cost := 2000.0
	req := createRequest("hall-a", 18, 23)
	req.GenerateBudget = true
	req.Requirements = []request.RequirementRequest{
		{ID: "req-1", Title: "Dinner", Category: "catering", Priority: "critical", EstimatedCost: &cost},
	}

	resp, err := env.svc.Booking.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.BudgetBreakdown)
	assert.Equal(t, []string{"req-1"}, resp.RequirementIDs)
	require.Len(t, resp.BudgetBreakdown.Categories[entity.CategoryCatering].Items, 1)
}

func TestCreateBooking_PublishFailureDoesNotFail(t *testing.T) {
	env := newTestEnv(t)
	env.publisher.err = errBroker

	_, err := env.svc.Booking.CreateBooking(context.Background(), createRequest("hall-a", 18, 23))
	assert.NoError(t, err)
}

func TestGetBooking_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Booking.GetBooking(context.Background(), "8d4f3c4e-8b39-4a4b-9d0e-1a2b3c4d5e6f")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = env.svc.Booking.GetBooking(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustCreate(t, "hall-a", 18, 23)

	resp, err := env.svc.Booking.UpdateStatus(ctx, id, &request.UpdateStatusRequest{Status: "confirmed", Notes: "contract signed"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "contract signed", resp.Notes[0].Text)

	_, err = env.svc.Booking.UpdateStatus(ctx, id, &request.UpdateStatusRequest{Status: "inquiry"})
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)

	_, err = env.svc.Booking.UpdateStatus(ctx, id, &request.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, lifecycle.ErrValidation)

	stored, err := env.svc.Booking.GetBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, stored.Status)

	assert.Equal(t, []string{events.BookingCreated, events.BookingStatusChanged}, env.publisher.types())
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.StatusTransitions.WithLabelValues("inquiry", "confirmed")))
}

func TestRecordPayment_TwoHalves(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustCreate(t, "hall-a", 18, 23)

	resp, err := env.svc.Booking.RecordPayment(ctx, id, &request.RecordPaymentRequest{Amount: 500, Method: "card", IsDeposit: true})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusDepositPaid, resp.Booking.PaymentStatus)
	assert.True(t, resp.Payment.IsDeposit)

	resp, err = env.svc.Booking.RecordPayment(ctx, id, &request.RecordPaymentRequest{Amount: 500, Method: "bank_transfer"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, resp.Booking.PaymentStatus)
	assert.Equal(t, 1000.0, resp.Booking.PaidToDate)
	assert.Zero(t, resp.Booking.BalanceDue)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.PaymentsRecorded.WithLabelValues("deposit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.PaymentsRecorded.WithLabelValues("payment")))
}

func TestRecordRefund(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustCreate(t, "hall-a", 18, 23)

	_, err := env.svc.Booking.RecordPayment(ctx, id, &request.RecordPaymentRequest{Amount: 1000, Method: "card"})
	require.NoError(t, err)

	_, err = env.svc.Booking.RecordRefund(ctx, id, &request.RecordRefundRequest{Amount: 2000, Method: "card"})
	assert.ErrorIs(t, err, lifecycle.ErrValidation)

	resp, err := env.svc.Booking.RecordRefund(ctx, id, &request.RecordRefundRequest{Amount: 250, Method: "card"})
	require.NoError(t, err)
	assert.True(t, resp.Payment.IsRefund)
	assert.Equal(t, entity.PaymentStatusPartiallyPaid, resp.Booking.PaymentStatus)
	assert.Equal(t, 750.0, resp.Booking.PaidToDate)
	assert.Contains(t, env.publisher.types(), events.BookingRefunded)

	resp, err = env.svc.Booking.RecordRefund(ctx, id, &request.RecordRefundRequest{Amount: 750, Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, resp.Booking.PaymentStatus)
	assert.Zero(t, resp.Booking.PaidToDate)
}

func TestAddVendor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedVendor(t, env.repo)
	id := env.mustCreate(t, "hall-a", 18, 23)

	req := &request.AddVendorRequest{VendorID: "vendor-1", PackageID: "buffet", StartTime: "17:00", EndTime: "23:00", Quantity: 50}
	resp, err := env.svc.Booking.AddVendor(ctx, id, req)
	require.NoError(t, err)
	assert.Equal(t, 550.0, resp.VendorBooking.TotalAmount)
	assert.Equal(t, 1550.0, resp.Booking.TotalAmount)
	require.Len(t, resp.Booking.VendorBookings, 1)

	_, err = env.svc.Booking.AddVendor(ctx, id, &request.AddVendorRequest{VendorID: "vendor-9", PackageID: "buffet", StartTime: "17:00", EndTime: "23:00"})
	assert.ErrorIs(t, err, ErrVendorNotFound)

	_, err = env.svc.Booking.AddVendor(ctx, id, &request.AddVendorRequest{VendorID: "vendor-1", PackageID: "fireworks", StartTime: "17:00", EndTime: "23:00"})
	assert.ErrorIs(t, err, pricing.ErrPackageNotFound)

	_, err = env.svc.Booking.AddVendor(ctx, id, &request.AddVendorRequest{VendorID: "vendor-1", PackageID: "buffet", StartTime: "5pm", EndTime: "23:00"})
	assert.ErrorIs(t, err, lifecycle.ErrValidation)
}

func TestTimeline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedVendor(t, env.repo)
	id := env.mustCreate(t, "hall-a", 18, 23)

	_, err := env.svc.Booking.AddVendor(ctx, id, &request.AddVendorRequest{VendorID: "vendor-1", PackageID: "buffet", StartTime: "19:00", EndTime: "21:00"})
	require.NoError(t, err)

	resp, err := env.svc.Booking.Timeline(ctx, id)
	require.NoError(t, err)

	ids := make([]string, 0, len(resp.Blocks))
	for _, b := range resp.Blocks {
		ids = append(ids, b.ID)
	}
	assert.Contains(t, ids, "event-start")
	assert.Contains(t, ids, "event-end")
	for i := 1; i < len(resp.Blocks); i++ {
		assert.False(t, resp.Blocks[i].StartTime.Before(resp.Blocks[i-1].StartTime))
	}
}

func TestListVenueBookingsAndAvailability(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	first := env.mustCreate(t, "hall-a", 8, 10)
	env.mustCreate(t, "hall-a", 12, 14)
	env.mustCreate(t, "hall-a", 16, 18)

	page, err := env.svc.Booking.ListVenueBookings(ctx, "hall-a", &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, first, page.Items[0].ID)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Equal(t, 2, page.Meta.TotalPages)

	avail, err := env.svc.Booking.CheckAvailability(ctx, "hall-a", &request.AvailabilityRequest{Start: eventDay(9), End: eventDay(13)})
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Len(t, avail.Conflicts, 2)

	avail, err = env.svc.Booking.CheckAvailability(ctx, "hall-a", &request.AvailabilityRequest{Start: eventDay(10), End: eventDay(12)})
	require.NoError(t, err)
	assert.True(t, avail.Available)
	assert.Empty(t, avail.Conflicts)

	_, err = env.svc.Booking.CheckAvailability(ctx, "hall-a", &request.AvailabilityRequest{Start: eventDay(12), End: eventDay(10)})
	assert.ErrorIs(t, err, lifecycle.ErrValidation)
}

func TestCompleteFinishedBookings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	finished := env.mustCreate(t, "hall-a", 8, 10)
	upcoming := env.mustCreate(t, "hall-a", 20, 23)
	inquiry := env.mustCreate(t, "hall-b", 8, 10)
	for _, id := range []string{finished, upcoming} {
		_, err := env.svc.Booking.UpdateStatus(ctx, id, &request.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
	}

	env.now = eventDay(12)
	resp, err := env.svc.Booking.CompleteFinishedBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{finished}, resp.Completed)

	for id, want := range map[string]entity.BookingStatus{
		finished: entity.BookingStatusCompleted,
		upcoming: entity.BookingStatusConfirmed,
		inquiry:  entity.BookingStatusInquiry,
	} {
		got, err := env.svc.Booking.GetBooking(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status, id)
	}
}
