package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-planner/internal/data/entity"
	"event-planner/internal/data/repository"
	"event-planner/internal/dto/request"
	"event-planner/internal/dto/response"
	"event-planner/internal/engine/availability"
	"event-planner/internal/engine/budget"
	"event-planner/internal/engine/lifecycle"
	"event-planner/internal/engine/timeline"
	"event-planner/pkg/events"
	"event-planner/pkg/lock"
	"event-planner/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListVenueBookings(ctx context.Context, venueID string, req *request.PaginatedRequest) (*response.Page[response.BookingSummaryResponse], error)
	CheckAvailability(ctx context.Context, venueID string, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)

	// Lifecycle changes
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateStatusRequest) (*response.BookingResponse, error)
	RecordPayment(ctx context.Context, bookingID string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)
	RecordRefund(ctx context.Context, bookingID string, req *request.RecordRefundRequest) (*response.PaymentResponse, error)
	AddVendor(ctx context.Context, bookingID string, req *request.AddVendorRequest) (*response.VendorBookingResponse, error)
	Timeline(ctx context.Context, bookingID string) (*response.TimelineResponse, error)

	// CompleteFinishedBookings marks confirmed bookings whose end has passed
	// as completed.
	CompleteFinishedBookings(ctx context.Context) (*response.CompletionResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	manager   *lifecycle.Manager
	locker    lock.VenueLocker
	publisher events.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, manager *lifecycle.Manager, infra Infra, log *zap.Logger) BookingService {
	now := infra.Clock
	if now == nil {
		now = time.Now
	}
	return &bookingService{
		repo:      repo,
		manager:   manager,
		locker:    infra.Locker,
		publisher: infra.Publisher,
		metrics:   infra.Metrics,
		now:       now,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	requirements := toRequirements(req.Requirements)
	requirementIDs := make([]string, 0, len(requirements))
	for _, r := range requirements {
		requirementIDs = append(requirementIDs, r.ID)
	}

	eventType := entity.EventType(req.EventType)
	var breakdown *entity.BudgetBreakdown
	if req.GenerateBudget {
		breakdown = budget.GenerateBudgetBreakdown(eventType, req.AttendeeCount, requirements, budget.BreakdownOptions{})
	}

	input := lifecycle.NewBooking{
		EventName: req.EventName,
		EventType: eventType,
		VenueID:   req.VenueID,
		Customer: entity.Customer{
			ID:      req.Customer.ID,
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Company: req.Customer.Company,
		},
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		AttendeeCount: req.AttendeeCount,
		TotalAmount:   req.TotalAmount,
		DepositAmount: req.DepositAmount,
		Options: lifecycle.BookingOptions{
			DepositDueDate:      req.DepositDueDate,
			FinalPaymentDueDate: req.FinalPaymentDueDate,
			TimeBlocks:          toTimeBlocks(req.TimeBlocks),
			RequirementIDs:      requirementIDs,
			BudgetBreakdown:     breakdown,
			Notes:               req.Notes,
		},
	}

	// The availability check and the insert must not interleave with
	// another booking of the same venue.
	unlock, err := s.locker.Lock(ctx, req.VenueID)
	if err != nil {
		s.log.Error("Failed to lock venue", zap.Error(err), zap.String("venue_id", req.VenueID))
		return nil, fmt.Errorf("lock venue %s: %w", req.VenueID, err)
	}
	defer s.release(unlock, req.VenueID)

	existing, err := s.repo.Booking.FindActiveByVenue(ctx, req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("load venue bookings: %w", err)
	}

	if conflicts := availability.Conflicts(req.VenueID, req.StartDate, req.EndDate, values(existing)); len(conflicts) > 0 {
		s.metrics.AvailabilityConflicts.Inc()
		conflictErr := &ConflictError{VenueID: req.VenueID}
		for _, c := range conflicts {
			conflictErr.BookingIDs = append(conflictErr.BookingIDs, c.ID.String())
		}
		s.log.Info("Venue not available",
			zap.String("venue_id", req.VenueID),
			zap.Strings("conflicts", conflictErr.BookingIDs),
		)
		return nil, conflictErr
	}

	booking, err := s.manager.CreateBooking(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.metrics.BookingsCreated.WithLabelValues(string(booking.EventType)).Inc()
	s.publish(ctx, events.BookingCreated, booking, map[string]any{
		"reference":  booking.Reference,
		"start_date": booking.StartDate,
		"end_date":   booking.EndDate,
	})

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("venue_id", booking.VenueID),
	)

	return toBookingResponse(booking), nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

func (s *bookingService) ListVenueBookings(ctx context.Context, venueID string, req *request.PaginatedRequest) (*response.Page[response.BookingSummaryResponse], error) {
	bookings, err := s.repo.Booking.FindByVenue(ctx, venueID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list venue bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("count venue bookings: %w", err)
	}

	summaries := make([]response.BookingSummaryResponse, 0, len(bookings))
	for _, b := range bookings {
		summaries = append(summaries, toBookingSummary(b))
	}

	return response.NewPage(summaries, *req, total), nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, venueID string, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.Booking.FindActiveByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("load venue bookings: %w", err)
	}

	conflicts := availability.Conflicts(venueID, req.Start, req.End, values(existing))

	resp := &response.AvailabilityResponse{
		VenueID:   venueID,
		Start:     req.Start,
		End:       req.End,
		Available: len(conflicts) == 0,
		Conflicts: make([]response.BookingSummaryResponse, 0, len(conflicts)),
	}
	for i := range conflicts {
		resp.Conflicts = append(resp.Conflicts, toBookingSummary(&conflicts[i]))
	}

	return resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateStatusRequest) (*response.BookingResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var from entity.BookingStatus
	booking, err := s.mutate(ctx, bookingID, func(b *entity.Booking) (*entity.Booking, error) {
		from = b.Status
		return s.manager.UpdateBookingStatus(b, entity.BookingStatus(req.Status), req.Notes)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.StatusTransitions.WithLabelValues(string(from), string(booking.Status)).Inc()
	s.publish(ctx, events.BookingStatusChanged, booking, map[string]any{
		"from": from,
		"to":   booking.Status,
	})

	s.log.Info("Booking status changed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(booking.Status)),
	)

	return toBookingResponse(booking), nil
}

func (s *bookingService) RecordPayment(ctx context.Context, bookingID string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	opts := lifecycle.PaymentOptions{
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	}
	if req.PaidAt != nil {
		opts.PaidAt = *req.PaidAt
	}

	var payment *entity.Payment
	booking, err := s.mutate(ctx, bookingID, func(b *entity.Booking) (*entity.Booking, error) {
		next, p, err := s.manager.RecordPayment(b, req.Amount, entity.PaymentMethod(req.Method), req.IsDeposit, opts)
		payment = p
		return next, err
	})
	if err != nil {
		return nil, err
	}

	kind := "payment"
	if payment.IsDeposit {
		kind = "deposit"
	}
	s.metrics.PaymentsRecorded.WithLabelValues(kind).Inc()
	s.publish(ctx, events.BookingPaymentRecorded, booking, map[string]any{
		"payment_id":     payment.ID,
		"amount":         payment.Amount,
		"is_deposit":     payment.IsDeposit,
		"payment_status": booking.PaymentStatus,
	})

	s.log.Info("Payment recorded",
		zap.String("booking_id", booking.ID.String()),
		zap.Float64("amount", payment.Amount),
		zap.String("payment_status", string(booking.PaymentStatus)),
	)

	return &response.PaymentResponse{Payment: *payment, Booking: toBookingResponse(booking)}, nil
}

func (s *bookingService) RecordRefund(ctx context.Context, bookingID string, req *request.RecordRefundRequest) (*response.PaymentResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var refund *entity.Payment
	booking, err := s.mutate(ctx, bookingID, func(b *entity.Booking) (*entity.Booking, error) {
		next, p, err := s.manager.RecordRefund(b, req.Amount, entity.PaymentMethod(req.Method), req.Notes)
		refund = p
		return next, err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.PaymentsRecorded.WithLabelValues("refund").Inc()
	s.publish(ctx, events.BookingRefunded, booking, map[string]any{
		"payment_id": refund.ID,
		"amount":     refund.Amount,
	})

	s.log.Info("Refund recorded",
		zap.String("booking_id", booking.ID.String()),
		zap.Float64("amount", refund.Amount),
	)

	return &response.PaymentResponse{Payment: *refund, Booking: toBookingResponse(booking)}, nil
}

func (s *bookingService) AddVendor(ctx context.Context, bookingID string, req *request.AddVendorRequest) (*response.VendorBookingResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	vendor, err := s.repo.Vendor.FindByID(ctx, req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("load vendor: %w", err)
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor %s: %w", req.VendorID, ErrVendorNotFound)
	}

	opts := lifecycle.VendorOptions{
		Quantity:    req.Quantity,
		Hours:       req.Hours,
		ServiceDate: req.ServiceDate,
		ExcludeFees: req.ExcludeFees,
		Notes:       req.Notes,
	}

	var vendorBooking *entity.VendorBooking
	booking, err := s.mutate(ctx, bookingID, func(b *entity.Booking) (*entity.Booking, error) {
		next, vb, err := s.manager.AddVendorBooking(b, vendor, req.PackageID, req.StartTime, req.EndTime, opts)
		vendorBooking = vb
		return next, err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.VendorsAttached.Inc()
	s.publish(ctx, events.BookingVendorAdded, booking, map[string]any{
		"vendor_id":    vendorBooking.VendorID,
		"package_id":   vendorBooking.PackageID,
		"total_amount": vendorBooking.TotalAmount,
	})

	s.log.Info("Vendor added to booking",
		zap.String("booking_id", booking.ID.String()),
		zap.String("vendor_id", vendor.ID),
		zap.String("package_id", req.PackageID),
	)

	return &response.VendorBookingResponse{VendorBooking: *vendorBooking, Booking: toBookingResponse(booking)}, nil
}

func (s *bookingService) Timeline(ctx context.Context, bookingID string) (*response.TimelineResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return &response.TimelineResponse{
		BookingID: booking.ID.String(),
		Blocks:    timeline.SortByStart(timeline.Generate(booking)),
	}, nil
}

func (s *bookingService) CompleteFinishedBookings(ctx context.Context) (*response.CompletionResponse, error) {
	confirmed, err := s.repo.Booking.FindByStatus(ctx, entity.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("load confirmed bookings: %w", err)
	}

	now := s.now()
	resp := &response.CompletionResponse{Completed: []string{}}
	var errs []error

	for _, candidate := range confirmed {
		if candidate.EndDate.After(now) {
			continue
		}

		booking, err := s.mutate(ctx, candidate.ID.String(), func(b *entity.Booking) (*entity.Booking, error) {
			return s.manager.UpdateBookingStatus(b, entity.BookingStatusCompleted, "Completed after the event ended")
		})
		if err != nil {
			s.log.Warn("Failed to complete booking",
				zap.Error(err),
				zap.String("booking_id", candidate.ID.String()),
			)
			errs = append(errs, err)
			continue
		}

		s.metrics.StatusTransitions.WithLabelValues(string(entity.BookingStatusConfirmed), string(entity.BookingStatusCompleted)).Inc()
		s.publish(ctx, events.BookingStatusChanged, booking, map[string]any{
			"from": entity.BookingStatusConfirmed,
			"to":   entity.BookingStatusCompleted,
		})
		resp.Completed = append(resp.Completed, booking.ID.String())
	}

	if len(resp.Completed) > 0 {
		s.log.Info("Finished bookings completed", zap.Int("count", len(resp.Completed)))
	}

	return resp, errors.Join(errs...)
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}

	return booking, nil
}

// mutate applies change to the stored booking under its venue lock and
// saves the result.
func (s *bookingService) mutate(ctx context.Context, bookingID string, change func(*entity.Booking) (*entity.Booking, error)) (*entity.Booking, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, booking.VenueID)
	if err != nil {
		return nil, fmt.Errorf("lock venue %s: %w", booking.VenueID, err)
	}
	defer s.release(unlock, booking.VenueID)

	// reload, another writer may have changed it before we got the lock
	booking, err = s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	next, err := change(booking)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.Update(ctx, next); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	return next, nil
}

func (s *bookingService) release(unlock lock.Unlock, venueID string) {
	if err := unlock(); err != nil {
		s.log.Warn("Failed to release venue lock", zap.Error(err), zap.String("venue_id", venueID))
	}
}

// publish does not fail the operation, the booking is already saved.
func (s *bookingService) publish(ctx context.Context, eventType string, booking *entity.Booking, data map[string]any) {
	event := events.Event{
		Type:       eventType,
		BookingID:  booking.ID.String(),
		VenueID:    booking.VenueID,
		OccurredAt: s.now(),
		Data:       data,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("type", eventType),
			zap.String("booking_id", event.BookingID),
		)
	}
}

func values(bookings []*entity.Booking) []entity.Booking {
	out := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *b)
	}
	return out
}
