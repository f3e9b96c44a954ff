package adaptor

import (
	"net/http"

	"event-planner/internal/dto/request"
	"event-planner/internal/usecase"
	"event-planner/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateStatus handles PATCH /api/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateStatusRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// RecordPayment handles POST /api/bookings/{id}/payments
func (h *BookingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// RecordRefund handles POST /api/bookings/{id}/refunds
func (h *BookingHandler) RecordRefund(w http.ResponseWriter, r *http.Request) {
	var req request.RecordRefundRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	refund, err := h.service.RecordRefund(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record refund")
		return
	}

	utils.ResponseCreated(w, "success", refund)
}

// AddVendor handles POST /api/bookings/{id}/vendors
func (h *BookingHandler) AddVendor(w http.ResponseWriter, r *http.Request) {
	var req request.AddVendorRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vendorBooking, err := h.service.AddVendor(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add vendor")
		return
	}

	utils.ResponseCreated(w, "success", vendorBooking)
}

// Timeline handles GET /api/bookings/{id}/timeline
func (h *BookingHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.service.Timeline(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "build timeline")
		return
	}

	utils.ResponseSuccess(w, "success", timeline)
}

// ListVenueBookings handles GET /api/venues/{venueID}/bookings
func (h *BookingHandler) ListVenueBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListVenueBookings(r.Context(), chi.URLParam(r, "venueID"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list venue bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CheckAvailability handles GET /api/venues/{venueID}/availability?start=&end=
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := utils.ParseTime(query.Get("start"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid start", map[string]string{"start": "Must be an RFC 3339 timestamp"})
		return
	}
	end, err := utils.ParseTime(query.Get("end"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid end", map[string]string{"end": "Must be an RFC 3339 timestamp"})
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), chi.URLParam(r, "venueID"), &request.AvailabilityRequest{Start: start, End: end})
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// CompleteFinished handles POST /api/admin/bookings/complete
func (h *BookingHandler) CompleteFinished(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CompleteFinishedBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "complete finished bookings")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
