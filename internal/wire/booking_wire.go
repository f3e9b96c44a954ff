package wire

import (
	"event-planner/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Patch("/{id}/status", bookingHandler.UpdateStatus)
		r.Post("/{id}/payments", bookingHandler.RecordPayment)
		r.Post("/{id}/refunds", bookingHandler.RecordRefund)
		r.Post("/{id}/vendors", bookingHandler.AddVendor)
		r.Get("/{id}/timeline", bookingHandler.Timeline)
	})

	r.Route("/api/venues/{venueID}", func(r chi.Router) {
		r.Get("/bookings", bookingHandler.ListVenueBookings)
		r.Get("/availability", bookingHandler.CheckAvailability)
	})

	// runs the same job as the scheduler, on demand
	r.Post("/api/admin/bookings/complete", bookingHandler.CompleteFinished)
}
