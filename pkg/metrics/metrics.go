package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the booking and budget engine.
type Metrics struct {
	BookingsCreated       *prometheus.CounterVec
	AvailabilityConflicts prometheus.Counter
	StatusTransitions     *prometheus.CounterVec
	PaymentsRecorded      *prometheus.CounterVec
	VendorsAttached       prometheus.Counter
	BudgetEstimates       *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer to
// expose them through promhttp.Handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "event_planner_bookings_created_total",
			Help: "Total number of bookings created by event type",
		}, []string{"event_type"}),

		AvailabilityConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "event_planner_availability_conflicts_total",
			Help: "Total number of booking attempts rejected because the venue was taken",
		}),

		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "event_planner_status_transitions_total",
			Help: "Total number of booking status transitions",
		}, []string{"from", "to"}),

		PaymentsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "event_planner_payments_recorded_total",
			Help: "Total number of payments recorded by kind",
		}, []string{"kind"}),

		VendorsAttached: factory.NewCounter(prometheus.CounterOpts{
			Name: "event_planner_vendor_bookings_total",
			Help: "Total number of vendor packages attached to bookings",
		}),

		BudgetEstimates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "event_planner_budget_estimates_total",
			Help: "Total number of budget estimates by strategy",
		}, []string{"strategy"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "event_planner_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}
