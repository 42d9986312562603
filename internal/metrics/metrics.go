package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicketsIssued counts successfully issued darshan passes.
	TicketsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pilgrimpal_tickets_issued_total",
		Help: "Total number of darshan passes issued",
	})

	// BookingRejections counts validation failures by failing field.
	BookingRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pilgrimpal_booking_rejections_total",
		Help: "Total number of rejected booking requests by field",
	}, []string{"field"})

	// Donations counts simulated gateway charges by outcome.
	Donations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pilgrimpal_donations_total",
		Help: "Total number of donation charges by status",
	}, []string{"status"})

	// SessionsStarted counts started sessions by resolved auth state.
	SessionsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pilgrimpal_sessions_started_total",
		Help: "Total number of sessions started by resolved auth status",
	}, []string{"auth_status"})

	// RequestDuration observes HTTP handler latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pilgrimpal_http_request_duration_seconds",
		Help:    "HTTP request latency by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// EventsConsumed counts domain events handled by the consumers binary.
	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pilgrimpal_events_consumed_total",
		Help: "Total number of domain events consumed by subject",
	}, []string{"subject"})
)
