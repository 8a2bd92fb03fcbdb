package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "umrah_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "umrah_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "umrah_bookings_created_total",
		Help: "Bookings created",
	})

	BookingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "umrah_booking_transitions_total",
		Help: "Booking status changes by from/to status",
	}, []string{"from", "to"})

	RejectedTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "umrah_rejected_transitions_total",
		Help: "Lifecycle moves refused by the state machine",
	}, []string{"resource"})

	SupportTickets = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "umrah_support_tickets_total",
		Help: "Support ticket events (created, resolved)",
	}, []string{"event"})

	ActivityLogFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "umrah_activity_log_failures_total",
		Help: "Activity log writes that failed and were dropped",
	})
)
