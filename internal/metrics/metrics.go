package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "globalconnector_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "globalconnector_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "globalconnector_bookings_created_total",
			Help: "Total number of bookings created",
		},
		[]string{"pricing_model"},
	)

	BookingConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "globalconnector_booking_conflicts_total",
			Help: "Total number of booking conflicts detected",
		},
		[]string{"forced"},
	)

	PaymentsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "globalconnector_payments_created_total",
			Help: "Total number of payments created",
		},
		[]string{"method", "kind"},
	)

	SettlementChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "globalconnector_settlement_checks_total",
			Help: "Total number of settlement verification attempts",
		},
		[]string{"result"},
	)

	PaymentsSucceededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "globalconnector_payments_succeeded_total",
			Help: "Total number of payments confirmed on the settlement rail",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated(pricingModel string) {
	BookingsCreatedTotal.WithLabelValues(pricingModel).Inc()
}

func RecordBookingConflict(forced bool) {
	label := "false"
	if forced {
		label = "true"
	}
	BookingConflictsTotal.WithLabelValues(label).Inc()
}

func RecordPaymentCreated(method, kind string) {
	PaymentsCreatedTotal.WithLabelValues(method, kind).Inc()
}

func RecordSettlementCheck(result string) {
	SettlementChecksTotal.WithLabelValues(result).Inc()
}

func RecordPaymentSucceeded() {
	PaymentsSucceededTotal.Inc()
}
