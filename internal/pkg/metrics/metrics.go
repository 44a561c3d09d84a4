package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	wizardTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_wizard_transitions_total",
			Help: "Booking wizard transitions by source step and outcome",
		},
		[]string{"step", "outcome"},
	)

	bookingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_booking_requests_total",
			Help: "Booking requests finished by confirmation status",
		},
		[]string{"status"},
	)

	availabilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_availability_checks_total",
			Help: "Availability checks by result",
		},
		[]string{"result"},
	)

	languageSwitches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_language_switches_total",
			Help: "Language switches by target language",
		},
		[]string{"language"},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_cache_lookups_total",
			Help: "Cache lookups by key group and result",
		},
		[]string{"group", "result"},
	)
)

// RecordHTTPRequest - учёт запроса; route - шаблон маршрута, а не сырой путь
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordWizardTransition outcome: "advanced", "blocked", "back"
func RecordWizardTransition(step int, outcome string) {
	wizardTransitions.WithLabelValues(strconv.Itoa(step), outcome).Inc()
}

func RecordBookingRequest(status string) {
	bookingRequests.WithLabelValues(status).Inc()
}

func RecordAvailabilityCheck(available bool) {
	result := "reserved"
	if available {
		result = "available"
	}
	availabilityChecks.WithLabelValues(result).Inc()
}

func RecordLanguageSwitch(language string) {
	languageSwitches.WithLabelValues(language).Inc()
}

func RecordCacheLookup(group string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(group, result).Inc()
}
