package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Farm Metrics
var (
	FarmsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFarmsCreated,
			Help: HelpTextFarmsCreated,
		},
	)

	FarmEventsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFarmEventsApplied,
			Help: HelpTextFarmEventsApplied,
		},
		[]string{LabelEventType},
	)

	FarmEventsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFarmEventsRejected,
			Help: HelpTextFarmEventsRejected,
		},
		[]string{LabelEventType, LabelKind},
	)

	ReconciliationViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReconciliationViolations,
			Help: HelpTextReconciliationViolations,
		},
		[]string{LabelItem},
	)

	FarmsSettled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFarmsSettled,
			Help: HelpTextFarmsSettled,
		},
	)

	EventProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameEventProcessingDuration,
			Help:    HelpTextEventProcessingDuration,
			Buckets: ProcessingBuckets,
		},
		[]string{LabelEventType},
	)

	StateCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStateCacheLookups,
			Help: HelpTextStateCacheLookups,
		},
		[]string{LabelResult},
	)

	EventLogRowsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEventLogRowsPruned,
			Help: HelpTextEventLogRowsPruned,
		},
	)
)
