package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Farm metric names
const (
	MetricNameFarmsCreated             = "farms_created_total"
	MetricNameFarmEventsApplied        = "farm_events_applied_total"
	MetricNameFarmEventsRejected       = "farm_events_rejected_total"
	MetricNameReconciliationViolations = "reconciliation_violations_total"
	MetricNameFarmsSettled             = "farms_settled_total"
	MetricNameEventProcessingDuration  = "farm_event_processing_duration_seconds"
	MetricNameStateCacheLookups        = "farm_state_cache_lookups_total"
	MetricNameEventLogRowsPruned       = "event_log_rows_pruned_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextFarmsCreated             = "Total number of farms created"
	HelpTextFarmEventsApplied        = "Total number of farm events accepted and persisted"
	HelpTextFarmEventsRejected       = "Total number of farm events turned down"
	HelpTextReconciliationViolations = "Total number of events rejected for exceeding session limits, by item"
	HelpTextFarmsSettled             = "Total number of on-chain snapshots recorded"
	HelpTextEventProcessingDuration  = "Time spent applying one farm event, from load to save"
	HelpTextStateCacheLookups        = "Farm state cache lookups by result"
	HelpTextEventLogRowsPruned       = "Event log rows removed by the retention job"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelEventType = "event_type"
	LabelKind      = "kind"
	LabelItem      = "item"
	LabelResult    = "result"
)

// Rejection kinds
const (
	KindRule           = "rule"
	KindReconciliation = "reconciliation"
)

// Cache lookup results
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// unmatchedRoute labels requests no route matched, keeping path cardinality bounded
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ProcessingBuckets covers in-memory handler runs up to slow storage round trips
var ProcessingBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDecodePayloadFailed = "Event payload could not be decoded for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
