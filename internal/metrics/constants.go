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

// Storage metric names
const (
	MetricNameStorageOperationsTotal   = "storage_operations_total"
	MetricNameStorageOperationDuration = "storage_operation_duration_seconds"
)

// Planner metric names
const (
	MetricNameCacheLookups         = "planner_cache_lookups_total"
	MetricNameShoppingItemsCreated = "shopping_list_items_generated_total"
	MetricNameOptimisticRollbacks  = "planner_optimistic_rollbacks_total"
	MetricNameValidationFailures   = "validation_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Storage metric help text
const (
	HelpTextStorageOperationsTotal   = "Total number of repository operations by entity, operation and outcome"
	HelpTextStorageOperationDuration = "Repository operation latency in seconds"
)

// Planner metric help text
const (
	HelpTextCacheLookups         = "Total number of planner cache lookups by cache and result"
	HelpTextShoppingItemsCreated = "Total number of shopping list items created by list generation"
	HelpTextOptimisticRollbacks  = "Total number of optimistic cache updates rolled back after a failed write"
	HelpTextValidationFailures   = "Total number of inputs rejected by validation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelEntity    = "entity"
	LabelOperation = "operation"
	LabelCache     = "cache"
	LabelResult    = "result"
)

// Label values
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusError    = "error"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StorageLatencyBuckets covers 0.5ms to 2.5s
var StorageLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
