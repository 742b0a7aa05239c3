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

// Storage Metrics
var (
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageOperationsTotal,
			Help: HelpTextStorageOperationsTotal,
		},
		[]string{LabelEntity, LabelOperation, LabelStatus},
	)

	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameStorageOperationDuration,
			Help:    HelpTextStorageOperationDuration,
			Buckets: StorageLatencyBuckets,
		},
		[]string{LabelEntity, LabelOperation},
	)
)

// Planner Metrics
var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelCache, LabelResult},
	)

	ShoppingItemsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShoppingItemsCreated,
			Help: HelpTextShoppingItemsCreated,
		},
	)

	OptimisticRollbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOptimisticRollbacks,
			Help: HelpTextOptimisticRollbacks,
		},
		[]string{LabelEntity},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValidationFailures,
			Help: HelpTextValidationFailures,
		},
		[]string{LabelEntity},
	)
)
