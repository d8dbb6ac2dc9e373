package prometheus

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"inventory-service/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Item catalog metrics
	ItemOperationsCounter prometheus.CounterVec

	// Movement metrics
	MovementOperationsCounter prometheus.CounterVec

	// Stock level metrics
	ItemStockGauge prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Item catalog metrics
	ItemOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_item_operations_total",
			Help: "Total number of item catalog operations",
		},
		[]string{"operation"},
	)

	// Movement metrics
	MovementOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_movement_operations_total",
			Help: "Total number of stock movement operations",
		},
		[]string{"kind", "outcome"},
	)

	// Stock level metrics
	ItemStockGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_item_stock",
			Help: "Current quantity on hand per item",
		},
		[]string{"item_id", "name", "location"},
	)
}

// RecordItemOperation increments the counter for item catalog operations
func RecordItemOperation(operation string) {
	ItemOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordMovementOperation increments the counter for movement operations
func RecordMovementOperation(kind string, outcome string) {
	MovementOperationsCounter.WithLabelValues(kind, outcome).Inc()
}

// UpdateItemStock updates the gauge for an item's quantity on hand
func UpdateItemStock(itemID int, name string, location string, quantity int) {
	ItemStockGauge.WithLabelValues(strconv.Itoa(itemID), name, location).Set(float64(quantity))
}
