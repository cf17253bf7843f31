// Package metrics provides Prometheus metrics for the sticker tracker.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sticker_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sticker_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Trade Metrics
	TradeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sticker_trade_requests_total",
			Help: "Trade request state transitions by resulting status",
		},
		[]string{"status"},
	)

	OwnershipTransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sticker_ownership_transfers_total",
			Help: "Completed ownership transfers by item type",
		},
		[]string{"item_type"},
	)

	// Inventory Metrics
	InventoryMovementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sticker_inventory_movements_total",
			Help: "Recorded inventory movements by type",
		},
		[]string{"type"},
	)

	InventoryAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sticker_inventory_available",
			Help: "Company inventory units available by item type",
		},
		[]string{"item_type"},
	)

	InventoryBelowThreshold = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sticker_inventory_below_threshold",
			Help: "Number of active inventory items at or below their restock threshold",
		},
	)

	// Rate Limiting Metrics
	RateLimitedRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sticker_rate_limited_requests_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
)
