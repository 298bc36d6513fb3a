// Package metrics defines Prometheus metrics for ebay-importer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ebayimp"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Scraping API metrics.
var (
	ScrapeCallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scrape_calls_total",
		Help:      "Total calls made to the scraping API.",
	})

	ScrapeFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scrape_failures_total",
		Help:      "Total scrape failures by error kind.",
	}, []string{"kind"})

	ScrapeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scrape_duration_seconds",
		Help:      "Duration of scraping API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ScrapeQuotaHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scrape_quota_hits_total",
		Help:      "Times the daily scraping quota blocked a call.",
	})

	ScrapeDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scrape_daily_usage",
		Help:      "Scraping API calls made in the current 24h window.",
	})
)

// Import metrics.
var (
	ImportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_total",
		Help:      "Total products imported into Shopify.",
	})

	ImportFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_failures_total",
		Help:      "Total failed import attempts.",
	})

	ImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "import_duration_seconds",
		Help:      "Duration of end-to-end imports in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Shopify API metrics.
var (
	ShopifyCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shopify_calls_total",
		Help:      "Total Shopify Admin API calls by operation.",
	}, []string{"operation"})

	ShopifyErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shopify_errors_total",
		Help:      "Total Shopify Admin API errors.",
	})
)

// Price sync metrics.
var (
	SyncCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_cycles_total",
		Help:      "Total price re-sync cycles run.",
	})

	SyncPriceUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_price_updates_total",
		Help:      "Total variant price updates pushed during re-sync.",
	})
)

// Health gauges.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the liveness probe last succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the readiness probe last succeeded.",
	})
)

// PanicsTotal counts handler panics caught by the recovery middleware.
var PanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "panics_recovered_total",
	Help:      "Total number of panics recovered in HTTP handlers.",
})
