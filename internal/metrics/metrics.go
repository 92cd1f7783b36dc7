package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clothly",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "clothly",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	catalogItems = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "clothly",
			Name:      "catalog_items",
			Help:      "Items returned by the last listing of a collection.",
		},
		[]string{"collection"},
	)
)

// Register registers the Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, catalogItems)
	})
}

// ObserveHTTP records one served request.
func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// SetCatalogItems records the size of a collection listing.
func SetCatalogItems(collection string, n int) {
	catalogItems.WithLabelValues(collection).Set(float64(n))
}
