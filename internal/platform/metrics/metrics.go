// Package metrics exposes Prometheus instrumentation for the rate cache and
// conversion pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RateFetchTotal counts upstream rate fetches by source and outcome
	// ("success" or "error").
	RateFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fleet_billing",
		Name:      "rate_fetch_total",
		Help:      "Upstream exchange-rate fetches by source and outcome.",
	}, []string{"source", "outcome"})

	// RateCacheReads counts rate cache reads by source and result
	// ("fresh", "stale" or "miss").
	RateCacheReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fleet_billing",
		Name:      "rate_cache_reads_total",
		Help:      "Rate cache reads by source and result.",
	}, []string{"source", "result"})
)

// Handler returns the HTTP handler serving the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
