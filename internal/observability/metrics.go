package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CompetitorLookups counts price lookups by source and by whether a
	// price came back. Misses cover network failures, markup drift and
	// unparseable price text alike.
	CompetitorLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "competitor_lookups_total",
			Help: "Competitor price lookups by source and result",
		},
		[]string{"source", "result"},
	)

	CompetitorLookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "competitor_lookup_duration_seconds",
			Help:    "Time spent fetching and parsing one competitor price",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	QuotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_total",
			Help: "Computed quotes by outcome",
		},
		[]string{"outcome"},
	)
)

// Start exposes /metrics on its own port so the scrape surface stays off
// the public API listener.
func Start(port string) {
	prometheus.MustRegister(CompetitorLookups, CompetitorLookupDuration, QuotesTotal)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
