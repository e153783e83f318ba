// Package metrics exposes Prometheus collectors for route searches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/citysearch/search"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound = "found"
	OutcomeNone  = "none"
	OutcomeError = "error"
)

var (
	SearchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "citysearch_searches_total",
		Help: "Total route searches by strategy and outcome",
	}, []string{"strategy", "outcome"})
	SearchDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "citysearch_search_duration_ms",
		Help:    "Route search duration in milliseconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500},
	}, []string{"strategy"})
	ExpandedCities = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "citysearch_expanded_cities",
		Help:    "Cities marked visited per search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"strategy"})
	RouteHops = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "citysearch_route_hops",
		Help:    "Edges in found routes",
		Buckets: prometheus.LinearBuckets(0, 2, 10),
	}, []string{"strategy"})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "citysearch_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})
)

func init() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDurationMs)
	prometheus.MustRegister(ExpandedCities)
	prometheus.MustRegister(RouteHops)
	prometheus.MustRegister(HTTPRequestsTotal)
}

// ObserveSearch records one finished search. res may be nil when err is set.
func ObserveSearch(strategy string, res *search.Result, err error, elapsed time.Duration) {
	SearchDurationMs.WithLabelValues(strategy).Observe(float64(elapsed) / float64(time.Millisecond))

	switch {
	case err != nil:
		SearchesTotal.WithLabelValues(strategy, OutcomeError).Inc()
		return
	case res.Found:
		SearchesTotal.WithLabelValues(strategy, OutcomeFound).Inc()
		RouteHops.WithLabelValues(strategy).Observe(float64(res.Path.Hops()))
	default:
		SearchesTotal.WithLabelValues(strategy, OutcomeNone).Inc()
	}
	ExpandedCities.WithLabelValues(strategy).Observe(float64(res.Expanded))
}

// Handler serves every registered collector for scraping.
func Handler() http.Handler { return promhttp.Handler() }
