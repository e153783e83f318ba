// Package query runs one timed route search on behalf of the CLI and the HTTP
// server, applying the iterative-deepening bound and recording metrics.
package query

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/citysearch"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/metrics"
	"github.com/katalvlaran/citysearch/search"
)

// Report is a finished search with its measured length and duration.
type Report struct {
	Strategy   citysearch.Strategy
	Result     *search.Result
	DistanceKm float64
	Elapsed    time.Duration
}

// Runner executes searches against one loaded graph.
type Runner struct {
	Graph *core.Graph
	// DepthBound caps iterative deepening; negative means the city count.
	DepthBound int
}

// NewRunner returns a Runner bounding iterative deepening at depthBound, or
// at the graph's city count when depthBound is negative.
func NewRunner(g *core.Graph, depthBound int) *Runner {
	if depthBound < 0 {
		depthBound = g.CityCount()
	}

	return &Runner{Graph: g, DepthBound: depthBound}
}

// Run searches from -> to with strategy s.
func (r *Runner) Run(s citysearch.Strategy, from, to string) (*Report, error) {
	opts := []search.Option{search.WithMaxDepth(r.DepthBound)}
	if log.IsLevelEnabled(log.TraceLevel) {
		opts = append(opts, search.WithOnExpand(func(city string, hops int) {
			log.Tracef("%s expand %s at %d", s, city, hops)
		}))
	}

	began := time.Now()
	res, err := citysearch.Run(r.Graph, s, from, to, opts...)
	elapsed := time.Since(began)
	metrics.ObserveSearch(s.String(), res, err, elapsed)
	if err != nil {
		return nil, err
	}

	km, err := res.Distance(r.Graph)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"strategy": s.String(),
		"from":     from,
		"to":       to,
		"found":    res.Found,
		"expanded": res.Expanded,
		"elapsed":  elapsed,
	}).Debug("search finished")

	return &Report{Strategy: s, Result: res, DistanceKm: km, Elapsed: elapsed}, nil
}

// Compare runs every strategy in menu order and stops at the first error.
func (r *Runner) Compare(from, to string) ([]*Report, error) {
	reports := make([]*Report, 0, len(citysearch.Strategies()))
	for _, s := range citysearch.Strategies() {
		rep, err := r.Run(s, from, to)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}
