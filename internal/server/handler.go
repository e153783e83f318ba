// Package server exposes route queries over HTTP with JSON responses.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/citysearch"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/internal/metrics"
	"github.com/katalvlaran/citysearch/internal/query"
	"github.com/katalvlaran/citysearch/search"
)

// RouteResponse is the body of GET /api/route.
type RouteResponse struct {
	Strategy   string   `json:"strategy"`
	Found      bool     `json:"found"`
	Path       []string `json:"path"`
	Hops       int      `json:"hops"`
	DistanceKm float64  `json:"distance_km"`
	Expanded   int      `json:"expanded"`
	ElapsedMs  float64  `json:"elapsed_ms"`
}

// CityResponse is one element of GET /api/cities.
type CityResponse struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Degree int     `json:"degree"`
}

// StrategyResponse is one element of GET /api/strategies.
type StrategyResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// RouteHandler answers route, city and strategy queries for one graph.
type RouteHandler struct {
	runner   *query.Runner
	fallback citysearch.Strategy
}

// NewRouteHandler serves runner's graph; fallback is used when a request
// names no strategy.
func NewRouteHandler(runner *query.Runner, fallback citysearch.Strategy) *RouteHandler {
	return &RouteHandler{runner: runner, fallback: fallback}
}

// RegisterRoutes mounts the /api endpoints on router.
func (h *RouteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/route", h.Route).Methods(http.MethodGet)
	router.HandleFunc("/api/cities", h.Cities).Methods(http.MethodGet)
	router.HandleFunc("/api/strategies", h.Strategies).Methods(http.MethodGet)
}

// Route runs ?from=&to=[&strategy=].
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	s := h.fallback
	if name := q.Get("strategy"); name != "" {
		parsed, err := citysearch.ParseStrategy(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s = parsed
	}

	rep, err := h.runner.Run(s, from, to)
	switch {
	case errors.Is(err, search.ErrUnknownCity):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		log.WithError(err).Error("route query failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	path := rep.Result.Path
	if path == nil {
		path = core.Path{}
	}
	writeJSON(w, http.StatusOK, RouteResponse{
		Strategy:   rep.Result.Strategy,
		Found:      rep.Result.Found,
		Path:       path,
		Hops:       path.Hops(),
		DistanceKm: rep.DistanceKm,
		Expanded:   rep.Result.Expanded,
		ElapsedMs:  float64(rep.Elapsed) / float64(time.Millisecond),
	})
}

// Cities lists every city with its coordinate and degree, sorted by name.
func (h *RouteHandler) Cities(w http.ResponseWriter, _ *http.Request) {
	g := h.runner.Graph
	out := make([]CityResponse, 0, g.CityCount())
	for _, name := range g.Cities() {
		c, err := g.Coordinate(name)
		if err != nil {
			continue
		}
		out = append(out, CityResponse{Name: name, Lat: c.Lat, Lon: c.Lon, Degree: g.Degree(name)})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cities": out,
		"count":  len(out),
	})
}

// Strategies lists the selectable strategies in menu order.
func (h *RouteHandler) Strategies(w http.ResponseWriter, _ *http.Request) {
	all := citysearch.Strategies()
	out := make([]StrategyResponse, len(all))
	for i, s := range all {
		out[i] = StrategyResponse{ID: int(s), Name: s.String(), Description: s.Description()}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"strategies": out,
		"default":    h.fallback.String(),
	})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("encode response")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

// instrument counts requests per route template and status code.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.code)).Inc()
	})
}
