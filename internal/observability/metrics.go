package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advent",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "route", "puzzle", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advent",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "puzzle", "status"},
	)
	solves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advent",
			Subsystem: "solver",
			Name:      "solves_total",
			Help:      "Puzzle part solves by outcome.",
		},
		[]string{"puzzle", "part", "outcome"},
	)
	solveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advent",
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Puzzle part solve duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"puzzle", "part"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, solves, solveDuration)
	})
}

// RecordHTTPRequest counts one request. puzzle is empty for routes that do
// not resolve a puzzle.
func RecordHTTPRequest(method, route, puzzle string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, route, puzzle, statusLabel).Inc()
	httpDuration.WithLabelValues(method, route, puzzle, statusLabel).Observe(duration.Seconds())
}

// RecordSolve counts one part solve for puzzle (e.g. "day02") and part ("1" or "2").
func RecordSolve(puzzle, part string, duration time.Duration, err error) {
	RegisterMetrics()
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	solves.WithLabelValues(puzzle, part, outcome).Inc()
	solveDuration.WithLabelValues(puzzle, part).Observe(duration.Seconds())
}

// WriteTextfile dumps the default registry in the node-exporter textfile format.
func WriteTextfile(path string) error {
	RegisterMetrics()
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
