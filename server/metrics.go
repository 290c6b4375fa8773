package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/CodyTVWeber/inversemod/inverse"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inversemod_solve_total",
		Help: "Solve outcomes by method and reason.",
	}, []string{"method", "reason"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inversemod_solve_duration_seconds",
		Help:    "Solve latency.",
		Buckets: prometheus.DefBuckets,
	})
)

func observeSolve(out inverse.Outcome, elapsed time.Duration) {
	solveTotal.WithLabelValues(out.Method.String(), out.Reason.String()).Inc()
	solveDuration.Observe(elapsed.Seconds())
}
