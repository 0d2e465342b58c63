package tree

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const errTypeLabel = "error_type"

var (
	buildLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "obbtree_build_latency",
		Help: "The time to build a tree from a point cloud.",
	})

	buildNodeCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "obbtree_build_node_count",
		Help: "The number of arena nodes in the most recently built tree.",
	})

	buildErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "obbtree_build_errors",
		Help: "The errors that occurred while building a tree.",
	}, []string{
		errTypeLabel,
	})

	queryTests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "obbtree_query_node_tests",
		Help: "The number of node overlap tests performed across all queries.",
	})

	queryHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "obbtree_query_hits",
		Help: "The number of particles reported across all queries.",
	})
)

func instrumentBuildLatency(start time.Time) {
	buildLatency.Observe(time.Since(start).Seconds())
}

func instrumentBuildNodeCount(n int) {
	buildNodeCount.Set(float64(n))
}

func instrumentBuildError(err error) {
	buildErrors.With(prometheus.Labels{
		errTypeLabel: errors.Type(err),
	}).Inc()
}

func instrumentQuery(stats QueryStats) {
	queryTests.Add(float64(stats.NodesTested))
	queryHits.Add(float64(stats.Hits))
}
