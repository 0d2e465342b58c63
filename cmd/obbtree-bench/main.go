// Command obbtree-bench builds an OBB tree over a synthetic point cloud
// and reports build and query performance as a JSON report on stdout.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"reflect"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/obbtree/obb"
	"github.com/aukilabs/obbtree/tree"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
)

// Prevents garble from obfuscating the config struct's field names,
// which would otherwise produce garbled command-line options.
// https://github.com/burrowers/garble/issues/403
var _ = reflect.TypeOf(config{})

type config struct {
	NumParticles    int           `cli:""        env:"OBBTREE_BENCH_NUM_PARTICLES"     help:"Number of particles to build the tree over."`
	LeafCapacity    int           `cli:""        env:"OBBTREE_BENCH_LEAF_CAPACITY"     help:"Maximum number of particles per leaf."`
	InflationRadius float64       `cli:""        env:"OBBTREE_BENCH_INFLATION_RADIUS"  help:"Radius each fitted OBB is inflated by."`
	NumQueries      int           `cli:""        env:"OBBTREE_BENCH_NUM_QUERIES"       help:"Number of random queries to run after the build."`
	QueryHalfExtent float64       `cli:""        env:"OBBTREE_BENCH_QUERY_HALF_EXTENT" help:"Half-extent of each random query box."`
	Seed            int64         `cli:""        env:"OBBTREE_BENCH_SEED"              help:"Random seed for the synthetic point cloud and queries."`
	LogLevel        string        `cli:""        env:"OBBTREE_BENCH_LOG_LEVEL"         help:"Log level (debug|info|warning|error)."`
	LogIndent       bool          `cli:""        env:"OBBTREE_BENCH_LOG_INDENT"        help:"Indent logs."`
	MetricsAddr     string        `cli:",hidden" env:"OBBTREE_BENCH_METRICS_ADDR"       help:"If set, serve Prometheus metrics on this address until the benchmark completes."`
	MetricsDuration time.Duration `cli:",hidden" env:"OBBTREE_BENCH_METRICS_DURATION"   help:"How long to keep the metrics server up after the benchmark completes."`
}

// report is the JSON document written to stdout once the benchmark
// completes.
type report struct {
	NumParticles   int     `json:"num_particles"`
	LeafCapacity   int     `json:"leaf_capacity"`
	NumNodes       int     `json:"num_nodes"`
	BuildMs        float64 `json:"build_ms"`
	NumQueries     int     `json:"num_queries"`
	AvgNodesTested float64 `json:"avg_nodes_tested"`
	AvgHits        float64 `json:"avg_hits"`
	TotalQueryMs   float64 `json:"total_query_ms"`
}

func main() {
	conf := config{
		NumParticles:    10000,
		LeafCapacity:    4,
		InflationRadius: 0,
		NumQueries:      1000,
		QueryHalfExtent: 5,
		Seed:            1,
		LogLevel:        logs.InfoLevel.String(),
	}

	cli.Register().
		Help("Builds an OBB tree over a synthetic point cloud and reports build and query performance.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	if conf.MetricsAddr != "" {
		go serveMetrics(ctx, conf.MetricsAddr)
	}

	rpt, err := run(conf)
	if err != nil {
		logs.Fatal(errors.New("obbtree-bench: run failed").Wrap(err))
	}

	out, err := json.MarshalIndent(rpt, "", "  ")
	if err != nil {
		logs.Fatal(errors.New("obbtree-bench: failed to marshal report").Wrap(err))
	}
	fmt.Println(string(out))

	if conf.MetricsAddr != "" && conf.MetricsDuration > 0 {
		logs.WithTag("addr", conf.MetricsAddr).Info("obbtree-bench: keeping metrics server up")
		time.Sleep(conf.MetricsDuration)
	}
}

func run(conf config) (report, error) {
	if conf.NumParticles <= 0 {
		return report{}, errors.New("obbtree-bench: num-particles must be positive")
	}

	rnd := rand.New(rand.NewSource(conf.Seed))
	obbs := make([]obb.OBB, conf.NumParticles)
	clouds := make([][]obb.Vector3, conf.NumParticles)
	for i := range clouds {
		center := obb.Vec3(
			float32(rnd.Float64()*1000-500),
			float32(rnd.Float64()*1000-500),
			float32(rnd.Float64()*1000-500),
		)
		half := float32(0.1 + rnd.Float64()*0.9)
		obbs[i] = obb.OBB{
			Center: center,
			Rotation: obb.Matrix3{
				Row0: obb.Vec3(1, 0, 0),
				Row1: obb.Vec3(0, 1, 0),
				Row2: obb.Vec3(0, 0, 1),
			},
			HalfExtents: obb.Vec3(half, half, half),
		}
		clouds[i] = boxCorners(center, half)
	}

	t := tree.New(conf.LeafCapacity)

	start := time.Now()
	if err := t.BuildFromVertices(obbs, clouds, float32(conf.InflationRadius)); err != nil {
		return report{}, err
	}
	buildDuration := time.Since(start)

	rpt := report{
		NumParticles: conf.NumParticles,
		LeafCapacity: conf.LeafCapacity,
		NumNodes:     t.NumNodes(),
		BuildMs:      float64(buildDuration.Microseconds()) / 1000,
		NumQueries:   conf.NumQueries,
	}

	if conf.NumQueries > 0 {
		var totalNodesTested, totalHits int
		queryStart := time.Now()
		for i := 0; i < conf.NumQueries; i++ {
			q := randomQuery(rnd, float32(conf.QueryHalfExtent))
			_, stats := t.Query(q)
			totalNodesTested += stats.NodesTested
			totalHits += stats.Hits
		}
		rpt.TotalQueryMs = float64(time.Since(queryStart).Microseconds()) / 1000
		rpt.AvgNodesTested = float64(totalNodesTested) / float64(conf.NumQueries)
		rpt.AvgHits = float64(totalHits) / float64(conf.NumQueries)
	}

	return rpt, nil
}

func boxCorners(center obb.Vector3, half float32) []obb.Vector3 {
	corners := make([]obb.Vector3, 0, 8)
	for _, s := range [8][3]float32{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
	} {
		corners = append(corners, center.Add(obb.Vec3(s[0]*half, s[1]*half, s[2]*half)))
	}
	return corners
}

func randomQuery(rnd *rand.Rand, halfExtent float32) obb.OBB {
	center := obb.Vec3(
		float32(rnd.Float64()*1000-500),
		float32(rnd.Float64()*1000-500),
		float32(rnd.Float64()*1000-500),
	)
	return obb.OBB{
		Center: center,
		Rotation: obb.Matrix3{
			Row0: obb.Vec3(1, 0, 0),
			Row1: obb.Vec3(0, 1, 0),
			Row2: obb.Vec3(0, 0, 1),
		},
		HalfExtents: obb.Vec3(halfExtent, halfExtent, halfExtent),
	}
}

func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		server.Close()
	}()

	logs.WithTag("addr", addr).Info("obbtree-bench: serving metrics")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logs.Warn(errors.New("obbtree-bench: metrics server failed").Wrap(err))
	}
}
