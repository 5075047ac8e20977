// Command bench replays a fixed suite of historical games through the
// engine at a configured search depth and reports node counts and
// throughput. It exists to catch accidental node-count regressions in
// search or evaluation changes; it is not part of the engine's public
// interface.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/janmarthedal/gopawn/internal/bench"
)

var (
	depth       = flag.Int("depth", 0, "override the suite's configured search depth (0 = use suite default)")
	configPath  = flag.String("config", "", "path to a TOML suite file (default: built-in games)")
	cpuProfile  = flag.Bool("cpuprofile", false, "write a CPU profile (pprof) for this run")
	memProfile  = flag.Bool("memprofile", false, "write a heap profile (pprof) for this run")
	metricsAddr = flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address after the run (blocks until the server fails)")
	noColor     = flag.Bool("no-color", false, "disable colored output")
)

var (
	nodesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gopawn_bench_nodes_total",
		Help: "Total search nodes visited across all completed bench runs.",
	})
	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gopawn_bench_run_duration_seconds",
		Help:    "Wall-clock duration of a complete bench suite run.",
		Buckets: prometheus.DefBuckets,
	})
)

func main() {
	flag.Parse()
	if *noColor {
		color.NoColor = true
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	} else if *memProfile {
		defer profile.Start(profile.MemProfile).Stop()
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bench: building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := bench.Config{}
	if *configPath != "" {
		cfg, err = bench.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bench:", err)
			os.Exit(1)
		}
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}

	suite := bench.NewSuite(cfg)
	bold := color.New(color.Bold)
	bold.Printf("suite fingerprint %016x  depth %d  games %d\n", suite.Fingerprint(), suite.Depth, len(suite.Games))

	result := suite.Run(logger)
	nodesTotal.Add(float64(result.Nodes))
	runDuration.Observe(result.Elapsed.Seconds())

	green := color.New(color.FgGreen)
	green.Printf("run %s: nodes %d  nps %.0f  elapsed %s\n", result.RunID, result.Nodes, result.NodesPerS, result.Elapsed)

	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		fmt.Printf("serving metrics on %s\n", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			fmt.Fprintln(os.Stderr, "bench: metrics server:", err)
			os.Exit(1)
		}
	}
}
