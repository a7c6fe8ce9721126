// Package metrics exposes Prometheus collectors for tabu searches and
// edge-usage analyses. Collectors register on a caller-supplied registry so
// tests and repeated CLI runs never collide on the default one.
package metrics

import (
	"fmt"
	"time"

	"github.com/katalvlaran/fwdindex/tabu"
	"github.com/katalvlaran/fwdindex/usage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fwdindex"

// Outcome label values for Searches.
const (
	OutcomeFound     = "found"
	OutcomeUnreached = "unreached"
)

// Collectors groups every fwdindex metric.
type Collectors struct {
	Searches         *prometheus.CounterVec
	SearchIterations prometheus.Histogram
	PathLength       prometheus.Histogram
	Analyses         prometheus.Counter
	AnalysisDuration prometheus.Histogram
	MaxCrossing      prometheus.Gauge
	UnreachedPairs   prometheus.Gauge
	GraphNodes       prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collectors {
	f := promauto.With(reg)

	return &Collectors{
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tabu",
			Name:      "searches_total",
			Help:      "Tabu searches run, by outcome.",
		}, []string{"outcome"}),
		SearchIterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "tabu",
			Name:      "search_iterations",
			Help:      "Extension steps used per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		PathLength: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "tabu",
			Name:      "path_length_edges",
			Help:      "Edge count of successful routes.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		Analyses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "usage",
			Name:      "analyses_total",
			Help:      "Completed forwarding-index analyses.",
		}),
		AnalysisDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "usage",
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of routing plus analysis.",
			Buckets:   prometheus.DefBuckets,
		}),
		MaxCrossing: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "usage",
			Name:      "max_crossing",
			Help:      "Bottleneck load of the latest analysis.",
		}),
		UnreachedPairs: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "usage",
			Name:      "unreached_pairs",
			Help:      "Ordered pairs the latest routing failed to connect.",
		}),
		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "usage",
			Name:      "graph_nodes",
			Help:      "Node count of the latest analysed graph.",
		}),
	}
}

// ObserveSearch records one search. Its signature matches router.WithOnRoute.
func (c *Collectors) ObserveSearch(_, _ string, r tabu.Result) {
	c.SearchIterations.Observe(float64(r.Iterations))
	if !r.Found() {
		c.Searches.WithLabelValues(OutcomeUnreached).Inc()
		return
	}
	c.Searches.WithLabelValues(OutcomeFound).Inc()
	c.PathLength.Observe(float64(r.Cost))
}

// ObserveAnalysis records one finished analysis.
func (c *Collectors) ObserveAnalysis(res *usage.Result, unreached int, elapsed time.Duration) {
	c.Analyses.Inc()
	c.AnalysisDuration.Observe(elapsed.Seconds())
	c.MaxCrossing.Set(float64(res.MaxCrossing))
	c.UnreachedPairs.Set(float64(unreached))
	c.GraphNodes.Set(float64(len(res.Nodes)))
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
