// Package pipeline runs one full forwarding-index analysis: route every pair
// of a loaded graph, build the usage matrix, optionally compare against
// breadth-first distances, record metrics and assemble the report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/fwdindex/dfs"
	"github.com/katalvlaran/fwdindex/graphio"
	"github.com/katalvlaran/fwdindex/metrics"
	"github.com/katalvlaran/fwdindex/report"
	"github.com/katalvlaran/fwdindex/router"
	"github.com/katalvlaran/fwdindex/usage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrNilDocument is returned when Run receives no document or graph.
var ErrNilDocument = errors.New("pipeline: document or graph is nil")

var tracer = otel.Tracer("fwdindex.pipeline")

// Options tune one run. Zero values mean "use the document's parameters",
// one worker, a random seed, no comparison, no metrics and no logging.
type Options struct {
	// MaxIterations and TabuSize override the document's parameter line.
	MaxIterations *int
	TabuSize      *int

	// Seed makes the run reproducible; 0 means random.
	Seed    int64
	Workers int

	// Compare adds the breadth-first comparison to the report.
	Compare bool

	Source  string
	Metrics *metrics.Collectors
	Logger  *zap.Logger
}

// Run analyses doc and returns the report.
func Run(ctx context.Context, doc *graphio.Document, opts Options) (*report.Report, error) {
	if doc == nil || doc.Graph == nil {
		return nil, ErrNilDocument
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	params := report.Params{
		MaxIterations: doc.Params.MaxIterations,
		TabuSize:      doc.Params.TabuSize,
		Seed:          opts.Seed,
		Workers:       opts.Workers,
	}
	if opts.MaxIterations != nil {
		params.MaxIterations = *opts.MaxIterations
	}
	if opts.TabuSize != nil {
		params.TabuSize = *opts.TabuSize
	}
	if params.Workers < 1 {
		params.Workers = 1
	}

	ctx, span := tracer.Start(ctx, "pipeline.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("source", opts.Source),
		attribute.Int("graph.nodes", doc.Graph.VertexCount()),
		attribute.Int("graph.edges", doc.Graph.EdgeCount()),
	)

	ropts := []router.Option{
		router.WithMaxIterations(params.MaxIterations),
		router.WithTabuSize(params.TabuSize),
		router.WithWorkers(params.Workers),
		router.WithLogger(logger),
	}
	if opts.Seed != 0 {
		ropts = append(ropts, router.WithSeed(opts.Seed))
	}
	if opts.Metrics != nil {
		ropts = append(ropts, router.WithOnRoute(opts.Metrics.ObserveSearch))
	}

	started := time.Now()
	table, err := router.Compute(ctx, doc.Graph, ropts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: routing: %w", err)
	}
	res, err := usage.AnalyzeContext(ctx, doc.Graph, table)
	if err != nil {
		return nil, fmt.Errorf("pipeline: analysis: %w", err)
	}
	if cells := res.NonEdgeCells(doc.Graph); len(cells) > 0 {
		// routes follow graph edges, so this is never expected
		logger.Error("usage on non-edges", zap.Any("cells", cells))
	}

	comps, err := dfs.Components(doc.Graph)
	if err != nil {
		return nil, fmt.Errorf("pipeline: components: %w", err)
	}

	var cmp *usage.Comparison
	if opts.Compare {
		cmp, err = usage.CompareShortest(doc.Graph, table)
		if err != nil {
			return nil, fmt.Errorf("pipeline: comparison: %w", err)
		}
	}
	elapsed := time.Since(started)

	unreached := len(table.Unreached())
	if opts.Metrics != nil {
		opts.Metrics.ObserveAnalysis(res, unreached, elapsed)
	}
	logger.Info("analysis complete",
		zap.String("source", opts.Source),
		zap.Int("max_crossing", res.MaxCrossing),
		zap.Int("unreached", unreached),
		zap.Int("components", len(comps)),
		zap.Duration("elapsed", elapsed))

	return report.New(table, res, report.Meta{
		Source:     opts.Source,
		Params:     params,
		Elapsed:    elapsed,
		Comparison: cmp,
		Components: comps,
	}), nil
}
