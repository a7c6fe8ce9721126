package main

import (
	"context"
	"io"

	"github.com/katalvlaran/fwdindex/config"
	"github.com/katalvlaran/fwdindex/graphio"
	"github.com/katalvlaran/fwdindex/metrics"
	"github.com/katalvlaran/fwdindex/pipeline"
	"github.com/katalvlaran/fwdindex/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var edgeList bool

	cmd := &cobra.Command{
		Use:   "analyze <graph-file>",
		Short: "Route every node pair and report the edge-usage matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if a.cfg.Trace {
				shutdown, err := setupTracing(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer func() {
					if err := shutdown(context.Background()); err != nil {
						a.logger.Warn("trace shutdown", zap.Error(err))
					}
				}()
			}

			return a.analyze(ctx, args[0], edgeList, cmd.OutOrStdout())
		},
	}
	addSearchFlags(cmd.Flags())
	cmd.Flags().BoolVar(&edgeList, "edge-list", false, "input is a numbered edge list instead of adjacency lines")

	return cmd
}

// addSearchFlags registers the flags shared by analyze and watch. Defaults
// match config.SetDefaults.
func addSearchFlags(fs *pflag.FlagSet) {
	fs.Int("max-iterations", 0, "override the file's max_iterations")
	fs.Int("tabu-size", 0, "override the file's tabu_size")
	fs.Int64("seed", 0, "random seed for a reproducible run (0 = random)")
	fs.Int("workers", 1, "number of concurrent searches")
	fs.Bool("compare", false, "compare every route with the BFS distance")
	fs.StringP("format", "f", report.FormatText, "report format: text, json, yaml")
	fs.StringP("output", "o", "", "report file (default stdout)")
	fs.String("metrics-file", "", "write Prometheus metrics to this textfile")
	fs.Bool("trace", false, "print OpenTelemetry spans to stderr")
}

// analyze runs one analysis of path and writes the report to the configured
// destination, falling back to stdout.
func (a *app) analyze(ctx context.Context, path string, edgeList bool, stdout io.Writer) error {
	log := a.logger.With(zap.String("source", path))

	doc, err := loadDocument(path, edgeList)
	if err != nil {
		log.Error("loading graph", zap.Error(err))
		return err
	}
	log.Debug("graph loaded",
		zap.Int("nodes", doc.Graph.VertexCount()),
		zap.Int("edges", doc.Graph.EdgeCount()),
		zap.Int("max_iterations", doc.Params.MaxIterations),
		zap.Int("tabu_size", doc.Params.TabuSize))

	reg := prometheus.NewRegistry()
	rep, err := pipeline.Run(ctx, doc, runOptions(a.cfg, path, metrics.New(reg), a.logger))
	if err != nil {
		return err
	}

	if err := writeReport(rep, a.cfg.Output, stdout); err != nil {
		return err
	}
	if a.cfg.Metrics.File != "" {
		if err := metrics.WriteTextfile(reg, a.cfg.Metrics.File); err != nil {
			return err
		}
		log.Debug("metrics written", zap.String("file", a.cfg.Metrics.File))
	}

	return nil
}

func loadDocument(path string, edgeList bool) (*graphio.Document, error) {
	if !edgeList {
		return graphio.Load(path)
	}
	g, err := graphio.LoadEdgeList(path)
	if err != nil {
		return nil, err
	}

	return &graphio.Document{Params: graphio.DefaultParams(), Graph: g}, nil
}

func runOptions(cfg *config.Config, source string, col *metrics.Collectors, logger *zap.Logger) pipeline.Options {
	return pipeline.Options{
		MaxIterations: cfg.Search.MaxIterations,
		TabuSize:      cfg.Search.TabuSize,
		Seed:          cfg.Search.Seed,
		Workers:       cfg.Search.Workers,
		Compare:       cfg.Search.Compare,
		Source:        source,
		Metrics:       col,
		Logger:        logger,
	}
}

func writeReport(rep *report.Report, out config.OutputConfig, stdout io.Writer) error {
	return writeTo(out.File, stdout, func(w io.Writer) error {
		return report.Write(w, rep, out.Format)
	})
}
