package router

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/fwdindex/core"
	"github.com/katalvlaran/fwdindex/tabu"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("fwdindex.router")

// Compute searches every ordered pair of g's nodes and returns the table.
//
// Returns ErrGraphNil, ErrOptionViolation, or the context's error if ctx is
// cancelled before all pairs were searched. Unreachable goals never cause an
// error.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	base := o.Seed
	if !o.Seeded {
		base = time.Now().UnixNano()
	}

	table := NewTable(g.Nodes())
	pairs := table.offDiagonal()

	ctx, span := tracer.Start(ctx, "router.Compute", trace.WithAttributes(
		attribute.Int("graph.nodes", len(table.nodes)),
		attribute.Int("router.pairs", len(pairs)),
		attribute.Int("router.workers", o.Workers),
		attribute.Int("tabu.max_iterations", o.MaxIterations),
		attribute.Int("tabu.size", o.TabuSize),
	))
	defer span.End()

	started := time.Now()
	results := make([]tabu.Result, len(pairs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for k, p := range pairs {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := tabu.Search(g, p.Start, p.Goal,
				tabu.WithMaxIterations(o.MaxIterations),
				tabu.WithTabuSize(o.TabuSize),
				tabu.WithSeed(tabu.DeriveSeed(base, uint64(k))),
			)
			if err != nil {
				return fmt.Errorf("router: search %s→%s: %w", p.Start, p.Goal, err)
			}
			results[k] = res
			o.OnRoute(p.Start, p.Goal, res)

			return nil
		})
	}
	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.Logger.Warn("routing aborted", zap.Error(err))
		return nil, err
	}

	for k, p := range pairs {
		res := results[k]
		// Set cannot fail: pairs come from the table itself.
		_ = table.Set(p.Start, p.Goal, Route{Path: res.Path, Cost: res.Cost, Iterations: res.Iterations})
		if !res.Found() {
			o.Logger.Debug("goal not reached",
				zap.String("start", p.Start),
				zap.String("goal", p.Goal),
				zap.Int("iterations", res.Iterations))
		}
	}

	unreached := len(pairs) - table.Reached()
	span.SetAttributes(attribute.Int("router.unreached", unreached))
	o.Logger.Info("routing complete",
		zap.Int("nodes", len(table.nodes)),
		zap.Int("pairs", len(pairs)),
		zap.Int("unreached", unreached),
		zap.Int("workers", o.Workers),
		zap.Duration("elapsed", time.Since(started)))

	return table, nil
}

// offDiagonal lists every (s, t) with s != t in row-major order; the position
// of a pair in this slice is its stream id for seed derivation.
func (t *Table) offDiagonal() []Pair {
	n := len(t.nodes)
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1))
	for _, s := range t.nodes {
		for _, g := range t.nodes {
			if s != g {
				out = append(out, Pair{Start: s, Goal: g})
			}
		}
	}

	return out
}
