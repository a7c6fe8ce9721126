package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/fwdindex/builder"
	"github.com/katalvlaran/fwdindex/graphio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// genParams holds the generate flags; each topology reads the ones it needs.
type genParams struct {
	n, d, k    int
	rows, cols int
	diagonal   bool
	p          float64
	seed       int64
	ids        string
}

var topologies = map[string]func(gp genParams) builder.Constructor{
	"wheel":     func(gp genParams) builder.Constructor { return builder.Wheel(gp.n) },
	"star":      func(gp genParams) builder.Constructor { return builder.Star(gp.n) },
	"cycle":     func(gp genParams) builder.Constructor { return builder.Cycle(gp.n) },
	"path":      func(gp genParams) builder.Constructor { return builder.Path(gp.n) },
	"complete":  func(gp genParams) builder.Constructor { return builder.Complete(gp.n) },
	"hypercube": func(gp genParams) builder.Constructor { return builder.Hypercube(gp.d) },
	"debruijn":  func(gp genParams) builder.Constructor { return builder.DeBruijn(gp.k, gp.n) },
	"random":    func(gp genParams) builder.Constructor { return builder.RandomSparse(gp.n, gp.p) },
	"grid": func(gp genParams) builder.Constructor {
		conn := builder.Conn4
		if gp.diagonal {
			conn = builder.Conn8
		}
		return builder.Grid(gp.rows, gp.cols, conn)
	},
}

var idSchemes = map[string]builder.IDFn{
	"index":   builder.DefaultIDFn,
	"one":     builder.OneBasedIDFn,
	"letters": builder.ExcelColumnIDFn,
}

func topologyNames() string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func newGenerateCmd(a *app) *cobra.Command {
	var gp genParams

	cmd := &cobra.Command{
		Use:   "generate <topology>",
		Short: "Write a generated graph in the adjacency format",
		Long: "Write a generated graph in the adjacency format.\n\nTopologies: " + topologyNames() +
			".\nhypercube uses -d; debruijn uses -k symbols and -n word length; random uses -n, -p and --seed;\n" +
			"grid uses --rows, --cols and --diagonal.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newCons, ok := topologies[args[0]]
			if !ok {
				return fmt.Errorf("unknown topology %q (want one of %s)", args[0], topologyNames())
			}
			idFn, ok := idSchemes[gp.ids]
			if !ok {
				return fmt.Errorf("unknown id scheme %q", gp.ids)
			}
			bopts := []builder.BuilderOption{builder.WithIDScheme(idFn)}
			if gp.seed != 0 {
				bopts = append(bopts, builder.WithSeed(gp.seed))
			}

			g, err := builder.BuildGraph(nil, bopts, newCons(gp))
			if err != nil {
				return err
			}

			params := graphio.DefaultParams()
			if v := a.cfg.Search.MaxIterations; v != nil {
				params.MaxIterations = *v
			}
			if v := a.cfg.Search.TabuSize; v != nil {
				params.TabuSize = *v
			}
			a.logger.Debug("graph generated",
				zap.String("topology", args[0]),
				zap.Int("nodes", g.VertexCount()),
				zap.Int("edges", g.EdgeCount()))

			return writeTo(a.cfg.Output.File, cmd.OutOrStdout(), func(w io.Writer) error {
				return graphio.Write(w, g, params)
			})
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&gp.n, "nodes", "n", 8, "node count (debruijn: word length)")
	fs.IntVarP(&gp.d, "dim", "d", 3, "hypercube dimension")
	fs.IntVarP(&gp.k, "symbols", "k", 2, "debruijn alphabet size")
	fs.IntVar(&gp.rows, "rows", 3, "grid rows")
	fs.IntVar(&gp.cols, "cols", 3, "grid columns")
	fs.BoolVar(&gp.diagonal, "diagonal", false, "grid: join diagonal cells too")
	fs.Float64VarP(&gp.p, "prob", "p", 0.3, "random edge probability")
	fs.Int64Var(&gp.seed, "seed", 0, "random seed")
	fs.StringVar(&gp.ids, "ids", "index", "vertex labels: index, one, letters")
	fs.Int("max-iterations", 0, "max_iterations written to the header")
	fs.Int("tabu-size", 0, "tabu_size written to the header")
	fs.StringP("output", "o", "", "output file (default stdout)")

	return cmd
}

// writeTo calls fn with the named file, or with stdout when path is empty.
func writeTo(path string, stdout io.Writer, fn func(io.Writer) error) error {
	if path == "" {
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
