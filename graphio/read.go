package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fwdindex/core"
	"github.com/katalvlaran/fwdindex/tabu"
)

// maxLineBytes bounds a single line; hub lines of large generated graphs
// exceed bufio's default.
const maxLineBytes = 16 << 20

// Params are the search parameters carried by the first line.
type Params struct {
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
	TabuSize      int `json:"tabu_size" yaml:"tabu_size"`
}

// DefaultParams returns the parameters used for an empty source.
func DefaultParams() Params {
	return Params{MaxIterations: tabu.DefaultMaxIterations, TabuSize: tabu.DefaultTabuSize}
}

// Document is a parsed adjacency file.
type Document struct {
	Params Params
	Graph  *core.Graph
}

// Load opens path and parses it with Parse.
func Load(path string) (*Document, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads the adjacency format from r.
func Parse(r io.Reader) (*Document, error) {
	sc := newScanner(r)
	doc := &Document{Params: DefaultParams(), Graph: core.NewGraph()}

	lineNo := 0
	headerSeen := false
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		fields := strings.Fields(text)

		if !headerSeen {
			if len(fields) == 0 {
				continue
			}
			p, err := parseParams(text, fields)
			if err != nil {
				return nil, err
			}
			doc.Params = p
			headerSeen = true
			continue
		}

		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, &FormatError{Line: lineNo, Text: text, Reason: "expected a node and at least one neighbour"}
		}
		head := fields[0]
		for _, nbr := range fields[1:] {
			if doc.Graph.HasEdge(head, nbr) {
				continue
			}
			if err := doc.Graph.AddEdge(head, nbr); err != nil {
				return nil, &FormatError{Line: lineNo, Text: text, Reason: "cannot add edge " + head + "-" + nbr, Err: err}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return doc, nil
}

// parseParams validates the parameter line.
func parseParams(text string, fields []string) (Params, error) {
	if len(fields) != 2 {
		return Params{}, &ConfigError{Text: text, Reason: fmt.Sprintf("want 2 integers, got %d fields", len(fields))}
	}
	vals := [2]int{}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Params{}, &ConfigError{Text: text, Reason: fmt.Sprintf("%q is not an integer", f)}
		}
		if v < 0 {
			return Params{}, &ConfigError{Text: text, Reason: fmt.Sprintf("%d is negative", v)}
		}
		vals[i] = v
	}

	return Params{MaxIterations: vals[0], TabuSize: vals[1]}, nil
}

// edgeListPreamble is the number of free-form lines before the counts.
const edgeListPreamble = 5

// LoadEdgeList opens path and parses it with ParseEdgeList.
func LoadEdgeList(path string) (*core.Graph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseEdgeList(f)
}

// ParseEdgeList reads the numbered edge-list format. Repeated edges are
// stored once; the declared edge count must match the number of edge lines.
func ParseEdgeList(r io.Reader) (*core.Graph, error) {
	sc := newScanner(r)
	g := core.NewGraph()

	var (
		lineNo    int
		nodeCount = -1
		edgeCount = -1
		edges     int
	)
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		switch {
		case lineNo <= edgeListPreamble:
			continue
		case lineNo == edgeListPreamble+1:
			n, err := parseCount(lineNo, text)
			if err != nil {
				return nil, err
			}
			nodeCount = n
			for i := 1; i <= n; i++ {
				// IDs are non-empty decimal strings; AddVertex cannot fail
				_ = g.AddVertex(strconv.Itoa(i))
			}
			continue
		case lineNo == edgeListPreamble+2:
			n, err := parseCount(lineNo, text)
			if err != nil {
				return nil, err
			}
			edgeCount = n
			continue
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &FormatError{Line: lineNo, Text: text, Reason: "expected two node numbers"}
		}
		var ends [2]string
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 1 || v > nodeCount {
				return nil, &FormatError{Line: lineNo, Text: text, Reason: fmt.Sprintf("node %q not in 1..%d", f, nodeCount)}
			}
			ends[i] = strconv.Itoa(v)
		}
		edges++
		if g.HasEdge(ends[0], ends[1]) {
			continue
		}
		if err := g.AddEdge(ends[0], ends[1]); err != nil {
			return nil, &FormatError{Line: lineNo, Text: text, Reason: "cannot add edge", Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}
	if edgeCount < 0 {
		return nil, &FormatError{Line: lineNo, Reason: "missing node or edge count"}
	}
	if edges != edgeCount {
		return nil, &FormatError{Line: lineNo, Reason: fmt.Sprintf("declared %d edges, found %d", edgeCount, edges)}
	}

	return g, nil
}

func parseCount(lineNo int, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v < 0 {
		return 0, &FormatError{Line: lineNo, Text: text, Reason: "expected a non-negative count"}
	}

	return v, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}

	return f, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return sc
}
