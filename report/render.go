package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Format names accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// unreachedCell marks a pair without a route in the path matrix.
const unreachedCell = "-"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	hotStyle    = cellStyle.Foreground(lipgloss.Color("203"))
)

// Write renders rep in format.
func Write(w io.Writer, rep *Report, format string) error {
	switch format {
	case FormatText, "":
		return WriteText(w, rep)
	case FormatJSON:
		return WriteJSON(w, rep)
	case FormatYAML:
		return WriteYAML(w, rep)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

// WriteText prints the run header, the path matrix (cell "a-b-c", "-" when
// unreached), the usage matrix and the bottleneck summary.
func WriteText(w io.Writer, rep *Report) error {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Forwarding index"))
	fmt.Fprintf(&sb, "\nrun %s  source %s\n", rep.RunID, orDash(rep.Source))
	fmt.Fprintf(&sb, "max_iterations=%d tabu_size=%d workers=%d seed=%d elapsed=%.3fs\n\n",
		rep.Params.MaxIterations, rep.Params.TabuSize, rep.Params.Workers, rep.Params.Seed, rep.ElapsedSeconds)

	sb.WriteString(titleStyle.Render("Paths"))
	sb.WriteByte('\n')
	sb.WriteString(rep.pathTable().String())
	sb.WriteString("\n\n")

	sb.WriteString(titleStyle.Render("Edge usage"))
	sb.WriteByte('\n')
	sb.WriteString(rep.usageTable().String())
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Max crossing: %d\n", rep.MaxCrossing)
	for _, b := range rep.Bottlenecks {
		fmt.Fprintf(&sb, "  bottleneck %s-%s (%d)\n", b.U, b.V, b.Load)
	}
	fmt.Fprintf(&sb, "Unreached pairs: %d\n", len(rep.Unreached))
	if n := len(rep.Components); n > 1 {
		fmt.Fprintf(&sb, "Components: %d (pairs across components cannot be routed)\n", n)
	}
	if c := rep.Comparison; c != nil {
		fmt.Fprintf(&sb, "Shortest-path check: %d/%d found, %d optimal, %d missed, total stretch %d, max stretch %d\n",
			c.Found, c.Pairs-c.Unreachable, c.Optimal, len(c.Missed), c.TotalStretch, c.MaxStretch)
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("report: write text: %w", err)
	}

	return nil
}

func (rep *Report) pathTable() *table.Table {
	n := len(rep.Nodes)
	index := make(map[string]int, n)
	for i, id := range rep.Nodes {
		index[id] = i
	}
	cells := make([][]string, n)
	for i, id := range rep.Nodes {
		cells[i] = make([]string, n+1)
		cells[i][0] = id
		cells[i][i+1] = id
	}
	for _, r := range rep.Routes {
		cell := unreachedCell
		if r.Cost != nil {
			cell = strings.Join(r.Path, "-")
		}
		cells[index[r.Start]][index[r.Goal]+1] = cell
	}

	return newTable(rep.Nodes, cells, nil)
}

func (rep *Report) usageTable() *table.Table {
	cells := make([][]string, len(rep.Matrix))
	for i, row := range rep.Matrix {
		cells[i] = make([]string, len(row)+1)
		cells[i][0] = rep.Nodes[i]
		for j, v := range row {
			cells[i][j+1] = strconv.Itoa(v)
		}
	}
	hot := func(row, col int) bool {
		return rep.MaxCrossing > 0 && col > 0 && rep.Matrix[row][col-1] == rep.MaxCrossing
	}

	return newTable(rep.Nodes, cells, hot)
}

// newTable lays out a square matrix with node names on both axes.
func newTable(nodes []string, rows [][]string, hot func(row, col int) bool) *table.Table {
	headers := append([]string{""}, nodes...)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow || col == 0:
				return headerStyle
			case hot != nil && hot(row, col):
				return hotStyle
			default:
				return cellStyle
			}
		})
}

func orDash(s string) string {
	if s == "" {
		return unreachedCell
	}
	return s
}

// WriteJSON encodes rep as indented JSON.
func WriteJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: write json: %w", err)
	}

	return nil
}

// WriteYAML encodes rep as YAML.
func WriteYAML(w io.Writer, rep *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: write yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: write yaml: %w", err)
	}

	return nil
}
