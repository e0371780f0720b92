// Package render prints solve results as an aligned text table, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/intervals/dataset"
	"github.com/katalvlaran/intervals/interval"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Row is one selected job.
type Row struct {
	ID     string `json:"id" yaml:"id"`
	Start  int64  `json:"start" yaml:"start"`
	End    int64  `json:"end" yaml:"end"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// Result is the outcome of one problem.
type Result struct {
	Problem   string `json:"problem" yaml:"problem"`
	Intervals int    `json:"intervals" yaml:"intervals"`
	Total     int64  `json:"total" yaml:"total"`
	Selected  []Row  `json:"selected" yaml:"selected"`
}

// NewResult copies the selected jobs, so selected may alias a solver buffer.
func NewResult(problem string, inputCount int, selected []dataset.Job) Result {
	rows := make([]Row, len(selected))
	for i, j := range selected {
		rows[i] = Row{ID: j.ID, Start: j.Start(), End: j.End(), Weight: j.Weight()}
	}

	return Result{
		Problem:   problem,
		Intervals: inputCount,
		Total:     interval.TotalWeight[int64](selected),
		Selected:  rows,
	}
}

// Renderer writes results in one output format.
type Renderer struct {
	out    io.Writer
	format string
	header *color.Color
	total  *color.Color
}

// New returns a renderer for format ("text", "json" or "yaml"). Colors are
// used for text only, and only when w is a terminal and noColor is false.
func New(w io.Writer, format string, noColor bool) *Renderer {
	header := color.New(color.Bold)
	total := color.New(color.FgGreen, color.Bold)
	if noColor || !isTerminal(w) {
		header.DisableColor()
		total.DisableColor()
	} else {
		header.EnableColor()
		total.EnableColor()
	}

	return &Renderer{out: w, format: format, header: header, total: total}
}

// Render writes all results.
func (r *Renderer) Render(results []Result) error {
	switch r.format {
	case "json":
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return r.renderText(results)
	default:
		return fmt.Errorf("render: unknown format %q", r.format)
	}
}

func (r *Renderer) renderText(results []Result) error {
	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  (%d intervals, %d selected, total %s)\n",
			res.Problem, res.Intervals, len(res.Selected),
			r.total.Sprint(strconv.FormatInt(res.Total, 10)))

		table := [][]string{{"ID", "START", "END", "WEIGHT"}}
		for _, row := range res.Selected {
			table = append(table, []string{
				row.ID,
				strconv.FormatInt(row.Start, 10),
				strconv.FormatInt(row.End, 10),
				strconv.FormatInt(row.Weight, 10),
			})
		}
		r.writeTable(&b, table)
	}
	_, err := io.WriteString(r.out, b.String())

	return err
}

// writeTable pads every column to its widest cell, measured in terminal
// cells so wide runes in ids stay aligned. Row 0 is the header.
func (r *Renderer) writeTable(b *strings.Builder, table [][]string) {
	widths := make([]int, len(table[0]))
	for _, row := range table {
		for c, cell := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}
	for ri, row := range table {
		for c, cell := range row {
			if c < len(row)-1 {
				cell = runewidth.FillRight(cell, widths[c]+2)
			}
			if ri == 0 {
				cell = r.header.Sprint(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
