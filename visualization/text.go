package visualization

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hupe1980/mesa/core"
	"github.com/hupe1980/mesa/datacollection"
	"github.com/hupe1980/mesa/space"
)

// Element renders one piece of model state as text.
type Element interface {
	Render() string
}

// GridView is the read surface TextGrid needs; both space.Grid and
// space.MultiGrid satisfy it.
type GridView interface {
	Width() int
	Height() int
	CellContents(c space.Coordinate) []core.Agent
}

// CellConverter maps the occupants of one cell to the rune drawn for it.
type CellConverter func(occupants []core.Agent) rune

// DefaultCellConverter draws 'X' for occupied cells and '.' for empty ones.
func DefaultCellConverter(occupants []core.Agent) rune {
	if len(occupants) == 0 {
		return '.'
	}
	return 'X'
}

// TextGrid renders a grid space as a rune matrix, top row first.
type TextGrid struct {
	grid    GridView
	convert CellConverter
}

// NewTextGrid constructs a grid renderer. A nil converter falls back to
// DefaultCellConverter.
func NewTextGrid(grid GridView, convert CellConverter) *TextGrid {
	if convert == nil {
		convert = DefaultCellConverter
	}
	return &TextGrid{grid: grid, convert: convert}
}

// Render implements Element.
func (t *TextGrid) Render() string {
	var sb strings.Builder
	for y := t.grid.Height() - 1; y >= 0; y-- {
		for x := 0; x < t.grid.Width(); x++ {
			sb.WriteRune(t.convert(t.grid.CellContents(space.Coordinate{X: x, Y: y})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TextData renders the latest collected model values as a two-column table.
type TextData struct {
	collector *datacollection.DataCollector
	title     string
}

// NewTextData constructs a data renderer over the collector's model series.
func NewTextData(collector *datacollection.DataCollector, title string) *TextData {
	return &TextData{collector: collector, title: title}
}

// Render implements Element.
func (t *TextData) Render() string {
	latest := t.collector.LatestModelVars()

	tw := table.NewWriter()
	if t.title != "" {
		tw.SetTitle(t.title)
	}
	tw.AppendHeader(table.Row{"Variable", "Value"})
	for _, name := range t.collector.ModelVarNames() {
		v, ok := latest[name]
		if !ok {
			continue
		}
		tw.AppendRow(table.Row{name, v})
	}
	return tw.Render() + "\n"
}

// TextVisualization composes elements and writes one snapshot per step.
type TextVisualization struct {
	elements []Element
	out      io.Writer
}

// NewTextVisualization constructs a visualization writing to out.
func NewTextVisualization(out io.Writer, elements ...Element) *TextVisualization {
	return &TextVisualization{out: out, elements: elements}
}

// Add appends an element to the render list.
func (v *TextVisualization) Add(e Element) { v.elements = append(v.elements, e) }

// Render writes a framed snapshot of every element for the given step.
func (v *TextVisualization) Render(step int) error {
	if _, err := fmt.Fprintf(v.out, "--- Step %d ---\n", step); err != nil {
		return fmt.Errorf("visualization: write header: %w", err)
	}
	for _, e := range v.elements {
		if _, err := io.WriteString(v.out, e.Render()); err != nil {
			return fmt.Errorf("visualization: write element: %w", err)
		}
	}
	return nil
}
