package viewer

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/city-viewer/internal/geo"
)

// LegendRow is one swatch of the legend.
type LegendRow struct {
	Label string
	Color string
}

// LegendPanel shows the classification colors. It has no inputs.
type LegendPanel struct {
	rows []LegendRow
}

// NewLegendPanel builds the legend from the styler's color table.
func NewLegendPanel() *LegendPanel {
	title := cases.Title(language.English)
	entries := geo.Legend()
	rows := make([]LegendRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, LegendRow{
			Label: title.String(e.Classification.String()),
			Color: e.FillColor,
		})
	}
	return &LegendPanel{rows: rows}
}

// Rows returns the legend rows in display order.
func (p *LegendPanel) Rows() []LegendRow { return p.rows }

// Render writes the legend as text.
func (p *LegendPanel) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Legend"); err != nil {
		return err
	}
	for _, r := range p.rows {
		if _, err := fmt.Fprintf(w, "  [%s] %s\n", r.Color, r.Label); err != nil {
			return err
		}
	}
	return nil
}
