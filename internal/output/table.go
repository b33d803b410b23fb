package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/taigrr/colorhash"
)

// TableRenderer is implemented by results that render as a table.
type TableRenderer interface {
	Headers() []string
	Rows() [][]string
}

// ColumnWidths is optionally implemented to set minimum column widths.
type ColumnWidths interface {
	MinWidths() []int
}

// KeyColumn is optionally implemented to name the column whose cells get a
// stable per-value color.
type KeyColumn interface {
	KeyColumn() int
}

// Colors for key cells. Red, green and yellow are left out; they carry
// error and success meaning elsewhere.
var keyPalette = []int{
	tablewriter.FgCyanColor,
	tablewriter.FgMagentaColor,
	tablewriter.FgBlueColor,
	tablewriter.FgHiCyanColor,
	tablewriter.FgHiMagentaColor,
	tablewriter.FgHiBlueColor,
}

// KeyColor picks the palette color for a value; the same value always maps
// to the same color.
func KeyColor(value string) int {
	i := int(colorhash.HashString(value)) % len(keyPalette)
	if i < 0 {
		i += len(keyPalette)
	}
	return keyPalette[i]
}

// PrintTable writes data as a bordered table.
func PrintTable(w io.Writer, data TableRenderer, color bool) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(data.Headers())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	if cw, ok := data.(ColumnWidths); ok {
		for i, width := range cw.MinWidths() {
			table.SetColMinWidth(i, width)
		}
	}

	key := -1
	if kc, ok := data.(KeyColumn); ok && color {
		key = kc.KeyColumn()
	}

	for _, row := range data.Rows() {
		if key < 0 || key >= len(row) {
			table.Append(row)
			continue
		}
		colors := make([]tablewriter.Colors, len(row))
		colors[key] = tablewriter.Colors{KeyColor(row[key])}
		table.Rich(row, colors)
	}

	table.Render()
	return nil
}

// TableData is an ad-hoc TableRenderer.
type TableData struct {
	headers []string
	rows    [][]string
}

// NewTableData creates a TableData with the given headers.
func NewTableData(headers ...string) *TableData {
	return &TableData{headers: headers, rows: make([][]string, 0)}
}

// AddRow appends a row.
func (t *TableData) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

// Headers implements TableRenderer.
func (t *TableData) Headers() []string {
	return t.headers
}

// Rows implements TableRenderer.
func (t *TableData) Rows() [][]string {
	return t.rows
}
