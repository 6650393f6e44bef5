package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// table renders rows with aligned columns, a colored header, and a dashed
// separator. Used by the history listing.
type table struct {
	headers []string
	rows    [][]string
	widths  []int
}

func newTable(headers ...string) *table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &table{
		headers: headers,
		widths:  widths,
	}
}

func (t *table) addRow(cells ...string) {
	for i, cell := range cells {
		if i < len(t.widths) && len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	headerColor := color.New(color.FgCyan, color.Bold)
	for i, h := range t.headers {
		headerColor.Fprintf(w, "%-*s  ", t.widths[i], h)
	}
	fmt.Fprintln(w)

	for i := range t.headers {
		fmt.Fprint(w, strings.Repeat("-", t.widths[i]))
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintln(w)

	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(t.widths) {
				fmt.Fprintf(w, "%-*s  ", t.widths[i], cell)
			}
		}
		fmt.Fprintln(w)
	}
}
