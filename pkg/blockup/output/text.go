package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// columnGap separates text table columns.
const columnGap = "  "

// WriteText prints the given categories, or all of them, as aligned plain
// text tables followed by any issues.
func WriteText(w io.Writer, sheet *models.CostSheet, symbol string, categories ...models.Category) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s (%s)\n", WorkOrderLabel(sheet.WorkOrder), sheet.BookName)
	for _, t := range BuildTables(sheet, symbol, categories...) {
		fmt.Fprintf(bw, "\n%s\n", t.Title)
		writeTextTable(bw, t)
	}

	if len(sheet.Issues) > 0 {
		fmt.Fprintf(bw, "\nIssues (%d):\n", len(sheet.Issues))
		for _, issue := range sheet.Issues {
			fmt.Fprintf(bw, "  %s\n", issue)
		}
	}

	return bw.Flush()
}

func writeTextTable(w io.Writer, t Table) {
	lines := append([][]string{t.Headers}, t.Rows...)
	if t.Totals != nil {
		lines = append(lines, t.Totals)
	}

	widths := make([]int, len(t.Headers))
	for _, cells := range lines {
		for i, c := range cells {
			if n := runewidth.StringWidth(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for _, cells := range lines {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = runewidth.FillRight(c, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, columnGap), " "))
	}
	if t.Footer != "" {
		fmt.Fprintln(w, t.Footer)
	}
}
