package words

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	tw "github.com/olekukonko/tablewriter"

	"github.com/tsiemens/embedviz/util"
)

type RenderTable struct {
	Header []string
	Rows   [][]string
	Notes  []string
}

// SummaryTableModel builds a table of the highest-frequency extracted words.
// rankedWords must already be in rank order (see Extractor.TopWords).
func SummaryTableModel(ext *Extractor, rankedWords []string, limit int) *RenderTable {
	table := &RenderTable{}
	table.Header = []string{"Rank", "Word", "Count", "Categories"}

	limit = util.MinInt(limit, len(rankedWords))
	for i := 0; i < limit; i++ {
		w := rankedWords[i]
		ctx := ext.Context(w)
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			w,
			strconv.Itoa(ctx.Count),
			strings.Join(ext.CategoriesOf(w), ", "),
		})
	}

	table.Notes = append(table.Notes,
		fmt.Sprintf("%d unique words extracted, %d exported", ext.WordCount(), len(rankedWords)))
	return table
}

func PrintRenderTable(title string, tableModel *RenderTable, writer io.Writer) {
	fmt.Fprintf(writer, "%s\n", title)

	table := tw.NewWriter(writer)
	table.SetHeader(tableModel.Header)
	table.SetBorder(false)

	for _, row := range tableModel.Rows {
		table.Append(row)
	}

	table.Render()

	for _, note := range tableModel.Notes {
		fmt.Fprintln(writer, note)
	}
}
