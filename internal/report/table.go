package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"albumdupes/internal/dupes"
)

// Table renders one row per grouped record followed by the summary line.
// The group number is printed on the anchor row only.
func Table(result dupes.Result) string {
	summary := summaryLine(len(result.Groups))
	if len(result.Groups) == 0 {
		return summary
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"Group", "Line", "Entry"})
	for i, group := range result.Groups {
		for j, rec := range group {
			label := ""
			if j == 0 {
				label = strconv.Itoa(i + 1)
			}
			tw.AppendRow(table.Row{label, strconv.Itoa(rec.LineNumber), rec.RawText})
		}
		if i < len(result.Groups)-1 {
			tw.AppendSeparator()
		}
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render() + "\n" + summary
}
