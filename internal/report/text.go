package report

import (
	"fmt"
	"strings"

	"albumdupes/internal/dupes"
)

const ruleWidth = 50

// Text renders the classic report block. Lines are joined with "\n"; each
// group ends with an empty line.
func Text(result dupes.Result) string {
	lines := make([]string, 0, 2+len(result.Groups)*4)
	lines = append(lines, summaryLine(len(result.Groups)))
	lines = append(lines, strings.Repeat("-", ruleWidth))
	for i, group := range result.Groups {
		lines = append(lines, fmt.Sprintf("Group %d:", i+1))
		for _, rec := range group {
			lines = append(lines, fmt.Sprintf("  Line %d: %s", rec.LineNumber, rec.RawText))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
