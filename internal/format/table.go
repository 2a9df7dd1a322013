// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"

	"github.com/pdiddy/prdgen/pkg/types"
)

// tableHeader is the fixed header row of the functional-requirements table.
var tableHeader = []string{"ID", "Requirement Description", "Priority", "Dependencies"}

// placeholderRow is appended when the body yields no data rows.
var placeholderRow = []string{"FR01", "Placeholder requirement", "High", "-"}

// RequirementsTable parses pipe-delimited requirement rows out of the
// Functional Requirements section body. A data row is a line starting with
// "FR" that contains at least one "|" and splits into at least four cells
// (extra cells are dropped). Redundant "ID |" header lines in the input are
// skipped. The fixed header row always comes first, and an empty table gets
// exactly one placeholder row.
func RequirementsTable(body string) types.Table {
	rows := [][]string{append([]string(nil), tableHeader...)}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "FR") && strings.Contains(line, "|"):
			cells := strings.Split(line, "|")
			for i := range cells {
				cells[i] = strings.TrimSpace(cells[i])
			}
			if len(cells) >= 4 {
				rows = append(rows, cells[:4])
			}
		case strings.HasPrefix(line, "ID") && strings.Contains(line, "|"):
			// Header already supplied above.
			continue
		}
	}

	if len(rows) == 1 {
		rows = append(rows, append([]string(nil), placeholderRow...))
	}
	return types.Table{Rows: rows, HeaderRow: true}
}
