package report

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/model"
)

// buyboxHeader is the fixed table header for rendered buyboxes.
const buyboxHeader = "| Criterion | Target | Rationale |"

// RenderBuybox renders rows as a markdown table. The output round-trips
// through ParseBuybox.
func RenderBuybox(rows []model.BuyboxRow) string {
	var b strings.Builder
	b.WriteString(buyboxHeader + "\n")
	b.WriteString("|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			escapeCell(r.Criterion), escapeCell(r.Target), escapeCell(r.Rationale))
	}
	return b.String()
}

// ParseBuybox extracts criterion/target/rationale rows from a markdown
// table. Header and separator lines are skipped; rows with a column count
// other than three are rejected.
func ParseBuybox(text string) ([]model.BuyboxRow, error) {
	var rows []model.BuyboxRow
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		if isHeaderOrSeparator(line) {
			continue
		}

		cells := splitCells(line)
		if len(cells) != 3 {
			return nil, eris.Errorf("report: buybox row has %d cells: %q", len(cells), line)
		}
		rows = append(rows, model.BuyboxRow{
			Criterion: cells[0],
			Target:    cells[1],
			Rationale: cells[2],
		})
	}
	if len(rows) == 0 {
		return nil, eris.New("report: no buybox rows found")
	}
	return rows, nil
}

func isHeaderOrSeparator(line string) bool {
	trimmed := strings.Trim(line, "| ")
	if strings.EqualFold(strings.ReplaceAll(trimmed, " ", ""),
		"criterion|target|rationale") {
		return true
	}
	// Separator rows contain only pipes, dashes, colons, and spaces.
	for _, r := range trimmed {
		if r != '-' && r != ':' && r != '|' && r != ' ' {
			return false
		}
	}
	return true
}

func splitCells(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// escapeCell keeps cell text from breaking table structure.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "/")
}
