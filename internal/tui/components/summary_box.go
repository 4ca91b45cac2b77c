package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow is one collected answer shown in the review summary.
type SummaryRow struct {
	Key   string
	Value string
}

// SummaryBox renders the collected answers as an aligned key/value grid
// inside a bordered panel. The key column sizes itself to the longest key.
type SummaryBox struct {
	rows []SummaryRow

	keyStyle    lipgloss.Style
	valueStyle  lipgloss.Style
	borderStyle lipgloss.Style
}

// NewSummaryBox creates a summary box over the given rows.
func NewSummaryBox(rows []SummaryRow, keyStyle, valueStyle, borderStyle lipgloss.Style) SummaryBox {
	return SummaryBox{
		rows:        rows,
		keyStyle:    keyStyle,
		valueStyle:  valueStyle,
		borderStyle: borderStyle,
	}
}

// View renders the summary box.
func (s SummaryBox) View(width int) string {
	boxWidth := width - 8
	if boxWidth < 30 {
		boxWidth = 30
	}

	keyWidth := 0
	for _, row := range s.rows {
		if w := lipgloss.Width(row.Key); w > keyWidth {
			keyWidth = w
		}
	}
	keyWidth += 2

	var b strings.Builder
	for i, row := range s.rows {
		val := row.Value
		if val == "" {
			val = "(none)"
		}
		b.WriteString("  " + s.keyStyle.Width(keyWidth).Render(row.Key) + s.valueStyle.Render(val))
		if i < len(s.rows)-1 {
			b.WriteString("\n")
		}
	}

	return "  " + s.borderStyle.Width(boxWidth).Render(b.String())
}
