package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSummaryBoxRendersAllRows(t *testing.T) {
	rows := []SummaryRow{
		{Key: "Type", Value: "module"},
		{Key: "Name", Value: "ErisPulse-Weather"},
		{Key: "Description", Value: "Weather lookups"},
	}
	box := NewSummaryBox(rows, lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle())

	out := box.View(80)
	for _, want := range []string{"Type", "module", "Name", "ErisPulse-Weather", "Description", "Weather lookups"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryBoxEmptyValuePlaceholder(t *testing.T) {
	box := NewSummaryBox(
		[]SummaryRow{{Key: "Homepage", Value: ""}},
		lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(),
	)

	if out := box.View(80); !strings.Contains(out, "(none)") {
		t.Errorf("empty value not rendered as placeholder:\n%s", out)
	}
}

func TestSummaryBoxKeyColumnAligned(t *testing.T) {
	rows := []SummaryRow{
		{Key: "A", Value: "x"},
		{Key: "Longest-Key", Value: "y"},
	}
	box := NewSummaryBox(rows, lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle())

	lines := strings.Split(box.View(80), "\n")
	xCol, yCol := -1, -1
	for _, line := range lines {
		if i := strings.Index(line, "x"); i >= 0 {
			xCol = i
		}
		if i := strings.Index(line, "y"); i >= 0 {
			yCol = i
		}
	}
	if xCol < 0 || yCol < 0 || xCol != yCol {
		t.Errorf("values not aligned to one column: x at %d, y at %d", xCol, yCol)
	}
}
