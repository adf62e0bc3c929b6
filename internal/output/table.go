package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is one table entry. Width accounting uses the raw text, so styled
// cells cannot skew column alignment with escape sequences.
type cell struct {
	text  string
	style lipgloss.Style
}

// Table renders aligned columns for the analysis summary.
type Table struct {
	headers []string
	rows    [][]cell
	widths  []int
}

// NewTable creates a new table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row of plain values. The number of values should match the
// number of headers.
func (t *Table) AddRow(values ...string) {
	t.addRow(values, lipgloss.NewStyle())
}

// AddGradedRow adds a row whose first column is a letter grade, styled by
// GradeStyle. The remaining values are rendered plain.
func (t *Table) AddGradedRow(grade string, values ...string) {
	t.addRow(append([]string{grade}, values...), GradeStyle(grade))
}

func (t *Table) addRow(values []string, first lipgloss.Style) {
	plain := lipgloss.NewStyle()
	row := make([]cell, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i].text = values[i]
		}
		row[i].style = plain
		if i == 0 {
			row[i].style = first
		}
		if len(row[i].text) > t.widths[i] {
			t.widths[i] = len(row[i].text)
		}
	}
	t.rows = append(t.rows, row)
}

// Render returns the formatted table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row.
	for i, h := range t.headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleHeader.Render(pad(h, t.widths[i])))
	}
	sb.WriteString("\n")

	// Separator.
	for i, w := range t.widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleMuted.Render(strings.Repeat("─", w)))
	}
	sb.WriteString("\n")

	// Data rows. Cells are padded before styling so the escape sequences sit
	// outside the aligned text.
	for _, row := range t.rows {
		for i, c := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(c.style.Render(pad(c.text, t.widths[i])))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Print writes the table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// pad right-pads a string to the given width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
