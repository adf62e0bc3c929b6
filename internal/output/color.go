// Package output provides styled terminal rendering helpers for pygrade.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for good grades and positive indicators.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for failing grades and error counts.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for middling grades and warning counts.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and rules.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for summary metric labels.
	StyleLabel = lipgloss.NewStyle().Width(24)

	// StyleValue is used for summary metric values.
	StyleValue = lipgloss.NewStyle().Bold(true).Width(12)
)

// noColor tracks whether color output is disabled.
var noColor bool

// sectionWidth is the rule width under section headers.
var sectionWidth = 66

// SetWidth sets the section rule width (the output.width config key).
func SetWidth(w int) {
	if w > 0 {
		sectionWidth = w
	}
}

// SetNoColor disables or enables color output globally. When disabled, all
// package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(24)
		StyleValue = plain.Width(12)
		return
	}
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleLabel = lipgloss.NewStyle().Width(24)
	StyleValue = lipgloss.NewStyle().Bold(true).Width(12)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// GradeStyle returns the style for a letter grade: A range green, B and C
// range yellow, D and F red.
func GradeStyle(grade string) lipgloss.Style {
	switch {
	case strings.HasPrefix(grade, "A"):
		return StyleSuccess
	case strings.HasPrefix(grade, "B"), strings.HasPrefix(grade, "C"):
		return StyleWarning
	default:
		return StyleError
	}
}

// Section renders a section header with a rule underneath.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", sectionWidth))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
