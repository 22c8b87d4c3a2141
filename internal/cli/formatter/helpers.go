package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatHours renders an hours value compactly: whole numbers without a
// fraction ("40h"), fractional values with one decimal ("7.5h").
func FormatHours(hours float64) string {
	if hours == float64(int64(hours)) {
		return fmt.Sprintf("%dh", int64(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}

// TrimFloat renders a float without a trailing fraction when it is whole.
// Used to pre-fill form fields from numeric values.
func TrimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatPercent renders a percentage with no decimals.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// PadRight pads s with spaces to the given visible width, truncating if it
// is too long.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}
