package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// PriorityPill returns a colored priority indicator. Priority 1 is the
// most urgent.
func PriorityPill(priority int) string {
	label := fmt.Sprintf("P%d", priority)
	switch priority {
	case 1:
		return StyleRed.Render(label)
	case 2:
		return StyleYellow.Render(label)
	case 3:
		return StyleBlue.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// UtilizationPill returns a colored utilization indicator such as "104% ▲".
func UtilizationPill(percent float64, overload bool) string {
	text := fmt.Sprintf("%.0f%%", percent)
	if overload {
		return StyleRed.Render(text + " ▲")
	}
	if percent >= 90 {
		return StyleYellow.Render(text)
	}
	return StyleGreen.Render(text)
}

// RecommendBadge returns the ML endorsement badge for an alternative.
func RecommendBadge(score float64) string {
	return StylePurple.Render(fmt.Sprintf("★ recommended (%.0f%%)", score*100))
}
