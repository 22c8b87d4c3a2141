package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a coverage bar like [████░░░░] 45%.
// The bar is colored by percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderUtilization renders a utilization bar scaled against axisMax
// percent, with a dim tick at the 100% position so overload reads
// immediately. Overloaded bars render in the red category.
func RenderUtilization(percent, axisMax float64, width int, overload bool) string {
	if axisMax <= 100 {
		axisMax = 120
	}
	if width < 4 {
		width = 4
	}
	if percent < 0 {
		percent = 0
	}

	frac := percent / axisMax
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	tick := int(100 / axisMax * float64(width))

	style := StyleGreen
	if overload {
		style = StyleRed
	} else if percent >= 90 {
		style = StyleYellow
	}

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < width; i++ {
		switch {
		case i < filled:
			b.WriteString(style.Render(filledBlock))
		case i == tick:
			b.WriteString(StyleDim.Render("┊"))
		default:
			b.WriteString(StyleDim.Render(emptyBlock))
		}
	}
	b.WriteString("] ")
	b.WriteString(fmt.Sprintf("%3.0f%%", percent))
	return b.String()
}
