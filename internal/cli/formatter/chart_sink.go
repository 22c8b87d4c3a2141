package formatter

import (
	"fmt"
	"strings"

	"github.com/alexmorozov/lachesis/internal/chart"
)

// TerminalSink draws chart specs as lipgloss-styled text blocks. It is the
// charting sink behind the stats view's chart mounts.
type TerminalSink struct{}

// New implements chart.Sink.
func (TerminalSink) New(spec chart.Spec) chart.Instance {
	return &terminalChart{spec: spec}
}

type terminalChart struct {
	spec     chart.Spec
	disposed bool
}

func (c *terminalChart) Dispose() { c.disposed = true }

func (c *terminalChart) Render() string {
	if c.disposed {
		return ""
	}
	switch c.spec.Kind {
	case chart.KindBar:
		return c.renderBars()
	case chart.KindProportion:
		return c.renderProportions()
	}
	return ""
}

const chartBarWidth = 24

func (c *terminalChart) renderBars() string {
	var b strings.Builder
	b.WriteString(Header(c.spec.Title) + "\n")

	labelWidth := 0
	for _, bar := range c.spec.Bars {
		if len(bar.Label) > labelWidth {
			labelWidth = len(bar.Label)
		}
	}
	if labelWidth > 20 {
		labelWidth = 20
	}

	for _, bar := range c.spec.Bars {
		overload := bar.Category == chart.CategoryOverload
		b.WriteString(fmt.Sprintf("%s %s\n",
			PadRight(bar.Label, labelWidth),
			RenderUtilization(bar.Value, c.spec.AxisMax, chartBarWidth, overload)))
	}
	return b.String()
}

func (c *terminalChart) renderProportions() string {
	var b strings.Builder
	b.WriteString(Header(c.spec.Title) + "\n")

	labelWidth := 0
	for _, s := range c.spec.Slices {
		if len(s.Label) > labelWidth {
			labelWidth = len(s.Label)
		}
	}
	if labelWidth > 20 {
		labelWidth = 20
	}

	for _, s := range c.spec.Slices {
		b.WriteString(fmt.Sprintf("%s %s\n",
			PadRight(s.Label, labelWidth),
			RenderProgress(s.Value/100, chartBarWidth)))
	}
	return b.String()
}
