package formatter

import (
	"testing"

	"github.com/alexmorozov/lachesis/internal/chart"
	"github.com/stretchr/testify/assert"
)

func TestTerminalSinkRendersBars(t *testing.T) {
	inst := TerminalSink{}.New(chart.Spec{
		Kind:    chart.KindBar,
		Title:   "Utilization",
		AxisMax: 120,
		Bars: []chart.Bar{
			{Label: "Alice", Value: 75, Category: chart.CategoryNormal},
			{Label: "Bob", Value: 112, Category: chart.CategoryOverload},
		},
	})

	out := inst.Render()

	assert.Contains(t, out, "UTILIZATION")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "112%")
}

func TestTerminalSinkRendersProportions(t *testing.T) {
	inst := TerminalSink{}.New(chart.Spec{
		Kind:  chart.KindProportion,
		Title: "Coverage",
		Slices: []chart.Slice{
			{Label: "Implement API", Value: 100},
			{Label: "Write docs", Value: 40},
		},
	})

	out := inst.Render()

	assert.Contains(t, out, "COVERAGE")
	assert.Contains(t, out, "Write docs")
	assert.Contains(t, out, "40%")
}

func TestTerminalSinkDisposedRendersNothing(t *testing.T) {
	inst := TerminalSink{}.New(chart.Spec{Kind: chart.KindBar, Title: "Utilization"})

	inst.Dispose()

	assert.Equal(t, "", inst.Render())
}
