package formatter

import (
	"fmt"
	"strings"

	"github.com/alexmorozov/lachesis/internal/domain"
)

// FormatStats renders a full distribution report: totals, the
// per-resource utilization table, the per-task coverage table, and any
// backend warnings.
func FormatStats(stats domain.Stats) string {
	var b strings.Builder

	b.WriteString(Header("Distribution") + "\n")
	b.WriteString(fmt.Sprintf("%s %d resources, %d tasks\n",
		Dim("Scope    "), stats.TotalResources, stats.TotalTasks))
	b.WriteString(fmt.Sprintf("%s %s allocated of %s required (%s available)\n",
		Dim("Hours    "),
		Bold(FormatHours(stats.TotalAllocatedHours)),
		FormatHours(stats.TotalRequiredHours),
		FormatHours(stats.TotalAvailableHours)))
	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim("Coverage "), RenderProgress(stats.OverallCoveragePercent/100, 16)))

	if len(stats.ResourceStats) > 0 {
		b.WriteString("\n" + Header("Resources") + "\n")
		rows := make([][]string, 0, len(stats.ResourceStats))
		for _, rs := range stats.ResourceStats {
			rows = append(rows, []string{
				rs.ResourceName,
				FormatHours(rs.AllocatedHours) + Dim("/"+FormatHours(rs.AvailableHours)),
				UtilizationPill(rs.UtilizationPercent, rs.Overload),
			})
		}
		b.WriteString(RenderTable([]string{"Resource", "Allocated", "Utilization"}, rows))
	}

	if len(stats.TaskStats) > 0 {
		b.WriteString("\n" + Header("Tasks") + "\n")
		rows := make([][]string, 0, len(stats.TaskStats))
		for _, ts := range stats.TaskStats {
			rows = append(rows, []string{
				ts.TaskTitle,
				PriorityPill(ts.Priority),
				FormatHours(ts.AllocatedHours) + Dim("/"+FormatHours(ts.RequiredHours)),
				RenderProgress(ts.CoveragePercent/100, 10),
			})
		}
		b.WriteString(RenderTable([]string{"Task", "Prio", "Allocated", "Coverage"}, rows))
	}

	if len(stats.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range stats.Warnings {
			b.WriteString(StyleYellow.Render("⚠ ") + w + "\n")
		}
	}

	return b.String()
}

// FormatMLInfo renders the recommendation model state.
func FormatMLInfo(info domain.MLInfo) string {
	var b strings.Builder
	b.WriteString(Header("Recommendation Model") + "\n")

	if !info.MLAvailable {
		b.WriteString(Dim("ML support is not available on the planning service.") + "\n")
		return b.String()
	}

	status := StyleYellow.Render("○ not trained")
	if info.IsTrained {
		status = StyleGreen.Render("● trained")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status   "), status))

	if info.Accuracy != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Accuracy "), Bold(FormatPercent(*info.Accuracy*100))))
	}
	if info.TrainingSamples != nil {
		b.WriteString(fmt.Sprintf("%s %d selections\n", Dim("Samples  "), *info.TrainingSamples))
	}
	if !info.IsTrained {
		b.WriteString(Dim("Select alternatives to build up training data, then run `ml train`.") + "\n")
	}
	return b.String()
}
