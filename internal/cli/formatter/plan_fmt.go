package formatter

import (
	"fmt"
	"strings"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatResourceList renders the resource collection as a table.
func FormatResourceList(resources []domain.Resource) string {
	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.Name,
			StylePurple.Render(r.Type),
			FormatHours(r.AvailableHours),
		})
	}
	return RenderTable([]string{"ID", "Name", "Type", "Available"}, rows)
}

// FormatTaskList renders the task collection as a table.
func FormatTaskList(tasks []domain.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			t.Title,
			FormatHours(t.RequiredHours),
			PriorityPill(t.Priority),
		})
	}
	return RenderTable([]string{"ID", "Title", "Required", "Prio"}, rows)
}

// FormatAlternativeList renders the alternatives with their scores and any
// recommendation badges.
func FormatAlternativeList(alts []domain.Alternative, recs map[int]domain.Recommendation) string {
	if len(alts) == 0 {
		return Dim("No alternatives yet. Run `generate` once resources and tasks exist.")
	}

	var b strings.Builder
	for _, a := range alts {
		badge := ""
		if rec, ok := recs[a.ID]; ok && rec.IsRecommended {
			badge = "  " + RecommendBadge(rec.RecommendationScore)
		}
		b.WriteString(fmt.Sprintf("%s %s%s\n",
			StyleGreen.Render(fmt.Sprintf("#%d", a.ID)),
			Bold("score "+a.ScoreLabel()),
			badge))
		b.WriteString("   " + Dim(a.Explanation) + "\n")
		b.WriteString(fmt.Sprintf("   %s across %d allocations\n\n",
			FormatHours(a.TotalHours()), len(a.Allocations)))
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatAlternative renders one alternative in full, including its
// allocation table.
func FormatAlternative(a domain.Alternative, rec *domain.Recommendation) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Alternative %d", a.ID)) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Score    "), Bold(a.ScoreLabel())))
	if rec != nil && rec.IsRecommended {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Model    "), RecommendBadge(rec.RecommendationScore)))
	}
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Rationale"), a.Explanation))

	rows := make([][]string, 0, len(a.Allocations))
	for _, al := range a.Allocations {
		rows = append(rows, []string{
			al.ResourceName,
			Dim("→"),
			al.TaskTitle,
			FormatHours(al.Hours),
		})
	}
	b.WriteString(RenderTable([]string{"Resource", "", "Task", "Hours"}, rows))
	return b.String()
}

// FormatComparison renders two alternatives side by side when the terminal
// is wide enough, stacked otherwise.
func FormatComparison(first, second domain.Alternative, firstStats, secondStats domain.Stats, width int) string {
	left := comparisonPane(first, firstStats)
	right := comparisonPane(second, secondStats)

	if width < 96 {
		return left + "\n\n" + right
	}

	colWidth := (width - 3) / 2
	leftCol := lipgloss.NewStyle().Width(colWidth).Render(left)
	divider := lipgloss.NewStyle().Foreground(ColorDim).Render("│")
	rightCol := lipgloss.NewStyle().Width(colWidth).Render(right)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol)
}

func comparisonPane(a domain.Alternative, stats domain.Stats) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Alternative %d", a.ID)) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Score    "), Bold(a.ScoreLabel())))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Coverage "), RenderProgress(stats.OverallCoveragePercent/100, 12)))
	b.WriteString(fmt.Sprintf("%s %s allocated\n", Dim("Hours    "), FormatHours(stats.TotalAllocatedHours)))

	overloads := 0
	for _, rs := range stats.ResourceStats {
		if rs.Overload {
			overloads++
		}
	}
	if overloads > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Overload "),
			StyleRed.Render(fmt.Sprintf("%d resource(s)", overloads))))
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Overload "), StyleGreen.Render("none")))
	}
	b.WriteString(Dim(a.Explanation) + "\n")
	return b.String()
}
