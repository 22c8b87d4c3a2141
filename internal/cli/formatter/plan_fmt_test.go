package formatter

import (
	"strings"
	"testing"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPriorityPillLabels(t *testing.T) {
	assert.Contains(t, PriorityPill(1), "P1")
	assert.Contains(t, PriorityPill(5), "P5")
}

func TestUtilizationPillMarksOverload(t *testing.T) {
	assert.Contains(t, UtilizationPill(104, true), "▲")
	assert.NotContains(t, UtilizationPill(75, false), "▲")
}

func TestRecommendBadge(t *testing.T) {
	assert.Contains(t, RecommendBadge(0.8), "★ recommended (80%)")
}

func TestFormatAlternativeListEmpty(t *testing.T) {
	out := FormatAlternativeList(nil, nil)
	assert.Contains(t, out, "No alternatives yet")
}

func TestFormatAlternativeListBadgesRecommended(t *testing.T) {
	alts := []domain.Alternative{
		{ID: 1, Score: 87.3, Explanation: "Balanced load"},
		{ID: 2, Score: 79.0, Explanation: "Priority first"},
	}
	recs := map[int]domain.Recommendation{
		2: {AlternativeID: 2, IsRecommended: true, RecommendationScore: 0.8},
	}

	out := FormatAlternativeList(alts, recs)

	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "score 87.3")
	assert.Contains(t, out, "Balanced load")
	assert.Contains(t, out, "★ recommended (80%)")
	// Only the second alternative carries the badge.
	assert.Equal(t, 1, strings.Count(out, "★"))
}

func TestFormatAlternativeRendersAllocations(t *testing.T) {
	a := domain.Alternative{
		ID:          3,
		Score:       87.3,
		Explanation: "Balanced load",
		Allocations: []domain.Allocation{
			{ResourceName: "Alice", TaskTitle: "Implement API", Hours: 16},
		},
	}

	out := FormatAlternative(a, &domain.Recommendation{IsRecommended: true, RecommendationScore: 0.9})

	assert.Contains(t, out, "ALTERNATIVE 3")
	assert.Contains(t, out, "87.3")
	assert.Contains(t, out, "★ recommended (90%)")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Implement API")
	assert.Contains(t, out, "16h")
}

func TestFormatComparisonStacksWhenNarrow(t *testing.T) {
	first := domain.Alternative{ID: 1, Score: 87.3}
	second := domain.Alternative{ID: 2, Score: 79.0}

	out := FormatComparison(first, second, domain.Stats{}, domain.Stats{}, 80)

	assert.Contains(t, out, "ALTERNATIVE 1")
	assert.Contains(t, out, "ALTERNATIVE 2")
	assert.NotContains(t, out, "│")
}

func TestFormatComparisonSideBySideWhenWide(t *testing.T) {
	first := domain.Alternative{ID: 1, Score: 87.3}
	second := domain.Alternative{ID: 2, Score: 79.0}

	out := FormatComparison(first, second, domain.Stats{}, domain.Stats{}, 120)

	assert.Contains(t, out, "│")
}

func TestFormatStatsSections(t *testing.T) {
	stats := domain.Stats{
		TotalResources:         2,
		TotalTasks:             1,
		TotalAvailableHours:    70,
		TotalRequiredHours:     40,
		TotalAllocatedHours:    36,
		OverallCoveragePercent: 90,
		ResourceStats: []domain.ResourceStats{
			{ResourceName: "Alice", AvailableHours: 40, AllocatedHours: 36, UtilizationPercent: 90},
		},
		TaskStats: []domain.TaskStats{
			{TaskTitle: "Implement API", Priority: 1, RequiredHours: 40, AllocatedHours: 36, CoveragePercent: 90},
		},
		Warnings: []string{"Resource Bob is idle"},
	}

	out := FormatStats(stats)

	assert.Contains(t, out, "DISTRIBUTION")
	assert.Contains(t, out, "2 resources, 1 tasks")
	assert.Contains(t, out, "RESOURCES")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "TASKS")
	assert.Contains(t, out, "Implement API")
	assert.Contains(t, out, "Resource Bob is idle")
}

func TestFormatStatsOmitsEmptySections(t *testing.T) {
	out := FormatStats(domain.Stats{TotalResources: 1})

	assert.Contains(t, out, "DISTRIBUTION")
	assert.NotContains(t, out, "RESOURCES")
	assert.NotContains(t, out, "TASKS")
}

func TestFormatMLInfoStates(t *testing.T) {
	out := FormatMLInfo(domain.MLInfo{MLAvailable: false})
	assert.Contains(t, out, "not available")

	acc := 0.9
	samples := 12
	out = FormatMLInfo(domain.MLInfo{MLAvailable: true, IsTrained: true, Accuracy: &acc, TrainingSamples: &samples})
	assert.Contains(t, out, "● trained")
	assert.Contains(t, out, "90%")
	assert.Contains(t, out, "12 selections")

	out = FormatMLInfo(domain.MLInfo{MLAvailable: true})
	assert.Contains(t, out, "○ not trained")
	assert.Contains(t, out, "ml train")
}
