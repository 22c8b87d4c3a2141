package domain

import "fmt"

const (
	// PriorityHighest and PriorityLowest bound the task priority scale.
	// 1 is the most urgent, 5 the least.
	PriorityHighest = 1
	PriorityLowest  = 5
)

// ValidateResource checks the fields of a resource before it is sent to the
// backend. The backend validates again; this catches obvious mistakes locally.
func ValidateResource(name, typ string, availableHours float64) error {
	if name == "" {
		return fmt.Errorf("resource name is required")
	}
	if typ == "" {
		return fmt.Errorf("resource type is required")
	}
	if availableHours <= 0 {
		return fmt.Errorf("available hours must be positive, got %g", availableHours)
	}
	return nil
}

// ValidateTask checks the fields of a task before it is sent to the backend.
func ValidateTask(title string, requiredHours float64, priority int) error {
	if title == "" {
		return fmt.Errorf("task title is required")
	}
	if requiredHours <= 0 {
		return fmt.Errorf("required hours must be positive, got %g", requiredHours)
	}
	if priority < PriorityHighest || priority > PriorityLowest {
		return fmt.Errorf("priority must be between %d and %d, got %d", PriorityHighest, PriorityLowest, priority)
	}
	return nil
}

// JoinRecommendations indexes recommendations by alternative ID for
// client-side annotation of the alternatives list. Recommendations whose
// alternative is not in alts are dropped.
func JoinRecommendations(alts []Alternative, recs []Recommendation) map[int]Recommendation {
	known := make(map[int]bool, len(alts))
	for _, a := range alts {
		known[a.ID] = true
	}
	joined := make(map[int]Recommendation)
	for _, r := range recs {
		if known[r.AlternativeID] {
			joined[r.AlternativeID] = r
		}
	}
	return joined
}
