package domain

import "fmt"

// Resource is a schedulable capacity unit with a maximum available time budget.
// Owned by the backend; the client holds a cached copy keyed by ID.
type Resource struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	AvailableHours float64 `json:"available_hours"`
}

// Task is a unit of required work with an hours demand and urgency priority.
type Task struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	RequiredHours float64 `json:"required_hours"`
	Priority      int     `json:"priority"`
}

// Allocation assigns some hours of one resource to one task. It exists only
// inside an Alternative and is never independently addressable.
type Allocation struct {
	ResourceID   int     `json:"resource_id"`
	ResourceName string  `json:"resource_name"`
	TaskID       int     `json:"task_id"`
	TaskTitle    string  `json:"task_title"`
	Hours        float64 `json:"hours"`
}

// Alternative is one complete, scored allocation plan proposed by the
// planning service. Immutable once returned: the client only ever replaces
// the whole collection, never individual entries.
type Alternative struct {
	ID          int          `json:"id"`
	Explanation string       `json:"explanation"`
	Score       float64      `json:"score"`
	Allocations []Allocation `json:"allocations"`
}

// ScoreLabel renders the score with one decimal, matching the labels used
// in selectors and list rows ("87.3").
func (a Alternative) ScoreLabel() string {
	return fmt.Sprintf("%.1f", a.Score)
}

// Label returns the display label used for selector options.
func (a Alternative) Label() string {
	return fmt.Sprintf("Alternative %d (score %s)", a.ID, a.ScoreLabel())
}

// TotalHours sums the hours across all allocations of the alternative.
func (a Alternative) TotalHours() float64 {
	var total float64
	for _, al := range a.Allocations {
		total += al.Hours
	}
	return total
}

// Recommendation is an ML-derived endorsement attached to an Alternative
// after training. Joined client-side against Alternative.ID.
type Recommendation struct {
	AlternativeID       int     `json:"alternative_id"`
	IsRecommended       bool    `json:"is_recommended"`
	RecommendationScore float64 `json:"recommendation_score"`
}

// ResourceStats reports utilization for a single resource within one
// alternative's allocation plan.
type ResourceStats struct {
	ResourceID         int     `json:"resource_id"`
	ResourceName       string  `json:"resource_name"`
	AvailableHours     float64 `json:"available_hours"`
	AllocatedHours     float64 `json:"allocated_hours"`
	UtilizationPercent float64 `json:"utilization_percent"`
	Overload           bool    `json:"overload"`
}

// TaskStats reports coverage for a single task within one alternative's
// allocation plan.
type TaskStats struct {
	TaskID          int     `json:"task_id"`
	TaskTitle       string  `json:"task_title"`
	RequiredHours   float64 `json:"required_hours"`
	AllocatedHours  float64 `json:"allocated_hours"`
	CoveragePercent float64 `json:"coverage_percent"`
	Priority        int     `json:"priority"`
}

// Stats is the backend-computed distribution report for one alternative
// (or the best one). The client treats it as read-only.
type Stats struct {
	TotalResources         int             `json:"total_resources"`
	TotalTasks             int             `json:"total_tasks"`
	TotalAvailableHours    float64         `json:"total_available_hours"`
	TotalRequiredHours     float64         `json:"total_required_hours"`
	TotalAllocatedHours    float64         `json:"total_allocated_hours"`
	OverallCoveragePercent float64         `json:"overall_coverage_percent"`
	ResourceStats          []ResourceStats `json:"resource_stats"`
	TaskStats              []TaskStats     `json:"task_stats"`
	Warnings               []string        `json:"warnings"`
}

// Empty reports whether the stats carry no per-resource and no per-task
// rows, e.g. when no alternatives have been generated yet.
func (s Stats) Empty() bool {
	return len(s.ResourceStats) == 0 && len(s.TaskStats) == 0
}

// MLInfo describes the state of the recommendation model. Re-fetched after
// any action that could change training state.
type MLInfo struct {
	IsTrained       bool     `json:"is_trained"`
	MLAvailable     bool     `json:"ml_available"`
	ModelExists     bool     `json:"model_exists"`
	Accuracy        *float64 `json:"accuracy,omitempty"`
	TrainingSamples *int     `json:"training_samples,omitempty"`
}
