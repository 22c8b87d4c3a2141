// Package filter derives displayed subsets of the store's collections.
//
// Filtering is pure and order-preserving: it never mutates the source
// collection and holds no state, so clearing a criterion recovers the full
// set without a re-fetch.
package filter

import (
	"strings"

	"github.com/alexmorozov/lachesis/internal/domain"
)

// ResourceCriteria selects resources by free-text search and exact type.
// Zero values match everything.
type ResourceCriteria struct {
	Search string
	Type   string
}

// TaskCriteria selects tasks by free-text search and exact priority.
// A Priority of 0 means no priority filter.
type TaskCriteria struct {
	Search   string
	Priority int
}

// Resources returns the subsequence of list matching c, in the original
// order. The search matches case-insensitively on name or type.
func Resources(list []domain.Resource, c ResourceCriteria) []domain.Resource {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]domain.Resource, 0, len(list))
	for _, r := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Type), search) {
			continue
		}
		if c.Type != "" && r.Type != c.Type {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Tasks returns the subsequence of list matching c, in the original order.
// The search matches case-insensitively on title.
func Tasks(list []domain.Task, c TaskCriteria) []domain.Task {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]domain.Task, 0, len(list))
	for _, t := range list {
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		if c.Priority != 0 && t.Priority != c.Priority {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ResourceTypes returns the distinct resource types in first-seen order,
// for populating the type filter dropdown.
func ResourceTypes(list []domain.Resource) []string {
	seen := make(map[string]bool)
	var types []string
	for _, r := range list {
		if !seen[r.Type] {
			seen[r.Type] = true
			types = append(types, r.Type)
		}
	}
	return types
}
