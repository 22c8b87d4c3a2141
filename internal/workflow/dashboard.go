package workflow

import (
	"context"
	"sync"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/gateway"
)

// DashboardSummary is the joined result of the dashboard fan-out. Counts
// for failed branches stay at their zero fallback; Failed names the
// branches that could not be fetched.
type DashboardSummary struct {
	ResourceCount    int
	TaskCount        int
	AlternativeCount int
	BestScore        *float64
	Stats            *domain.Stats
	Failed           []string
}

// Partial reports whether any branch of the refresh failed.
func (s *DashboardSummary) Partial() bool { return len(s.Failed) > 0 }

// RefreshDashboard fans out independent fetches for resources, tasks, and
// alternatives, then conditionally fetches stats when both resources and
// tasks are present. Each branch's failure is tolerated in isolation: the
// dashboard is a summary view, not a transactional one, so a failed tile
// shows its fallback value instead of failing the whole refresh.
func (o *Orchestrator) RefreshDashboard(ctx context.Context) (*DashboardSummary, error) {
	if err := o.begin(DashboardRefresh); err != nil {
		return nil, err
	}
	defer o.finish(DashboardRefresh, nil)

	var (
		wg        sync.WaitGroup
		resources []domain.Resource
		tasks     []domain.Task
		alts      *gateway.AlternativesResult
		errs      [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		resources, errs[0] = o.api.ListResources(ctx)
	}()
	go func() {
		defer wg.Done()
		tasks, errs[1] = o.api.ListTasks(ctx)
	}()
	go func() {
		defer wg.Done()
		alts, errs[2] = o.api.Alternatives(ctx)
	}()
	wg.Wait()

	summary := &DashboardSummary{}

	if errs[0] == nil {
		o.store.ReplaceResources(resources)
		summary.ResourceCount = len(resources)
	} else {
		summary.Failed = append(summary.Failed, "resources")
	}

	if errs[1] == nil {
		o.store.ReplaceTasks(tasks)
		summary.TaskCount = len(tasks)
	} else {
		summary.Failed = append(summary.Failed, "tasks")
	}

	if errs[2] == nil {
		o.store.ReplaceAlternatives(alts.Alternatives, alts.Recommendations)
		summary.AlternativeCount = alts.Total
		if len(alts.Alternatives) > 0 {
			best := alts.Alternatives[0].Score
			for _, a := range alts.Alternatives[1:] {
				if a.Score > best {
					best = a.Score
				}
			}
			summary.BestScore = &best
		}
	} else {
		summary.Failed = append(summary.Failed, "alternatives")
	}

	// Stats only make sense once there is something to report on.
	if summary.ResourceCount > 0 && summary.TaskCount > 0 {
		stats, err := o.StatsFor(ctx, nil)
		if err != nil {
			summary.Failed = append(summary.Failed, "stats")
		} else {
			summary.Stats = stats
		}
	}

	return summary, nil
}
