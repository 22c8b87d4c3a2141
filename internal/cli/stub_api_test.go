package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/gateway"
)

// stubAPI is an in-memory planning service for TUI tests. It keeps real
// collections so create/update/delete and refetch behave like the backend,
// and answers the alternatives exchange with a preset generation.
type stubAPI struct {
	mu     sync.Mutex
	nextID int

	resources []domain.Resource
	tasks     []domain.Task

	alternatives    []domain.Alternative
	recommendations []domain.Recommendation
	stats           domain.Stats

	selected []int
}

func newStubAPI() *stubAPI {
	return &stubAPI{nextID: 1}
}

// seededStub is a stub with a small populated planner: two resources, one
// task, two scored alternatives, and a non-empty distribution report.
func seededStub() *stubAPI {
	s := newStubAPI()
	s.resources = []domain.Resource{
		{ID: 1, Name: "Alice", Type: "developer", AvailableHours: 40},
		{ID: 2, Name: "Bob", Type: "designer", AvailableHours: 30},
	}
	s.tasks = []domain.Task{
		{ID: 1, Title: "Implement API", RequiredHours: 36, Priority: 1},
	}
	s.nextID = 3
	s.alternatives = []domain.Alternative{
		{ID: 1, Score: 87.3, Explanation: "Balanced load"},
		{ID: 2, Score: 79.0, Explanation: "Priority first"},
	}
	s.recommendations = []domain.Recommendation{
		{AlternativeID: 1, IsRecommended: true, RecommendationScore: 0.8},
	}
	s.stats = domain.Stats{
		TotalResources:         2,
		TotalTasks:             1,
		TotalAllocatedHours:    36,
		TotalRequiredHours:     36,
		TotalAvailableHours:    70,
		OverallCoveragePercent: 100,
		ResourceStats: []domain.ResourceStats{
			{ResourceID: 1, ResourceName: "Alice", AvailableHours: 40, AllocatedHours: 36, UtilizationPercent: 90},
		},
		TaskStats: []domain.TaskStats{
			{TaskID: 1, TaskTitle: "Implement API", RequiredHours: 36, AllocatedHours: 36, CoveragePercent: 100, Priority: 1},
		},
	}
	return s
}

func (s *stubAPI) ListResources(context.Context) ([]domain.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Resource(nil), s.resources...), nil
}

func (s *stubAPI) CreateResource(_ context.Context, in gateway.ResourceInput) (*domain.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := domain.Resource{ID: s.nextID, Name: in.Name, Type: in.Type, AvailableHours: in.AvailableHours}
	s.nextID++
	s.resources = append(s.resources, r)
	return &r, nil
}

func (s *stubAPI) GetResource(_ context.Context, id int) (*domain.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.resources {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, &gateway.RejectedError{Status: 404, Message: fmt.Sprintf("resource %d not found", id)}
}

func (s *stubAPI) UpdateResource(_ context.Context, id int, in gateway.ResourceUpdate) (*domain.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.resources {
		if r.ID != id {
			continue
		}
		if in.Name != nil {
			r.Name = *in.Name
		}
		if in.Type != nil {
			r.Type = *in.Type
		}
		if in.AvailableHours != nil {
			r.AvailableHours = *in.AvailableHours
		}
		s.resources[i] = r
		return &r, nil
	}
	return nil, &gateway.RejectedError{Status: 404, Message: fmt.Sprintf("resource %d not found", id)}
}

func (s *stubAPI) DeleteResource(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.resources {
		if r.ID == id {
			s.resources = append(s.resources[:i], s.resources[i+1:]...)
			return nil
		}
	}
	return &gateway.RejectedError{Status: 404, Message: fmt.Sprintf("resource %d not found", id)}
}

func (s *stubAPI) ListTasks(context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Task(nil), s.tasks...), nil
}

func (s *stubAPI) CreateTask(_ context.Context, in gateway.TaskInput) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := domain.Task{ID: s.nextID, Title: in.Title, RequiredHours: in.RequiredHours, Priority: in.Priority}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return &t, nil
}

func (s *stubAPI) GetTask(_ context.Context, id int) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, &gateway.RejectedError{Status: 404, Message: fmt.Sprintf("task %d not found", id)}
}

func (s *stubAPI) UpdateTask(_ context.Context, id int, in gateway.TaskUpdate) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}
		if in.Title != nil {
			t.Title = *in.Title
		}
		if in.RequiredHours != nil {
			t.RequiredHours = *in.RequiredHours
		}
		if in.Priority != nil {
			t.Priority = *in.Priority
		}
		s.tasks[i] = t
		return &t, nil
	}
	return nil, &gateway.RejectedError{Status: 404, Message: fmt.Sprintf("task %d not found", id)}
}

func (s *stubAPI) DeleteTask(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return &gateway.RejectedError{Status: 404, Message: fmt.Sprintf("task %d not found", id)}
}

func (s *stubAPI) Alternatives(context.Context) (*gateway.AlternativesResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.resources) == 0 || len(s.tasks) == 0 {
		return nil, &gateway.RejectedError{Status: 400, Message: "No resources or tasks to plan"}
	}
	return &gateway.AlternativesResult{
		Alternatives:    append([]domain.Alternative(nil), s.alternatives...),
		Total:           len(s.alternatives),
		Recommendations: append([]domain.Recommendation(nil), s.recommendations...),
	}, nil
}

func (s *stubAPI) GetAlternative(_ context.Context, id int) (*domain.Alternative, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alternatives {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, &gateway.RejectedError{Status: 404, Message: fmt.Sprintf("alternative %d not found", id)}
}

func (s *stubAPI) SelectAlternative(_ context.Context, id int) (*gateway.SelectionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = append(s.selected, id)
	return &gateway.SelectionResult{Message: "ok", AlternativeID: id}, nil
}

func (s *stubAPI) Stats(context.Context, *int) (*domain.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := s.stats
	return &stats, nil
}

func (s *stubAPI) MLInfo(context.Context) (*domain.MLInfo, error) {
	return &domain.MLInfo{MLAvailable: true}, nil
}

func (s *stubAPI) TrainModel(context.Context) (*gateway.TrainResult, error) {
	return &gateway.TrainResult{Status: "insufficient_data", Message: "Need at least 5 selections"}, nil
}

func (s *stubAPI) LoadExampleData(context.Context) (*gateway.SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < 5; i++ {
		s.resources = append(s.resources, domain.Resource{
			ID: s.nextID, Name: fmt.Sprintf("Resource %d", s.nextID), Type: "developer", AvailableHours: 40,
		})
		s.nextID++
	}
	for i := 0; i < 8; i++ {
		s.tasks = append(s.tasks, domain.Task{
			ID: s.nextID, Title: fmt.Sprintf("Task %d", s.nextID), RequiredHours: 16, Priority: 3,
		})
		s.nextID++
	}
	return &gateway.SeedResult{ResourcesAdded: 5, TasksAdded: 8}, nil
}

func (s *stubAPI) ClearAllData(context.Context) (*gateway.ClearResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := &gateway.ClearResult{
		ResourcesDeleted:    len(s.resources),
		TasksDeleted:        len(s.tasks),
		AlternativesDeleted: len(s.alternatives),
	}
	s.resources = nil
	s.tasks = nil
	s.alternatives = nil
	s.recommendations = nil
	return res, nil
}

func (s *stubAPI) ExportAlternatives(context.Context, string) ([]byte, error) {
	return []byte(`[]`), nil
}
