package workflow

import (
	"context"
	"sync"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/gateway"
)

// fakeAPI substitutes the planning service. Behavior is supplied per test
// through function fields; unset fields answer with empty success. Every
// exchange is recorded so tests can assert what did (or did not) go over
// the wire.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	listResourcesFn  func() ([]domain.Resource, error)
	createResourceFn func(gateway.ResourceInput) (*domain.Resource, error)
	updateResourceFn func(int, gateway.ResourceUpdate) (*domain.Resource, error)
	deleteResourceFn func(int) error

	listTasksFn  func() ([]domain.Task, error)
	createTaskFn func(gateway.TaskInput) (*domain.Task, error)
	updateTaskFn func(int, gateway.TaskUpdate) (*domain.Task, error)
	deleteTaskFn func(int) error

	alternativesFn func() (*gateway.AlternativesResult, error)
	selectFn       func(int) (*gateway.SelectionResult, error)
	statsFn        func(*int) (*domain.Stats, error)

	mlInfoFn func() (*domain.MLInfo, error)
	trainFn  func() (*gateway.TrainResult, error)

	seedFn   func() (*gateway.SeedResult, error)
	clearFn  func() (*gateway.ClearResult, error)
	exportFn func(string) ([]byte, error)
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeAPI) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) ListResources(context.Context) ([]domain.Resource, error) {
	f.record("list_resources")
	if f.listResourcesFn != nil {
		return f.listResourcesFn()
	}
	return nil, nil
}

func (f *fakeAPI) CreateResource(_ context.Context, in gateway.ResourceInput) (*domain.Resource, error) {
	f.record("create_resource")
	if f.createResourceFn != nil {
		return f.createResourceFn(in)
	}
	return &domain.Resource{Name: in.Name, Type: in.Type, AvailableHours: in.AvailableHours}, nil
}

func (f *fakeAPI) GetResource(_ context.Context, id int) (*domain.Resource, error) {
	f.record("get_resource")
	return &domain.Resource{ID: id}, nil
}

func (f *fakeAPI) UpdateResource(_ context.Context, id int, in gateway.ResourceUpdate) (*domain.Resource, error) {
	f.record("update_resource")
	if f.updateResourceFn != nil {
		return f.updateResourceFn(id, in)
	}
	return &domain.Resource{ID: id}, nil
}

func (f *fakeAPI) DeleteResource(_ context.Context, id int) error {
	f.record("delete_resource")
	if f.deleteResourceFn != nil {
		return f.deleteResourceFn(id)
	}
	return nil
}

func (f *fakeAPI) ListTasks(context.Context) ([]domain.Task, error) {
	f.record("list_tasks")
	if f.listTasksFn != nil {
		return f.listTasksFn()
	}
	return nil, nil
}

func (f *fakeAPI) CreateTask(_ context.Context, in gateway.TaskInput) (*domain.Task, error) {
	f.record("create_task")
	if f.createTaskFn != nil {
		return f.createTaskFn(in)
	}
	return &domain.Task{Title: in.Title, RequiredHours: in.RequiredHours, Priority: in.Priority}, nil
}

func (f *fakeAPI) GetTask(_ context.Context, id int) (*domain.Task, error) {
	f.record("get_task")
	return &domain.Task{ID: id}, nil
}

func (f *fakeAPI) UpdateTask(_ context.Context, id int, in gateway.TaskUpdate) (*domain.Task, error) {
	f.record("update_task")
	if f.updateTaskFn != nil {
		return f.updateTaskFn(id, in)
	}
	return &domain.Task{ID: id}, nil
}

func (f *fakeAPI) DeleteTask(_ context.Context, id int) error {
	f.record("delete_task")
	if f.deleteTaskFn != nil {
		return f.deleteTaskFn(id)
	}
	return nil
}

func (f *fakeAPI) Alternatives(context.Context) (*gateway.AlternativesResult, error) {
	f.record("alternatives")
	if f.alternativesFn != nil {
		return f.alternativesFn()
	}
	return &gateway.AlternativesResult{}, nil
}

func (f *fakeAPI) GetAlternative(_ context.Context, id int) (*domain.Alternative, error) {
	f.record("get_alternative")
	return &domain.Alternative{ID: id}, nil
}

func (f *fakeAPI) SelectAlternative(_ context.Context, id int) (*gateway.SelectionResult, error) {
	f.record("select_alternative")
	if f.selectFn != nil {
		return f.selectFn(id)
	}
	return &gateway.SelectionResult{AlternativeID: id}, nil
}

func (f *fakeAPI) Stats(_ context.Context, alternativeID *int) (*domain.Stats, error) {
	f.record("stats")
	if f.statsFn != nil {
		return f.statsFn(alternativeID)
	}
	return &domain.Stats{}, nil
}

func (f *fakeAPI) MLInfo(context.Context) (*domain.MLInfo, error) {
	f.record("ml_info")
	if f.mlInfoFn != nil {
		return f.mlInfoFn()
	}
	return &domain.MLInfo{}, nil
}

func (f *fakeAPI) TrainModel(context.Context) (*gateway.TrainResult, error) {
	f.record("train")
	if f.trainFn != nil {
		return f.trainFn()
	}
	return &gateway.TrainResult{Status: "success"}, nil
}

func (f *fakeAPI) LoadExampleData(context.Context) (*gateway.SeedResult, error) {
	f.record("seed")
	if f.seedFn != nil {
		return f.seedFn()
	}
	return &gateway.SeedResult{}, nil
}

func (f *fakeAPI) ClearAllData(context.Context) (*gateway.ClearResult, error) {
	f.record("clear")
	if f.clearFn != nil {
		return f.clearFn()
	}
	return &gateway.ClearResult{}, nil
}

func (f *fakeAPI) ExportAlternatives(_ context.Context, format string) ([]byte, error) {
	f.record("export")
	if f.exportFn != nil {
		return f.exportFn(format)
	}
	return nil, nil
}

// scriptedConfirmer answers confirmation prompts from a fixed script and
// records the prompts it was asked.
type scriptedConfirmer struct {
	answers []bool
	prompts []string
}

func (c *scriptedConfirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	if len(c.answers) == 0 {
		return false
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a
}
