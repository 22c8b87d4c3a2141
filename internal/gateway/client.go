package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/google/uuid"
)

// ResourceInput holds the fields for creating a resource.
type ResourceInput struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	AvailableHours float64 `json:"available_hours"`
}

// ResourceUpdate holds optional fields for updating a resource.
// Nil fields are left unchanged by the backend.
type ResourceUpdate struct {
	Name           *string  `json:"name,omitempty"`
	Type           *string  `json:"type,omitempty"`
	AvailableHours *float64 `json:"available_hours,omitempty"`
}

// TaskInput holds the fields for creating a task.
type TaskInput struct {
	Title         string  `json:"title"`
	RequiredHours float64 `json:"required_hours"`
	Priority      int     `json:"priority"`
}

// TaskUpdate holds optional fields for updating a task.
type TaskUpdate struct {
	Title         *string  `json:"title,omitempty"`
	RequiredHours *float64 `json:"required_hours,omitempty"`
	Priority      *int     `json:"priority,omitempty"`
}

// AlternativesResult is the payload of the generate/list alternatives
// exchange. Recommendations are present only once the model is trained.
type AlternativesResult struct {
	Alternatives    []domain.Alternative    `json:"alternatives"`
	Total           int                     `json:"total"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// SelectionResult is returned after recording a user's chosen alternative.
type SelectionResult struct {
	Message       string   `json:"message"`
	AlternativeID int      `json:"alternative_id"`
	MLPrediction  *float64 `json:"ml_prediction"`
}

// TrainResult is returned by the train-model exchange. Status is one of
// success, insufficient_data, insufficient_variety, or error.
type TrainResult struct {
	Status       string   `json:"status"`
	Message      string   `json:"message"`
	Accuracy     *float64 `json:"accuracy"`
	ChoicesUsed  int      `json:"choices_used"`
	TotalSamples int      `json:"total_samples"`
}

// SeedResult reports how many example entries were loaded.
type SeedResult struct {
	Message        string `json:"message"`
	ResourcesAdded int    `json:"resources_added"`
	TasksAdded     int    `json:"tasks_added"`
}

// ClearResult reports how many entries were purged.
type ClearResult struct {
	ResourcesDeleted    int    `json:"resources_deleted"`
	TasksDeleted        int    `json:"tasks_deleted"`
	AlternativesDeleted int    `json:"alternatives_deleted"`
	Message             string `json:"message"`
}

// API is the full backend contract consumed by the client. Workflows depend
// on this interface so tests can substitute a fake service.
type API interface {
	ListResources(ctx context.Context) ([]domain.Resource, error)
	CreateResource(ctx context.Context, in ResourceInput) (*domain.Resource, error)
	GetResource(ctx context.Context, id int) (*domain.Resource, error)
	UpdateResource(ctx context.Context, id int, in ResourceUpdate) (*domain.Resource, error)
	DeleteResource(ctx context.Context, id int) error

	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, in TaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id int) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int, in TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int) error

	// Alternatives asks the service for the current set of allocation
	// alternatives. The service regenerates the set on every call, so this
	// backs both the generate and the passive load workflows.
	Alternatives(ctx context.Context) (*AlternativesResult, error)
	GetAlternative(ctx context.Context, id int) (*domain.Alternative, error)
	SelectAlternative(ctx context.Context, id int) (*SelectionResult, error)

	// Stats returns the distribution report for the given alternative,
	// or for the best one when alternativeID is nil.
	Stats(ctx context.Context, alternativeID *int) (*domain.Stats, error)

	MLInfo(ctx context.Context) (*domain.MLInfo, error)
	TrainModel(ctx context.Context) (*TrainResult, error)

	LoadExampleData(ctx context.Context) (*SeedResult, error)
	ClearAllData(ctx context.Context) (*ClearResult, error)
	ExportAlternatives(ctx context.Context, format string) ([]byte, error)
}

// Client is the HTTP implementation of API against the planning service.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a gateway client for the planning service.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

var _ API = (*Client)(nil)

// errorPayload is the structured error body the service sends on rejection.
type errorPayload struct {
	Detail string `json:"detail"`
}

// do performs one exchange and normalizes the outcome. No retries: the
// generation endpoint is not idempotent, and one click must mean one
// generation. out may be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// doRaw performs one exchange and returns the raw response body.
func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	start := time.Now()
	event := CallEvent{
		RequestID: uuid.New().String(),
		Method:    method,
		Path:      path,
	}
	defer func() {
		event.LatencyMs = time.Since(start).Milliseconds()
		c.observer.OnCallComplete(event)
	}()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			event.Kind = KindLocalValidation
			return nil, fmt.Errorf("%w: marshaling request: %v", ErrLocalValidation, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		event.Kind = KindLocalValidation
		return nil, fmt.Errorf("%w: building request: %v", ErrLocalValidation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		event.Kind = KindUnreachable
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	event.Status = resp.StatusCode

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		event.Kind = KindUnreachable
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		event.Kind = KindRejected
		rejected := &RejectedError{Status: resp.StatusCode}
		var payload errorPayload
		if json.Unmarshal(raw, &payload) == nil {
			rejected.Message = payload.Detail
		}
		return nil, rejected
	}

	return raw, nil
}

// ── resources ────────────────────────────────────────────────────────────────

func (c *Client) ListResources(ctx context.Context) ([]domain.Resource, error) {
	var out []domain.Resource
	if err := c.do(ctx, http.MethodGet, "/resources", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateResource(ctx context.Context, in ResourceInput) (*domain.Resource, error) {
	var out domain.Resource
	if err := c.do(ctx, http.MethodPost, "/resource", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetResource(ctx context.Context, id int) (*domain.Resource, error) {
	var out domain.Resource
	if err := c.do(ctx, http.MethodGet, "/resource/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateResource(ctx context.Context, id int, in ResourceUpdate) (*domain.Resource, error) {
	var out domain.Resource
	if err := c.do(ctx, http.MethodPut, "/resource/"+strconv.Itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteResource(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/resource/"+strconv.Itoa(id), nil, nil)
}

// ── tasks ────────────────────────────────────────────────────────────────────

func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var out []domain.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, in TaskInput) (*domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, http.MethodPost, "/task", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, http.MethodGet, "/task/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int, in TaskUpdate) (*domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, http.MethodPut, "/task/"+strconv.Itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/task/"+strconv.Itoa(id), nil, nil)
}

// ── alternatives and stats ───────────────────────────────────────────────────

func (c *Client) Alternatives(ctx context.Context) (*AlternativesResult, error) {
	var out AlternativesResult
	if err := c.do(ctx, http.MethodGet, "/alternatives", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAlternative(ctx context.Context, id int) (*domain.Alternative, error) {
	var out domain.Alternative
	if err := c.do(ctx, http.MethodGet, "/alternative/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SelectAlternative(ctx context.Context, id int) (*SelectionResult, error) {
	var out SelectionResult
	path := "/alternative/" + strconv.Itoa(id) + "/select"
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context, alternativeID *int) (*domain.Stats, error) {
	path := "/stats"
	if alternativeID != nil {
		path += "?alternative_id=" + strconv.Itoa(*alternativeID)
	}
	var out domain.Stats
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── ML ───────────────────────────────────────────────────────────────────────

func (c *Client) MLInfo(ctx context.Context) (*domain.MLInfo, error) {
	var out domain.MLInfo
	if err := c.do(ctx, http.MethodGet, "/ml/info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TrainModel(ctx context.Context) (*TrainResult, error) {
	var out TrainResult
	if err := c.do(ctx, http.MethodPost, "/ml/train", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (c *Client) LoadExampleData(ctx context.Context) (*SeedResult, error) {
	var out SeedResult
	if err := c.do(ctx, http.MethodPost, "/load-example-data", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClearAllData(ctx context.Context) (*ClearResult, error) {
	var out ClearResult
	if err := c.do(ctx, http.MethodPost, "/clear-all-data", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExportAlternatives(ctx context.Context, format string) ([]byte, error) {
	if format != "json" && format != "csv" {
		return nil, fmt.Errorf("%w: unsupported export format %q", ErrLocalValidation, format)
	}
	path := "/export/alternatives?format=" + url.QueryEscape(format)
	return c.doRaw(ctx, http.MethodGet, path, nil)
}
