// Package chart translates distribution stats into declarative chart specs
// and manages the lifecycle of rendered chart instances.
//
// A Mount owns at most one live Instance. Rendering a new chart at a mount
// always disposes the previous instance first, so a sink never accumulates
// stale overlays or leaked handles.
package chart

import "github.com/alexmorozov/lachesis/internal/domain"

// Category distinguishes the visual classes of a bar.
type Category int

const (
	CategoryNormal Category = iota
	CategoryOverload
)

// Bar is one bar in a bar chart.
type Bar struct {
	Label    string
	Value    float64
	Category Category
}

// Slice is one proportional segment in a proportion chart.
type Slice struct {
	Label string
	Value float64
}

// Spec is the declarative input consumed by a charting sink. Exactly one
// of Bars or Slices is populated, depending on Kind.
type Spec struct {
	Kind     Kind
	Title    string
	AxisMax  float64 // bar charts only; values render relative to this
	Bars     []Bar
	Slices   []Slice
}

// Kind identifies the chart family.
type Kind int

const (
	KindBar Kind = iota
	KindProportion
)

// utilizationAxisMax is the fixed y-axis upper bound for utilization bars.
// Wider than 100% so overload remains visually distinguishable instead of
// saturating at the top of the chart.
const utilizationAxisMax = 120

// Utilization builds the per-resource utilization bar chart for a stats
// report. Returns nil when the report has no resource rows, in which case
// the chart is hidden rather than rendered empty.
func Utilization(stats domain.Stats) *Spec {
	if len(stats.ResourceStats) == 0 {
		return nil
	}
	spec := &Spec{
		Kind:    KindBar,
		Title:   "Resource Utilization (%)",
		AxisMax: utilizationAxisMax,
	}
	for _, rs := range stats.ResourceStats {
		cat := CategoryNormal
		if rs.Overload {
			cat = CategoryOverload
		}
		spec.Bars = append(spec.Bars, Bar{
			Label:    rs.ResourceName,
			Value:    rs.UtilizationPercent,
			Category: cat,
		})
	}
	return spec
}

// Coverage builds the per-task coverage proportion chart for a stats
// report. Returns nil when the report has no task rows.
func Coverage(stats domain.Stats) *Spec {
	if len(stats.TaskStats) == 0 {
		return nil
	}
	spec := &Spec{
		Kind:  KindProportion,
		Title: "Task Coverage (%)",
	}
	for _, ts := range stats.TaskStats {
		spec.Slices = append(spec.Slices, Slice{
			Label: ts.TaskTitle,
			Value: ts.CoveragePercent,
		})
	}
	return spec
}

// Instance is one live chart created by a sink. Dispose must release
// whatever the sink allocated; rendering a disposed instance is invalid.
type Instance interface {
	Render() string
	Dispose()
}

// Sink creates chart instances from specs. The terminal sink draws with
// lipgloss; tests substitute a recording sink.
type Sink interface {
	New(spec Spec) Instance
}

// Mount is one chart slot in the interface, e.g. "the utilization panel".
// It enforces the dispose-before-replace discipline.
type Mount struct {
	sink    Sink
	current Instance
}

// NewMount creates a mount backed by the given sink.
func NewMount(sink Sink) *Mount {
	return &Mount{sink: sink}
}

// Show replaces the mounted chart with one built from spec. The previous
// instance, if any, is disposed first. A nil spec clears the mount.
func (m *Mount) Show(spec *Spec) {
	if m.current != nil {
		m.current.Dispose()
		m.current = nil
	}
	if spec == nil {
		return
	}
	m.current = m.sink.New(*spec)
}

// Clear disposes any mounted chart.
func (m *Mount) Clear() {
	m.Show(nil)
}

// Render draws the mounted chart, or returns "" when the mount is empty.
func (m *Mount) Render() string {
	if m.current == nil {
		return ""
	}
	return m.current.Render()
}
