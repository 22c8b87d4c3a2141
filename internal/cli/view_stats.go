package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexmorozov/lachesis/internal/chart"
	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// statsLoadedMsg carries a loaded distribution report.
type statsLoadedMsg struct {
	stats *domain.Stats
	err   error
}

// statsView shows the distribution report with the utilization and
// coverage charts. Left/right cycles the scope between the best
// alternative and each specific one.
type statsView struct {
	state *SharedState

	// scope is 0 for "best", otherwise an alternative ID.
	scope   int
	stats   *domain.Stats
	loading bool
	err     error

	utilization *chart.Mount
	coverage    *chart.Mount
}

func newStatsView(state *SharedState) *statsView {
	sink := formatter.TerminalSink{}
	return &statsView{
		state:       state,
		loading:     true,
		utilization: chart.NewMount(sink),
		coverage:    chart.NewMount(sink),
	}
}

func (v *statsView) ID() ViewID { return ViewStats }
func (v *statsView) Title() string {
	if v.scope == 0 {
		return "Stats"
	}
	return fmt.Sprintf("Stats #%d", v.scope)
}

func (v *statsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "cycle alternative")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *statsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *statsView) loadData() tea.Cmd {
	app := v.state.App
	var scope *int
	if v.scope != 0 {
		id := v.scope
		scope = &id
	}
	return func() tea.Msg {
		stats, err := app.Flows.StatsFor(context.Background(), scope)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

// cycleScope moves the scope through best → each alternative → best.
func (v *statsView) cycleScope(delta int) {
	alts := v.state.App.Store().Alternatives()
	ids := make([]int, 0, len(alts)+1)
	ids = append(ids, 0)
	for _, a := range alts {
		ids = append(ids, a.ID)
	}

	idx := 0
	for i, id := range ids {
		if id == v.scope {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(ids)) % len(ids)
	v.scope = ids[idx]
}

// resetStaleScope drops the scope back to "best" when the scoped
// alternative no longer exists, e.g. after a regeneration replaced the
// collection underneath this view.
func (v *statsView) resetStaleScope() bool {
	if v.scope == 0 {
		return false
	}
	if _, ok := v.state.App.Store().Alternative(v.scope); ok {
		return false
	}
	v.scope = 0
	return true
}

func (v *statsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if v.resetStaleScope() {
			return v, v.loadData()
		}
		v.loading = false
		v.err = msg.err
		v.stats = msg.stats
		if msg.err != nil || msg.stats == nil || msg.stats.Empty() {
			v.utilization.Clear()
			v.coverage.Clear()
			return v, nil
		}
		v.utilization.Show(chart.Utilization(*msg.stats))
		v.coverage.Show(chart.Coverage(*msg.stats))
		return v, nil

	case refreshViewMsg:
		v.resetStaleScope()
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			v.cycleScope(-1)
			v.loading = true
			return v, v.loadData()
		case "right", "l":
			v.cycleScope(1)
			v.loading = true
			return v, v.loadData()
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *statsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading distribution report...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+flowError(v.err)) + "\n"
	}
	if v.stats == nil || v.stats.Empty() {
		return "\n  " + formatter.Dim("No distribution to report yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")

	scopeLabel := "best alternative"
	if v.scope != 0 {
		scopeLabel = fmt.Sprintf("alternative %d", v.scope)
	}
	b.WriteString("  " + formatter.Dim("Scope: ") + formatter.Bold(scopeLabel) + "\n\n")

	b.WriteString(formatter.FormatStats(*v.stats))

	if c := v.utilization.Render(); c != "" {
		b.WriteString("\n" + c)
	}
	if c := v.coverage.Render(); c != "" {
		b.WriteString("\n" + c)
	}

	return b.String()
}
