package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/workflow"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dashboardLoadedMsg signals that the dashboard refresh has finished.
type dashboardLoadedMsg struct {
	summary *workflow.DashboardSummary
	err     error
}

// dashboardView is the home screen of the TUI. It shows collection counts,
// the best score, overall coverage, and jump keys into every other view.
type dashboardView struct {
	state   *SharedState
	summary *workflow.DashboardSummary
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "resources")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tasks")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alternatives")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		summary, err := app.Flows.RefreshDashboard(context.Background())
		return dashboardLoadedMsg{summary: summary, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.summary = msg.summary
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "R":
			return v, pushView(newResourceListView(v.state))
		case "t":
			return v, pushView(newTaskListView(v.state))
		case "a":
			return v, pushView(newAlternativeListView(v.state))
		case "s":
			return v, pushView(newStatsView(v.state))
		case "c":
			return v, pushView(newCompareView(v.state))
		case "g":
			return v, execGenerate(v.state)
		case "D":
			return v, execBulkClear(v.state)
		case "e":
			return v, execSeed(v.state)
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}

	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+flowError(v.err))
	}
	if v.summary == nil {
		return ""
	}

	s := v.summary
	var b strings.Builder
	b.WriteString("\n")

	tiles := []string{
		dashboardTile("Resources", fmt.Sprintf("%d", s.ResourceCount)),
		dashboardTile("Tasks", fmt.Sprintf("%d", s.TaskCount)),
		dashboardTile("Alternatives", fmt.Sprintf("%d", s.AlternativeCount)),
	}
	if s.BestScore != nil {
		tiles = append(tiles, dashboardTile("Best score", fmt.Sprintf("%.1f", *s.BestScore)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	b.WriteString("\n\n")

	if s.Stats != nil && !s.Stats.Empty() {
		b.WriteString("  " + formatter.Dim("Coverage ") +
			formatter.RenderProgress(s.Stats.OverallCoveragePercent/100, 20) + "\n")
		b.WriteString(fmt.Sprintf("  %s %s allocated of %s required\n",
			formatter.Dim("Hours    "),
			formatter.Bold(formatter.FormatHours(s.Stats.TotalAllocatedHours)),
			formatter.FormatHours(s.Stats.TotalRequiredHours)))
		b.WriteString("\n")
	} else if s.ResourceCount == 0 && s.TaskCount == 0 {
		b.WriteString("  " + formatter.Dim("Nothing to plan yet. Press 'e' to load example data.") + "\n\n")
	}

	for _, name := range s.Failed {
		b.WriteString("  " + formatter.StyleYellow.Render("⚠ ") +
			formatter.Dim(name+" could not be refreshed") + "\n")
	}

	return b.String()
}

func dashboardTile(label, value string) string {
	body := formatter.Bold(value) + "\n" + formatter.Dim(label)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 2).
		MarginLeft(2).
		Render(body)
}
