package cli

import (
	"context"
	"fmt"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// altDetailLoadedMsg carries the distribution report for one alternative.
type altDetailLoadedMsg struct {
	stats *domain.Stats
	err   error
}

// alternativeDetailView shows one alternative in full: allocations,
// recommendation annotation, and its distribution report.
type alternativeDetailView struct {
	state         *SharedState
	alternativeID int
	stats         *domain.Stats
	loading       bool
	err           error
}

func newAlternativeDetailView(state *SharedState, alternativeID int) *alternativeDetailView {
	return &alternativeDetailView{
		state:         state,
		alternativeID: alternativeID,
		loading:       true,
	}
}

func (v *alternativeDetailView) ID() ViewID    { return ViewAlternativeDetail }
func (v *alternativeDetailView) Title() string { return fmt.Sprintf("Alternative %d", v.alternativeID) }

func (v *alternativeDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *alternativeDetailView) Init() tea.Cmd {
	return v.loadData()
}

func (v *alternativeDetailView) loadData() tea.Cmd {
	app := v.state.App
	id := v.alternativeID
	return func() tea.Msg {
		stats, err := app.Flows.StatsFor(context.Background(), &id)
		return altDetailLoadedMsg{stats: stats, err: err}
	}
}

func (v *alternativeDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case altDetailLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.stats = msg.stats
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			app := v.state.App
			id := v.alternativeID
			return v, flowNotice(func(ctx context.Context) (string, error) {
				res, err := app.Flows.Select(ctx, id)
				if err != nil {
					return "", err
				}
				return res.Message, nil
			})
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *alternativeDetailView) View() string {
	alt, ok := v.state.App.Store().Alternative(v.alternativeID)
	if !ok {
		return "\n  " + formatter.Dim("This alternative no longer exists; the set was regenerated.") + "\n"
	}

	var rec *domain.Recommendation
	if r, found := v.state.App.Store().Recommendations()[v.alternativeID]; found {
		rec = &r
	}

	out := "\n" + formatter.FormatAlternative(alt, rec)

	switch {
	case v.loading:
		out += "\n" + formatter.Dim("Loading distribution report...") + "\n"
	case v.err != nil:
		out += "\n" + formatter.StyleRed.Render("Report unavailable: "+flowError(v.err)) + "\n"
	case v.stats != nil && !v.stats.Empty():
		out += "\n" + formatter.FormatStats(*v.stats)
	}

	return out
}
