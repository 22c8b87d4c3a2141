package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// altListLoadedMsg signals that the alternatives mirror has been refreshed.
// guidance is set instead of data when the service had nothing to plan.
type altListLoadedMsg struct {
	guidance string
	err      error
}

// alternativeListView shows the generated alternatives with their scores
// and recommendation badges.
type alternativeListView struct {
	state    *SharedState
	guidance string
	cursor   int
	loading  bool
	err      error
}

func newAlternativeListView(state *SharedState) *alternativeListView {
	return &alternativeListView{
		state:   state,
		loading: true,
	}
}

func (v *alternativeListView) ID() ViewID    { return ViewAlternativeList }
func (v *alternativeListView) Title() string { return "Alternatives" }

func (v *alternativeListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "inspect")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (v *alternativeListView) Init() tea.Cmd {
	return v.loadData()
}

func (v *alternativeListView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		res, err := app.Flows.Load(context.Background())
		if err != nil {
			return altListLoadedMsg{err: err}
		}
		return altListLoadedMsg{guidance: res.Guidance}
	}
}

func (v *alternativeListView) selectAlternative(a domain.Alternative) tea.Cmd {
	app := v.state.App
	return flowNotice(func(ctx context.Context) (string, error) {
		res, err := app.Flows.Select(ctx, a.ID)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})
}

func (v *alternativeListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case altListLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.guidance = msg.guidance
		if n := len(v.state.App.Store().Alternatives()); v.cursor >= n {
			v.cursor = max(0, n-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		alts := v.state.App.Store().Alternatives()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(alts)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(alts) {
				return v, pushView(newAlternativeDetailView(v.state, alts[v.cursor].ID))
			}
		case "g":
			return v, execGenerate(v.state)
		case "s":
			if v.cursor < len(alts) {
				return v, v.selectAlternative(alts[v.cursor])
			}
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *alternativeListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading alternatives...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+flowError(v.err))
	}
	if v.guidance != "" {
		return "\n  " + formatter.Dim(v.guidance) + "\n"
	}

	alts := v.state.App.Store().Alternatives()
	recs := v.state.App.Store().Recommendations()
	if len(alts) == 0 {
		return "\n  " + formatter.Dim("No alternatives yet. Press 'g' to generate.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, a := range alts {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		badge := ""
		if rec, ok := recs[a.ID]; ok && rec.IsRecommended {
			badge = "  " + formatter.RecommendBadge(rec.RecommendationScore)
		}
		b.WriteString(fmt.Sprintf("%s%s %s%s\n",
			cursor,
			formatter.StyleGreen.Render(fmt.Sprintf("#%d", a.ID)),
			formatter.Bold("score "+a.ScoreLabel()),
			badge))
		b.WriteString("     " + formatter.Dim(a.Explanation) + "\n")
	}

	return b.String()
}
