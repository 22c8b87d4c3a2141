package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/selector"
	"github.com/alexmorozov/lachesis/internal/workflow"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// compareLoadedMsg carries a completed side-by-side comparison.
type compareLoadedMsg struct {
	cmp *workflow.Comparison
	err error
}

// compareView picks two distinct alternatives and shows their reports side
// by side. With fewer than two alternatives the picker is not offered.
type compareView struct {
	state    *SharedState
	firstID  int
	secondID int
	cursor   int
	cmp      *workflow.Comparison
	loading  bool
	err      error
}

func newCompareView(state *SharedState) *compareView {
	return &compareView{state: state}
}

func (v *compareView) ID() ViewID    { return ViewCompare }
func (v *compareView) Title() string { return "Compare" }

func (v *compareView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "restart")),
	}
}

func (v *compareView) Init() tea.Cmd {
	return nil
}

// options are derived from the live alternative collection; a regeneration
// above this view resets the picks automatically via refreshViewMsg.
func (v *compareView) options() []selector.Option {
	return selector.Options(v.state.App.Store().Alternatives())
}

func (v *compareView) loadComparison() tea.Cmd {
	app := v.state.App
	firstID, secondID := v.firstID, v.secondID
	return func() tea.Msg {
		cmp, err := app.Flows.Compare(context.Background(), firstID, secondID)
		return compareLoadedMsg{cmp: cmp, err: err}
	}
}

func (v *compareView) reset() {
	v.firstID = 0
	v.secondID = 0
	v.cursor = 0
	v.cmp = nil
	v.err = nil
	v.loading = false
}

func (v *compareView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case compareLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.cmp = msg.cmp
		return v, nil

	case refreshViewMsg:
		// The collection may have been replaced; any prior picks are void.
		v.reset()
		return v, nil

	case tea.KeyMsg:
		opts := v.options()
		switch msg.String() {
		case "c":
			v.reset()
			return v, nil
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(opts)-1 {
				v.cursor++
			}
		case "enter":
			if v.cmp != nil || v.loading || v.cursor >= len(opts) {
				return v, nil
			}
			picked := opts[v.cursor].ID
			if v.firstID == 0 {
				v.firstID = picked
				return v, nil
			}
			if picked == v.firstID {
				return v, errNotice("pick two different alternatives")
			}
			v.secondID = picked
			v.loading = true
			return v, v.loadComparison()
		}
	}

	return v, nil
}

func (v *compareView) View() string {
	if !selector.CompareVisible(v.state.App.Store().Alternatives()) {
		return "\n  " + formatter.Dim("Fewer than two alternatives exist; nothing to compare.") + "\n"
	}
	if v.loading {
		return "\n  " + formatter.Dim("Comparing...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+flowError(v.err)) + "\n"
	}
	if v.cmp != nil {
		return "\n" + formatter.FormatComparison(
			v.cmp.First, v.cmp.Second,
			*v.cmp.FirstStats, *v.cmp.SecondStats,
			v.state.Width)
	}

	var b strings.Builder
	prompt := "Pick the first alternative"
	if v.firstID != 0 {
		prompt = fmt.Sprintf("First: #%d. Pick the second alternative", v.firstID)
	}
	b.WriteString("\n  " + formatter.Header(prompt) + "\n\n")

	for i, opt := range v.options() {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		label := opt.Label
		if opt.ID == v.firstID {
			label += "  " + formatter.StyleGreen.Render("(first)")
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, label))
	}

	return b.String()
}
