package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/domain"
	"github.com/alexmorozov/lachesis/internal/filter"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// resourceListLoadedMsg signals that the resource mirror has been refreshed.
type resourceListLoadedMsg struct {
	err error
}

// resourceListView shows the resource collection with a live substring
// filter and a type filter that cycles through the distinct types present.
type resourceListView struct {
	state       *SharedState
	filterInput textinput.Model
	typeFilter  string
	cursor      int
	loading     bool
	err         error
}

func newResourceListView(state *SharedState) *resourceListView {
	ti := textinput.New()
	ti.Placeholder = "filter by name or type"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return &resourceListView{
		state:       state,
		filterInput: ti,
		loading:     true,
	}
}

func (v *resourceListView) ID() ViewID    { return ViewResourceList }
func (v *resourceListView) Title() string { return "Resources" }

func (v *resourceListView) capturesInput() bool { return v.filterInput.Focused() }

func (v *resourceListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "cycle type")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *resourceListView) Init() tea.Cmd {
	return v.loadData()
}

func (v *resourceListView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		err := app.Flows.RefreshResources(context.Background())
		return resourceListLoadedMsg{err: err}
	}
}

// visible applies the current criteria to the mirrored collection.
func (v *resourceListView) visible() []domain.Resource {
	return filter.Resources(v.state.App.Store().Resources(), filter.ResourceCriteria{
		Search: v.filterInput.Value(),
		Type:   v.typeFilter,
	})
}

// cycleType advances the type filter through the distinct types present,
// ending back at "all".
func (v *resourceListView) cycleType() {
	types := filter.ResourceTypes(v.state.App.Store().Resources())
	if len(types) == 0 {
		v.typeFilter = ""
		return
	}
	if v.typeFilter == "" {
		v.typeFilter = types[0]
		return
	}
	for i, t := range types {
		if t == v.typeFilter {
			if i+1 < len(types) {
				v.typeFilter = types[i+1]
			} else {
				v.typeFilter = ""
			}
			return
		}
	}
	v.typeFilter = ""
}

func (v *resourceListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resourceListLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		if v.filterInput.Focused() {
			switch msg.Type {
			case tea.KeyEsc:
				v.filterInput.Blur()
				v.filterInput.SetValue("")
				return v, nil
			case tea.KeyEnter:
				v.filterInput.Blur()
				return v, nil
			}
			var cmd tea.Cmd
			v.filterInput, cmd = v.filterInput.Update(msg)
			v.clampCursor()
			return v, cmd
		}

		visible := v.visible()
		switch msg.String() {
		case "/":
			return v, v.filterInput.Focus()
		case "T":
			v.cycleType()
			v.clampCursor()
			return v, nil
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(visible)-1 {
				v.cursor++
			}
		case "a":
			return v, v.addResource()
		case "e":
			if v.cursor < len(visible) {
				return v, v.editResource(visible[v.cursor])
			}
		case "x":
			if v.cursor < len(visible) {
				r := visible[v.cursor]
				return v, execConfirmDelete(v.state,
					fmt.Sprintf("Delete %q?", r.Name), r.Name,
					func(ctx context.Context) error {
						return v.state.App.Flows.DeleteResource(ctx, r.ID)
					})
			}
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *resourceListView) clampCursor() {
	if n := len(v.visible()); v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

func (v *resourceListView) addResource() tea.Cmd {
	vals := &resourceFormValues{}
	form := wizardResourceForm(vals)
	app := v.state.App
	return pushView(newWizardView(v.state, "Add Resource", form, func() tea.Cmd {
		return func() tea.Msg {
			created, err := app.Flows.AddResource(context.Background(), gateway.ResourceInput{
				Name:           vals.Name,
				Type:           vals.Type,
				AvailableHours: parseFloat(vals.Hours),
			})
			if err != nil {
				return wizardCompleteError(fmt.Errorf("%s", flowError(err)))
			}
			return wizardCompleteNotice(fmt.Sprintf("Created resource %s", formatter.Bold(created.Name)))
		}
	}))
}

func (v *resourceListView) editResource(r domain.Resource) tea.Cmd {
	vals := &resourceFormValues{
		Name:  r.Name,
		Type:  r.Type,
		Hours: formatter.TrimFloat(r.AvailableHours),
	}
	form := wizardResourceForm(vals)
	app := v.state.App
	return pushView(newWizardView(v.state, "Edit Resource", form, func() tea.Cmd {
		return func() tea.Msg {
			hours := parseFloat(vals.Hours)
			updated, err := app.Flows.UpdateResource(context.Background(), r.ID, gateway.ResourceUpdate{
				Name:           &vals.Name,
				Type:           &vals.Type,
				AvailableHours: &hours,
			})
			if err != nil {
				return wizardCompleteError(fmt.Errorf("%s", flowError(err)))
			}
			return wizardCompleteNotice(fmt.Sprintf("Updated resource %s", formatter.Bold(updated.Name)))
		}
	}))
}

func (v *resourceListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading resources...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+flowError(v.err))
	}

	var b strings.Builder
	b.WriteString("\n")

	if v.filterInput.Focused() || v.filterInput.Value() != "" {
		b.WriteString("  " + v.filterInput.View() + "\n\n")
	}
	if v.typeFilter != "" {
		b.WriteString("  " + formatter.Dim("type = ") + formatter.StylePurple.Render(v.typeFilter) + "\n\n")
	}

	visible := v.visible()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No resources match.") + "\n")
		return b.String()
	}

	for i, r := range visible {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			formatter.PadRight(r.Name, 20),
			formatter.PadRight(formatter.StylePurple.Render(r.Type), 14),
			formatter.Dim(formatter.FormatHours(r.AvailableHours)+" available"),
		))
	}

	return b.String()
}
