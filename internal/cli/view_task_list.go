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

// taskListLoadedMsg signals that the task mirror has been refreshed.
type taskListLoadedMsg struct {
	err error
}

// taskListView shows the task collection with a live title filter and a
// priority filter cycling 1..5 and back to "all".
type taskListView struct {
	state          *SharedState
	filterInput    textinput.Model
	priorityFilter int
	cursor         int
	loading        bool
	err            error
}

func newTaskListView(state *SharedState) *taskListView {
	ti := textinput.New()
	ti.Placeholder = "filter by title"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return &taskListView{
		state:       state,
		filterInput: ti,
		loading:     true,
	}
}

func (v *taskListView) ID() ViewID    { return ViewTaskList }
func (v *taskListView) Title() string { return "Tasks" }

func (v *taskListView) capturesInput() bool { return v.filterInput.Focused() }

func (v *taskListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cycle priority")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *taskListView) Init() tea.Cmd {
	return v.loadData()
}

func (v *taskListView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		err := app.Flows.RefreshTasks(context.Background())
		return taskListLoadedMsg{err: err}
	}
}

func (v *taskListView) visible() []domain.Task {
	return filter.Tasks(v.state.App.Store().Tasks(), filter.TaskCriteria{
		Search:   v.filterInput.Value(),
		Priority: v.priorityFilter,
	})
}

func (v *taskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskListLoadedMsg:
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
		case "p":
			// 0 (all) → 1 → ... → 5 → 0
			v.priorityFilter = (v.priorityFilter + 1) % (domain.PriorityLowest + 1)
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
			return v, v.addTask()
		case "e":
			if v.cursor < len(visible) {
				return v, v.editTask(visible[v.cursor])
			}
		case "x":
			if v.cursor < len(visible) {
				t := visible[v.cursor]
				return v, execConfirmDelete(v.state,
					fmt.Sprintf("Delete %q?", t.Title), t.Title,
					func(ctx context.Context) error {
						return v.state.App.Flows.DeleteTask(ctx, t.ID)
					})
			}
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *taskListView) clampCursor() {
	if n := len(v.visible()); v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

func (v *taskListView) addTask() tea.Cmd {
	vals := &taskFormValues{}
	form := wizardTaskForm(vals)
	app := v.state.App
	return pushView(newWizardView(v.state, "Add Task", form, func() tea.Cmd {
		return func() tea.Msg {
			created, err := app.Flows.AddTask(context.Background(), gateway.TaskInput{
				Title:         vals.Title,
				RequiredHours: parseFloat(vals.Hours),
				Priority:      int(parseFloat(vals.Priority)),
			})
			if err != nil {
				return wizardCompleteError(fmt.Errorf("%s", flowError(err)))
			}
			return wizardCompleteNotice(fmt.Sprintf("Created task %s", formatter.Bold(created.Title)))
		}
	}))
}

func (v *taskListView) editTask(t domain.Task) tea.Cmd {
	vals := &taskFormValues{
		Title:    t.Title,
		Hours:    formatter.TrimFloat(t.RequiredHours),
		Priority: fmt.Sprintf("%d", t.Priority),
	}
	form := wizardTaskForm(vals)
	app := v.state.App
	return pushView(newWizardView(v.state, "Edit Task", form, func() tea.Cmd {
		return func() tea.Msg {
			hours := parseFloat(vals.Hours)
			priority := int(parseFloat(vals.Priority))
			updated, err := app.Flows.UpdateTask(context.Background(), t.ID, gateway.TaskUpdate{
				Title:         &vals.Title,
				RequiredHours: &hours,
				Priority:      &priority,
			})
			if err != nil {
				return wizardCompleteError(fmt.Errorf("%s", flowError(err)))
			}
			return wizardCompleteNotice(fmt.Sprintf("Updated task %s", formatter.Bold(updated.Title)))
		}
	}))
}

func (v *taskListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading tasks...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+flowError(v.err))
	}

	var b strings.Builder
	b.WriteString("\n")

	if v.filterInput.Focused() || v.filterInput.Value() != "" {
		b.WriteString("  " + v.filterInput.View() + "\n\n")
	}
	if v.priorityFilter != 0 {
		b.WriteString("  " + formatter.Dim("priority = ") + formatter.PriorityPill(v.priorityFilter) + "\n\n")
	}

	visible := v.visible()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No tasks match.") + "\n")
		return b.String()
	}

	for i, t := range visible {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			formatter.PadRight(t.Title, 28),
			formatter.PriorityPill(t.Priority),
			formatter.Dim(formatter.FormatHours(t.RequiredHours)+" required"),
		))
	}

	return b.String()
}
