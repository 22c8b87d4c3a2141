package cli

import (
	"fmt"
	"strconv"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lachesisHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func lachesisHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects empty input.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validatePositiveFloat accepts a positive number of hours.
func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number of hours")
	}
	return nil
}

// parseFloat converts a string already validated by the form; invalid
// input falls back to zero and is caught by domain validation.
func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// resourceFormValues carries the string-typed form fields of a resource.
type resourceFormValues struct {
	Name  string
	Type  string
	Hours string
}

// wizardResourceForm creates a huh form for adding or editing a resource.
func wizardResourceForm(v *resourceFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Alice").
				Value(&v.Name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Type").
				Placeholder("developer").
				Value(&v.Type).
				Validate(validateRequired("type")),
			huh.NewInput().
				Title("Available hours").
				Placeholder("40").
				Value(&v.Hours).
				Validate(validatePositiveFloat),
		),
	).WithTheme(lachesisHuhTheme()).WithShowHelp(false)
}

// taskFormValues carries the string-typed form fields of a task.
type taskFormValues struct {
	Title    string
	Hours    string
	Priority string
}

// wizardTaskForm creates a huh form for adding or editing a task.
func wizardTaskForm(v *taskFormValues) *huh.Form {
	if v.Priority == "" {
		v.Priority = "3"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Implement API").
				Value(&v.Title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Required hours").
				Placeholder("16").
				Value(&v.Hours).
				Validate(validatePositiveFloat),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("1 (highest)", "1"),
					huh.NewOption("2 (high)", "2"),
					huh.NewOption("3 (normal)", "3"),
					huh.NewOption("4 (low)", "4"),
					huh.NewOption("5 (lowest)", "5"),
				).
				Value(&v.Priority),
		),
	).WithTheme(lachesisHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(lachesisHuhTheme()).WithShowHelp(false)
}

// wizardDoubleConfirm creates a huh form asking both bulk-clear questions
// in sequence, one group per question.
func wizardDoubleConfirm(first, second string, firstAnswer, secondAnswer *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(first).
				Affirmative("Yes").
				Negative("No").
				Value(firstAnswer),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title(second).
				Affirmative("Yes").
				Negative("No").
				Value(secondAnswer),
		),
	).WithTheme(lachesisHuhTheme()).WithShowHelp(false)
}
