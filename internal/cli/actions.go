package cli

import (
	"context"
	"fmt"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/alexmorozov/lachesis/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
)

// flowError renders a workflow failure for banner display.
func flowError(err error) string {
	return gateway.Message(err)
}

// execConfirmDelete pushes a confirmation wizard and runs deleteFn if
// confirmed. Shared structure for deleting resources and tasks.
func execConfirmDelete(state *SharedState, prompt, title string, deleteFn func(ctx context.Context) error) tea.Cmd {
	var confirmed bool
	form := wizardConfirm(prompt, &confirmed)
	return pushView(newWizardView(state, "Confirm Delete", form, func() tea.Cmd {
		if !confirmed {
			return func() tea.Msg { return wizardCompleteNotice(formatter.Dim("Cancelled.")) }
		}
		return func() tea.Msg {
			if err := deleteFn(context.Background()); err != nil {
				return wizardCompleteError(fmt.Errorf("%s", flowError(err)))
			}
			return wizardCompleteNotice(fmt.Sprintf("Deleted %s", formatter.Bold(title)))
		}
	}))
}

// execBulkClear asks both bulk-clear questions in one wizard, then hands
// the recorded answers to the workflow, which still gates the destructive
// call on each of them.
func execBulkClear(state *SharedState) tea.Cmd {
	var first, second bool
	form := wizardDoubleConfirm(
		workflow.ClearPromptIntent, workflow.ClearPromptIrreversible,
		&first, &second)
	return pushView(newWizardView(state, "Clear Everything", form, func() tea.Cmd {
		return func() tea.Msg {
			res, err := state.App.Flows.Clear(context.Background(), recordedConfirmer{
				answers: map[string]bool{
					workflow.ClearPromptIntent:       first,
					workflow.ClearPromptIrreversible: second,
				},
			})
			if err != nil {
				return wizardCompleteError(fmt.Errorf("%s", flowError(err)))
			}
			if res.Declined {
				return wizardCompleteNotice(formatter.Dim(res.Message))
			}
			return wizardCompleteNotice(res.Message)
		}
	}))
}

// flowNotice runs fn and converts the outcome into a banner. Successes
// additionally trigger a stack-wide view refresh.
func flowNotice(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		msg, err := fn(context.Background())
		if err != nil {
			return noticeMsg{text: flowError(err), isErr: true}
		}
		return flowDoneMsg{text: msg}
	}
}

// execSeed loads the example data set and reports the result as a banner.
func execSeed(state *SharedState) tea.Cmd {
	app := state.App
	return flowNotice(func(ctx context.Context) (string, error) {
		res, err := app.Flows.LoadExampleData(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})
}

// execGenerate asks the planning service for a fresh generation.
func execGenerate(state *SharedState) tea.Cmd {
	app := state.App
	return flowNotice(func(ctx context.Context) (string, error) {
		res, err := app.Flows.GenerateAlternatives(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})
}
