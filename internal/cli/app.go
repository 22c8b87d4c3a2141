package cli

import (
	"github.com/alexmorozov/lachesis/internal/store"
	"github.com/alexmorozov/lachesis/internal/workflow"
	"github.com/spf13/cobra"
)

// App holds the orchestrator shared by all CLI commands and TUI views.
type App struct {
	Flows *workflow.Orchestrator

	// IsInteractive reports whether stdin is a terminal; the bare
	// `lachesis` invocation opens the TUI only when it is.
	IsInteractive func() bool
}

// Store is a shortcut to the orchestrator's collection store.
func (a *App) Store() *store.Store {
	return a.Flows.Store()
}

// NewRootCmd creates the top-level "lachesis" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lachesis",
		Short: "Terminal client for the resource allocation planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newResourceCmd(app),
		newTaskCmd(app),
		newGenerateCmd(app),
		newAlternativesCmd(app),
		newCompareCmd(app),
		newStatsCmd(app),
		newSelectCmd(app),
		newMLCmd(app),
		newSeedCmd(app),
		newExportCmd(app),
		newClearCmd(app),
		newUICmd(app),
	)

	return root
}

func newUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}
