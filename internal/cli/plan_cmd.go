package cli

import (
	"context"
	"fmt"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/alexmorozov/lachesis/internal/selector"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh set of allocation alternatives",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Generating alternatives...")
			res, err := app.Flows.GenerateAlternatives(context.Background())
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Println(res.Message)
			fmt.Print(formatter.FormatAlternativeList(
				app.Store().Alternatives(), app.Store().Recommendations()))
			return nil
		},
	}
}

func newAlternativesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "alternatives [id]",
		Short: "Show the current alternatives, or one in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stop := formatter.StartSpinner("Loading alternatives...")
			res, err := app.Flows.Load(ctx)
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			if res.Guidance != "" {
				fmt.Println(formatter.Dim(res.Guidance))
				return nil
			}

			if len(args) == 0 {
				fmt.Print(formatter.FormatAlternativeList(
					app.Store().Alternatives(), app.Store().Recommendations()))
				return nil
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			alt, ok := app.Store().Alternative(id)
			if !ok {
				return fmt.Errorf("unknown alternative %d", id)
			}
			if r, ok := app.Store().Recommendations()[id]; ok {
				fmt.Print(formatter.FormatAlternative(alt, &r))
			} else {
				fmt.Print(formatter.FormatAlternative(alt, nil))
			}
			return nil
		},
	}
}

func newSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Record an alternative as the chosen one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()

			// The mirror must hold the alternative before it can be chosen.
			if _, lerr := app.Flows.Load(ctx); lerr != nil {
				return fmt.Errorf("%s", gateway.Message(lerr))
			}

			stop := formatter.StartSpinner("Recording selection...")
			res, err := app.Flows.Select(ctx, id)
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Println(res.Message)
			return nil
		},
	}
}

func newCompareCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "compare <first-id> <second-id>",
		Short: "Compare two alternatives side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			firstID, err := parseID(args[0])
			if err != nil {
				return err
			}
			secondID, err := parseID(args[1])
			if err != nil {
				return err
			}
			ctx := context.Background()

			if _, lerr := app.Flows.Load(ctx); lerr != nil {
				return fmt.Errorf("%s", gateway.Message(lerr))
			}
			if !selector.CompareVisible(app.Store().Alternatives()) {
				fmt.Println(formatter.Dim("Fewer than two alternatives exist; nothing to compare."))
				return nil
			}

			stop := formatter.StartSpinner("Comparing alternatives...")
			cmp, err := app.Flows.Compare(ctx, firstID, secondID)
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Println(formatter.FormatComparison(
				cmp.First, cmp.Second, *cmp.FirstStats, *cmp.SecondStats, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 120, "Render width")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var alternativeID int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the distribution report for an alternative",
		Long: `Show per-resource utilization and per-task coverage. Without
--alternative the report covers the best (highest scoring) alternative.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var scope *int
			if cmd.Flags().Changed("alternative") {
				scope = &alternativeID
			}

			stop := formatter.StartSpinner("Fetching distribution report...")
			stats, err := app.Flows.StatsFor(context.Background(), scope)
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			if stats.Empty() {
				fmt.Println(formatter.Dim("No distribution to report yet."))
				return nil
			}
			fmt.Print(formatter.FormatStats(*stats))
			return nil
		},
	}

	cmd.Flags().IntVar(&alternativeID, "alternative", 0, "Alternative ID (default: best)")

	return cmd
}
