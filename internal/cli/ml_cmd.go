package cli

import (
	"context"
	"fmt"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/spf13/cobra"
)

func newMLCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ml",
		Short: "Inspect and train the recommendation model",
	}

	cmd.AddCommand(newMLInfoCmd(app), newMLTrainCmd(app))

	return cmd
}

func newMLInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the recommendation model state",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Fetching model info...")
			info, err := app.Flows.MLInfo(context.Background())
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Print(formatter.FormatMLInfo(*info))
			return nil
		},
	}
}

func newMLTrainCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train the recommendation model on recorded selections",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Training model...")
			res, err := app.Flows.Train(context.Background())
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			if res.Trained {
				fmt.Println(formatter.StyleGreen.Render("✔ ") + res.Message)
			} else {
				fmt.Println(formatter.StyleYellow.Render("○ ") + res.Message)
			}
			return nil
		},
	}
}
