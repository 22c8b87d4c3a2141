package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load example resources and tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Loading example data...")
			res, err := app.Flows.LoadExampleData(context.Background())
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Println(res.Message)
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current alternatives",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "csv" {
				return fmt.Errorf("unsupported format %q (json or csv)", format)
			}

			stop := formatter.StartSpinner("Exporting alternatives...")
			data, err := app.Flows.ExportAlternatives(context.Background(), format)
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}

			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Wrote %d bytes to %s\n", len(data), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Export format: json or csv")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")

	return cmd
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL resources, tasks and alternatives",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Flows.Clear(context.Background(), terminalConfirmer{})
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			if res.Declined {
				fmt.Println(formatter.Dim(res.Message))
				return nil
			}
			fmt.Println(res.Message)
			return nil
		},
	}
}
