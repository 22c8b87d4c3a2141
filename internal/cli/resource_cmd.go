package cli

import (
	"context"
	"fmt"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/filter"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/spf13/cobra"
)

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage resources",
	}

	cmd.AddCommand(
		newResourceAddCmd(app),
		newResourceListCmd(app),
		newResourceUpdateCmd(app),
		newResourceRemoveCmd(app),
	)

	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var name, resType string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Creating resource...")
			created, err := app.Flows.AddResource(context.Background(), gateway.ResourceInput{
				Name:           name,
				Type:           resType,
				AvailableHours: hours,
			})
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Printf("Created resource %s (#%d)\n", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Resource name")
	cmd.Flags().StringVar(&resType, "type", "", "Resource type (e.g. developer, designer)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Available hours")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("hours")

	return cmd
}

func newResourceListCmd(app *App) *cobra.Command {
	var search, resType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Fetching resources...")
			err := app.Flows.RefreshResources(context.Background())
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}

			crit := filter.ResourceCriteria{Search: search, Type: resType}
			visible := filter.Resources(app.Store().Resources(), crit)
			if len(visible) == 0 {
				fmt.Println(formatter.Dim("No resources match."))
				return nil
			}
			fmt.Print(formatter.FormatResourceList(visible))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on name or type")
	cmd.Flags().StringVar(&resType, "type", "", "Exact type match")

	return cmd
}

func newResourceUpdateCmd(app *App) *cobra.Command {
	var name, resType string
	var hours float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var in gateway.ResourceUpdate
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("type") {
				in.Type = &resType
			}
			if cmd.Flags().Changed("hours") {
				in.AvailableHours = &hours
			}

			stop := formatter.StartSpinner("Updating resource...")
			updated, err := app.Flows.UpdateResource(context.Background(), id, in)
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Printf("Updated resource %s (#%d)\n", updated.Name, updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&resType, "type", "", "New type")
	cmd.Flags().Float64Var(&hours, "hours", 0, "New available hours")

	return cmd
}

func newResourceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			stop := formatter.StartSpinner("Deleting resource...")
			err = app.Flows.DeleteResource(context.Background(), id)
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Printf("Deleted resource #%d\n", id)
			return nil
		},
	}
}
