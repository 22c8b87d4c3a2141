package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexmorozov/lachesis/internal/cli/formatter"
	"github.com/alexmorozov/lachesis/internal/filter"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/spf13/cobra"
)

// parseID converts a positional ID argument to an int.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}
	return id, nil
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title string
	var hours float64
	var priority int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Creating task...")
			created, err := app.Flows.AddTask(context.Background(), gateway.TaskInput{
				Title:         title,
				RequiredHours: hours,
				Priority:      priority,
			})
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Printf("Created task %s (#%d)\n", created.Title, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Required hours")
	cmd.Flags().IntVar(&priority, "priority", 3, "Priority 1 (highest) to 5 (lowest)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("hours")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var search string
	var priority int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Fetching tasks...")
			err := app.Flows.RefreshTasks(context.Background())
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}

			crit := filter.TaskCriteria{Search: search, Priority: priority}
			visible := filter.Tasks(app.Store().Tasks(), crit)
			if len(visible) == 0 {
				fmt.Println(formatter.Dim("No tasks match."))
				return nil
			}
			fmt.Print(formatter.FormatTaskList(visible))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Substring match on title")
	cmd.Flags().IntVar(&priority, "priority", 0, "Exact priority match (0 = all)")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title string
	var hours float64
	var priority int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var in gateway.TaskUpdate
			if cmd.Flags().Changed("title") {
				in.Title = &title
			}
			if cmd.Flags().Changed("hours") {
				in.RequiredHours = &hours
			}
			if cmd.Flags().Changed("priority") {
				in.Priority = &priority
			}

			stop := formatter.StartSpinner("Updating task...")
			updated, err := app.Flows.UpdateTask(context.Background(), id, in)
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Printf("Updated task %s (#%d)\n", updated.Title, updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().Float64Var(&hours, "hours", 0, "New required hours")
	cmd.Flags().IntVar(&priority, "priority", 0, "New priority 1-5")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			stop := formatter.StartSpinner("Deleting task...")
			err = app.Flows.DeleteTask(context.Background(), id)
			stop()
			if err != nil {
				return fmt.Errorf("%s", gateway.Message(err))
			}
			fmt.Printf("Deleted task #%d\n", id)
			return nil
		},
	}
}
