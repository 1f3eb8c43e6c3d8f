package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"projtrack/internal/model"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, _ := cmd.Flags().GetString("description")
		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")
		statusLabel, _ := cmd.Flags().GetString("status")
		budget, _ := cmd.Flags().GetFloat64("budget")
		teamSize, _ := cmd.Flags().GetInt("team-size")

		status, err := model.ParseProjectStatus(statusLabel)
		if err != nil {
			return err
		}
		start, err := time.Parse(model.DateLayout, startStr)
		if err != nil {
			return fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", startStr)
		}
		var end *time.Time
		if endStr != "" {
			e, err := time.Parse(model.DateLayout, endStr)
			if err != nil {
				return fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", endStr)
			}
			end = &e
		}

		p := &model.Project{
			Name:        args[0],
			Description: desc,
			StartDate:   start,
			EndDate:     end,
			Status:      status,
			Budget:      budget,
			TeamSize:    teamSize,
		}
		id, err := projects.Insert(cmd.Context(), p)
		if err != nil {
			act.Error(err)
			return err
		}
		p.ID = id

		act.ProjectCreated(p)
		fmt.Printf("Created project %s (ID %d)\n", p.Name, p.ID)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := projects.ListAll(cmd.Context())
		if err != nil {
			act.Error(err)
			return err
		}
		fmt.Println(renderProjectTable(list))
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project and all its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		deleted, err := projects.Delete(cmd.Context(), id)
		if err != nil {
			act.Error(err)
			return err
		}
		if !deleted {
			fmt.Printf("No project with ID %d\n", id)
			return nil
		}

		act.ProjectDeleted(id)
		fmt.Printf("Deleted project %d\n", id)
		return nil
	},
}

func init() {
	projectAddCmd.Flags().String("description", "", "project description")
	projectAddCmd.Flags().String("start", time.Now().Format(model.DateLayout), "start date (YYYY-MM-DD)")
	projectAddCmd.Flags().String("end", "", "end date (YYYY-MM-DD), optional")
	projectAddCmd.Flags().String("status", model.StatusPlanning.Label(), "project status label")
	projectAddCmd.Flags().Float64("budget", 0, "project budget")
	projectAddCmd.Flags().Int("team-size", 1, "team size")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
