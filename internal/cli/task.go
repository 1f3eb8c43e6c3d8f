package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"projtrack/internal/model"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, _ := cmd.Flags().GetInt64("project")
		desc, _ := cmd.Flags().GetString("description")
		assignee, _ := cmd.Flags().GetString("assignee")
		priorityLabel, _ := cmd.Flags().GetString("priority")
		deadlineStr, _ := cmd.Flags().GetString("deadline")
		statusLabel, _ := cmd.Flags().GetString("status")

		priority, err := model.ParseTaskPriority(priorityLabel)
		if err != nil {
			return err
		}
		status, err := model.ParseProjectStatus(statusLabel)
		if err != nil {
			return err
		}
		deadline, err := time.Parse(model.DateLayout, deadlineStr)
		if err != nil {
			return fmt.Errorf("invalid deadline %q: expected YYYY-MM-DD", deadlineStr)
		}

		t := &model.Task{
			ProjectID:   projectID,
			Title:       args[0],
			Description: desc,
			Assignee:    assignee,
			Priority:    priority,
			Deadline:    deadline,
			Status:      status,
		}
		id, err := tasks.Insert(cmd.Context(), t)
		if err != nil {
			act.Error(err)
			return err
		}
		t.ID = id

		act.TaskCreated(t)
		fmt.Printf("Created task %s (ID %d)\n", t.Title, t.ID)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks of a project, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, _ := cmd.Flags().GetInt64("project")

		list, err := tasks.ListByProject(cmd.Context(), projectID)
		if err != nil {
			act.Error(err)
			return err
		}
		fmt.Println(renderTaskTable(list))
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		deleted, err := tasks.Delete(cmd.Context(), id)
		if err != nil {
			act.Error(err)
			return err
		}
		if !deleted {
			fmt.Printf("No task with ID %d\n", id)
			return nil
		}

		act.TaskDeleted(id)
		fmt.Printf("Deleted task %d\n", id)
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func init() {
	taskAddCmd.Flags().Int64("project", 0, "owning project id (required)")
	taskAddCmd.MarkFlagRequired("project")
	taskAddCmd.Flags().String("description", "", "task description")
	taskAddCmd.Flags().String("assignee", "", "responsible person")
	taskAddCmd.Flags().String("priority", model.PriorityMedium.Label(), "task priority label")
	taskAddCmd.Flags().String("deadline", time.Now().Format(model.DateLayout), "deadline (YYYY-MM-DD)")
	taskAddCmd.Flags().String("status", model.StatusPlanning.Label(), "task status label")

	taskListCmd.Flags().Int64("project", 0, "project id (required)")
	taskListCmd.MarkFlagRequired("project")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}
