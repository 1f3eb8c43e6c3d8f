package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"projtrack/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func renderProjectTable(projects []model.Project) string {
	if len(projects) == 0 {
		return "No projects found."
	}
	rows := make([][]string, len(projects))
	for i, p := range projects {
		end := "-"
		if p.EndDate != nil {
			end = p.EndDate.Format(model.DateLayout)
		}
		rows[i] = []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Status.Label(),
			p.StartDate.Format(model.DateLayout),
			end,
			fmt.Sprintf("%.2f", p.Budget),
			fmt.Sprintf("%d", p.TeamSize),
		}
	}
	return renderTable([]string{"ID", "Name", "Status", "Start", "End", "Budget", "Team"}, rows)
}

func renderTaskTable(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			fmt.Sprintf("%d", t.ID),
			t.Title,
			t.Assignee,
			t.Priority.Label(),
			t.Deadline.Format(model.DateLayout),
			t.Status.Label(),
		}
	}
	return renderTable([]string{"ID", "Title", "Assignee", "Pri", "Deadline", "Status"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
