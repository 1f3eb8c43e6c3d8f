package model

import "time"

// Task is a unit of work belonging to exactly one project. Status
// deliberately reuses ProjectStatus; the stored schema shares the labels.
type Task struct {
	ID          int64         `json:"id"`
	ProjectID   int64         `json:"project_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Assignee    string        `json:"assignee"`
	Priority    TaskPriority  `json:"priority"`
	Deadline    time.Time     `json:"deadline"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   string        `json:"created_at"`
}

// ToMap renders the task as a plain key-value mapping for display and
// logging.
func (t *Task) ToMap() map[string]any {
	var id any
	if t.ID != 0 {
		id = t.ID
	}
	return map[string]any{
		"id":          id,
		"project_id":  t.ProjectID,
		"title":       t.Title,
		"description": t.Description,
		"assignee":    t.Assignee,
		"priority":    t.Priority.Label(),
		"deadline":    t.Deadline.Format(DateLayout),
		"status":      t.Status.Label(),
	}
}
