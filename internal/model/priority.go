package model

import "fmt"

// TaskPriority is the closed set of task urgency levels.
type TaskPriority int

const (
	PriorityLow TaskPriority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

var taskPriorityLabels = [...]string{
	PriorityLow:      "Низкий",
	PriorityMedium:   "Средний",
	PriorityHigh:     "Высокий",
	PriorityCritical: "Срочный",
}

// TaskPriorities returns every member in declaration order.
func TaskPriorities() []TaskPriority {
	members := make([]TaskPriority, len(taskPriorityLabels))
	for i := range taskPriorityLabels {
		members[i] = TaskPriority(i)
	}
	return members
}

// Label returns the human-readable label persisted in the database.
func (p TaskPriority) Label() string {
	if p < 0 || int(p) >= len(taskPriorityLabels) {
		return fmt.Sprintf("TaskPriority(%d)", int(p))
	}
	return taskPriorityLabels[p]
}

// ParseTaskPriority resolves a stored label back to its member.
// An unrecognized label yields a *ValidationError.
func ParseTaskPriority(label string) (TaskPriority, error) {
	for i, l := range taskPriorityLabels {
		if l == label {
			return TaskPriority(i), nil
		}
	}
	return 0, &ValidationError{Field: "priority", Value: label}
}
