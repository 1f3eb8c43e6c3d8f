package model

import "fmt"

// ProjectStatus is the closed set of project lifecycle states. Tasks reuse
// it for their status field, matching the stored schema.
type ProjectStatus int

const (
	StatusPlanning ProjectStatus = iota
	StatusInProgress
	StatusTesting
	StatusCompleted
	StatusOnHold
)

var projectStatusLabels = [...]string{
	StatusPlanning:   "Планируется",
	StatusInProgress: "В работе",
	StatusTesting:    "Тестирование",
	StatusCompleted:  "Завершён",
	StatusOnHold:     "Ожидание",
}

// ProjectStatuses returns every member in declaration order.
func ProjectStatuses() []ProjectStatus {
	members := make([]ProjectStatus, len(projectStatusLabels))
	for i := range projectStatusLabels {
		members[i] = ProjectStatus(i)
	}
	return members
}

// Label returns the human-readable label persisted in the database.
func (s ProjectStatus) Label() string {
	if s < 0 || int(s) >= len(projectStatusLabels) {
		return fmt.Sprintf("ProjectStatus(%d)", int(s))
	}
	return projectStatusLabels[s]
}

// ParseProjectStatus resolves a stored label back to its member.
// An unrecognized label yields a *ValidationError.
func ParseProjectStatus(label string) (ProjectStatus, error) {
	for i, l := range projectStatusLabels {
		if l == label {
			return ProjectStatus(i), nil
		}
	}
	return 0, &ValidationError{Field: "status", Value: label}
}
