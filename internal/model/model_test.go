package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectStatus_RoundTrip(t *testing.T) {
	for _, s := range ProjectStatuses() {
		got, err := ParseProjectStatus(s.Label())
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.Equal(t, s.Label(), got.Label())
	}
}

func TestParseProjectStatus_Unknown(t *testing.T) {
	_, err := ParseProjectStatus("Done")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "status", verr.Field)
	assert.Equal(t, "Done", verr.Value)
}

func TestParseProjectStatus_EmptyLabel(t *testing.T) {
	_, err := ParseProjectStatus("")
	assert.Error(t, err)
}

func TestParseTaskPriority_RoundTrip(t *testing.T) {
	for _, p := range TaskPriorities() {
		got, err := ParseTaskPriority(p.Label())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestParseTaskPriority_Unknown(t *testing.T) {
	_, err := ParseTaskPriority("urgent")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "priority", verr.Field)
}

func TestProjectStatuses_DeclarationOrder(t *testing.T) {
	assert.Equal(t, []ProjectStatus{
		StatusPlanning, StatusInProgress, StatusTesting, StatusCompleted, StatusOnHold,
	}, ProjectStatuses())
}

func TestTaskPriorities_DeclarationOrder(t *testing.T) {
	assert.Equal(t, []TaskPriority{
		PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical,
	}, TaskPriorities())
}

func TestProject_ToMap(t *testing.T) {
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	p := &Project{
		ID:          7,
		Name:        "Сайт",
		Description: "Редизайн",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
		Status:      StatusInProgress,
		Budget:      100000.0,
		TeamSize:    5,
	}

	m := p.ToMap()
	assert.Equal(t, int64(7), m["id"])
	assert.Equal(t, "2024-01-01", m["start_date"])
	assert.Equal(t, "2024-12-31", m["end_date"])
	assert.Equal(t, "В работе", m["status"])
	assert.Equal(t, 100000.0, m["budget"])
	assert.Equal(t, 5, m["team_size"])
}

func TestProject_ToMap_NullEndDate(t *testing.T) {
	p := &Project{
		Name:      "Без срока",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:    StatusPlanning,
	}

	m := p.ToMap()
	assert.Nil(t, m["end_date"])
	assert.Nil(t, m["id"])
}

func TestTask_ToMap(t *testing.T) {
	task := &Task{
		ID:        3,
		ProjectID: 7,
		Title:     "Вёрстка",
		Assignee:  "Иван Иванов",
		Priority:  PriorityHigh,
		Deadline:  time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    StatusTesting,
	}

	m := task.ToMap()
	assert.Equal(t, int64(3), m["id"])
	assert.Equal(t, int64(7), m["project_id"])
	assert.Equal(t, "Высокий", m["priority"])
	assert.Equal(t, "2024-03-31", m["deadline"])
	assert.Equal(t, "Тестирование", m["status"])
}
