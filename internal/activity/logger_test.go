package activity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projtrack/internal/model"
)

func newTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity.log")
	l, err := New(path)
	require.NoError(t, err)
	return l, path
}

func readLog(t *testing.T, l *Logger, path string) string {
	t.Helper()
	l.Sync()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestProjectCreated_WritesEvent(t *testing.T) {
	l, path := newTestLogger(t)

	l.ProjectCreated(&model.Project{ID: 5, Name: "Сайт"})

	got := readLog(t, l, path)
	assert.Contains(t, got, "Создан проект: Сайт (ID: 5)")
}

func TestTaskCreated_WritesEvent(t *testing.T) {
	l, path := newTestLogger(t)

	l.TaskCreated(&model.Task{ID: 2, ProjectID: 5, Title: "Вёрстка"})

	got := readLog(t, l, path)
	assert.Contains(t, got, "Создана задача: Вёрстка для проекта ID: 5")
}

func TestError_WritesEvent(t *testing.T) {
	l, path := newTestLogger(t)

	l.Error(errors.New("диск переполнен"))

	got := readLog(t, l, path)
	assert.Contains(t, got, "Ошибка: диск переполнен")
}

func TestActivity_WritesArbitraryMessage(t *testing.T) {
	l, path := newTestLogger(t)

	l.Activity("Приложение запущено")
	l.ProjectDeleted(9)
	l.TaskDeleted(4)

	got := readLog(t, l, path)
	assert.Contains(t, got, "Приложение запущено")
	assert.Contains(t, got, "Удалён проект ID: 9")
	assert.Contains(t, got, "Удалена задача ID: 4")
}
