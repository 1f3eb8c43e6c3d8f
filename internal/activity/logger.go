package activity

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"projtrack/internal/model"
)

// Logger appends human-readable tracker events to the activity log file and
// mirrors them to the console. It is an injected collaborator: the core
// never touches it, callers pass events in after store operations.
type Logger struct {
	log *zap.Logger
}

// New opens (or creates) the activity log at path.
func New(path string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{path, "stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open activity log %s: %w", path, err)
	}
	return &Logger{log: l}, nil
}

func (a *Logger) ProjectCreated(p *model.Project) {
	a.log.Info(fmt.Sprintf("Создан проект: %s (ID: %d)", p.Name, p.ID))
}

func (a *Logger) TaskCreated(t *model.Task) {
	a.log.Info(fmt.Sprintf("Создана задача: %s для проекта ID: %d", t.Title, t.ProjectID))
}

func (a *Logger) ProjectDeleted(id int64) {
	a.log.Info(fmt.Sprintf("Удалён проект ID: %d", id))
}

func (a *Logger) TaskDeleted(id int64) {
	a.log.Info(fmt.Sprintf("Удалена задача ID: %d", id))
}

func (a *Logger) Error(err error) {
	a.log.Error(fmt.Sprintf("Ошибка: %v", err))
}

// Activity records an arbitrary human-readable event.
func (a *Logger) Activity(msg string) {
	a.log.Info(msg)
}

// Sync flushes buffered events to the file.
func (a *Logger) Sync() error {
	return a.log.Sync()
}
