package storage

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"projtrack/internal/model"
	"projtrack/pkg/metrics"
)

type TaskRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewTaskRepository(db *sql.DB, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

// Insert persists a new task and returns its assigned id. A project_id that
// references no existing project fails the foreign-key constraint; the
// returned *WriteError wraps it and IsForeignKeyViolation detects it.
func (r *TaskRepository) Insert(ctx context.Context, t *model.Task) (int64, error) {
	r.logger.Debug("Inserting task",
		zap.Int64("project_id", t.ProjectID),
		zap.String("title", t.Title),
		zap.String("priority", t.Priority.Label()),
	)
	start := time.Now()

	query := `
        INSERT INTO tasks (project_id, title, description, assignee, priority, deadline, status)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	res, err := r.db.ExecContext(ctx, query,
		t.ProjectID,
		t.Title,
		t.Description,
		t.Assignee,
		t.Priority.Label(),
		t.Deadline.Format(model.DateLayout),
		t.Status.Label(),
	)
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Error(err),
			zap.Int64("project_id", t.ProjectID),
		)
		return 0, &WriteError{Op: "insert task", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.logger.Error("Failed to read inserted task id", zap.Error(err))
		return 0, &WriteError{Op: "insert task", Err: err}
	}

	metrics.RecordStoreOpDuration("insert", "tasks", time.Since(start))
	metrics.IncrementEntitiesCreated("tasks")
	r.logger.Info("Task inserted successfully",
		zap.Int64("id", id),
		zap.Int64("project_id", t.ProjectID),
	)
	return id, nil
}

// Delete removes the task with this id, reporting whether a row matched.
func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.logger.Debug("Deleting task", zap.Int64("id", id))
	start := time.Now()

	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete task", zap.Error(err), zap.Int64("id", id))
		return false, &WriteError{Op: "delete task", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, &WriteError{Op: "delete task", Err: err}
	}

	metrics.RecordStoreOpDuration("delete", "tasks", time.Since(start))
	if affected > 0 {
		metrics.IncrementEntitiesDeleted("tasks")
	}
	r.logger.Info("Task delete finished",
		zap.Int64("id", id),
		zap.Int64("rows_affected", affected),
	)
	return affected > 0, nil
}

// ListByProject returns every task of one project, most recently created
// first. An unknown project id yields an empty list, not an error.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	r.logger.Debug("Listing tasks for project", zap.Int64("project_id", projectID))
	start := time.Now()

	query := `
        SELECT id, project_id, title, description, assignee, priority, deadline, status, created_at
        FROM tasks
        WHERE project_id = ?
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		r.logger.Error("Failed to query tasks",
			zap.Error(err),
			zap.Int64("project_id", projectID),
		)
		return nil, &ReadError{Op: "list tasks", Err: err}
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var (
			t        model.Task
			priority string
			deadline string
			status   string
		)
		if err := rows.Scan(
			&t.ID,
			&t.ProjectID,
			&t.Title,
			&t.Description,
			&t.Assignee,
			&priority,
			&deadline,
			&status,
			&t.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan task row",
				zap.Error(err),
				zap.Int64("project_id", projectID),
			)
			return nil, &ReadError{Op: "list tasks", Err: err}
		}

		pr, err := model.ParseTaskPriority(priority)
		if err != nil {
			r.logger.Error("Stored task priority label is not recognized",
				zap.Int64("id", t.ID),
				zap.String("priority", priority),
			)
			return nil, &ReadError{Op: "list tasks", Err: err}
		}
		t.Priority = pr

		st, err := model.ParseProjectStatus(status)
		if err != nil {
			r.logger.Error("Stored task status label is not recognized",
				zap.Int64("id", t.ID),
				zap.String("status", status),
			)
			return nil, &ReadError{Op: "list tasks", Err: err}
		}
		t.Status = st

		dl, err := time.Parse(model.DateLayout, deadline)
		if err != nil {
			r.logger.Error("Stored task deadline is unparseable",
				zap.Int64("id", t.ID),
				zap.String("deadline", deadline),
			)
			return nil, &ReadError{Op: "list tasks", Err: err}
		}
		t.Deadline = dl

		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Task row iteration failed", zap.Error(err))
		return nil, &ReadError{Op: "list tasks", Err: err}
	}

	metrics.RecordStoreOpDuration("list", "tasks", time.Since(start))
	r.logger.Info("Tasks listed successfully",
		zap.Int64("project_id", projectID),
		zap.Int("count", len(tasks)),
	)
	return tasks, nil
}
