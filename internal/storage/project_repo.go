package storage

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"projtrack/internal/model"
	"projtrack/pkg/metrics"
)

type ProjectRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewProjectRepository(db *sql.DB, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new project and returns its assigned id. The input's
// ID must be unset; the caller updates its copy from the return value.
func (r *ProjectRepository) Insert(ctx context.Context, p *model.Project) (int64, error) {
	r.logger.Debug("Inserting project",
		zap.String("name", p.Name),
		zap.String("status", p.Status.Label()),
	)
	start := time.Now()

	query := `
        INSERT INTO projects (name, description, start_date, end_date, status, budget, team_size)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	var endDate any
	if p.EndDate != nil {
		endDate = p.EndDate.Format(model.DateLayout)
	}
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.StartDate.Format(model.DateLayout),
		endDate,
		p.Status.Label(),
		p.Budget,
		p.TeamSize,
	)
	if err != nil {
		r.logger.Error("Failed to insert project", zap.Error(err))
		return 0, &WriteError{Op: "insert project", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.logger.Error("Failed to read inserted project id", zap.Error(err))
		return 0, &WriteError{Op: "insert project", Err: err}
	}

	metrics.RecordStoreOpDuration("insert", "projects", time.Since(start))
	metrics.IncrementEntitiesCreated("projects")
	r.logger.Info("Project inserted successfully",
		zap.Int64("id", id),
		zap.String("name", p.Name),
	)
	return id, nil
}

// Delete removes the project with this id and, through the cascade, every
// task referencing it, in one atomic statement. It reports whether a
// project row was actually deleted; a missing id is not an error.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.logger.Debug("Deleting project", zap.Int64("id", id))
	start := time.Now()

	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete project", zap.Error(err), zap.Int64("id", id))
		return false, &WriteError{Op: "delete project", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, &WriteError{Op: "delete project", Err: err}
	}

	metrics.RecordStoreOpDuration("delete", "projects", time.Since(start))
	if affected > 0 {
		metrics.IncrementEntitiesDeleted("projects")
	}
	r.logger.Info("Project delete finished",
		zap.Int64("id", id),
		zap.Int64("rows_affected", affected),
	)
	return affected > 0, nil
}

// ListAll returns every project, most recently created first. Rows are
// reconstructed into fully typed entities: an unrecognized status label or
// unparseable start date fails the call, while an unparseable optional end
// date is treated as null.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]model.Project, error) {
	r.logger.Debug("Listing projects")
	start := time.Now()

	query := `
        SELECT id, name, description, start_date, end_date, status, budget, team_size, created_at
        FROM projects
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query projects", zap.Error(err))
		return nil, &ReadError{Op: "list projects", Err: err}
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var (
			p         model.Project
			startDate string
			endDate   sql.NullString
			status    string
		)
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&startDate,
			&endDate,
			&status,
			&p.Budget,
			&p.TeamSize,
			&p.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan project row", zap.Error(err))
			return nil, &ReadError{Op: "list projects", Err: err}
		}

		st, err := model.ParseProjectStatus(status)
		if err != nil {
			r.logger.Error("Stored project status label is not recognized",
				zap.Int64("id", p.ID),
				zap.String("status", status),
			)
			return nil, &ReadError{Op: "list projects", Err: err}
		}
		p.Status = st

		sd, err := time.Parse(model.DateLayout, startDate)
		if err != nil {
			r.logger.Error("Stored project start date is unparseable",
				zap.Int64("id", p.ID),
				zap.String("start_date", startDate),
			)
			return nil, &ReadError{Op: "list projects", Err: err}
		}
		p.StartDate = sd

		// Permissive by policy: a bad optional end date reads back as null.
		if endDate.Valid {
			if ed, err := time.Parse(model.DateLayout, endDate.String); err == nil {
				p.EndDate = &ed
			}
		}

		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Project row iteration failed", zap.Error(err))
		return nil, &ReadError{Op: "list projects", Err: err}
	}

	metrics.RecordStoreOpDuration("list", "projects", time.Since(start))
	r.logger.Info("Projects listed successfully", zap.Int("count", len(projects)))
	return projects, nil
}
