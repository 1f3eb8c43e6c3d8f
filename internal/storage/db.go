package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		start_date TEXT NOT NULL,
		end_date TEXT,
		status TEXT NOT NULL,
		budget REAL NOT NULL,
		team_size INTEGER NOT NULL,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		assignee TEXT NOT NULL,
		priority TEXT NOT NULL,
		deadline TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (project_id) REFERENCES projects (id) ON DELETE CASCADE
	)`,
}

// Open opens or creates the SQLite database at path and prepares the schema.
// Foreign-key enforcement is a per-connection setting in SQLite, so it is
// set through the DSN and applies to every connection the pool opens.
func Open(path string, logger *zap.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	logger.Info("Opening database", zap.String("path", path))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("Failed to open database", zap.Error(err))
		return nil, &InitError{Path: path, Err: err}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("Database ping failed", zap.Error(err))
		db.Close()
		return nil, &InitError{Path: path, Err: err}
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("Failed to create schema", zap.Error(err))
			db.Close()
			return nil, &InitError{Path: path, Err: err}
		}
	}

	logger.Info("Database schema ready", zap.String("path", path))
	return db, nil
}
