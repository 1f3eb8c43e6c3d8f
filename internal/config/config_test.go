package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "projects.db", cfg.Storage.Path)
	assert.Equal(t, "activity.log", cfg.Logging.ActivityLog)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	data := `
storage:
  path: /tmp/work.db
logging:
  level: debug
metrics:
  addr: 127.0.0.1:9090
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/work.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "127.0.0.1:9090", cfg.Metrics.Addr)
	// untouched keys keep defaults
	assert.Equal(t, "activity.log", cfg.Logging.ActivityLog)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  path: from-file.db\n"), 0o644))

	t.Setenv("TRACKER_DB_PATH", "from-env.db")
	t.Setenv("TRACKER_ACTIVITY_LOG", "events.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Storage.Path)
	assert.Equal(t, "events.log", cfg.Logging.ActivityLog)
}
