package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"busireport/internal/config"
)

func TestHealthCheckOK(t *testing.T) {
	base := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			UploadsDir: filepath.Join(base, "uploads"),
			OutputDir:  filepath.Join(base, "output"),
			LogsDir:    filepath.Join(base, "logs"),
		},
	}
	assert.NoError(t, cfg.Paths.EnsureDirectories())

	status := NewHealthService(cfg, nil).Check()

	assert.Equal(t, "ok", status.Status)
	assert.NotEmpty(t, status.GoVersion)
	assert.False(t, status.Timestamp.IsZero())
	for name, ok := range status.Directories {
		assert.True(t, ok, name)
	}
}

func TestHealthCheckDegraded(t *testing.T) {
	base := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			UploadsDir: filepath.Join(base, "uploads"),
			OutputDir:  filepath.Join(base, "missing"), // never created
			LogsDir:    filepath.Join(base, "logs"),
		},
	}
	created := config.PathsConfig{
		UploadsDir: cfg.Paths.UploadsDir,
		OutputDir:  filepath.Join(base, "created-elsewhere"),
		LogsDir:    cfg.Paths.LogsDir,
	}
	assert.NoError(t, created.EnsureDirectories())

	status := NewHealthService(cfg, nil).Check()

	assert.Equal(t, "degraded", status.Status)
	assert.False(t, status.Directories["output"])
	assert.True(t, status.Directories["uploads"])
}
