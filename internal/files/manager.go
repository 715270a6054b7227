// Package files manages the service's working directories: staging
// uploaded spreadsheets and naming generated report files.
package files

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"busireport/internal/config"
)

// Manager provides file staging and output naming. Every upload gets a
// unique staged path, so concurrent generations never collide.
type Manager struct {
	paths  config.PathsConfig
	logger *slog.Logger
}

// NewManager creates a file manager over the configured paths.
func NewManager(paths config.PathsConfig, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		paths:  paths,
		logger: logger.With(slog.String("component", "files")),
	}
}

// StageUpload copies an uploaded spreadsheet into the uploads
// directory under a unique name, preserving the original extension.
// The returned cleanup removes the staged file and is safe to call on
// every exit path.
func (m *Manager) StageUpload(r io.Reader, originalName string) (path string, cleanup func(), err error) {
	if err := os.MkdirAll(m.paths.UploadsDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	path = filepath.Join(m.paths.UploadsDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create staged upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", nil, fmt.Errorf("failed to write staged upload: %w", err)
	}

	m.logger.Info("upload staged",
		slog.String("original", originalName),
		slog.String("path", path))

	cleanup = func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			m.logger.Warn("failed to remove staged upload",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}
	return path, cleanup, nil
}

// OutputPath builds the deterministic path for a generated report:
// <brand>_report_<timestamp>.pdf in the output directory.
func (m *Manager) OutputPath(brandKey string, now time.Time) string {
	name := fmt.Sprintf("%s_report_%s.pdf", strings.ToLower(brandKey), now.Format("20060102_150405"))
	return filepath.Join(m.paths.OutputDir, name)
}

// DownloadName derives the caller-facing attachment filename from the
// report's location line and date.
func DownloadName(location, reportDate string) string {
	sanitize := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	}
	return fmt.Sprintf("Property_Report_%s_%s.pdf", sanitize(location), sanitize(reportDate))
}

// Writable reports whether the directory exists and accepts writes.
// Used by the status endpoint.
func Writable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	probe := filepath.Join(dir, ".probe-"+uuid.NewString())
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}
