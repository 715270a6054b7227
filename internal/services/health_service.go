package services

import (
	"log/slog"
	"runtime"
	"time"

	"busireport/internal/config"
	"busireport/internal/files"
)

// HealthStatus is the diagnostic snapshot served by the status
// endpoint.
type HealthStatus struct {
	Status      string          `json:"status"`
	Timestamp   time.Time       `json:"timestamp"`
	GoVersion   string          `json:"go_version"`
	Directories map[string]bool `json:"directories"`
}

// HealthService reports on the service's ability to do its job:
// whether the working directories exist and accept writes.
type HealthService struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewHealthService creates a health service.
func NewHealthService(cfg *config.Config, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "health_service")),
	}
}

// Check returns the current diagnostic snapshot. Degraded when any
// working directory is not writable.
func (s *HealthService) Check() HealthStatus {
	dirs := map[string]bool{
		"uploads": files.Writable(s.cfg.Paths.UploadsDir),
		"output":  files.Writable(s.cfg.Paths.OutputDir),
		"logs":    files.Writable(s.cfg.Paths.LogsDir),
	}

	status := "ok"
	for name, ok := range dirs {
		if !ok {
			status = "degraded"
			s.logger.Warn("working directory not writable",
				slog.String("directory", name))
		}
	}

	return HealthStatus{
		Status:      status,
		Timestamp:   time.Now().UTC(),
		GoVersion:   runtime.Version(),
		Directories: dirs,
	}
}
