// Package validation checks uploaded files against the configured
// acceptance rules before any processing begins.
package validation

import (
	"log/slog"

	apierrors "busireport/internal/errors"

	"busireport/internal/config"
)

// FileValidator validates uploaded spreadsheet files.
type FileValidator struct {
	cfg    config.UploadConfig
	logger *slog.Logger
}

// NewFileValidator creates a new file validator.
func NewFileValidator(cfg config.UploadConfig, logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "file_validator")),
	}
}

// ValidateUpload checks the upload's extension and declared size.
// Returns an *errors.APIError ready for the HTTP layer.
func (v *FileValidator) ValidateUpload(filename string, size int64) error {
	if !v.cfg.AllowedExtension(filename) {
		v.logger.Warn("rejected upload with disallowed extension",
			slog.String("filename", filename))
		return apierrors.ErrInvalidFileType
	}
	if size > v.cfg.MaxFileSize {
		v.logger.Warn("rejected oversized upload",
			slog.String("filename", filename),
			slog.Int64("size", size),
			slog.Int64("limit", v.cfg.MaxFileSize))
		return apierrors.ErrFileTooLarge
	}
	return nil
}
