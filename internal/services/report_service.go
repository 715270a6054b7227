// Package services wires the processing pipeline together: one report
// generation is validate -> normalize -> compose, run synchronously in
// the scope of a single request.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"busireport/internal/config"
	"busireport/internal/dataprocessing"
	"busireport/internal/files"
	"busireport/internal/report"
	"busireport/pkg/contracts/domain"
)

// GeneratedReport describes one finished generation run.
type GeneratedReport struct {
	// Path is where the PDF was written.
	Path string
	// DownloadName is the caller-facing attachment filename.
	DownloadName string
	// Model is the normalized data the document was rendered from.
	Model *domain.ReportModel
	// Brand is the resolved preset, after any fallback.
	Brand report.Brand
}

// ReportService runs the full data-to-report pipeline.
type ReportService struct {
	cfg      *config.Config
	files    *files.Manager
	composer *report.Composer
	logger   *slog.Logger
	now      func() time.Time
}

// NewReportService creates a report service using the default logger.
func NewReportService(cfg *config.Config) *ReportService {
	return NewReportServiceWithLogger(cfg, slog.Default())
}

// NewReportServiceWithLogger creates a report service with a specific
// logger.
func NewReportServiceWithLogger(cfg *config.Config, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "report_service"))
	return &ReportService{
		cfg:      cfg,
		files:    files.NewManager(cfg.Paths, logger),
		composer: report.NewComposer(cfg.Paths.AssetsDir, logger),
		logger:   logger,
		now:      time.Now,
	}
}

// Generate runs one generation: load the table at sourcePath, validate
// its header layout, normalize it, and compose the PDF. Fatal pipeline
// errors (schema mismatch, missing columns, render failure) abort and
// propagate; image problems degrade inside the normalizer.
func (s *ReportService) Generate(ctx context.Context, sourcePath string, req domain.ReportRequest) (*GeneratedReport, error) {
	start := s.now()
	s.logger.InfoContext(ctx, "report generation started",
		slog.String("source", sourcePath),
		slog.String("brand", req.BrandKey))

	table, err := dataprocessing.LoadTable(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if table.Len() == 0 {
		return nil, ErrEmptyTable
	}

	if err := dataprocessing.ValidateHeaders(table.Headers()); err != nil {
		return nil, err
	}

	normalizer := dataprocessing.NewNormalizer(s.logger)
	model, err := normalizer.Normalize(table, sourcePath)
	if err != nil {
		return nil, err
	}

	brand := report.ResolveBrand(req.BrandKey, s.logger)
	outputPath := s.files.OutputPath(brand.Key, s.now())
	if err := s.composer.Compose(model, req, brand, outputPath); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "report generation finished",
		slog.String("output", outputPath),
		slog.Int("for_lease", len(model.ForLease)),
		slog.Int("for_sale", len(model.ForSale)),
		slog.Duration("duration", s.now().Sub(start)))

	return &GeneratedReport{
		Path:         outputPath,
		DownloadName: files.DownloadName(req.ThirdLine, req.ReportDate),
		Model:        model,
		Brand:        brand,
	}, nil
}

// Files exposes the file manager for the HTTP layer's upload staging.
func (s *ReportService) Files() *files.Manager {
	return s.files
}
