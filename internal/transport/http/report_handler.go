package http

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"busireport/internal/config"
	apierrors "busireport/internal/errors"
	"busireport/internal/services"
	"busireport/internal/validation"
	"busireport/pkg/contracts/domain"
)

// ReportHandler handles report generation requests.
type ReportHandler struct {
	service       *services.ReportService
	fileValidator *validation.FileValidator
	validate      *validator.Validate
	errorHandler  *apierrors.ErrorHandler
	upload        config.UploadConfig
	logger        *slog.Logger
}

// NewReportHandler creates a report handler.
func NewReportHandler(service *services.ReportService, upload config.UploadConfig, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportHandler {
	return &ReportHandler{
		service:       service,
		fileValidator: validation.NewFileValidator(upload, logger),
		validate:      validator.New(),
		errorHandler:  errorHandler,
		upload:        upload,
		logger:        logger.With(slog.String("component", "report_handler")),
	}
}

// Routes returns the report routes.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.GenerateReport)
	return r
}

// GenerateReport accepts a multipart form with the spreadsheet and the
// presentation parameters, runs the pipeline, and streams the PDF back
// as an attachment.
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Cap the whole request body; a too-large upload fails the form
	// parse below.
	r.Body = http.MaxBytesReader(w, r.Body, h.upload.MaxFileSize)
	if err := r.ParseMultipartForm(4 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrFileTooLarge)
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.ErrInvalidRequest)
		return
	}

	req := domain.ReportRequest{
		BrandKey:   r.FormValue("business_type"),
		SecondLine: r.FormValue("second_line"),
		ThirdLine:  r.FormValue("third_line"),
		ReportDate: r.FormValue("report_date"),
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleValidationError(w, r, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "A spreadsheet file is required"))
		return
	}
	defer file.Close()

	if err := h.fileValidator.ValidateUpload(header.Filename, header.Size); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	staged, cleanup, err := h.service.Files().StageUpload(file, header.Filename)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	defer cleanup()

	generated, err := h.service.Generate(ctx, staged, req)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.streamPDF(w, r, generated)
}

func (h *ReportHandler) handleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation(first.Field(), "failed "+first.Tag()+" validation"))
		return
	}
	h.errorHandler.HandleError(w, r, apierrors.ErrValidationFailed)
}

func (h *ReportHandler) streamPDF(w http.ResponseWriter, r *http.Request, generated *services.GeneratedReport) {
	f, err := os.Open(generated.Path)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrReportFailed)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrReportFailed)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+generated.DownloadName+`"`)
	http.ServeContent(w, r, generated.DownloadName, info.ModTime(), f)

	h.logger.InfoContext(r.Context(), "report served",
		slog.String("download_name", generated.DownloadName),
		slog.Int64("size", info.Size()))
}
