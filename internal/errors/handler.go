package errors

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"busireport/internal/dataprocessing"
	"busireport/internal/report"
	"busireport/internal/services"
)

// ErrorHandler provides centralized error handling for the HTTP layer.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError maps any error onto its APIError response and renders
// it, logging the failure with request context.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	apiErr := h.toAPIError(err)

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("error_code", apiErr.ErrorCode),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))

	render.Render(w, r, apiErr)
}

// toAPIError resolves the pipeline failure taxonomy to HTTP responses.
// Anything unrecognized becomes a generic 500 without leaking internal
// detail.
func (h *ErrorHandler) toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, services.ErrEmptyTable) {
		return New(http.StatusUnprocessableEntity, "EMPTY_FILE",
			"Source file contains no data rows")
	}

	if errors.Is(err, services.ErrInvalidInput) {
		return New(http.StatusBadRequest, "UNREADABLE_FILE",
			"Source file could not be read as a spreadsheet")
	}

	var schemaErr *dataprocessing.SchemaError
	if errors.As(err, &schemaErr) {
		return SchemaValidationError(schemaErr)
	}

	var missingErr *dataprocessing.MissingColumnError
	if errors.As(err, &missingErr) {
		return MissingColumnsError(missingErr.Columns)
	}

	var renderErr *report.RenderError
	if errors.As(err, &renderErr) {
		return NewWithDetails(http.StatusInternalServerError, "RENDER_FAILED",
			"Report rendering failed", renderErr.Error())
	}

	return ErrInternalServer
}
