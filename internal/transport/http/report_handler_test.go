package http

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busireport/internal/config"
	apierrors "busireport/internal/errors"
	"busireport/internal/services"
)

var headerPositions = map[string]int{
	"Type":                                 0,
	"Property Photo":                       1,
	"Street Address":                       2,
	"Suburb":                               3,
	"State":                                4,
	"Postcode":                             5,
	"Site Zoning":                          6,
	"Property Type":                        7,
	"Car":                                  10,
	"Floor Size (m²)":                      13,
	"Last Listed Price (Sold/For Sale)":    37,
	"Total Lease Price (Base + Outgoings)": 45,
	"Allowable Use in Zone (T/F)":          51,
	"$/m²":                                 52,
	"PUT IN REPORT (T/F)":                  55,
	"Busi's Comment":                       57,
}

// listingsCSV renders a valid source file with one included lease row.
func listingsCSV(t *testing.T) []byte {
	t.Helper()

	headers := make([]string, 58)
	for label, idx := range headerPositions {
		headers[idx] = label
	}
	row := make([]string, 58)
	row[headerPositions["Type"]] = "For Lease"
	row[headerPositions["Suburb"]] = "richmond"
	row[headerPositions["Street Address"]] = "12 smith st"
	row[headerPositions["Total Lease Price (Base + Outgoings)"]] = "52000"
	row[headerPositions["PUT IN REPORT (T/F)"]] = "T"

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, w.Write(headers))
	require.NoError(t, w.Write(row))
	w.Flush()
	require.NoError(t, w.Error())
	return buf.Bytes()
}

func newTestHandler(t *testing.T) *ReportHandler {
	t.Helper()

	base := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			AssetsDir:  filepath.Join(base, "assets"),
			UploadsDir: filepath.Join(base, "uploads"),
			OutputDir:  filepath.Join(base, "output"),
			LogsDir:    filepath.Join(base, "logs"),
		},
		Upload: config.UploadConfig{
			MaxFileSize:       1 << 20,
			AllowedExtensions: []string{".xlsx", ".xls", ".csv"},
		},
	}
	require.NoError(t, cfg.Paths.EnsureDirectories())

	logger := slog.Default()
	service := services.NewReportServiceWithLogger(cfg, logger)
	return NewReportHandler(service, cfg.Upload, logger, apierrors.NewErrorHandler(logger))
}

type formField struct{ name, value string }

// multipartRequest builds a generation request; fileData nil means no
// file part at all.
func multipartRequest(t *testing.T, fields []formField, filename string, fileData []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range fields {
		require.NoError(t, w.WriteField(f.name, f.value))
	}
	if fileData != nil {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validFields() []formField {
	return []formField{
		{"business_type", "busivet"},
		{"second_line", "Site Selection Report"},
		{"third_line", "Richmond"},
		{"report_date", "August 2026"},
	}
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestGenerateReportSuccess(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.GenerateReport(rec, multipartRequest(t, validFields(), "listings.csv", listingsCSV(t)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Property_Report_Richmond_August_2026.pdf"`,
		rec.Header().Get("Content-Disposition"))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestGenerateReportMissingFormField(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()

	fields := []formField{
		{"business_type", "busivet"},
		// second_line omitted
		{"third_line", "Richmond"},
		{"report_date", "August 2026"},
	}
	h.GenerateReport(rec, multipartRequest(t, fields, "listings.csv", listingsCSV(t)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeAPIError(t, rec).ErrorCode)
}

func TestGenerateReportMissingFile(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.GenerateReport(rec, multipartRequest(t, validFields(), "", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeAPIError(t, rec).ErrorCode)
}

func TestGenerateReportWrongFileType(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.GenerateReport(rec, multipartRequest(t, validFields(), "listings.pdf", []byte("%PDF")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_FILE_TYPE", decodeAPIError(t, rec).ErrorCode)
}

func TestGenerateReportUnreadableWorkbook(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()

	// Allowed extension, but not actually a workbook.
	h.GenerateReport(rec, multipartRequest(t, validFields(), "listings.xlsx", []byte("not a workbook")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNREADABLE_FILE", decodeAPIError(t, rec).ErrorCode)
}

func TestGenerateReportSchemaMismatch(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()

	// A csv whose header row does not match the expected layout.
	bad := []byte("Name,Price\nfoo,1\n")
	h.GenerateReport(rec, multipartRequest(t, validFields(), "listings.csv", bad))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "SCHEMA_MISMATCH", decodeAPIError(t, rec).ErrorCode)
}
