package services

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busireport/internal/config"
	"busireport/internal/dataprocessing"
	"busireport/pkg/contracts/domain"
)

// headerPositions is the source layout: header label -> zero-based
// column index.
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

func sourceHeaders() []string {
	headers := make([]string, 58)
	for label, idx := range headerPositions {
		headers[idx] = label
	}
	return headers
}

func sourceRow(values map[string]string) []string {
	row := make([]string, 58)
	for label, v := range values {
		row[headerPositions[label]] = v
	}
	return row
}

func writeListingsCSV(t *testing.T, headers []string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(headers))
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	w.Flush()
	require.NoError(t, w.Error())
	return path
}

func testService(t *testing.T) *ReportService {
	t.Helper()
	base := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			AssetsDir:  filepath.Join(base, "assets"),
			UploadsDir: filepath.Join(base, "uploads"),
			OutputDir:  filepath.Join(base, "output"),
			LogsDir:    filepath.Join(base, "logs"),
		},
	}
	require.NoError(t, cfg.Paths.EnsureDirectories())

	s := NewReportService(cfg)
	s.now = func() time.Time {
		return time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	}
	return s
}

func testRequest() domain.ReportRequest {
	return domain.ReportRequest{
		BrandKey:   "busivet",
		SecondLine: "Site Selection Report",
		ThirdLine:  "Richmond",
		ReportDate: "August 2026",
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	rows := [][]string{
		sourceRow(map[string]string{
			"Type":                                 "For Lease",
			"Street Address":                       "12 smith st",
			"Suburb":                               "richmond",
			"Site Zoning":                          "Commercial 1",
			"Property Type":                        "Retail",
			"Car":                                  "4",
			"Floor Size (m²)":                      "240",
			"Total Lease Price (Base + Outgoings)": "52000",
			"$/m²":                                 "1200",
			"PUT IN REPORT (T/F)":                  "T",
			"Busi's Comment":                       "Corner site",
		}),
		sourceRow(map[string]string{
			"Type":                              "For Sale",
			"Street Address":                    "5 high st",
			"Suburb":                            "carlton",
			"Last Listed Price (Sold/For Sale)": "750000",
			"PUT IN REPORT (T/F)":               "T",
		}),
		sourceRow(map[string]string{
			"Type":                "Sold",
			"Suburb":              "fitzroy",
			"PUT IN REPORT (T/F)": "F",
		}),
	}
	path := writeListingsCSV(t, sourceHeaders(), rows)

	s := testService(t)
	generated, err := s.Generate(context.Background(), path, testRequest())
	require.NoError(t, err)

	assert.Equal(t, "busivet_report_20260829_143005.pdf", filepath.Base(generated.Path))
	assert.Equal(t, "Property_Report_Richmond_August_2026.pdf", generated.DownloadName)
	assert.Equal(t, "busivet", generated.Brand.Key)

	require.Len(t, generated.Model.ForLease, 1)
	require.Len(t, generated.Model.ForSale, 1)
	assert.Equal(t, "$52,000", generated.Model.ForLease[0].Price)
	assert.Equal(t, 1, generated.Model.Statistics.ForLease.Criteria)
	assert.Equal(t, 1200, generated.Model.Statistics.ForLease.AvgPricePerSqm)

	info, err := os.Stat(generated.Path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestGenerateUnknownBrandFallsBack(t *testing.T) {
	path := writeListingsCSV(t, sourceHeaders(), [][]string{
		sourceRow(map[string]string{
			"Type":                "For Lease",
			"Suburb":              "richmond",
			"PUT IN REPORT (T/F)": "T",
		}),
	})

	req := testRequest()
	req.BrandKey = "busidental"

	generated, err := testService(t).Generate(context.Background(), path, req)
	require.NoError(t, err)
	assert.Equal(t, "busivet", generated.Brand.Key)
}

func TestGenerateEmptyTable(t *testing.T) {
	path := writeListingsCSV(t, sourceHeaders(), nil)

	_, err := testService(t).Generate(context.Background(), path, testRequest())
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestGenerateSchemaMismatch(t *testing.T) {
	headers := sourceHeaders()
	headers[3] = "Suburbs" // wrong label at D
	path := writeListingsCSV(t, headers, [][]string{sourceRow(nil)})

	_, err := testService(t).Generate(context.Background(), path, testRequest())
	var schemaErr *dataprocessing.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "D", schemaErr.Letter)
}

func TestGenerateUnreadableSource(t *testing.T) {
	tests := []struct {
		name   string
		source func(t *testing.T) string
	}{
		{
			name: "missing file",
			source: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.csv")
			},
		},
		{
			name: "corrupt workbook",
			source: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "broken.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testService(t).Generate(context.Background(), tt.source(t), testRequest())
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
