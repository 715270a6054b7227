package dataprocessing

import (
	"fmt"
	"strings"
)

// SchemaError reports the first positional header violation found in
// the source table. Fatal: surfaced to the caller before any
// processing begins.
type SchemaError struct {
	Letter   string // spreadsheet column letter, e.g. "AA"
	Expected string
	Actual   string
	Missing  bool // column index beyond the header row
}

func (e *SchemaError) Error() string {
	if e.Missing {
		return fmt.Sprintf("column %s does not exist in the file, expected %q at column %s", e.Letter, e.Expected, e.Letter)
	}
	return fmt.Sprintf("column %s contains %q but should contain %q", e.Letter, e.Actual, e.Expected)
}

// MissingColumnError lists every required field absent from the parsed
// table. Fatal: aborts normalization before any output is produced.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// AssetExtractionError wraps a failure to open the workbook archive or
// decode one embedded image. Non-fatal: callers log it and continue
// without images.
type AssetExtractionError struct {
	Entry string // archive entry name, empty for container-level failures
	Err   error
}

func (e *AssetExtractionError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("extract image %s: %v", e.Entry, e.Err)
	}
	return fmt.Sprintf("extract images: %v", e.Err)
}

func (e *AssetExtractionError) Unwrap() error { return e.Err }
