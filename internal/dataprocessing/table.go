package dataprocessing

import (
	"strings"

	"busireport/pkg/contracts/domain"
)

// PropertyTable is the parsed source table with field access resolved
// once at load time. Business logic reads cells by semantic field
// name, never by raw position.
type PropertyTable struct {
	headers []string
	rows    [][]string
	index   map[domain.Field]int
}

// NewPropertyTable builds a table from a header row and data rows,
// resolving each known field label to its column index. Unknown extra
// columns are ignored.
func NewPropertyTable(headers []string, rows [][]string) *PropertyTable {
	index := make(map[domain.Field]int, len(domain.RequiredFields))
	for i, h := range headers {
		f := domain.Field(strings.TrimSpace(h))
		if _, seen := index[f]; !seen {
			index[f] = i
		}
	}
	return &PropertyTable{headers: headers, rows: rows, index: index}
}

// Headers returns the raw header row.
func (t *PropertyTable) Headers() []string { return t.headers }

// Len returns the number of data rows.
func (t *PropertyTable) Len() int { return len(t.rows) }

// HasField reports whether the field's label is present as a column.
func (t *PropertyTable) HasField(f domain.Field) bool {
	_, ok := t.index[f]
	return ok
}

// MissingFields returns the names of required fields absent from the
// table, in the order given.
func (t *PropertyTable) MissingFields(required []domain.Field) []string {
	var missing []string
	for _, f := range required {
		if !t.HasField(f) {
			missing = append(missing, string(f))
		}
	}
	return missing
}

// Value returns the trimmed cell value at (row, field). Ragged rows
// are common in spreadsheet exports; out-of-range cells read as "".
func (t *PropertyTable) Value(row int, f domain.Field) string {
	idx, ok := t.index[f]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	cells := t.rows[row]
	if idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// Category returns the row's market category.
func (t *PropertyTable) Category(row int) domain.Category {
	return domain.Category(t.Value(row, domain.FieldCategory))
}

// Included reports whether the row carries the inclusion flag.
func (t *PropertyTable) Included(row int) bool {
	return t.Value(row, domain.FieldInReport) == "T"
}
