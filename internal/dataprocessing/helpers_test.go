package dataprocessing

import (
	"busireport/pkg/contracts/domain"
)

// testHeaders builds a header row laid out exactly per the positional
// contract, padded with blanks at the unchecked positions.
func testHeaders() []string {
	headers := make([]string, ColumnIndex("BF")+1)
	for letter, header := range expectedHeaders {
		headers[ColumnIndex(letter)] = header
	}
	return headers
}

// testRow builds a full-width data row with the given field values.
func testRow(values map[domain.Field]string) []string {
	row := make([]string, ColumnIndex("BF")+1)
	for letter, header := range expectedHeaders {
		if v, ok := values[domain.Field(header)]; ok {
			row[ColumnIndex(letter)] = v
		}
	}
	return row
}

// listingRow is shorthand for a data row with category and inclusion
// flag set, plus any extra field values.
func listingRow(category domain.Category, included bool, extra map[domain.Field]string) []string {
	values := map[domain.Field]string{
		domain.FieldCategory: string(category),
		domain.FieldInReport: "F",
	}
	if included {
		values[domain.FieldInReport] = "T"
	}
	for f, v := range extra {
		values[f] = v
	}
	return testRow(values)
}
