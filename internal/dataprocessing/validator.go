package dataprocessing

import (
	"sort"
)

// expectedHeaders is the fixed positional contract for the source
// spreadsheet: column letter -> exact header text. Matching is
// case-sensitive by position; matching by label search is deliberately
// not done, so a silently reordered column fails loudly here.
var expectedHeaders = map[string]string{
	"A":  "Type",
	"B":  "Property Photo",
	"C":  "Street Address",
	"D":  "Suburb",
	"E":  "State",
	"F":  "Postcode",
	"G":  "Site Zoning",
	"H":  "Property Type",
	"K":  "Car",
	"N":  "Floor Size (m²)",
	"AL": "Last Listed Price (Sold/For Sale)",
	"AT": "Total Lease Price (Base + Outgoings)",
	"AZ": "Allowable Use in Zone (T/F)",
	"BA": "$/m²",
	"BD": "PUT IN REPORT (T/F)",
	"BF": "Busi's Comment",
}

// ColumnIndex converts a spreadsheet column letter to a zero-based
// index: A=0 ... Z=25, AA=26.
func ColumnIndex(letter string) int {
	n := 0
	for _, ch := range letter {
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		n = n*26 + int(ch-'A') + 1
	}
	return n - 1
}

// ValidateHeaders checks the table's header row against the positional
// contract, in ascending column order, and returns a *SchemaError for
// the first violation. Returns nil when every checked position
// matches.
func ValidateHeaders(headers []string) error {
	letters := make([]string, 0, len(expectedHeaders))
	for letter := range expectedHeaders {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool {
		return ColumnIndex(letters[i]) < ColumnIndex(letters[j])
	})

	for _, letter := range letters {
		expected := expectedHeaders[letter]
		idx := ColumnIndex(letter)
		if idx >= len(headers) {
			return &SchemaError{Letter: letter, Expected: expected, Missing: true}
		}
		if headers[idx] != expected {
			return &SchemaError{Letter: letter, Expected: expected, Actual: headers[idx]}
		}
	}
	return nil
}
