package dataprocessing

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	notDisclosed = "Not Disclosed"
	notSpecified = "Not Specified"
)

var titleCaser = cases.Title(language.English)

// TitleCase splits on whitespace, capitalizes each token, and rejoins
// with single spaces: "123 main st" -> "123 Main St".
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleCaser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// ParseAmount coerces dirty currency text ("$1,200", " 1100.50 ") to a
// number. The second return is false when the value is blank or not
// parseable; unparseable values are "missing", never zero.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatPrice renders a price value for display. Values made up of
// digits, commas and a decimal point are parsed and re-rendered with a
// dollar sign and comma grouping, whole numbers without decimals and
// fractional ones with exactly two. Anything else ("Offers above
// $500,000") passes through unchanged.
func FormatPrice(raw string) string {
	s := strings.TrimSpace(raw)
	if !isNumericString(s) {
		return raw
	}
	v, ok := ParseAmount(s)
	if !ok {
		return raw
	}
	if v == math.Trunc(v) {
		return "$" + humanize.Comma(int64(v))
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// isNumericString reports whether s consists only of digits, commas
// and decimal points, with at least one digit.
func isNumericString(s string) bool {
	hasDigit := false
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
			hasDigit = true
		case ch == ',' || ch == '.':
		default:
			return false
		}
	}
	return hasDigit
}

// fallback returns s unless it is blank, in which case def is used.
func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
