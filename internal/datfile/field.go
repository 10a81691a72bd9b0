// Package datfile reads the legacy comma-separated airports layout.
//
// Every field, required or optional, goes through Field so that null
// handling is identical across columns: surrounding whitespace and double
// quotes are stripped, and `\N` or an empty value means null.
package datfile

import (
	"math"
	"strconv"
	"strings"
)

// NullSentinel marks a missing value in the legacy layout.
const NullSentinel = `\N`

// Field normalizes a raw column value. ok is false when the value is null.
func Field(raw string) (value string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == NullSentinel || s == "" {
		return "", false
	}

	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == NullSentinel || s == "" {
		return "", false
	}
	return s, true
}

// Text returns the normalized value, or "" when null.
func Text(raw string) string {
	v, _ := Field(raw)
	return v
}

// String returns the normalized value, or nil when null.
func String(raw string) *string {
	v, ok := Field(raw)
	if !ok {
		return nil
	}
	return &v
}

// Float parses a float column. Null and unparsable values yield nil.
func Float(raw string) *float64 {
	v, ok := Field(raw)
	if !ok {
		return nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// TruncatedInt parses a float column and truncates it toward zero.
// Null and unparsable values yield nil.
func TruncatedInt(raw string) *int {
	f := Float(raw)
	if f == nil {
		return nil
	}

	n := int(math.Trunc(*f))
	return &n
}

// isDigits mirrors the header test of the legacy loaders: a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
