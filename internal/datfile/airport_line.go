package datfile

import (
	"errors"
	"flight-analytics-service/internal/domain"
	"strconv"
	"strings"
)

// MinColumns is the narrowest accepted airport row (single code column).
const MinColumns = 11

var (
	ErrInsufficientColumns = errors.New("insufficient columns - expected at least 11 columns")
	ErrInvalidID           = errors.New("invalid airport ID")
)

// column offsets after the code column(s)
type layout struct {
	lat, lon, alt, utc, continent, tz int
}

var (
	singleCodeLayout = layout{lat: 5, lon: 6, alt: 7, utc: 8, continent: 9, tz: 10}
	dualCodeLayout   = layout{lat: 6, lon: 7, alt: 8, utc: 9, continent: 10, tz: 11}
)

// IsHeader reports whether the first line of a file is a header row,
// i.e. its first field is not an integer id.
func IsHeader(line string) bool {
	first, _, _ := strings.Cut(line, ",")
	return !isDigits(first)
}

// SplitLines splits file content into rows. Surrounding blank space of the whole
// content is dropped; a trailing carriage return on each row is removed.
// Empty content has no rows.
func SplitLines(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ParseAirportLine parses one row positionally.
//
// With exactly 11 columns the single code column is taken as ICAO; with 12 or
// more the columns are IATA then ICAO. Numeric columns that fail to parse are
// treated as null; only the leading id is mandatory.
func ParseAirportLine(line string) (domain.Airport, error) {
	parts := strings.Split(line, ",")
	if len(parts) < MinColumns {
		return domain.Airport{}, ErrInsufficientColumns
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.Airport{}, ErrInvalidID
	}

	a := domain.Airport{
		ID:      id,
		Name:    Text(parts[1]),
		City:    Text(parts[2]),
		Country: Text(parts[3]),
	}

	l := singleCodeLayout
	if len(parts) >= MinColumns+1 {
		l = dualCodeLayout
		a.IATACode = String(parts[4])
		a.ICAOCode = String(parts[5])
	} else {
		a.ICAOCode = String(parts[4])
	}

	a.Latitude = Float(parts[l.lat])
	a.Longitude = Float(parts[l.lon])
	a.Altitude = TruncatedInt(parts[l.alt])
	a.UTCOffset = Float(parts[l.utc])
	a.ContinentCode = String(parts[l.continent])
	a.Timezone = String(parts[l.tz])

	return a, nil
}
