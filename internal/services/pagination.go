package services

import "math"

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Paginate returns the 1-indexed page of items. Pages past the end, and
// non-positive page or size values, yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 || len(items) == 0 {
		return []T{}
	}

	// Compare page indexes before multiplying so huge pages cannot overflow.
	if page-1 > (len(items)-1)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(items)-start)
	return items[start:end]
}

// TotalPages is ceil(total / pageSize), 0 when there is nothing to page.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// rateAndPercentage rounds a ratio to 4 places and its percentage to 2.
func rateAndPercentage(rate float64) (float64, float64) {
	return round(rate, 4), round(rate*100, 2)
}
