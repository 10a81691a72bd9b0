package ports

import (
	"context"
	"flight-analytics-service/internal/domain"
)

// Airport codes already persisted, by namespace.
type CodeSet struct {
	ICAO map[string]struct{}
	IATA map[string]struct{}
}

func NewCodeSet() CodeSet {
	return CodeSet{ICAO: map[string]struct{}{}, IATA: map[string]struct{}{}}
}

// Port: a boundary for reading and bulk-writing Airport entities.
type AirportRepository interface {
	// Return every non-empty ICAO and IATA code currently stored.
	ExistingCodes(ctx context.Context) (CodeSet, error)
	// Insert all airports in one atomic unit; nothing is written on error.
	InsertBatch(ctx context.Context, airports []domain.Airport) error
	// Return the airports with the given ids, keyed by id. Unknown ids are omitted.
	ListByIDs(ctx context.Context, ids []int) (map[int]domain.Airport, error)
	// Return all airports ordered by id.
	List(ctx context.Context) ([]domain.Airport, error)
}
