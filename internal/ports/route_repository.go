package ports

import (
	"context"
	"flight-analytics-service/internal/domain"
)

// Port: a boundary for retrieving Route rows already filtered by flight date.
type RouteRepository interface {
	// Return routes whose flight date falls inside the window, ordered by id.
	ListRoutes(ctx context.Context, window domain.DateRange) ([]domain.Route, error)
	// Return flights with seats whose occupancy is at or above threshold,
	// joined to their airline name.
	ListHighOccupancy(ctx context.Context, window domain.DateRange, threshold float64) ([]domain.FlightSample, error)
	// Persist a single route and return its assigned id.
	Insert(ctx context.Context, route domain.Route) (int64, error)
}
