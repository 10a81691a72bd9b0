package ports

import (
	"context"
	"flight-analytics-service/internal/domain"
)

// Port: a boundary for the airline catalog.
type AirlineRepository interface {
	// Return all airlines ordered by id.
	List(ctx context.Context) ([]domain.Airline, error)
	// Insert or replace an airline by id. created is false when a row was updated.
	Upsert(ctx context.Context, airline domain.Airline) (created bool, err error)
}
