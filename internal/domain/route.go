package domain

import (
	"errors"
	"fmt"
	"time"
)

// DefaultHighOccupancyThreshold is the occupancy rate at or above which a flight
// counts as high occupancy.
const DefaultHighOccupancyThreshold = 0.85

var ErrInvalidRoute = errors.New("invalid route")

// Represents a single operated flight between two airports on a given date.
// Airline and airport codes are denormalized copies of the referenced entities.
type Route struct {
	ID              int64
	AirlineID       int
	AirlineCode     string
	OriginID        int
	OriginCode      string
	DestinationID   int
	DestinationCode string
	TicketsSold     int
	TotalSeats      int
	FlightDate      time.Time
}

// OccupancyRate is tickets sold over total seats, 0 when the flight has no seats.
func (r Route) OccupancyRate() float64 {
	return Ratio(r.TicketsSold, r.TotalSeats)
}

func (r Route) IsHighOccupancy(threshold float64) bool {
	return r.OccupancyRate() >= threshold
}

// Validate enforces the ingestion invariants: non-negative tickets, positive
// seats and no overbooking.
func (r Route) Validate() error {
	if r.TotalSeats <= 0 {
		return fmt.Errorf("%w: invalid total seats (%d)", ErrInvalidRoute, r.TotalSeats)
	}
	if r.TicketsSold < 0 {
		return fmt.Errorf("%w: invalid tickets sold (%d)", ErrInvalidRoute, r.TicketsSold)
	}
	if r.TicketsSold > r.TotalSeats {
		return fmt.Errorf("%w: tickets sold (%d) exceeds seats (%d)", ErrInvalidRoute, r.TicketsSold, r.TotalSeats)
	}
	return nil
}

// Ratio divides sold by seats, guarding against zero seats.
func Ratio(sold, seats int) float64 {
	if seats == 0 {
		return 0.0
	}
	return float64(sold) / float64(seats)
}

// A high-occupancy flight as seen by the consecutive-day detector.
type FlightSample struct {
	AirlineID       int
	AirlineCode     string
	AirlineName     string
	OriginCode      string
	DestinationCode string
	FlightDate      time.Time
	TicketsSold     int
	TotalSeats      int
}
