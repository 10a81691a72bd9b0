package services

import (
	"context"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/obs"
	"sort"
)

type occupancyGroup struct {
	airline domain.Airline
	flights int
	tickets int
	seats   int
}

// AggregateOccupancy groups routes by airline and computes the seat-weighted
// occupancy of each group, highest first. Ties keep the order in which the
// airline first appears in routes. Routes whose airline is missing from
// airlines are left out.
func AggregateOccupancy(routes []domain.Route, airlines map[int]domain.Airline) []domain.AirlineOccupancy {
	groups := make([]*occupancyGroup, 0)
	byID := make(map[int]*occupancyGroup)

	for _, r := range routes {
		g, ok := byID[r.AirlineID]
		if !ok {
			airline, known := airlines[r.AirlineID]
			if !known {
				continue
			}
			g = &occupancyGroup{airline: airline}
			byID[r.AirlineID] = g
			groups = append(groups, g)
		}
		g.flights++
		g.tickets += r.TicketsSold
		g.seats += r.TotalSeats
	}

	// Rank on the unrounded rate so rounding cannot reorder close groups.
	sort.SliceStable(groups, func(i, j int) bool {
		return domain.Ratio(groups[i].tickets, groups[i].seats) > domain.Ratio(groups[j].tickets, groups[j].seats)
	})

	out := make([]domain.AirlineOccupancy, 0, len(groups))
	for _, g := range groups {
		rate, pct := rateAndPercentage(domain.Ratio(g.tickets, g.seats))
		out = append(out, domain.AirlineOccupancy{
			AirlineID:              g.airline.ID,
			AirlineName:            g.airline.Name,
			AirlineCode:            g.airline.Code(),
			Country:                g.airline.Country,
			TotalFlights:           g.flights,
			TotalSeats:             g.seats,
			TotalTicketsSold:       g.tickets,
			AvgOccupancyRate:       rate,
			AvgOccupancyPercentage: pct,
		})
	}
	return out
}

// OccupancyByAirline returns one page of per-airline occupancy inside window
// together with the number of airlines before pagination.
func (a *Analytics) OccupancyByAirline(
	ctx context.Context,
	window domain.DateRange,
	page, pageSize int,
) (_ []domain.AirlineOccupancy, total int, err error) {
	defer obs.Time(ctx, "occupancy_by_airline")(&err)

	routes, err := a.Routes.ListRoutes(ctx, window)
	if err != nil {
		return nil, 0, unavailable("occupancy by airline", "list routes", err)
	}

	airlines, err := a.Airlines.List(ctx)
	if err != nil {
		return nil, 0, unavailable("occupancy by airline", "list airlines", err)
	}

	byID := make(map[int]domain.Airline, len(airlines))
	for _, al := range airlines {
		byID[al.ID] = al
	}

	all := AggregateOccupancy(routes, byID)
	return Paginate(all, page, pageSize), len(all), nil
}
