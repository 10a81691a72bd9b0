package services

import (
	"context"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/obs"
	"sort"
)

// DomesticShareThreshold is the share of domestic flights, in percent, that
// AnalyzeDomesticFlights requires among high-occupancy flights.
const DomesticShareThreshold = 85.0

type airportPair struct {
	origin      domain.Airport
	destination domain.Airport
}

func (p airportPair) domestic() bool {
	return p.origin.Country != "" && p.origin.Country == p.destination.Country
}

// altitudeDelta is |origin - destination| in meters; ok is false when either
// altitude is unknown.
func (p airportPair) altitudeDelta() (delta int, ok bool) {
	if p.origin.Altitude == nil || p.destination.Altitude == nil {
		return 0, false
	}
	d := *p.origin.Altitude - *p.destination.Altitude
	if d < 0 {
		d = -d
	}
	return d, true
}

func lookupPair(r domain.Route, airports map[int]domain.Airport) (airportPair, bool) {
	o, ok := airports[r.OriginID]
	if !ok {
		return airportPair{}, false
	}
	d, ok := airports[r.DestinationID]
	if !ok {
		return airportPair{}, false
	}
	return airportPair{origin: o, destination: d}, true
}

// EvaluateDomestic classifies routes with seats against both of their airports
// and returns every domestic flight meeting thresholds, newest first. Routes
// whose airports are not in airports are ignored.
func EvaluateDomestic(routes []domain.Route, airports map[int]domain.Airport, th domain.CriteriaThresholds) domain.DomesticAltitudeReport {
	report := domain.DomesticAltitudeReport{
		Flights:    []domain.DomesticFlightDetail{},
		Thresholds: th,
	}

	for _, r := range routes {
		if r.TotalSeats <= 0 {
			continue
		}
		pair, ok := lookupPair(r, airports)
		if !ok || !pair.domestic() {
			continue
		}
		report.TotalDomesticFlights++

		if !r.IsHighOccupancy(th.OccupancyThreshold) {
			continue
		}
		delta, ok := pair.altitudeDelta()
		if !ok || delta <= th.AltitudeThreshold {
			continue
		}

		rate, pct := rateAndPercentage(r.OccupancyRate())
		report.Flights = append(report.Flights, domain.DomesticFlightDetail{
			RouteID:             r.ID,
			AirlineCode:         r.AirlineCode,
			OriginCode:          r.OriginCode,
			DestinationCode:     r.DestinationCode,
			Country:             pair.origin.Country,
			FlightDate:          domain.DateOf(r.FlightDate),
			TicketsSold:         r.TicketsSold,
			TotalSeats:          r.TotalSeats,
			OccupancyRate:       rate,
			OccupancyPercentage: pct,
			OriginAltitude:      *pair.origin.Altitude,
			DestinationAltitude: *pair.destination.Altitude,
			AltitudeDelta:       delta,
		})
	}

	sort.Slice(report.Flights, func(i, j int) bool {
		a, b := report.Flights[i], report.Flights[j]
		if !a.FlightDate.Equal(b.FlightDate) {
			return a.FlightDate.After(b.FlightDate)
		}
		return a.RouteID < b.RouteID
	})

	report.FlightsMeetingCriteria = len(report.Flights)
	if report.TotalDomesticFlights > 0 {
		report.Percentage = round(float64(report.FlightsMeetingCriteria)/float64(report.TotalDomesticFlights)*100, 2)
	}
	return report
}

// AnalyzeDomestic reports how many high-occupancy flights are domestic and how
// many of those cross the altitude threshold.
func AnalyzeDomestic(routes []domain.Route, airports map[int]domain.Airport, th domain.CriteriaThresholds) domain.DomesticFlightAnalysis {
	var res domain.DomesticFlightAnalysis

	for _, r := range routes {
		if r.TotalSeats <= 0 || !r.IsHighOccupancy(th.OccupancyThreshold) {
			continue
		}
		pair, ok := lookupPair(r, airports)
		if !ok {
			continue
		}
		res.TotalHighOccupancyFlights++

		if !pair.domestic() {
			continue
		}
		res.DomesticHighOccupancyFlights++

		if delta, ok := pair.altitudeDelta(); ok && delta > th.AltitudeThreshold {
			res.DomesticHighAltitudeFlights++
		}
	}

	if res.TotalHighOccupancyFlights == 0 {
		return res
	}

	pctDomestic := float64(res.DomesticHighOccupancyFlights) / float64(res.TotalHighOccupancyFlights) * 100
	res.PercentageDomestic = round(pctDomestic, 2)
	if res.DomesticHighOccupancyFlights > 0 {
		res.PercentageDomesticHighAltitude = round(
			float64(res.DomesticHighAltitudeFlights)/float64(res.DomesticHighOccupancyFlights)*100, 2,
		)
	}
	res.MeetsCriteria = pctDomestic >= DomesticShareThreshold && res.DomesticHighAltitudeFlights > 0
	return res
}

// routeAirports loads the airports referenced by routes, keyed by id.
func (a *Analytics) routeAirports(ctx context.Context, routes []domain.Route) (map[int]domain.Airport, error) {
	seen := make(map[int]struct{}, len(routes))
	ids := make([]int, 0, len(routes))
	for _, r := range routes {
		for _, id := range [2]int{r.OriginID, r.DestinationID} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return map[int]domain.Airport{}, nil
	}
	sort.Ints(ids)
	return a.Airports.ListByIDs(ctx, ids)
}

// DomesticAltitudeDelta evaluates domestic flights in window and returns the
// report with one page of matching flights.
func (a *Analytics) DomesticAltitudeDelta(
	ctx context.Context,
	window domain.DateRange,
	page, pageSize int,
) (_ domain.DomesticAltitudeReport, err error) {
	defer obs.Time(ctx, "domestic_altitude_delta")(&err)

	routes, err := a.Routes.ListRoutes(ctx, window)
	if err != nil {
		return domain.DomesticAltitudeReport{}, unavailable("domestic altitude delta", "list routes", err)
	}

	airports, err := a.routeAirports(ctx, routes)
	if err != nil {
		return domain.DomesticAltitudeReport{}, unavailable("domestic altitude delta", "list airports", err)
	}

	report := EvaluateDomestic(routes, airports, a.Thresholds)
	report.Flights = Paginate(report.Flights, page, pageSize)
	return report, nil
}

// AnalyzeDomesticFlights runs AnalyzeDomestic over the routes in window.
func (a *Analytics) AnalyzeDomesticFlights(ctx context.Context, window domain.DateRange) (_ domain.DomesticFlightAnalysis, err error) {
	defer obs.Time(ctx, "analyze_domestic_flights")(&err)

	routes, err := a.Routes.ListRoutes(ctx, window)
	if err != nil {
		return domain.DomesticFlightAnalysis{}, unavailable("analyze domestic flights", "list routes", err)
	}

	airports, err := a.routeAirports(ctx, routes)
	if err != nil {
		return domain.DomesticFlightAnalysis{}, unavailable("analyze domestic flights", "list airports", err)
	}

	return AnalyzeDomestic(routes, airports, a.Thresholds), nil
}
