package services

import (
	"context"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/obs"
	"sort"
)

// DefaultTopRoutes is how many routes are kept per country when the caller does not say.
const DefaultTopRoutes = 5

type countryRouteKey struct {
	country string
	route   routeKey
}

// RankRoutesByCountry counts flights per route grouped by the country of the
// origin airport and keeps the topN busiest routes of each country. Countries
// are returned sorted by name. Routes whose origin airport is unknown are skipped.
func RankRoutesByCountry(routes []domain.Route, airports []domain.Airport, topN int) []domain.CountryRoutes {
	if topN < 1 {
		topN = DefaultTopRoutes
	}

	byID := make(map[int]domain.Airport, len(airports))
	names := make(map[string]string, len(airports)*2)
	for _, ap := range airports {
		byID[ap.ID] = ap
		if ap.HasIATA() {
			names[*ap.IATACode] = ap.Name
		}
		if ap.HasICAO() {
			names[*ap.ICAOCode] = ap.Name
		}
	}

	counts := make(map[countryRouteKey]*domain.RouteCount)
	perCountry := make(map[string][]*domain.RouteCount)

	for _, r := range routes {
		origin, ok := byID[r.OriginID]
		if !ok {
			continue
		}

		key := countryRouteKey{country: origin.Country, route: routeKey{origin: r.OriginCode, destination: r.DestinationCode}}
		rc, ok := counts[key]
		if !ok {
			destName, ok := names[r.DestinationCode]
			if !ok {
				destName = r.DestinationCode
			}
			rc = &domain.RouteCount{
				OriginCode:      r.OriginCode,
				DestinationCode: r.DestinationCode,
				OriginName:      origin.Name,
				DestinationName: destName,
			}
			counts[key] = rc
			perCountry[origin.Country] = append(perCountry[origin.Country], rc)
		}
		rc.FlightCount++
	}

	out := make([]domain.CountryRoutes, 0, len(perCountry))
	for country, rcs := range perCountry {
		sort.Slice(rcs, func(i, j int) bool {
			if rcs[i].FlightCount != rcs[j].FlightCount {
				return rcs[i].FlightCount > rcs[j].FlightCount
			}
			if rcs[i].OriginCode != rcs[j].OriginCode {
				return rcs[i].OriginCode < rcs[j].OriginCode
			}
			return rcs[i].DestinationCode < rcs[j].DestinationCode
		})

		top := make([]domain.RouteCount, 0, min(topN, len(rcs)))
		for _, rc := range rcs[:min(topN, len(rcs))] {
			top = append(top, *rc)
		}
		out = append(out, domain.CountryRoutes{Country: country, Routes: top})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// MostFlownByCountry returns one page of countries with their busiest routes in
// window, and the number of countries before pagination.
func (a *Analytics) MostFlownByCountry(
	ctx context.Context,
	window domain.DateRange,
	topN, page, pageSize int,
) (_ []domain.CountryRoutes, total int, err error) {
	defer obs.Time(ctx, "most_flown_by_country")(&err)

	routes, err := a.Routes.ListRoutes(ctx, window)
	if err != nil {
		return nil, 0, unavailable("most flown by country", "list routes", err)
	}

	airports, err := a.Airports.List(ctx)
	if err != nil {
		return nil, 0, unavailable("most flown by country", "list airports", err)
	}

	all := RankRoutesByCountry(routes, airports, topN)
	return Paginate(all, page, pageSize), len(all), nil
}
