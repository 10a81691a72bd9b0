package services

import (
	"context"
	"flight-analytics-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankRoutesByCountry(t *testing.T) {
	airports := []domain.Airport{
		{ID: 1, Name: "Santiago", Country: "Chile", IATACode: ptr("SCL")},
		{ID: 2, Name: "Lima", Country: "Peru", IATACode: ptr("LIM")},
		{ID: 3, Name: "Calama", Country: "Chile", ICAOCode: ptr("SCCF")},
	}
	flights := func(origin, dest int, oc, dc string, n int) []domain.Route {
		out := make([]domain.Route, n)
		for i := range out {
			out[i] = domain.Route{OriginID: origin, OriginCode: oc, DestinationID: dest, DestinationCode: dc}
		}
		return out
	}

	var routes []domain.Route
	routes = append(routes, flights(1, 2, "SCL", "LIM", 3)...)
	routes = append(routes, flights(1, 3, "SCL", "SCCF", 5)...)
	routes = append(routes, flights(3, 1, "SCCF", "SCL", 3)...)
	routes = append(routes, flights(2, 1, "LIM", "SCL", 1)...)
	routes = append(routes, flights(2, 9, "LIM", "XXX", 2)...)
	routes = append(routes, flights(99, 1, "ZZZ", "SCL", 4)...) // unknown origin

	got := RankRoutesByCountry(routes, airports, 2)
	require.Len(t, got, 2)

	assert.Equal(t, "Chile", got[0].Country)
	require.Len(t, got[0].Routes, 2)
	assert.Equal(t, "SCCF", got[0].Routes[0].DestinationCode)
	assert.Equal(t, "Calama", got[0].Routes[0].DestinationName)
	assert.Equal(t, 5, got[0].Routes[0].FlightCount)
	// 3-3 tie broken by origin code
	assert.Equal(t, "SCCF", got[0].Routes[1].OriginCode)
	assert.Equal(t, "Calama", got[0].Routes[1].OriginName)

	assert.Equal(t, "Peru", got[1].Country)
	assert.Equal(t, "XXX", got[1].Routes[0].DestinationName)
	assert.Equal(t, 2, got[1].Routes[0].FlightCount)
}

func TestMostFlownByCountryWindowAndPaging(t *testing.T) {
	s := seedStore(t,
		[]domain.Airline{{ID: 1, Name: "LATAM"}},
		[]domain.Airport{airport(1, "Chile", nil), airport(2, "Peru", nil)},
		[]domain.Route{
			{AirlineID: 1, OriginID: 1, OriginCode: "A1", DestinationID: 2, DestinationCode: "A2", TicketsSold: 1, TotalSeats: 1, FlightDate: day(1)},
			{AirlineID: 1, OriginID: 2, OriginCode: "A2", DestinationID: 1, DestinationCode: "A1", TicketsSold: 1, TotalSeats: 1, FlightDate: day(1)},
			{AirlineID: 1, OriginID: 2, OriginCode: "A2", DestinationID: 1, DestinationCode: "A1", TicketsSold: 1, TotalSeats: 1, FlightDate: day(9)},
		},
	)

	got, total, err := newAnalytics(s).MostFlownByCountry(context.Background(), domain.DateRange{From: day(1), To: day(1)}, DefaultTopRoutes, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Peru", got[0].Country)
	assert.Equal(t, 1, got[0].Routes[0].FlightCount)
	assert.Equal(t, "Airport 1", got[0].Routes[0].DestinationName)
}
