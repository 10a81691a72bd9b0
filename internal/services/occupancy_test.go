package services

import (
	"context"
	"errors"
	"flight-analytics-service/internal/domain"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateOccupancyWeightsBySeats(t *testing.T) {
	airlines := map[int]domain.Airline{
		1: {ID: 1, Name: "Alpha", IATACode: ptr("AA")},
		2: {ID: 2, Name: "Beta"},
	}
	routes := []domain.Route{
		{AirlineID: 1, TicketsSold: 90, TotalSeats: 100},
		{AirlineID: 1, TicketsSold: 10, TotalSeats: 100},
		{AirlineID: 2, TicketsSold: 180, TotalSeats: 200},
		{AirlineID: 3, TicketsSold: 1, TotalSeats: 1}, // unknown airline
	}

	got := AggregateOccupancy(routes, airlines)
	require.Len(t, got, 2)

	assert.Equal(t, "Beta", got[0].AirlineName)
	assert.Equal(t, "N/A", got[0].AirlineCode)
	assert.Equal(t, 0.9, got[0].AvgOccupancyRate)
	assert.Equal(t, 90.0, got[0].AvgOccupancyPercentage)

	assert.Equal(t, "AA", got[1].AirlineCode)
	assert.Equal(t, 2, got[1].TotalFlights)
	assert.Equal(t, 100, got[1].TotalTicketsSold)
	assert.Equal(t, 200, got[1].TotalSeats)
	assert.Equal(t, 0.5, got[1].AvgOccupancyRate)
}

func TestAggregateOccupancyTiesKeepFirstAppearance(t *testing.T) {
	airlines := map[int]domain.Airline{1: {ID: 1, Name: "One"}, 2: {ID: 2, Name: "Two"}, 3: {ID: 3, Name: "Three"}}
	routes := []domain.Route{
		{AirlineID: 3, TicketsSold: 50, TotalSeats: 100},
		{AirlineID: 1, TicketsSold: 50, TotalSeats: 100},
		{AirlineID: 2, TicketsSold: 0, TotalSeats: 0},
	}

	got := AggregateOccupancy(routes, airlines)
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{got[0].AirlineID, got[1].AirlineID, got[2].AirlineID})
	assert.Equal(t, 0.0, got[2].AvgOccupancyRate)
}

func TestAggregateOccupancyMatchesIndependentRegrouping(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	airlines := map[int]domain.Airline{}
	for id := 1; id <= 5; id++ {
		airlines[id] = domain.Airline{ID: id, Name: "Airline"}
	}

	routes := make([]domain.Route, 0, 500)
	for i := 0; i < 500; i++ {
		seats := rng.Intn(300)
		routes = append(routes, domain.Route{
			AirlineID:   1 + rng.Intn(5),
			TotalSeats:  seats,
			TicketsSold: rng.Intn(seats + 1),
		})
	}

	sums := map[int][2]int{}
	for _, r := range routes {
		s := sums[r.AirlineID]
		sums[r.AirlineID] = [2]int{s[0] + r.TicketsSold, s[1] + r.TotalSeats}
	}

	for _, o := range AggregateOccupancy(routes, airlines) {
		s := sums[o.AirlineID]
		assert.Equal(t, s[0], o.TotalTicketsSold)
		assert.Equal(t, s[1], o.TotalSeats)
		assert.InDelta(t, domain.Ratio(s[0], s[1]), o.AvgOccupancyRate, 0.00005)
	}
}

func TestOccupancyByAirlinePaginates(t *testing.T) {
	var airlines []domain.Airline
	var routes []domain.Route
	for id := 1; id <= 10; id++ {
		airlines = append(airlines, domain.Airline{ID: id, Name: "Airline"})
		routes = append(routes, domain.Route{AirlineID: id, OriginID: 1, DestinationID: 2, TicketsSold: id, TotalSeats: 100, FlightDate: day(1)})
	}
	s := seedStore(t, airlines, []domain.Airport{airport(1, "Chile", nil), airport(2, "Chile", nil)}, routes)
	a := newAnalytics(s)

	page, total, err := a.OccupancyByAirline(context.Background(), domain.DateRange{}, 3, 25)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 10, total)

	page, total, err = a.OccupancyByAirline(context.Background(), domain.DateRange{}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	require.Len(t, page, 3)
	assert.Equal(t, 10, page[0].AirlineID)
}

func TestOccupancyByAirlineFiltersWindow(t *testing.T) {
	s := seedStore(t,
		[]domain.Airline{{ID: 1, Name: "Alpha"}},
		[]domain.Airport{airport(1, "Chile", nil), airport(2, "Chile", nil)},
		[]domain.Route{
			{AirlineID: 1, OriginID: 1, DestinationID: 2, TicketsSold: 100, TotalSeats: 100, FlightDate: day(1)},
			{AirlineID: 1, OriginID: 1, DestinationID: 2, TicketsSold: 0, TotalSeats: 100, FlightDate: day(5)},
		},
	)

	got, _, err := newAnalytics(s).OccupancyByAirline(context.Background(), domain.DateRange{From: day(1), To: day(2)}, 1, 25)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].AvgOccupancyRate)
	assert.Equal(t, 1, got[0].TotalFlights)
}

func TestOccupancyByAirlineStorageFailure(t *testing.T) {
	s := seedStore(t, nil, nil, nil)
	s.ReadErr = errors.New("connection refused")

	_, _, err := newAnalytics(s).OccupancyByAirline(context.Background(), domain.DateRange{}, 1, 25)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}
