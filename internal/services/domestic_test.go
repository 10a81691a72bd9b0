package services

import (
	"context"
	"flight-analytics-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultThresholds = domain.CriteriaThresholds{OccupancyThreshold: 0.85, AltitudeThreshold: 1000}

func domesticRoute(id int64, origin, dest int, tickets, seats, n int) domain.Route {
	return domain.Route{
		ID: id, AirlineID: 1, AirlineCode: "LA",
		OriginID: origin, OriginCode: "O", DestinationID: dest, DestinationCode: "D",
		TicketsSold: tickets, TotalSeats: seats, FlightDate: day(n),
	}
}

func TestEvaluateDomesticAltitudeBoundary(t *testing.T) {
	airports := map[int]domain.Airport{
		1: airport(1, "Chile", ptr(500)),
		2: airport(2, "Chile", ptr(1600)),
		3: airport(3, "Chile", ptr(1400)),
	}

	report := EvaluateDomestic([]domain.Route{domesticRoute(1, 1, 2, 90, 100, 1)}, airports, defaultThresholds)
	assert.Equal(t, 1, report.TotalDomesticFlights)
	assert.Equal(t, 1, report.FlightsMeetingCriteria)
	require.Len(t, report.Flights, 1)
	assert.Equal(t, 1100, report.Flights[0].AltitudeDelta)
	assert.Equal(t, 100.0, report.Percentage)

	report = EvaluateDomestic([]domain.Route{domesticRoute(1, 1, 3, 90, 100, 1)}, airports, defaultThresholds)
	assert.Equal(t, 1, report.TotalDomesticFlights)
	assert.Equal(t, 0, report.FlightsMeetingCriteria)
	assert.Empty(t, report.Flights)
	assert.Equal(t, 0.0, report.Percentage)
}

func TestEvaluateDomesticClassification(t *testing.T) {
	airports := map[int]domain.Airport{
		1: airport(1, "Chile", ptr(0)),
		2: airport(2, "Chile", ptr(3000)),
		3: airport(3, "Peru", ptr(3000)),
		4: airport(4, "Chile", nil),
	}
	routes := []domain.Route{
		domesticRoute(1, 1, 2, 90, 100, 1),  // meets
		domesticRoute(2, 1, 3, 90, 100, 1),  // international
		domesticRoute(3, 1, 4, 90, 100, 1),  // domestic, unknown altitude
		domesticRoute(4, 1, 2, 50, 100, 1),  // domestic, low occupancy
		domesticRoute(5, 1, 2, 0, 0, 1),     // no seats, ignored
		domesticRoute(6, 1, 99, 90, 100, 1), // unknown airport, ignored
	}

	report := EvaluateDomestic(routes, airports, defaultThresholds)
	assert.Equal(t, 3, report.TotalDomesticFlights)
	assert.Equal(t, 1, report.FlightsMeetingCriteria)
	assert.Equal(t, 33.33, report.Percentage)
	assert.Equal(t, defaultThresholds, report.Thresholds)
}

func TestEvaluateDomesticOrdersNewestFirst(t *testing.T) {
	airports := map[int]domain.Airport{1: airport(1, "Chile", ptr(0)), 2: airport(2, "Chile", ptr(2000))}
	routes := []domain.Route{
		domesticRoute(7, 1, 2, 90, 100, 1),
		domesticRoute(5, 1, 2, 90, 100, 3),
		domesticRoute(3, 1, 2, 90, 100, 3),
		domesticRoute(1, 1, 2, 90, 100, 2),
	}

	report := EvaluateDomestic(routes, airports, defaultThresholds)
	var ids []int64
	for _, f := range report.Flights {
		ids = append(ids, f.RouteID)
	}
	assert.Equal(t, []int64{3, 5, 1, 7}, ids)
}

func TestAnalyzeDomestic(t *testing.T) {
	airports := map[int]domain.Airport{
		1: airport(1, "Chile", ptr(0)),
		2: airport(2, "Chile", ptr(2000)),
		3: airport(3, "Peru", ptr(0)),
	}

	var routes []domain.Route
	for i := 0; i < 17; i++ {
		routes = append(routes, domesticRoute(int64(i+1), 1, 2, 90, 100, 1))
	}
	routes = append(routes,
		domesticRoute(100, 1, 3, 90, 100, 1),
		domesticRoute(101, 1, 3, 90, 100, 1),
		domesticRoute(102, 1, 3, 95, 100, 1),
		domesticRoute(103, 1, 3, 10, 100, 1), // not high occupancy
	)

	res := AnalyzeDomestic(routes, airports, defaultThresholds)
	assert.Equal(t, 20, res.TotalHighOccupancyFlights)
	assert.Equal(t, 17, res.DomesticHighOccupancyFlights)
	assert.Equal(t, 17, res.DomesticHighAltitudeFlights)
	assert.Equal(t, 85.0, res.PercentageDomestic)
	assert.Equal(t, 100.0, res.PercentageDomesticHighAltitude)
	assert.True(t, res.MeetsCriteria)

	// Domestic share below 85% fails even with altitude deltas.
	res = AnalyzeDomestic(append(routes, domesticRoute(104, 1, 3, 90, 100, 1)), airports, defaultThresholds)
	assert.False(t, res.MeetsCriteria)

	// Fully domestic but flat fails the existence test.
	flat := map[int]domain.Airport{1: airport(1, "Chile", ptr(0)), 2: airport(2, "Chile", ptr(10))}
	res = AnalyzeDomestic(routes[:17], flat, defaultThresholds)
	assert.Equal(t, 100.0, res.PercentageDomestic)
	assert.Equal(t, 0, res.DomesticHighAltitudeFlights)
	assert.False(t, res.MeetsCriteria)

	assert.Equal(t, domain.DomesticFlightAnalysis{}, AnalyzeDomestic(nil, airports, defaultThresholds))
}

func TestDomesticAltitudeDeltaPaginatesDetails(t *testing.T) {
	var routes []domain.Route
	for n := 1; n <= 5; n++ {
		routes = append(routes, domain.Route{
			AirlineID: 1, AirlineCode: "LA", OriginID: 1, OriginCode: "SCL", DestinationID: 2, DestinationCode: "CJC",
			TicketsSold: 95, TotalSeats: 100, FlightDate: day(n),
		})
	}
	s := seedStore(t,
		[]domain.Airline{{ID: 1, Name: "LATAM"}},
		[]domain.Airport{airport(1, "Chile", ptr(474)), airport(2, "Chile", ptr(2293))},
		routes,
	)

	report, err := newAnalytics(s).DomesticAltitudeDelta(context.Background(), domain.DateRange{From: day(2), To: day(5)}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, report.TotalDomesticFlights)
	assert.Equal(t, 4, report.FlightsMeetingCriteria)
	require.Len(t, report.Flights, 1)
	assert.Equal(t, day(2), report.Flights[0].FlightDate)
	assert.Equal(t, 1819, report.Flights[0].AltitudeDelta)
}
