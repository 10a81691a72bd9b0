package domain

import "time"

// Aggregated occupancy for one airline over a date window.
// Raw totals are carried alongside the rounded rate so callers can re-derive it.
type AirlineOccupancy struct {
	AirlineID              int
	AirlineName            string
	AirlineCode            string
	Country                *string
	TotalFlights           int
	TotalSeats             int
	TotalTicketsSold       int
	AvgOccupancyRate       float64
	AvgOccupancyPercentage float64
}

// One day inside a consecutive high-occupancy run.
type RunDay struct {
	FlightDate          time.Time
	TicketsSold         int
	TotalSeats          int
	OccupancyPercentage float64
}

// A maximal sequence of consecutive calendar days on which the same route
// was flown with high occupancy.
type ConsecutiveRun struct {
	RouteKey               string
	OriginCode             string
	DestinationCode        string
	ConsecutiveDays        int
	StartDate              time.Time
	EndDate                time.Time
	TotalTicketsSold       int
	TotalSeats             int
	AvgOccupancyRate       float64
	AvgOccupancyPercentage float64
	Days                   []RunDay
}

// Consecutive runs found for a single airline.
type AirlineRuns struct {
	AirlineID   int
	AirlineCode string
	AirlineName string
	Routes      []ConsecutiveRun
	TotalRoutes int
}

// A domestic flight that met both the occupancy and the altitude-delta criteria.
type DomesticFlightDetail struct {
	RouteID             int64
	AirlineCode         string
	OriginCode          string
	DestinationCode     string
	Country             string
	FlightDate          time.Time
	TicketsSold         int
	TotalSeats          int
	OccupancyRate       float64
	OccupancyPercentage float64
	OriginAltitude      int
	DestinationAltitude int
	AltitudeDelta       int
}

// Thresholds applied by the domestic evaluator.
type CriteriaThresholds struct {
	OccupancyThreshold float64
	AltitudeThreshold  int
}

// Result of the domestic high-occupancy altitude-delta evaluation.
type DomesticAltitudeReport struct {
	TotalDomesticFlights   int
	FlightsMeetingCriteria int
	Percentage             float64
	Flights                []DomesticFlightDetail
	Thresholds             CriteriaThresholds
}

// Share of high-occupancy flights that are domestic and cross the altitude threshold.
type DomesticFlightAnalysis struct {
	TotalHighOccupancyFlights      int
	DomesticHighOccupancyFlights   int
	DomesticHighAltitudeFlights    int
	PercentageDomestic             float64
	PercentageDomesticHighAltitude float64
	MeetsCriteria                  bool
}

// How often a route was flown in a window.
type RouteCount struct {
	OriginCode      string
	DestinationCode string
	OriginName      string
	DestinationName string
	FlightCount     int
}

// The most flown routes departing a single country.
type CountryRoutes struct {
	Country string
	Routes  []RouteCount
}

// Outcome of one airport file import run.
type ImportReport struct {
	RunID            string
	Filename         string
	TotalRecords     int
	RecordsInserted  int
	SkippedDuplicate int
	SkippedError     int
	Errors           []string
}

// Outcome of a catalog file load.
type LoadReport struct {
	Filename string
	Created  int
	Updated  int
	Errors   []string
}
