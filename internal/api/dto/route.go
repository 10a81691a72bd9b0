package dto

import "flight-analytics-service/internal/domain"

type RouteCountResponse struct {
	Rank            int    `json:"rank"`
	RouteKey        string `json:"route_key"`
	OriginCode      string `json:"origin_code"`
	DestinationCode string `json:"destination_code"`
	OriginName      string `json:"origin_name"`
	DestinationName string `json:"destination_name"`
	FlightCount     int    `json:"flight_count"`
}

type CountryRoutesResponse struct {
	Country string               `json:"country"`
	Routes  []RouteCountResponse `json:"routes"`
}

type MostFlownListResponse struct {
	DateFrom  Date                    `json:"date_from"`
	DateTo    Date                    `json:"date_to"`
	Countries []CountryRoutesResponse `json:"countries"`
	Pagination
}

func NewMostFlownList(window domain.DateRange, items []domain.CountryRoutes, p Pagination) MostFlownListResponse {
	out := MostFlownListResponse{
		DateFrom:   Date(window.From),
		DateTo:     Date(window.To),
		Countries:  make([]CountryRoutesResponse, 0, len(items)),
		Pagination: p,
	}
	for _, c := range items {
		cr := CountryRoutesResponse{Country: c.Country, Routes: make([]RouteCountResponse, 0, len(c.Routes))}
		for i, rc := range c.Routes {
			cr.Routes = append(cr.Routes, RouteCountResponse{
				Rank:            i + 1,
				RouteKey:        rc.OriginCode + "-" + rc.DestinationCode,
				OriginCode:      rc.OriginCode,
				DestinationCode: rc.DestinationCode,
				OriginName:      rc.OriginName,
				DestinationName: rc.DestinationName,
				FlightCount:     rc.FlightCount,
			})
		}
		out.Countries = append(out.Countries, cr)
	}
	return out
}

type DomesticFlightResponse struct {
	RouteID             int64   `json:"route_id"`
	AirlineCode         string  `json:"airline_code"`
	OriginCode          string  `json:"origin_code"`
	DestinationCode     string  `json:"destination_code"`
	Country             string  `json:"country"`
	FlightDate          Date    `json:"flight_date"`
	TicketsSold         int     `json:"tickets_sold"`
	TotalSeats          int     `json:"total_seats"`
	OccupancyRate       float64 `json:"occupancy_rate"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
	OriginAltitude      int     `json:"origin_altitude"`
	DestinationAltitude int     `json:"destination_altitude"`
	AltitudeDelta       int     `json:"altitude_delta"`
}

type ThresholdsResponse struct {
	OccupancyThreshold float64 `json:"occupancy_threshold"`
	AltitudeThreshold  int     `json:"altitude_threshold_meters"`
}

type DomesticAltitudeResponse struct {
	DateFrom               Date                     `json:"date_from"`
	DateTo                 Date                     `json:"date_to"`
	TotalDomesticFlights   int                      `json:"total_domestic_flights"`
	FlightsMeetingCriteria int                      `json:"flights_meeting_criteria"`
	Percentage             float64                  `json:"percentage"`
	Thresholds             ThresholdsResponse       `json:"thresholds"`
	Flights                []DomesticFlightResponse `json:"flights"`
	Pagination
}

func NewDomesticAltitude(window domain.DateRange, r domain.DomesticAltitudeReport, p Pagination) DomesticAltitudeResponse {
	out := DomesticAltitudeResponse{
		DateFrom:               Date(window.From),
		DateTo:                 Date(window.To),
		TotalDomesticFlights:   r.TotalDomesticFlights,
		FlightsMeetingCriteria: r.FlightsMeetingCriteria,
		Percentage:             r.Percentage,
		Thresholds: ThresholdsResponse{
			OccupancyThreshold: r.Thresholds.OccupancyThreshold,
			AltitudeThreshold:  r.Thresholds.AltitudeThreshold,
		},
		Flights:    make([]DomesticFlightResponse, 0, len(r.Flights)),
		Pagination: p,
	}
	for _, f := range r.Flights {
		out.Flights = append(out.Flights, DomesticFlightResponse{
			RouteID:             f.RouteID,
			AirlineCode:         f.AirlineCode,
			OriginCode:          f.OriginCode,
			DestinationCode:     f.DestinationCode,
			Country:             f.Country,
			FlightDate:          Date(f.FlightDate),
			TicketsSold:         f.TicketsSold,
			TotalSeats:          f.TotalSeats,
			OccupancyRate:       f.OccupancyRate,
			OccupancyPercentage: f.OccupancyPercentage,
			OriginAltitude:      f.OriginAltitude,
			DestinationAltitude: f.DestinationAltitude,
			AltitudeDelta:       f.AltitudeDelta,
		})
	}
	return out
}
