package dto

import "flight-analytics-service/internal/domain"

type AirlineOccupancyResponse struct {
	AirlineID              int     `json:"airline_id"`
	AirlineName            string  `json:"airline_name"`
	AirlineCode            string  `json:"airline_code"`
	Country                *string `json:"country"`
	TotalFlights           int     `json:"total_flights"`
	TotalSeats             int     `json:"total_seats"`
	TotalTicketsSold       int     `json:"total_tickets_sold"`
	AvgOccupancyRate       float64 `json:"avg_occupancy_rate"`
	AvgOccupancyPercentage float64 `json:"avg_occupancy_percentage"`
}

type OccupancyListResponse struct {
	DateFrom *Date                      `json:"date_from"`
	DateTo   *Date                      `json:"date_to"`
	Airlines []AirlineOccupancyResponse `json:"airlines"`
	Pagination
}

func NewOccupancyList(window domain.DateRange, items []domain.AirlineOccupancy, p Pagination) OccupancyListResponse {
	out := OccupancyListResponse{
		DateFrom:   OptionalDate(window.From),
		DateTo:     OptionalDate(window.To),
		Airlines:   make([]AirlineOccupancyResponse, 0, len(items)),
		Pagination: p,
	}
	for _, o := range items {
		out.Airlines = append(out.Airlines, AirlineOccupancyResponse{
			AirlineID:              o.AirlineID,
			AirlineName:            o.AirlineName,
			AirlineCode:            o.AirlineCode,
			Country:                o.Country,
			TotalFlights:           o.TotalFlights,
			TotalSeats:             o.TotalSeats,
			TotalTicketsSold:       o.TotalTicketsSold,
			AvgOccupancyRate:       o.AvgOccupancyRate,
			AvgOccupancyPercentage: o.AvgOccupancyPercentage,
		})
	}
	return out
}

type RunDayResponse struct {
	FlightDate          Date    `json:"flight_date"`
	TicketsSold         int     `json:"tickets_sold"`
	TotalSeats          int     `json:"total_seats"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
}

type ConsecutiveRunResponse struct {
	RouteKey               string           `json:"route_key"`
	OriginCode             string           `json:"origin_code"`
	DestinationCode        string           `json:"destination_code"`
	ConsecutiveDays        int              `json:"consecutive_days"`
	StartDate              Date             `json:"start_date"`
	EndDate                Date             `json:"end_date"`
	TotalTicketsSold       int              `json:"total_tickets_sold"`
	TotalSeats             int              `json:"total_seats"`
	AvgOccupancyRate       float64          `json:"avg_occupancy_rate"`
	AvgOccupancyPercentage float64          `json:"avg_occupancy_percentage"`
	Days                   []RunDayResponse `json:"days"`
}

type AirlineRunsResponse struct {
	AirlineID   int                      `json:"airline_id"`
	AirlineCode string                   `json:"airline_code"`
	AirlineName string                   `json:"airline_name"`
	Routes      []ConsecutiveRunResponse `json:"routes"`
	TotalRoutes int                      `json:"total_routes"`
}

type ConsecutiveRunsListResponse struct {
	DateFrom           *Date                 `json:"date_from"`
	DateTo             *Date                 `json:"date_to"`
	OccupancyThreshold float64               `json:"occupancy_threshold"`
	Airlines           []AirlineRunsResponse `json:"airlines"`
	Pagination
}

func NewConsecutiveRunsList(window domain.DateRange, threshold float64, items []domain.AirlineRuns, p Pagination) ConsecutiveRunsListResponse {
	out := ConsecutiveRunsListResponse{
		DateFrom:           OptionalDate(window.From),
		DateTo:             OptionalDate(window.To),
		OccupancyThreshold: threshold,
		Airlines:           make([]AirlineRunsResponse, 0, len(items)),
		Pagination:         p,
	}
	for _, a := range items {
		ar := AirlineRunsResponse{
			AirlineID:   a.AirlineID,
			AirlineCode: a.AirlineCode,
			AirlineName: a.AirlineName,
			Routes:      make([]ConsecutiveRunResponse, 0, len(a.Routes)),
			TotalRoutes: a.TotalRoutes,
		}
		for _, run := range a.Routes {
			rr := ConsecutiveRunResponse{
				RouteKey:               run.RouteKey,
				OriginCode:             run.OriginCode,
				DestinationCode:        run.DestinationCode,
				ConsecutiveDays:        run.ConsecutiveDays,
				StartDate:              Date(run.StartDate),
				EndDate:                Date(run.EndDate),
				TotalTicketsSold:       run.TotalTicketsSold,
				TotalSeats:             run.TotalSeats,
				AvgOccupancyRate:       run.AvgOccupancyRate,
				AvgOccupancyPercentage: run.AvgOccupancyPercentage,
				Days:                   make([]RunDayResponse, 0, len(run.Days)),
			}
			for _, d := range run.Days {
				rr.Days = append(rr.Days, RunDayResponse{
					FlightDate:          Date(d.FlightDate),
					TicketsSold:         d.TicketsSold,
					TotalSeats:          d.TotalSeats,
					OccupancyPercentage: d.OccupancyPercentage,
				})
			}
			ar.Routes = append(ar.Routes, rr)
		}
		out.Airlines = append(out.Airlines, ar)
	}
	return out
}
