package dto

import "flight-analytics-service/internal/domain"

type DomesticFlightAnalysisResponse struct {
	TotalHighOccupancyFlights      int     `json:"total_high_occupancy_flights"`
	DomesticHighOccupancyFlights   int     `json:"domestic_high_occupancy_flights"`
	DomesticHighAltitudeFlights    int     `json:"domestic_high_altitude_flights"`
	PercentageDomestic             float64 `json:"percentage_domestic"`
	PercentageDomesticHighAltitude float64 `json:"percentage_domestic_high_altitude"`
	MeetsCriteria                  bool    `json:"meets_criteria"`
}

func NewDomesticFlightAnalysis(a domain.DomesticFlightAnalysis) DomesticFlightAnalysisResponse {
	return DomesticFlightAnalysisResponse{
		TotalHighOccupancyFlights:      a.TotalHighOccupancyFlights,
		DomesticHighOccupancyFlights:   a.DomesticHighOccupancyFlights,
		DomesticHighAltitudeFlights:    a.DomesticHighAltitudeFlights,
		PercentageDomestic:             a.PercentageDomestic,
		PercentageDomesticHighAltitude: a.PercentageDomesticHighAltitude,
		MeetsCriteria:                  a.MeetsCriteria,
	}
}
