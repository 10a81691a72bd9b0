package services

import (
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/ports"
)

// Analytics answers the read-only reporting queries. Every call fetches a fresh
// snapshot from storage and keeps no state between calls.
type Analytics struct {
	Routes     ports.RouteRepository
	Airlines   ports.AirlineRepository
	Airports   ports.AirportRepository
	Thresholds domain.CriteriaThresholds
}

func NewAnalytics(
	routes ports.RouteRepository,
	airlines ports.AirlineRepository,
	airports ports.AirportRepository,
	thresholds domain.CriteriaThresholds,
) *Analytics {
	return &Analytics{
		Routes:     routes,
		Airlines:   airlines,
		Airports:   airports,
		Thresholds: thresholds,
	}
}
