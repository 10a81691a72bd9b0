package api

import (
	"flight-analytics-service/internal/api/handlers"
	"flight-analytics-service/internal/ports"
	"flight-analytics-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer is composed from.
type Deps struct {
	Analytics *services.Analytics
	Importer  *services.AirportImporter
	Audit     ports.AuditRepository
}

// middlewares returns the chain applied to every route, outermost first.
// Audit wraps Recoverer so recovered panics are audited as 500s.
func middlewares(audit ports.AuditRepository) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RealIP,
		requestIDMiddleware,
		loggingMiddleware,
		auditMiddleware(audit, map[string]struct{}{"/health": {}, "/metrics": {}}),
		middleware.Recoverer,
	}
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares(d.Audit)...)

	airports := &handlers.AirportHandler{Importer: d.Importer}
	airlines := &handlers.AirlineHandler{Analytics: d.Analytics}
	routes := &handlers.RouteHandler{Analytics: d.Analytics}
	analytics := &handlers.AnalyticsHandler{Analytics: d.Analytics}

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/airports/import", airports.Import)

	r.Route("/airlines", func(r chi.Router) {
		r.Get("/occupancy_average", airlines.Occupancy)
		r.Get("/consecutive_high_occupancy_routes", airlines.ConsecutiveRuns)
	})

	r.Route("/routes", func(r chi.Router) {
		r.Get("/most_flown_by_country", routes.MostFlownByCountry)
		r.Get("/domestic_high_occupancy_altitude_delta", routes.DomesticAltitudeDelta)
	})

	r.Get("/analytics/domestic-flights", analytics.DomesticFlights)

	return r
}
