// Package app assembles storage adapters and services from configuration.
// Both binaries share it so the server and the CLI see the same store.
package app

import (
	"context"
	"flight-analytics-service/internal/adapters/memory"
	"flight-analytics-service/internal/adapters/repositories"
	"flight-analytics-service/internal/config"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/db"
	"flight-analytics-service/internal/ports"
	"flight-analytics-service/internal/services"
	"fmt"
)

type Repositories struct {
	Airports ports.AirportRepository
	Airlines ports.AirlineRepository
	Routes   ports.RouteRepository
	Audit    ports.AuditRepository
}

// OpenRepositories builds the repositories for cfg.Store. Postgres stores are
// migrated before use when migrate is set. The returned func releases them.
func OpenRepositories(ctx context.Context, cfg *config.Config, migrate bool) (Repositories, func() error, error) {
	if cfg.Store == config.StoreMemory {
		s := memory.NewStore()
		return Repositories{Airports: s, Airlines: s.Airlines(), Routes: s, Audit: s}, func() error { return nil }, nil
	}

	opts := db.DefaultPoolOptions()
	if cfg.DBMaxOpenConns > 0 {
		opts.MaxOpenConns = cfg.DBMaxOpenConns
		opts.MaxIdleConns = cfg.DBMaxOpenConns
	}

	conn, err := db.Open(ctx, cfg.DatabaseDSN(), opts)
	if err != nil {
		return Repositories{}, nil, fmt.Errorf("open repositories: %w", err)
	}

	if migrate {
		if err := repositories.Migrate(conn); err != nil {
			_ = conn.Close()
			return Repositories{}, nil, fmt.Errorf("open repositories: %w", err)
		}
	}

	repos := Repositories{
		Airports: repositories.NewSQLAirportRepository(conn),
		Airlines: repositories.NewSQLAirlineRepository(conn),
		Routes:   repositories.NewSQLRouteRepository(conn),
		Audit:    repositories.NewSQLAuditRepository(conn),
	}
	return repos, conn.Close, nil
}

func Thresholds(cfg *config.Config) domain.CriteriaThresholds {
	return domain.CriteriaThresholds{
		OccupancyThreshold: cfg.HighOccupancyThreshold,
		AltitudeThreshold:  cfg.MinAltitude,
	}
}

func NewAnalytics(cfg *config.Config, r Repositories) *services.Analytics {
	return services.NewAnalytics(r.Routes, r.Airlines, r.Airports, Thresholds(cfg))
}

func NewImporter(cfg *config.Config, r Repositories) *services.AirportImporter {
	return services.NewAirportImporter(r.Airports, cfg.ImportBatchSize)
}

func NewCatalogLoader(r Repositories) *services.CatalogLoader {
	return services.NewCatalogLoader(r.Airlines, r.Airports, r.Routes)
}
