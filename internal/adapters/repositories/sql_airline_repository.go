package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/obs"
	"fmt"
)

// PostgreSQL-backed implementation of the AirlineRepository port.
type SQLAirlineRepository struct{ DB *sql.DB }

func NewSQLAirlineRepository(db *sql.DB) *SQLAirlineRepository {
	return &SQLAirlineRepository{DB: db}
}

func (s *SQLAirlineRepository) List(ctx context.Context) (_ []domain.Airline, err error) {
	defer obs.Time(ctx, "airlines.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql airline repository: DB is nil")
	}

	query := `
	SELECT id, name, alias, iata_code, icao_code, callsign, country, active
	FROM airlines
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list airlines: query airlines table: %w", err)
	}
	defer rows.Close()

	airlines := make([]domain.Airline, 0, 64)
	for rows.Next() {
		var (
			a                                    domain.Airline
			alias, iata, icao, callsign, country sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &alias, &iata, &icao, &callsign, &country, &a.Active); err != nil {
			return nil, fmt.Errorf("list airlines: scan row: %w", err)
		}
		a.Alias = stringPtr(alias)
		a.IATACode = stringPtr(iata)
		a.ICAOCode = stringPtr(icao)
		a.Callsign = stringPtr(callsign)
		a.Country = stringPtr(country)
		airlines = append(airlines, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list airlines: row iteration: %w", err)
	}

	return airlines, nil
}

// Upsert inserts the airline or replaces the row with the same id.
// xmax is zero only for freshly inserted tuples.
func (s *SQLAirlineRepository) Upsert(ctx context.Context, a domain.Airline) (created bool, err error) {
	defer obs.Time(ctx, "airlines.Upsert")(&err)

	if s.DB == nil {
		return false, errors.New("sql airline repository: DB is nil")
	}

	query := `
	INSERT INTO airlines (id, name, alias, iata_code, icao_code, callsign, country, active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		alias = EXCLUDED.alias,
		iata_code = EXCLUDED.iata_code,
		icao_code = EXCLUDED.icao_code,
		callsign = EXCLUDED.callsign,
		country = EXCLUDED.country,
		active = EXCLUDED.active
	RETURNING (xmax = 0);
	`
	err = s.DB.QueryRowContext(ctx, query,
		a.ID, a.Name, nullString(a.Alias), nullString(a.IATACode), nullString(a.ICAOCode),
		nullString(a.Callsign), nullString(a.Country), a.Active,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert airline id=%d: %w", a.ID, classify(err))
	}

	return created, nil
}
