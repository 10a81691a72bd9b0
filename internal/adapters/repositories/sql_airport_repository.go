package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/obs"
	"flight-analytics-service/internal/ports"
	"fmt"
)

// PostgreSQL-backed implementation of the AirportRepository port.
type SQLAirportRepository struct{ DB *sql.DB }

func NewSQLAirportRepository(db *sql.DB) *SQLAirportRepository {
	return &SQLAirportRepository{DB: db}
}

const airportColumns = `
	id, name, city, country, iata_code, icao_code,
	latitude, longitude, altitude, utc_offset, continent_code, timezone`

func (s *SQLAirportRepository) ExistingCodes(ctx context.Context) (_ ports.CodeSet, err error) {
	defer obs.Time(ctx, "airports.ExistingCodes")(&err)

	if s.DB == nil {
		return ports.CodeSet{}, errors.New("sql airport repository: DB is nil")
	}

	query := `
	SELECT icao_code, iata_code
	FROM airports
	WHERE (icao_code IS NOT NULL AND icao_code <> '')
		OR (iata_code IS NOT NULL AND iata_code <> '');
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return ports.CodeSet{}, fmt.Errorf("existing codes: query airports table: %w", err)
	}
	defer rows.Close()

	set := ports.NewCodeSet()
	for rows.Next() {
		var icao, iata sql.NullString
		if err := rows.Scan(&icao, &iata); err != nil {
			return ports.CodeSet{}, fmt.Errorf("existing codes: scan row: %w", err)
		}
		if icao.Valid && icao.String != "" {
			set.ICAO[icao.String] = struct{}{}
		}
		if iata.Valid && iata.String != "" {
			set.IATA[iata.String] = struct{}{}
		}
	}

	if err := rows.Err(); err != nil {
		return ports.CodeSet{}, fmt.Errorf("existing codes: row iteration: %w", err)
	}

	return set, nil
}

// InsertBatch writes all airports in a single transaction.
func (s *SQLAirportRepository) InsertBatch(ctx context.Context, airports []domain.Airport) (err error) {
	defer obs.Time(ctx, "airports.InsertBatch")(&err)

	if s.DB == nil {
		return errors.New("sql airport repository: DB is nil")
	}
	if len(airports) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert airports: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO airports (` + airportColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("insert airports: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range airports {
		_, err := stmt.ExecContext(ctx,
			a.ID, a.Name, a.City, a.Country,
			nullString(a.IATACode), nullString(a.ICAOCode),
			nullFloat(a.Latitude), nullFloat(a.Longitude), nullInt(a.Altitude), nullFloat(a.UTCOffset),
			nullString(a.ContinentCode), nullString(a.Timezone),
		)
		if err != nil {
			return fmt.Errorf("insert airports: insert id=%d: %w", a.ID, classify(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert airports: commit tx: %w", classify(err))
	}

	return nil
}

func (s *SQLAirportRepository) ListByIDs(ctx context.Context, ids []int) (_ map[int]domain.Airport, err error) {
	defer obs.Time(ctx, "airports.ListByIDs")(&err)

	if s.DB == nil {
		return nil, errors.New("sql airport repository: DB is nil")
	}
	if len(ids) == 0 {
		return map[int]domain.Airport{}, nil
	}

	query := `
	SELECT` + airportColumns + `
	FROM airports
	WHERE id = ANY($1::integer[]);
	`
	rows, err := s.DB.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list airports by id: query airports table: %w", err)
	}
	defer rows.Close()

	out := make(map[int]domain.Airport, len(ids))
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, fmt.Errorf("list airports by id: %w", err)
		}
		out[a.ID] = a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list airports by id: row iteration: %w", err)
	}

	return out, nil
}

func (s *SQLAirportRepository) List(ctx context.Context) (_ []domain.Airport, err error) {
	defer obs.Time(ctx, "airports.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql airport repository: DB is nil")
	}

	query := `
	SELECT` + airportColumns + `
	FROM airports
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list airports: query airports table: %w", err)
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0, 256)
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, fmt.Errorf("list airports: %w", err)
		}
		airports = append(airports, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list airports: row iteration: %w", err)
	}

	return airports, nil
}

func scanAirport(rows *sql.Rows) (domain.Airport, error) {
	var (
		a                    domain.Airport
		iata, icao, cont, tz sql.NullString
		lat, lon, utc        sql.NullFloat64
		alt                  sql.NullInt64
	)
	if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.Country, &iata, &icao, &lat, &lon, &alt, &utc, &cont, &tz); err != nil {
		return domain.Airport{}, fmt.Errorf("scan row: %w", err)
	}

	a.IATACode = stringPtr(iata)
	a.ICAOCode = stringPtr(icao)
	a.Latitude = floatPtr(lat)
	a.Longitude = floatPtr(lon)
	a.Altitude = intPtr(alt)
	a.UTCOffset = floatPtr(utc)
	a.ContinentCode = stringPtr(cont)
	a.Timezone = stringPtr(tz)
	return a, nil
}
