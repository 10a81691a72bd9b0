package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/obs"
	"fmt"
	"strconv"
	"strings"
)

// PostgreSQL-backed implementation of the RouteRepository port.
type SQLRouteRepository struct{ DB *sql.DB }

func NewSQLRouteRepository(db *sql.DB) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db}
}

// dateFilter renders the flight_date bounds of window as SQL predicates on col,
// numbering placeholders after the args already collected.
func dateFilter(col string, window domain.DateRange, args []any) ([]string, []any) {
	var where []string
	if !window.From.IsZero() {
		args = append(args, domain.DateOf(window.From))
		where = append(where, col+" >= $"+strconv.Itoa(len(args)))
	}
	if !window.To.IsZero() {
		args = append(args, domain.DateOf(window.To))
		where = append(where, col+" <= $"+strconv.Itoa(len(args)))
	}
	return where, args
}

func (s *SQLRouteRepository) ListRoutes(ctx context.Context, window domain.DateRange) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "routes.ListRoutes")(&err)

	if s.DB == nil {
		return nil, errors.New("sql route repository: DB is nil")
	}

	where, args := dateFilter("flight_date", window, nil)

	var b strings.Builder
	b.WriteString(`
	SELECT id, airline_id, airline_code, origin_id, origin_code,
		destination_id, destination_code, tickets_sold, total_seats, flight_date
	FROM routes`)
	if len(where) > 0 {
		b.WriteString("\n\tWHERE " + strings.Join(where, " AND "))
	}
	b.WriteString("\n\tORDER BY id;")

	rows, err := s.DB.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0, 256)
	for rows.Next() {
		var r domain.Route
		err := rows.Scan(
			&r.ID, &r.AirlineID, &r.AirlineCode, &r.OriginID, &r.OriginCode,
			&r.DestinationID, &r.DestinationCode, &r.TicketsSold, &r.TotalSeats, &r.FlightDate,
		)
		if err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		r.FlightDate = domain.DateOf(r.FlightDate)
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

// ListHighOccupancy pushes the occupancy predicate down to the database and
// joins each flight to its airline name.
func (s *SQLRouteRepository) ListHighOccupancy(
	ctx context.Context,
	window domain.DateRange,
	threshold float64,
) (_ []domain.FlightSample, err error) {
	defer obs.Time(ctx, "routes.ListHighOccupancy")(&err)

	if s.DB == nil {
		return nil, errors.New("sql route repository: DB is nil")
	}

	args := []any{threshold}
	where := []string{"r.total_seats > 0", "r.tickets_sold::numeric / r.total_seats >= $1"}
	dates, args := dateFilter("r.flight_date", window, args)
	where = append(where, dates...)

	query := `
	SELECT r.airline_id, r.airline_code, a.name, r.origin_code, r.destination_code,
		r.flight_date, r.tickets_sold, r.total_seats
	FROM routes r
	JOIN airlines a ON a.id = r.airline_id
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY r.airline_code, r.origin_code, r.destination_code, r.flight_date;`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list high occupancy: query routes table: %w", err)
	}
	defer rows.Close()

	samples := make([]domain.FlightSample, 0, 256)
	for rows.Next() {
		var f domain.FlightSample
		err := rows.Scan(
			&f.AirlineID, &f.AirlineCode, &f.AirlineName, &f.OriginCode, &f.DestinationCode,
			&f.FlightDate, &f.TicketsSold, &f.TotalSeats,
		)
		if err != nil {
			return nil, fmt.Errorf("list high occupancy: scan row: %w", err)
		}
		f.FlightDate = domain.DateOf(f.FlightDate)
		samples = append(samples, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list high occupancy: row iteration: %w", err)
	}

	return samples, nil
}

func (s *SQLRouteRepository) Insert(ctx context.Context, r domain.Route) (id int64, err error) {
	defer obs.Time(ctx, "routes.Insert")(&err)

	if s.DB == nil {
		return 0, errors.New("sql route repository: DB is nil")
	}

	query := `
	INSERT INTO routes (
		airline_id, airline_code, origin_id, origin_code,
		destination_id, destination_code, tickets_sold, total_seats, flight_date
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id;
	`
	err = s.DB.QueryRowContext(ctx, query,
		r.AirlineID, r.AirlineCode, r.OriginID, r.OriginCode,
		r.DestinationID, r.DestinationCode, r.TicketsSold, r.TotalSeats, domain.DateOf(r.FlightDate),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert route: %w", classify(err))
	}

	return id, nil
}
