package services

import (
	"context"
	"encoding/csv"
	"errors"
	"flight-analytics-service/internal/datfile"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/obs"
	"flight-analytics-service/internal/ports"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CatalogLoader seeds the airline and route tables from the delimited exports
// shipped with the dataset.
type CatalogLoader struct {
	Airlines ports.AirlineRepository
	Airports ports.AirportRepository
	Routes   ports.RouteRepository
}

func NewCatalogLoader(airlines ports.AirlineRepository, airports ports.AirportRepository, routes ports.RouteRepository) *CatalogLoader {
	return &CatalogLoader{Airlines: airlines, Airports: airports, Routes: routes}
}

var (
	airlineColumns = []string{"IDAerolinea", "NombreAerolinea", "IATA", "Pais", "Activa"}
	routeColumns   = []string{
		"IDAerolinea", "CodAerolinea", "AeropuertoOrigen", "AeropuertoOrigenID",
		"AeropuertoDestino", "AeropuertoDestinoID", "TicketsVendidos", "Lugares", "Fecha",
	}
)

// table is a delimited file read into memory with its header resolved.
type table struct {
	cols map[string]int
	rows [][]string
}

func readTable(r io.Reader, sep rune, required []string) (table, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return table{}, fmt.Errorf("read table: %w", err)
	}
	if len(records) == 0 {
		return table{}, errors.New("read table: missing header")
	}

	t := table{cols: make(map[string]int, len(records[0])), rows: records[1:]}
	for i, name := range records[0] {
		t.cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range required {
		if _, ok := t.cols[name]; !ok {
			return table{}, fmt.Errorf("read table: missing column %q", name)
		}
	}
	return t, nil
}

// get returns the raw cell for column name, "" when the row is short.
func (t table) get(row []string, name string) string {
	i := t.cols[name]
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// routeNull reports whether a route cell holds one of the export's null markers.
func routeNull(raw string) bool {
	v, ok := datfile.Field(raw)
	return !ok || strings.EqualFold(v, "NULL")
}

// LoadAirlines upserts every airline row by id. Row errors are collected; the
// returned error is set only when the file itself cannot be read.
func (l *CatalogLoader) LoadAirlines(ctx context.Context, r io.Reader, filename string) (report domain.LoadReport, err error) {
	defer obs.Time(ctx, "load_airlines")(&err)

	report = domain.LoadReport{Filename: filename, Errors: []string{}}

	t, err := readTable(r, ',', airlineColumns)
	if err != nil {
		return report, fmt.Errorf("load airlines: %w", err)
	}

	for i, row := range t.rows {
		rowNo := i + 2

		airline, err := parseAirlineRow(t, row)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %v", rowNo, err))
			continue
		}

		created, err := l.Airlines.Upsert(ctx, airline)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: Database error - %v", rowNo, err))
			continue
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}

	log.Printf("file=%q airlines_created=%d airlines_updated=%d errors=%d", filename, report.Created, report.Updated, len(report.Errors))
	return report, nil
}

func parseAirlineRow(t table, row []string) (domain.Airline, error) {
	id, err := strconv.Atoi(strings.TrimSpace(t.get(row, "IDAerolinea")))
	if err != nil {
		return domain.Airline{}, fmt.Errorf("invalid airline ID %q", t.get(row, "IDAerolinea"))
	}

	name := datfile.Text(t.get(row, "NombreAerolinea"))
	if name == "" {
		return domain.Airline{}, fmt.Errorf("airline %d: name is required", id)
	}

	a := domain.Airline{
		ID:      id,
		Name:    name,
		Country: datfile.String(t.get(row, "Pais")),
		Active:  true,
	}
	if iata := datfile.String(t.get(row, "IATA")); iata != nil && *iata != "-" {
		a.IATACode = iata
	}
	if active, ok := datfile.Field(t.get(row, "Activa")); ok {
		a.Active = strings.EqualFold(active, "Y")
	}
	return a, nil
}

// LoadRoutes inserts every valid route row individually. Rows that reference
// unknown airports or break the seat invariants are reported and skipped.
func (l *CatalogLoader) LoadRoutes(ctx context.Context, r io.Reader, filename string) (report domain.LoadReport, err error) {
	defer obs.Time(ctx, "load_routes")(&err)

	report = domain.LoadReport{Filename: filename, Errors: []string{}}

	t, err := readTable(r, '|', routeColumns)
	if err != nil {
		return report, fmt.Errorf("load routes: %w", err)
	}

	airports, err := l.Airports.List(ctx)
	if err != nil {
		return report, unavailable("load routes", "list airports", err)
	}
	known := make(map[int]struct{}, len(airports))
	for _, ap := range airports {
		known[ap.ID] = struct{}{}
	}

	for i, row := range t.rows {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("load routes: %w", err)
		}
		rowNo := i + 2

		route, err := parseRouteRow(t, row, known)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %s", rowNo, sentence(err)))
			continue
		}

		if _, err := l.Routes.Insert(ctx, route); err != nil {
			msg := fmt.Sprintf("Row %d: Database error - %v", rowNo, err)
			if errors.Is(err, ports.ErrConstraintViolation) {
				msg = fmt.Sprintf("Row %d: Constraint violation (Origin: %d, Destination: %d)", rowNo, route.OriginID, route.DestinationID)
			}
			report.Errors = append(report.Errors, msg)
			continue
		}
		report.Created++
	}

	log.Printf("file=%q routes_created=%d errors=%d", filename, report.Created, len(report.Errors))
	return report, nil
}

// sentence renders err for the row report with its first letter upper-cased.
func sentence(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	r, n := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[n:]
}

func parseRouteRow(t table, row []string, known map[int]struct{}) (domain.Route, error) {
	originRaw, destRaw := t.get(row, "AeropuertoOrigenID"), t.get(row, "AeropuertoDestinoID")
	if routeNull(originRaw) || routeNull(destRaw) {
		return domain.Route{}, fmt.Errorf("missing airport ID (Origin: %s, Destination: %s)", strings.TrimSpace(originRaw), strings.TrimSpace(destRaw))
	}

	ints := make(map[string]int, 5)
	for _, col := range []string{"IDAerolinea", "AeropuertoOrigenID", "AeropuertoDestinoID", "TicketsVendidos", "Lugares"} {
		raw := t.get(row, col)
		if routeNull(raw) {
			return domain.Route{}, fmt.Errorf("value conversion error - %s is empty", col)
		}
		v, err := strconv.Atoi(datfile.Text(raw))
		if err != nil {
			return domain.Route{}, fmt.Errorf("value conversion error - %s: %q is not an integer", col, datfile.Text(raw))
		}
		ints[col] = v
	}

	originID, destID := ints["AeropuertoOrigenID"], ints["AeropuertoDestinoID"]
	if _, ok := known[originID]; !ok {
		return domain.Route{}, fmt.Errorf("origin airport ID %d not found in database", originID)
	}
	if _, ok := known[destID]; !ok {
		return domain.Route{}, fmt.Errorf("destination airport ID %d not found in database", destID)
	}

	date, err := domain.ParseDate(datfile.Text(t.get(row, "Fecha")))
	if err != nil {
		return domain.Route{}, fmt.Errorf("value conversion error - Fecha: %w", err)
	}

	route := domain.Route{
		AirlineID:       ints["IDAerolinea"],
		AirlineCode:     datfile.Text(t.get(row, "CodAerolinea")),
		OriginID:        originID,
		OriginCode:      datfile.Text(t.get(row, "AeropuertoOrigen")),
		DestinationID:   destID,
		DestinationCode: datfile.Text(t.get(row, "AeropuertoDestino")),
		TicketsSold:     ints["TicketsVendidos"],
		TotalSeats:      ints["Lugares"],
		FlightDate:      date,
	}
	if err := route.Validate(); err != nil {
		return domain.Route{}, err
	}
	return route, nil
}
