// Package memory holds in-process implementations of the storage ports, used by
// the server's memory mode and by tests.
package memory

import (
	"context"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/ports"
	"fmt"
	"sort"
	"sync"
)

// Store keeps airports, airlines, routes and audit entries in maps guarded by a
// single mutex. It satisfies every repository port.
type Store struct {
	mu       sync.RWMutex
	airports map[int]domain.Airport
	airlines map[int]domain.Airline
	routes   []domain.Route
	audits   []domain.AuditEntry
	nextID   int64

	// BatchHook, when set, runs before an airport batch is stored. A non-nil
	// result aborts the batch and nothing is written.
	BatchHook func(batch []domain.Airport) error
	// ReadErr, when set, is returned by every read.
	ReadErr error
}

var (
	_ ports.AirportRepository = (*Store)(nil)
	_ ports.AirlineRepository = Airlines{}
	_ ports.RouteRepository   = (*Store)(nil)
	_ ports.AuditRepository   = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		airports: make(map[int]domain.Airport),
		airlines: make(map[int]domain.Airline),
	}
}

func (s *Store) ExistingCodes(ctx context.Context) (ports.CodeSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ReadErr != nil {
		return ports.CodeSet{}, s.ReadErr
	}

	set := ports.NewCodeSet()
	for _, a := range s.airports {
		if a.HasICAO() {
			set.ICAO[*a.ICAOCode] = struct{}{}
		}
		if a.HasIATA() {
			set.IATA[*a.IATACode] = struct{}{}
		}
	}
	return set, nil
}

// InsertBatch applies the same uniqueness rules as the SQL schema: ids and
// non-empty codes must be unique. A violation rejects the whole batch.
func (s *Store) InsertBatch(ctx context.Context, airports []domain.Airport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.BatchHook != nil {
		if err := s.BatchHook(airports); err != nil {
			return err
		}
	}

	icao := make(map[string]int)
	iata := make(map[string]int)
	for id, a := range s.airports {
		if a.HasICAO() {
			icao[*a.ICAOCode] = id
		}
		if a.HasIATA() {
			iata[*a.IATACode] = id
		}
	}

	staged := make(map[int]struct{}, len(airports))
	for _, a := range airports {
		if _, ok := s.airports[a.ID]; ok {
			return fmt.Errorf("insert airport %d: duplicate id: %w", a.ID, ports.ErrConstraintViolation)
		}
		if _, ok := staged[a.ID]; ok {
			return fmt.Errorf("insert airport %d: duplicate id: %w", a.ID, ports.ErrConstraintViolation)
		}
		if a.HasICAO() {
			if _, ok := icao[*a.ICAOCode]; ok {
				return fmt.Errorf("insert airport %d: duplicate icao %q: %w", a.ID, *a.ICAOCode, ports.ErrConstraintViolation)
			}
			icao[*a.ICAOCode] = a.ID
		}
		if a.HasIATA() {
			if _, ok := iata[*a.IATACode]; ok {
				return fmt.Errorf("insert airport %d: duplicate iata %q: %w", a.ID, *a.IATACode, ports.ErrConstraintViolation)
			}
			iata[*a.IATACode] = a.ID
		}
		staged[a.ID] = struct{}{}
	}

	for _, a := range airports {
		s.airports[a.ID] = a
	}
	return nil
}

func (s *Store) ListByIDs(ctx context.Context, ids []int) (map[int]domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ReadErr != nil {
		return nil, s.ReadErr
	}

	out := make(map[int]domain.Airport, len(ids))
	for _, id := range ids {
		if a, ok := s.airports[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (s *Store) List(ctx context.Context) ([]domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ReadErr != nil {
		return nil, s.ReadErr
	}

	out := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Airlines is the AirlineRepository view of the store. Airport and airline
// listings share a method name, so the airline side lives on its own type.
type Airlines struct{ s *Store }

func (s *Store) Airlines() Airlines { return Airlines{s: s} }

func (a Airlines) List(ctx context.Context) ([]domain.Airline, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	if a.s.ReadErr != nil {
		return nil, a.s.ReadErr
	}

	out := make([]domain.Airline, 0, len(a.s.airlines))
	for _, al := range a.s.airlines {
		out = append(out, al)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (a Airlines) Upsert(ctx context.Context, airline domain.Airline) (bool, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	_, exists := a.s.airlines[airline.ID]
	a.s.airlines[airline.ID] = airline
	return !exists, nil
}

func (s *Store) ListRoutes(ctx context.Context, window domain.DateRange) ([]domain.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ReadErr != nil {
		return nil, s.ReadErr
	}

	out := make([]domain.Route, 0, len(s.routes))
	for _, r := range s.routes {
		if window.Contains(r.FlightDate) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) ListHighOccupancy(ctx context.Context, window domain.DateRange, threshold float64) ([]domain.FlightSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ReadErr != nil {
		return nil, s.ReadErr
	}

	out := make([]domain.FlightSample, 0)
	for _, r := range s.routes {
		if r.TotalSeats <= 0 || !r.IsHighOccupancy(threshold) || !window.Contains(r.FlightDate) {
			continue
		}
		airline, ok := s.airlines[r.AirlineID]
		if !ok {
			continue
		}
		out = append(out, domain.FlightSample{
			AirlineID:       r.AirlineID,
			AirlineCode:     r.AirlineCode,
			AirlineName:     airline.Name,
			OriginCode:      r.OriginCode,
			DestinationCode: r.DestinationCode,
			FlightDate:      domain.DateOf(r.FlightDate),
			TicketsSold:     r.TicketsSold,
			TotalSeats:      r.TotalSeats,
		})
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, route domain.Route) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.airlines[route.AirlineID]; !ok {
		return 0, fmt.Errorf("insert route: unknown airline %d: %w", route.AirlineID, ports.ErrConstraintViolation)
	}
	if _, ok := s.airports[route.OriginID]; !ok {
		return 0, fmt.Errorf("insert route: unknown origin %d: %w", route.OriginID, ports.ErrConstraintViolation)
	}
	if _, ok := s.airports[route.DestinationID]; !ok {
		return 0, fmt.Errorf("insert route: unknown destination %d: %w", route.DestinationID, ports.ErrConstraintViolation)
	}

	s.nextID++
	route.ID = s.nextID
	route.FlightDate = domain.DateOf(route.FlightDate)
	s.routes = append(s.routes, route)
	return route.ID, nil
}

func (s *Store) Record(ctx context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audits = append(s.audits, entry)
	return nil
}

// Audits returns a copy of the recorded audit entries.
func (s *Store) Audits() []domain.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AuditEntry, len(s.audits))
	copy(out, s.audits)
	return out
}
