package services

import (
	"context"
	"flight-analytics-service/internal/adapters/memory"
	"flight-analytics-service/internal/domain"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func day(n int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

// airportLine renders a valid dual-code row for id.
func airportLine(id int) string {
	return fmt.Sprintf(`%d,"Airport %d","City %d","Chile","A%d","SC%04d",-33.39,-70.79,474,-4,"S","America/Santiago"`, id, id, id, id, id)
}

func airportFile(header bool, lines ...string) string {
	var b strings.Builder
	if header {
		b.WriteString("id,name,city,country,iata,icao,lat,lon,alt,utc,dst,tz\n")
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func airport(id int, country string, altitude *int) domain.Airport {
	return domain.Airport{
		ID:       id,
		Name:     fmt.Sprintf("Airport %d", id),
		City:     "City",
		Country:  country,
		IATACode: ptr(fmt.Sprintf("A%d", id)),
		ICAOCode: ptr(fmt.Sprintf("ICA%d", id)),
		Altitude: altitude,
	}
}

// seedStore loads airlines, airports and routes into a fresh memory store.
func seedStore(t *testing.T, airlines []domain.Airline, airports []domain.Airport, routes []domain.Route) *memory.Store {
	t.Helper()

	ctx := context.Background()
	s := memory.NewStore()
	for _, al := range airlines {
		_, err := s.Airlines().Upsert(ctx, al)
		require.NoError(t, err)
	}
	require.NoError(t, s.InsertBatch(ctx, airports))
	for _, r := range routes {
		_, err := s.Insert(ctx, r)
		require.NoError(t, err)
	}
	return s
}

func newAnalytics(s *memory.Store) *Analytics {
	return NewAnalytics(s, s.Airlines(), s, domain.CriteriaThresholds{
		OccupancyThreshold: domain.DefaultHighOccupancyThreshold,
		AltitudeThreshold:  1000,
	})
}
