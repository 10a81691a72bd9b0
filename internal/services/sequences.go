package services

import (
	"context"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/obs"
	"sort"
	"time"
)

// MinRunDays is the shortest sequence reported as a consecutive run.
const MinRunDays = 2

type routeKey struct {
	origin      string
	destination string
}

func (k routeKey) String() string { return k.origin + "-" + k.destination }

type dayTotal struct {
	date    time.Time
	tickets int
	seats   int
}

// DetectRuns scans the samples of a single route and returns every maximal
// run of at least two consecutive calendar days, oldest first. Samples that
// share a date are merged into one day before scanning.
func DetectRuns(samples []domain.FlightSample) []domain.ConsecutiveRun {
	if len(samples) < MinRunDays {
		return nil
	}

	days := make([]dayTotal, 0, len(samples))
	for _, s := range samples {
		days = append(days, dayTotal{date: domain.DateOf(s.FlightDate), tickets: s.TicketsSold, seats: s.TotalSeats})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })

	merged := days[:1]
	for _, d := range days[1:] {
		last := &merged[len(merged)-1]
		if last.date.Equal(d.date) {
			last.tickets += d.tickets
			last.seats += d.seats
			continue
		}
		merged = append(merged, d)
	}

	key := routeKey{origin: samples[0].OriginCode, destination: samples[0].DestinationCode}

	var runs []domain.ConsecutiveRun
	start := 0
	for i := 1; i <= len(merged); i++ {
		if i < len(merged) && domain.NextDay(merged[i-1].date, merged[i].date) {
			continue
		}
		if i-start >= MinRunDays {
			runs = append(runs, buildRun(key, merged[start:i]))
		}
		start = i
	}
	return runs
}

func buildRun(key routeKey, days []dayTotal) domain.ConsecutiveRun {
	run := domain.ConsecutiveRun{
		RouteKey:        key.String(),
		OriginCode:      key.origin,
		DestinationCode: key.destination,
		ConsecutiveDays: len(days),
		StartDate:       days[0].date,
		EndDate:         days[len(days)-1].date,
		Days:            make([]domain.RunDay, 0, len(days)),
	}

	for _, d := range days {
		run.TotalTicketsSold += d.tickets
		run.TotalSeats += d.seats
		run.Days = append(run.Days, domain.RunDay{
			FlightDate:          d.date,
			TicketsSold:         d.tickets,
			TotalSeats:          d.seats,
			OccupancyPercentage: round(domain.Ratio(d.tickets, d.seats)*100, 2),
		})
	}

	// Sum-then-divide keeps heavy days from being diluted by light ones.
	run.AvgOccupancyRate, run.AvgOccupancyPercentage = rateAndPercentage(domain.Ratio(run.TotalTicketsSold, run.TotalSeats))
	return run
}

// GroupConsecutiveRuns groups samples by airline and route, detects runs per
// route and returns the airlines that have at least one run, most runs first.
// The result does not depend on the order of samples.
func GroupConsecutiveRuns(samples []domain.FlightSample) []domain.AirlineRuns {
	sorted := make([]domain.FlightSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.AirlineCode != b.AirlineCode {
			return a.AirlineCode < b.AirlineCode
		}
		if a.AirlineID != b.AirlineID {
			return a.AirlineID < b.AirlineID
		}
		if a.OriginCode != b.OriginCode {
			return a.OriginCode < b.OriginCode
		}
		if a.DestinationCode != b.DestinationCode {
			return a.DestinationCode < b.DestinationCode
		}
		if !a.FlightDate.Equal(b.FlightDate) {
			return a.FlightDate.Before(b.FlightDate)
		}
		if a.TicketsSold != b.TicketsSold {
			return a.TicketsSold < b.TicketsSold
		}
		return a.TotalSeats < b.TotalSeats
	})

	var out []domain.AirlineRuns
	for lo := 0; lo < len(sorted); {
		hi := lo
		for hi < len(sorted) && sorted[hi].AirlineID == sorted[lo].AirlineID && sorted[hi].AirlineCode == sorted[lo].AirlineCode {
			hi++
		}

		airline := domain.AirlineRuns{
			AirlineID:   sorted[lo].AirlineID,
			AirlineCode: sorted[lo].AirlineCode,
			AirlineName: sorted[lo].AirlineName,
		}
		for rlo := lo; rlo < hi; {
			key := routeKey{origin: sorted[rlo].OriginCode, destination: sorted[rlo].DestinationCode}
			rhi := rlo
			for rhi < hi && sorted[rhi].OriginCode == key.origin && sorted[rhi].DestinationCode == key.destination {
				rhi++
			}
			airline.Routes = append(airline.Routes, DetectRuns(sorted[rlo:rhi])...)
			rlo = rhi
		}

		if len(airline.Routes) > 0 {
			airline.TotalRoutes = len(airline.Routes)
			out = append(out, airline)
		}
		lo = hi
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalRoutes > out[j].TotalRoutes })
	return out
}

// ConsecutiveHighOccupancy returns one page of airlines ranked by the number of
// consecutive high-occupancy runs inside window, with the unpaginated count.
func (a *Analytics) ConsecutiveHighOccupancy(
	ctx context.Context,
	window domain.DateRange,
	page, pageSize int,
) (_ []domain.AirlineRuns, total int, err error) {
	defer obs.Time(ctx, "consecutive_high_occupancy")(&err)

	samples, err := a.Routes.ListHighOccupancy(ctx, window, a.Thresholds.OccupancyThreshold)
	if err != nil {
		return nil, 0, unavailable("consecutive high occupancy", "list high occupancy flights", err)
	}

	all := GroupConsecutiveRuns(samples)
	return Paginate(all, page, pageSize), len(all), nil
}
