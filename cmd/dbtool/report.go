package main

import (
	"flight-analytics-service/internal/app"
	"flight-analytics-service/internal/config"
	"flight-analytics-service/internal/domain"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var from, to string
	var limit int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print airline occupancy for a date window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := windowFromFlags(from, to)
			if err != nil {
				return err
			}

			return withRepositories(cmd.Context(), opts, func(cfg *config.Config, repos app.Repositories) error {
				items, total, err := app.NewAnalytics(cfg, repos).OccupancyByAirline(cmd.Context(), window, 1, limit)
				if err != nil {
					return err
				}

				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Airline", "Code", "Flights", "Tickets", "Seats", "Occupancy %"})
				for _, o := range items {
					t.AppendRow(table.Row{o.AirlineName, o.AirlineCode, o.TotalFlights, o.TotalTicketsSold, o.TotalSeats, o.AvgOccupancyPercentage})
				}
				t.AppendFooter(table.Row{"", "", "", "", "Airlines", fmt.Sprintf("%d of %d", len(items), total)})
				t.Render()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first flight date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last flight date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 25, "airlines to print")
	return cmd
}

func windowFromFlags(from, to string) (domain.DateRange, error) {
	var window domain.DateRange
	var err error
	if from != "" {
		if window.From, err = domain.ParseDate(from); err != nil {
			return window, fmt.Errorf("--from: %w", err)
		}
	}
	if to != "" {
		if window.To, err = domain.ParseDate(to); err != nil {
			return window, fmt.Errorf("--to: %w", err)
		}
	}
	return window, nil
}
