package domain

import (
	"errors"
	"testing"
)

func TestRouteOccupancyRate(t *testing.T) {
	tests := []struct {
		name    string
		tickets int
		seats   int
		want    float64
	}{
		{"full", 100, 100, 1.0},
		{"partial", 90, 100, 0.9},
		{"zero seats", 10, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Route{TicketsSold: tt.tickets, TotalSeats: tt.seats}
			if got := r.OccupancyRate(); got != tt.want {
				t.Fatalf("rate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRouteIsHighOccupancyInclusive(t *testing.T) {
	r := Route{TicketsSold: 85, TotalSeats: 100}
	if !r.IsHighOccupancy(DefaultHighOccupancyThreshold) {
		t.Fatal("85% should meet a 0.85 threshold")
	}
	r.TicketsSold = 84
	if r.IsHighOccupancy(DefaultHighOccupancyThreshold) {
		t.Fatal("84% should not meet a 0.85 threshold")
	}
}

func TestRouteValidate(t *testing.T) {
	tests := []struct {
		name    string
		tickets int
		seats   int
		wantErr bool
	}{
		{"valid", 50, 100, false},
		{"full", 100, 100, false},
		{"overbooked", 101, 100, true},
		{"no seats", 0, 0, true},
		{"negative tickets", -1, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Route{TicketsSold: tt.tickets, TotalSeats: tt.seats}.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRoute) {
					t.Fatalf("expected ErrInvalidRoute, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAirlineCode(t *testing.T) {
	if got := (Airline{}).Code(); got != "N/A" {
		t.Fatalf("code = %q, want N/A", got)
	}
	code := "LA"
	if got := (Airline{IATACode: &code}).Code(); got != "LA" {
		t.Fatalf("code = %q, want LA", got)
	}
}
