package domain

import (
	"testing"
	"time"
)

func TestNextDay(t *testing.T) {
	d := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)

	if !NextDay(d, d.AddDate(0, 0, 1)) {
		t.Fatal("Feb 29 should follow Feb 28 in a leap year")
	}
	if NextDay(d, d.AddDate(0, 0, 2)) {
		t.Fatal("two-day gap reported as consecutive")
	}
	if NextDay(d, d) {
		t.Fatal("same day reported as consecutive")
	}

	// Time of day is ignored.
	if !NextDay(d.Add(23*time.Hour), d.AddDate(0, 0, 1).Add(time.Hour)) {
		t.Fatal("calendar days with clock times should still be consecutive")
	}
}

func TestDateRangeContains(t *testing.T) {
	from, _ := ParseDate("2024-01-10")
	to, _ := ParseDate("2024-01-20")
	window := DateRange{From: from, To: to}

	cases := map[string]bool{
		"2024-01-09": false,
		"2024-01-10": true,
		"2024-01-15": true,
		"2024-01-20": true,
		"2024-01-21": false,
	}
	for s, want := range cases {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		if got := window.Contains(d); got != want {
			t.Fatalf("Contains(%s) = %v, want %v", s, got, want)
		}
	}

	if !(DateRange{}).Contains(from) {
		t.Fatal("open window should contain every date")
	}
}
