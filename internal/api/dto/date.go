package dto

import (
	"encoding/json"
	"flight-analytics-service/internal/domain"
	"time"
)

// Date serializes as a bare YYYY-MM-DD string.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(domain.DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// OptionalDate returns nil for a zero time.
func OptionalDate(t time.Time) *Date {
	if t.IsZero() {
		return nil
	}
	d := Date(t)
	return &d
}
