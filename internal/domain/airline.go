package domain

// Represents a carrier operating routes. Read-only for analytics.
type Airline struct {
	ID       int
	Name     string
	Alias    *string
	IATACode *string
	ICAOCode *string
	Callsign *string
	Country  *string
	Active   bool
}

// Code returns the IATA code, or "N/A" when the airline has none.
func (a Airline) Code() string {
	if a.IATACode == nil || *a.IATACode == "" {
		return "N/A"
	}
	return *a.IATACode
}
