package domain

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Represents an airport as published in the legacy airports file.
// The ID is assigned externally and is stable across imports.
// Optional attributes are nil when the source carried the null sentinel.
type Airport struct {
	ID            int      `db:"id"`
	Name          string   `db:"name" validate:"required,max=255"`
	City          string   `db:"city" validate:"required,max=100"`
	Country       string   `db:"country" validate:"required,max=100"`
	IATACode      *string  `db:"iata_code" validate:"omitnil,max=10"`
	ICAOCode      *string  `db:"icao_code" validate:"omitnil,max=10"`
	Latitude      *float64 `db:"latitude" validate:"omitnil,gte=-90,lte=90"`
	Longitude     *float64 `db:"longitude" validate:"omitnil,gte=-180,lte=180"`
	Altitude      *int     `db:"altitude"`
	UTCOffset     *float64 `db:"utc_offset" validate:"omitnil,gte=-12,lte=14"`
	ContinentCode *string  `db:"continent_code" validate:"omitnil,max=10"`
	Timezone      *string  `db:"timezone" validate:"omitnil,max=100"`
}

var airportValidate *validator.Validate

func init() {
	airportValidate = validator.New()

	// Report column names rather than Go field names.
	airportValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("db"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// Validate checks the airport invariants and returns one message per violated rule.
// An empty result means the airport is valid.
func (a Airport) Validate() []string {
	err := airportValidate.Struct(a)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describeViolation(fe))
	}
	return problems
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s exceeds maximum length of %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag())
	}
}

// HasICAO reports whether the airport carries a non-empty ICAO code.
func (a Airport) HasICAO() bool { return a.ICAOCode != nil && *a.ICAOCode != "" }

// HasIATA reports whether the airport carries a non-empty IATA code.
func (a Airport) HasIATA() bool { return a.IATACode != nil && *a.IATACode != "" }
