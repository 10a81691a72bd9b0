package services

import (
	"errors"
	"fmt"
)

var (
	// ErrDataUnavailable marks a failure to read rows from storage, as opposed to
	// a query that legitimately matched nothing.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrInvalidEncoding is returned when import content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding: content is not valid UTF-8")
)

func unavailable(op, step string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", op, step, ErrDataUnavailable, err)
}
