package ports

import "errors"

// ErrConstraintViolation marks a write rejected by a storage integrity constraint
// (unique key, foreign key, check).
var ErrConstraintViolation = errors.New("constraint violation")
