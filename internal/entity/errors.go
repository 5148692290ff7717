package entity

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrInvalidConfig = errors.New("invalid entity config")
)

// MissingColumnError is returned when a row lacks a column an accessor or
// predicate reads.
type MissingColumnError struct {
	Column string
}

func (err MissingColumnError) Error() string {
	return fmt.Sprintf("column %q missing from row", err.Column)
}
