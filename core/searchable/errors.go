package searchable

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDefinition = errors.New("invalid searchable definition")
	ErrUnknownField      = errors.New("no accessor declared for field")
	ErrInvalidWeight     = errors.New("invalid weight")
	ErrUnknownEvent      = errors.New("unknown lifecycle event")
	ErrNilHook           = errors.New("nil hook")
	ErrDocumentNotFound  = errors.New("search document not found")
	ErrRecordNotFound    = errors.New("searchable record not found")
)

// FieldError is returned when an accessor fails while extracting a field.
type FieldError struct {
	Field string
	Err   error
}

func (err FieldError) Error() string {
	return fmt.Sprintf("extract field %q: %s", err.Field, err.Err)
}

func (err FieldError) Unwrap() error { return err.Err }

type PredicateError struct {
	Kind  string
	Index int
	Err   error
}

func (err PredicateError) Error() string {
	return fmt.Sprintf("evaluate %s predicate #%d: %s", err.Kind, err.Index, err.Err)
}

func (err PredicateError) Unwrap() error { return err.Err }
