package searchable

import (
	"errors"
	"fmt"
	"sort"
)

const (
	DefaultColumn = "tsv"
	DefaultKey    = "id"
)

// Definition is the per-type search configuration of a record. It is set up
// once and validated when a Synchronizer or DocumentManager is built from it.
type Definition[R any] struct {
	// Type names the record type, stored as searchable_type on documents.
	Type string
	// ID returns the primary key of a record.
	ID func(R) string

	Against   FieldSpec
	Accessors Accessors[R]

	// AdditionalAttributes are stored alongside the vector on satellite
	// documents.
	AdditionalAttributes map[string]Accessor[R]

	Predicates Predicates[R]

	Language string

	// Embedded mode only.
	Table  string
	Key    string
	Column string
}

// Validate checks the definition and returns a copy with defaults applied.
func (d Definition[R]) Validate() (Definition[R], error) {
	var errs []error
	if d.Type == "" {
		errs = append(errs, errors.New("type is required"))
	}
	if d.ID == nil {
		errs = append(errs, errors.New("id function is required"))
	}
	if len(d.Against) == 0 {
		errs = append(errs, errors.New("at least one field is required"))
	}

	against, err := d.Against.Normalize()
	if err != nil {
		errs = append(errs, err)
	}
	for _, fw := range against {
		if fn, ok := d.Accessors[fw.Field]; !ok || fn == nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownField, fw.Field))
		}
	}

	names := make([]string, 0, len(d.AdditionalAttributes))
	for name := range d.AdditionalAttributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if d.AdditionalAttributes[name] == nil {
			errs = append(errs, fmt.Errorf("additional attribute %q has no accessor", name))
		}
	}

	errs = append(errs, checkPredicates("if", d.Predicates.If)...)
	errs = append(errs, checkPredicates("unless", d.Predicates.Unless)...)
	errs = append(errs, checkPredicates("update_if", d.Predicates.UpdateIf)...)

	if len(errs) > 0 {
		return d, fmt.Errorf("%w %q: %w", ErrInvalidDefinition, d.Type, errors.Join(errs...))
	}

	d.Against = against
	if d.Language == "" {
		d.Language = DefaultLanguage
	}
	if d.Key == "" {
		d.Key = DefaultKey
	}
	if d.Column == "" {
		d.Column = DefaultColumn
	}
	return d, nil
}

func (d Definition[R]) columnTarget() ColumnTarget {
	return ColumnTarget{Table: d.Table, Key: d.Key, Column: d.Column}
}

func checkPredicates[R any](kind string, preds []Predicate[R]) []error {
	var errs []error
	for i, p := range preds {
		if p == nil {
			errs = append(errs, fmt.Errorf("%s predicate #%d is nil", kind, i))
		}
	}
	return errs
}
