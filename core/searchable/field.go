package searchable

import (
	"fmt"
	"sort"
)

// Accessor reads one attribute of a record.
type Accessor[R any] func(R) (any, error)

// Accessors maps field names to the functions extracting them.
type Accessors[R any] map[string]Accessor[R]

type FieldWeight struct {
	Field  string
	Weight Weight
}

// FieldSpec is the ordered list of fields a search vector is built from.
type FieldSpec []FieldWeight

// Against declares bare fields, each weighted DefaultWeight.
func Against(fields ...string) FieldSpec {
	spec := make(FieldSpec, 0, len(fields))
	for _, f := range fields {
		spec = append(spec, FieldWeight{Field: f, Weight: DefaultWeight})
	}
	return spec
}

func AgainstWeighted(pairs ...FieldWeight) FieldSpec {
	spec := make(FieldSpec, 0, len(pairs))
	return append(spec, pairs...)
}

// AgainstMap converts the mapping form to pairs. Pairs are ordered by field
// name so that the result is deterministic; nothing should rely on that order.
func AgainstMap(m map[string]Weight) FieldSpec {
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	spec := make(FieldSpec, 0, len(fields))
	for _, f := range fields {
		spec = append(spec, FieldWeight{Field: f, Weight: m[f]})
	}
	return spec
}

// Normalize fills in default weights and rejects invalid ones.
func (s FieldSpec) Normalize() (FieldSpec, error) {
	out := make(FieldSpec, 0, len(s))
	for _, fw := range s {
		if fw.Field == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidDefinition)
		}
		w, err := ParseWeight(string(fw.Weight))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fw.Field, err)
		}
		out = append(out, FieldWeight{Field: fw.Field, Weight: w})
	}
	return out, nil
}

func (s FieldSpec) Fields() []string {
	fields := make([]string, 0, len(s))
	for _, fw := range s {
		fields = append(fields, fw.Field)
	}
	return fields
}
