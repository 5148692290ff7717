package searchable

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// WeightedText is a single text fragment and the weight it is indexed with.
type WeightedText struct {
	Text   string
	Weight Weight
}

// Extract reads every field of spec from rec, in spec order. An accessor
// error aborts extraction and is returned as a FieldError.
func Extract[R any](rec R, spec FieldSpec, accessors Accessors[R]) ([]WeightedText, error) {
	parts := make([]WeightedText, 0, len(spec))
	for _, fw := range spec {
		text, err := fieldText(rec, fw.Field, accessors)
		if err != nil {
			return nil, err
		}
		parts = append(parts, WeightedText{Text: text, Weight: fw.Weight})
	}
	return parts, nil
}

// SearchableText joins the raw text of every field with a single space.
func SearchableText[R any](rec R, spec FieldSpec, accessors Accessors[R]) (string, error) {
	texts := make([]string, 0, len(spec))
	for _, fw := range spec {
		text, err := fieldText(rec, fw.Field, accessors)
		if err != nil {
			return "", err
		}
		texts = append(texts, text)
	}
	return strings.Join(texts, " "), nil
}

func fieldText[R any](rec R, field string, accessors Accessors[R]) (string, error) {
	fn, ok := accessors[field]
	if !ok || fn == nil {
		return "", FieldError{Field: field, Err: ErrUnknownField}
	}

	v, err := fn(rec)
	if err != nil {
		return "", FieldError{Field: field, Err: err}
	}

	text, err := ToText(v)
	if err != nil {
		return "", FieldError{Field: field, Err: err}
	}
	return text, nil
}

// ToText renders an attribute value as text. Absent values (nil, nil
// pointers, invalid SQL null types) render as the empty string.
func ToText(v any) (string, error) {
	if v == nil {
		return "", nil
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", nil
		}
		if _, ok := v.(fmt.Stringer); !ok {
			if _, ok := v.(driver.Valuer); !ok {
				return ToText(rv.Elem().Interface())
			}
		}
	}

	if valuer, ok := v.(driver.Valuer); ok {
		dv, err := valuer.Value()
		if err != nil {
			return "", err
		}
		if dv == nil {
			return "", nil
		}
		v = dv
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s, nil
	}
	return fmt.Sprint(v), nil
}
