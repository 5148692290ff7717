package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goto/pgsearch/core/searchable"
	"github.com/goto/pgsearch/core/validator"
	"github.com/spf13/cast"
)

type Mode string

const (
	// ModeEmbedded stores the vector in a column of the entity table.
	ModeEmbedded Mode = "embedded"
	// ModeMultisearch stores the vector in pg_search_documents.
	ModeMultisearch Mode = "multisearch"
)

type Field struct {
	Name   string `yaml:"name" mapstructure:"name" validate:"required"`
	Weight string `yaml:"weight,omitempty" mapstructure:"weight"`
}

// Config declares a searchable table.
type Config struct {
	Name     string  `yaml:"name" mapstructure:"name" validate:"required"`
	Table    string  `yaml:"table" mapstructure:"table" validate:"required"`
	Key      string  `yaml:"key,omitempty" mapstructure:"key"`
	Mode     Mode    `yaml:"mode" mapstructure:"mode" validate:"oneof=embedded multisearch"`
	Column   string  `yaml:"column,omitempty" mapstructure:"column"`
	Language string  `yaml:"language,omitempty" mapstructure:"language"`
	Against  []Field `yaml:"against" mapstructure:"against" validate:"min=1,dive"`

	// Boolean columns gating satellite documents.
	If       []string `yaml:"if,omitempty" mapstructure:"if"`
	Unless   []string `yaml:"unless,omitempty" mapstructure:"unless"`
	UpdateIf []string `yaml:"update_if,omitempty" mapstructure:"update_if"`

	AdditionalAttributes []string `yaml:"additional_attributes,omitempty" mapstructure:"additional_attributes"`
}

// Row is a table row keyed by column name.
type Row map[string]interface{}

func (c Config) Validate() error {
	var errs []error
	if err := validator.ValidateStruct(c); err != nil {
		errs = append(errs, err)
	}
	for _, f := range c.Against {
		if _, err := searchable.ParseWeight(f.Weight); err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", f.Name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidConfig, c.Name, errors.Join(errs...))
	}
	return nil
}

func (c Config) KeyColumn() string {
	if c.Key == "" {
		return searchable.DefaultKey
	}
	return c.Key
}

// Columns lists every column the entity reads, sorted, key included.
func (c Config) Columns() []string {
	seen := map[string]bool{c.KeyColumn(): true}
	add := func(names ...string) {
		for _, n := range names {
			seen[n] = true
		}
	}
	for _, f := range c.Against {
		add(f.Name)
	}
	add(c.If...)
	add(c.Unless...)
	add(c.UpdateIf...)
	add(c.AdditionalAttributes...)

	cols := make([]string, 0, len(seen))
	for n := range seen {
		cols = append(cols, n)
	}
	sort.Strings(cols)
	return cols
}

// Definition turns the config into a searchable definition over rows.
func (c Config) Definition() (searchable.Definition[Row], error) {
	if err := c.Validate(); err != nil {
		return searchable.Definition[Row]{}, err
	}

	def := searchable.Definition[Row]{
		Type:      c.Name,
		ID:        rowID(c.KeyColumn()),
		Accessors: searchable.Accessors[Row]{},
		Language:  c.Language,
		Table:     c.Table,
		Key:       c.KeyColumn(),
		Column:    c.Column,
	}
	for _, f := range c.Against {
		w, err := searchable.ParseWeight(f.Weight)
		if err != nil {
			return searchable.Definition[Row]{}, err
		}
		def.Against = append(def.Against, searchable.FieldWeight{Field: f.Name, Weight: w})
		def.Accessors[f.Name] = column(f.Name)
	}

	if len(c.AdditionalAttributes) > 0 {
		def.AdditionalAttributes = make(map[string]searchable.Accessor[Row], len(c.AdditionalAttributes))
		for _, name := range c.AdditionalAttributes {
			def.AdditionalAttributes[name] = column(name)
		}
	}

	def.Predicates = searchable.Predicates[Row]{
		If:       truthy(c.If),
		Unless:   truthy(c.Unless),
		UpdateIf: truthy(c.UpdateIf),
	}

	return def.Validate()
}

// Lookup finds the entity named name.
func Lookup(cfgs []Config, name string) (Config, error) {
	for _, c := range cfgs {
		if c.Name == name {
			return c, nil
		}
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
}

func column(name string) searchable.Accessor[Row] {
	return func(r Row) (any, error) {
		v, ok := r[name]
		if !ok {
			return nil, MissingColumnError{Column: name}
		}
		return v, nil
	}
}

func rowID(key string) func(Row) string {
	return func(r Row) string {
		return cast.ToString(r[key])
	}
}

func truthy(columns []string) []searchable.Predicate[Row] {
	if len(columns) == 0 {
		return nil
	}

	preds := make([]searchable.Predicate[Row], 0, len(columns))
	for _, name := range columns {
		name := name
		get := column(name)
		preds = append(preds, func(r Row) (bool, error) {
			v, err := get(r)
			if err != nil {
				return false, err
			}
			if v == nil {
				return false, nil
			}
			b, err := toBool(v)
			if err != nil {
				return false, fmt.Errorf("column %q: %w", name, err)
			}
			return b, nil
		})
	}
	return preds
}

// toBool reads flag columns. pgx scans smallint, integer and bigint as
// int16, int32 and int64; any non-zero value is true.
func toBool(v interface{}) (bool, error) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToInt64E(v)
		if err != nil {
			return false, err
		}
		return n != 0, nil
	}
	return cast.ToBoolE(v)
}
