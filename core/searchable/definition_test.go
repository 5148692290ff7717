package searchable_test

import (
	"testing"

	"github.com/goto/pgsearch/core/searchable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionValidate(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		def, err := postDefinition().Validate()
		require.NoError(t, err)
		assert.Equal(t, searchable.DefaultLanguage, def.Language)
		assert.Equal(t, searchable.DefaultKey, def.Key)
		assert.Equal(t, searchable.DefaultColumn, def.Column)
		assert.Equal(t, searchable.WeightA, def.Against[0].Weight)
	})

	t.Run("should keep explicit settings", func(t *testing.T) {
		in := postDefinition()
		in.Language = "simple"
		in.Column = "search_vector"
		in.Key = "uuid"
		def, err := in.Validate()
		require.NoError(t, err)
		assert.Equal(t, "simple", def.Language)
		assert.Equal(t, "search_vector", def.Column)
		assert.Equal(t, "uuid", def.Key)
	})

	cases := []struct {
		description string
		mutate      func(*searchable.Definition[post])
		errIs       error
	}{
		{
			description: "missing type",
			mutate:      func(d *searchable.Definition[post]) { d.Type = "" },
		},
		{
			description: "missing id function",
			mutate:      func(d *searchable.Definition[post]) { d.ID = nil },
		},
		{
			description: "no fields",
			mutate:      func(d *searchable.Definition[post]) { d.Against = nil },
		},
		{
			description: "field without accessor",
			mutate:      func(d *searchable.Definition[post]) { d.Against = searchable.Against("summary") },
			errIs:       searchable.ErrUnknownField,
		},
		{
			description: "invalid weight",
			mutate: func(d *searchable.Definition[post]) {
				d.Against = searchable.AgainstWeighted(searchable.FieldWeight{Field: "title", Weight: "X"})
			},
			errIs: searchable.ErrInvalidWeight,
		},
		{
			description: "nil additional attribute",
			mutate: func(d *searchable.Definition[post]) {
				d.AdditionalAttributes = map[string]searchable.Accessor[post]{"author": nil}
			},
		},
		{
			description: "nil predicate",
			mutate: func(d *searchable.Definition[post]) {
				d.Predicates.Unless = []searchable.Predicate[post]{nil}
			},
		},
	}
	for _, tc := range cases {
		t.Run("should reject "+tc.description, func(t *testing.T) {
			def := postDefinition()
			tc.mutate(&def)
			_, err := def.Validate()
			assert.ErrorIs(t, err, searchable.ErrInvalidDefinition)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}
