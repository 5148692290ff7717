package searchable_test

import (
	"database/sql"
	"testing"

	"github.com/goto/pgsearch/core/searchable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label struct{ name string }

func (l label) String() string { return "label:" + l.name }

func TestExtract(t *testing.T) {
	spec := searchable.AgainstWeighted(
		searchable.FieldWeight{Field: "title", Weight: searchable.WeightA},
		searchable.FieldWeight{Field: "body", Weight: searchable.WeightB},
		searchable.FieldWeight{Field: "author", Weight: searchable.WeightD},
	)

	t.Run("should pair every field text with its weight in spec order", func(t *testing.T) {
		p := post{Title: "Hello World", Body: strPtr("body text"), Author: "jane"}
		parts, err := searchable.Extract(p, spec, postAccessors())
		require.NoError(t, err)
		assert.Equal(t, []searchable.WeightedText{
			{Text: "Hello World", Weight: searchable.WeightA},
			{Text: "body text", Weight: searchable.WeightB},
			{Text: "jane", Weight: searchable.WeightD},
		}, parts)
	})

	t.Run("should render absent values as empty text", func(t *testing.T) {
		parts, err := searchable.Extract(post{Title: "only title"}, spec, postAccessors())
		require.NoError(t, err)
		assert.Equal(t, "", parts[1].Text)
		assert.Equal(t, "", parts[2].Text)
	})

	t.Run("should be repeatable for unchanged records", func(t *testing.T) {
		p := post{Title: "same", Body: strPtr("same body")}
		first, err := searchable.Extract(p, spec, postAccessors())
		require.NoError(t, err)
		second, err := searchable.Extract(p, spec, postAccessors())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("should wrap accessor errors with the field name", func(t *testing.T) {
		_, err := searchable.Extract(post{}, searchable.Against("title", "broken"), postAccessors())
		var fe searchable.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "broken", fe.Field)
		assert.ErrorIs(t, err, errBroken)
	})

	t.Run("should fail on undeclared fields", func(t *testing.T) {
		_, err := searchable.Extract(post{}, searchable.Against("missing"), postAccessors())
		assert.ErrorIs(t, err, searchable.ErrUnknownField)
	})
}

func TestSearchableText(t *testing.T) {
	text, err := searchable.SearchableText(
		post{Title: "Hello", Body: strPtr("World")},
		searchable.Against("title", "body", "author"),
		postAccessors(),
	)
	require.NoError(t, err)
	assert.Equal(t, "Hello World ", text)
}

func TestToText(t *testing.T) {
	var nilStr *string
	cases := []struct {
		description string
		value       any
		expected    string
	}{
		{description: "nil", value: nil, expected: ""},
		{description: "nil pointer", value: nilStr, expected: ""},
		{description: "string pointer", value: strPtr("text"), expected: "text"},
		{description: "string", value: "plain", expected: "plain"},
		{description: "bytes", value: []byte("raw"), expected: "raw"},
		{description: "int", value: 42, expected: "42"},
		{description: "float", value: 3.5, expected: "3.5"},
		{description: "bool", value: true, expected: "true"},
		{description: "stringer", value: label{name: "go"}, expected: "label:go"},
		{description: "null string", value: sql.NullString{}, expected: ""},
		{description: "valid null string", value: sql.NullString{String: "set", Valid: true}, expected: "set"},
		{description: "valid null int", value: sql.NullInt64{Int64: 7, Valid: true}, expected: "7"},
		{description: "struct", value: struct{ N int }{N: 1}, expected: "{1}"},
	}
	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := searchable.ToText(tc.value)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
