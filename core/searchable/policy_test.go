package searchable_test

import (
	"errors"
	"testing"

	"github.com/goto/pgsearch/core/searchable"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	type testCase struct {
		Description string
		Predicates  searchable.Predicates[post]
		Post        post
		State       searchable.DocumentState
		Expected    searchable.Action
	}

	var testCases = []testCase{
		{
			Description: "no predicates and no document creates one",
			State:       searchable.DocumentAbsent,
			Expected:    searchable.ActionCreate,
		},
		{
			Description: "no predicates and a document updates it",
			State:       searchable.DocumentPresent,
			Expected:    searchable.ActionUpdate,
		},
		{
			Description: "failing if predicate destroys an existing document",
			Predicates:  searchable.Predicates[post]{If: []searchable.Predicate[post]{published}},
			Post:        post{Published: false},
			State:       searchable.DocumentPresent,
			Expected:    searchable.ActionDestroy,
		},
		{
			Description: "failing if predicate without a document changes nothing",
			Predicates:  searchable.Predicates[post]{If: []searchable.Predicate[post]{published}},
			Post:        post{Published: false},
			State:       searchable.DocumentAbsent,
			Expected:    searchable.ActionNoChange,
		},
		{
			Description: "holding unless predicate prevents the document",
			Predicates:  searchable.Predicates[post]{Unless: []searchable.Predicate[post]{archived}},
			Post:        post{Archived: true},
			State:       searchable.DocumentAbsent,
			Expected:    searchable.ActionNoChange,
		},
		{
			Description: "holding unless predicate destroys an existing document",
			Predicates:  searchable.Predicates[post]{Unless: []searchable.Predicate[post]{archived}},
			Post:        post{Archived: true},
			State:       searchable.DocumentPresent,
			Expected:    searchable.ActionDestroy,
		},
		{
			Description: "all if true and all unless false creates the document",
			Predicates: searchable.Predicates[post]{
				If:     []searchable.Predicate[post]{published},
				Unless: []searchable.Predicate[post]{archived},
			},
			Post:     post{Published: true},
			State:    searchable.DocumentAbsent,
			Expected: searchable.ActionCreate,
		},
		{
			Description: "failing update_if leaves an existing document stale",
			Predicates:  searchable.Predicates[post]{UpdateIf: []searchable.Predicate[post]{stale}},
			Post:        post{Stale: false},
			State:       searchable.DocumentPresent,
			Expected:    searchable.ActionNoChange,
		},
		{
			Description: "holding update_if refreshes an existing document",
			Predicates:  searchable.Predicates[post]{UpdateIf: []searchable.Predicate[post]{stale}},
			Post:        post{Stale: true},
			State:       searchable.DocumentPresent,
			Expected:    searchable.ActionUpdate,
		},
		{
			Description: "update_if does not block creation",
			Predicates:  searchable.Predicates[post]{UpdateIf: []searchable.Predicate[post]{stale}},
			State:       searchable.DocumentAbsent,
			Expected:    searchable.ActionCreate,
		},
		{
			Description: "destroyed document is never touched when it should exist",
			State:       searchable.DocumentDestroyed,
			Expected:    searchable.ActionNoChange,
		},
		{
			Description: "destroyed document is never touched when it should not exist",
			Predicates:  searchable.Predicates[post]{If: []searchable.Predicate[post]{published}},
			State:       searchable.DocumentDestroyed,
			Expected:    searchable.ActionNoChange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			action, err := searchable.Decide(tc.Post, tc.Predicates, tc.State)
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, action)
		})
	}
}

func TestDecidePredicateError(t *testing.T) {
	errPredicate := errors.New("predicate exploded")
	failing := func(post) (bool, error) { return false, errPredicate }

	t.Run("if predicate", func(t *testing.T) {
		_, err := searchable.Decide(post{}, searchable.Predicates[post]{If: []searchable.Predicate[post]{failing}}, searchable.DocumentAbsent)
		var pe searchable.PredicateError
		assert.ErrorAs(t, err, &pe)
		assert.Equal(t, "if", pe.Kind)
		assert.ErrorIs(t, err, errPredicate)
	})

	t.Run("update_if predicate", func(t *testing.T) {
		_, err := searchable.Decide(post{Published: true}, searchable.Predicates[post]{UpdateIf: []searchable.Predicate[post]{published, failing}}, searchable.DocumentPresent)
		assert.ErrorIs(t, err, errPredicate)
	})
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "create", searchable.ActionCreate.String())
	assert.Equal(t, "update", searchable.ActionUpdate.String())
	assert.Equal(t, "destroy", searchable.ActionDestroy.String())
	assert.Equal(t, "no_change", searchable.ActionNoChange.String())
}
