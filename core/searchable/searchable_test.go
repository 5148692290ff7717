package searchable_test

import (
	"errors"

	"github.com/goto/pgsearch/core/searchable"
)

type post struct {
	ID        string
	Title     string
	Body      *string
	Author    string
	Published bool
	Archived  bool
	Stale     bool
}

func strPtr(s string) *string { return &s }

var errBroken = errors.New("broken accessor")

func postAccessors() searchable.Accessors[post] {
	return searchable.Accessors[post]{
		"title":  func(p post) (any, error) { return p.Title, nil },
		"body":   func(p post) (any, error) { return p.Body, nil },
		"author": func(p post) (any, error) { return p.Author, nil },
		"broken": func(p post) (any, error) { return nil, errBroken },
	}
}

func published(p post) (bool, error) { return p.Published, nil }
func archived(p post) (bool, error)  { return p.Archived, nil }
func stale(p post) (bool, error)     { return p.Stale, nil }

func postDefinition() searchable.Definition[post] {
	return searchable.Definition[post]{
		Type:      "Post",
		ID:        func(p post) string { return p.ID },
		Against:   searchable.AgainstWeighted(searchable.FieldWeight{Field: "title"}, searchable.FieldWeight{Field: "body", Weight: searchable.WeightB}),
		Accessors: postAccessors(),
		Table:     "posts",
	}
}
