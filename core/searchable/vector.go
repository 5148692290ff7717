package searchable

import "context"

// DefaultLanguage is the text search configuration used when a definition
// does not name one.
const DefaultLanguage = "pg_catalog.english"

// Vector is the textual form of a compiled tsvector, e.g. 'hello':1A 'world':2A.
type Vector string

const EmptyVector Vector = ""

func (v Vector) String() string {
	return string(v)
}

func (v Vector) IsEmpty() bool {
	return v == EmptyVector
}

//go:generate mockery --name=Compiler -r --case underscore --with-expecter --structname Compiler --filename compiler.go --output=./mocks

// Compiler turns weighted text into a single search vector using the
// persistence layer's to_tsvector, setweight and concatenation primitives.
// Compiling zero parts must yield EmptyVector.
type Compiler interface {
	Compile(ctx context.Context, language string, parts []WeightedText) (Vector, error)
}
