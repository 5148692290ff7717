package searchable

import (
	"context"
	"errors"
	"fmt"

	"github.com/goto/salt/log"
)

// Synchronizer keeps a tsvector column on the record itself up to date. It
// recomputes the vector after every commit, without predicates.
type Synchronizer[R any] struct {
	def      Definition[R]
	compiler Compiler
	writer   ColumnWriter
	logger   log.Logger
}

type SynchronizerOption[R any] func(*Synchronizer[R])

func WithSynchronizerLogger[R any](logger log.Logger) SynchronizerOption[R] {
	return func(s *Synchronizer[R]) {
		s.logger = logger
	}
}

func NewSynchronizer[R any](def Definition[R], compiler Compiler, writer ColumnWriter, opts ...SynchronizerOption[R]) (*Synchronizer[R], error) {
	if compiler == nil || writer == nil {
		return nil, fmt.Errorf("new synchronizer: %w: compiler and column writer are required", ErrInvalidDefinition)
	}
	if def.Table == "" {
		return nil, fmt.Errorf("new synchronizer: %w %q: table is required", ErrInvalidDefinition, def.Type)
	}
	def, err := def.Validate()
	if err != nil {
		return nil, fmt.Errorf("new synchronizer: %w", err)
	}

	s := &Synchronizer[R]{
		def:      def,
		compiler: compiler,
		writer:   writer,
		logger:   log.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Compute returns the current search vector of rec.
func (s *Synchronizer[R]) Compute(ctx context.Context, rec R) (Vector, error) {
	return compute(ctx, s.compiler, s.def, rec)
}

// Sync recomputes the vector of rec and stores it on the record's column.
func (s *Synchronizer[R]) Sync(ctx context.Context, rec R) error {
	id := s.def.ID(rec)
	v, err := s.Compute(ctx, rec)
	if err != nil {
		return fmt.Errorf("sync %s %q: %w", s.def.Type, id, err)
	}

	if err := s.writer.WriteVector(ctx, s.def.columnTarget(), id, v); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			s.logger.Debug("record vanished before its vector was written", "type", s.def.Type, "id", id)
			return nil
		}
		return fmt.Errorf("sync %s %q: write vector: %w", s.def.Type, id, err)
	}
	return nil
}

// Register subscribes Sync to the after-commit event.
func (s *Synchronizer[R]) Register(hooks *Hooks[R]) error {
	return hooks.Subscribe(EventAfterCommit, s.Sync)
}

func compute[R any](ctx context.Context, compiler Compiler, def Definition[R], rec R) (Vector, error) {
	parts, err := Extract(rec, def.Against, def.Accessors)
	if err != nil {
		return EmptyVector, err
	}
	if len(parts) == 0 {
		return EmptyVector, nil
	}

	v, err := compiler.Compile(ctx, def.Language, parts)
	if err != nil {
		return EmptyVector, fmt.Errorf("compile vector: %w", err)
	}
	return v, nil
}
