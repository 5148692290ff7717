package searchable

import (
	"context"
	"errors"
	"fmt"

	"github.com/goto/salt/log"
)

// DocumentManager maintains the satellite document of each record of one
// type, deciding on every save whether it should be created, refreshed or
// removed.
type DocumentManager[R any] struct {
	def      Definition[R]
	compiler Compiler
	repo     DocumentRepository
	enabled  *Switch
	logger   log.Logger
}

type DocumentManagerOption[R any] func(*DocumentManager[R])

// WithSwitch makes Sync a no-op while sw is disabled.
func WithSwitch[R any](sw *Switch) DocumentManagerOption[R] {
	return func(m *DocumentManager[R]) {
		if sw != nil {
			m.enabled = sw
		}
	}
}

func WithDocumentManagerLogger[R any](logger log.Logger) DocumentManagerOption[R] {
	return func(m *DocumentManager[R]) {
		m.logger = logger
	}
}

func NewDocumentManager[R any](def Definition[R], compiler Compiler, repo DocumentRepository, opts ...DocumentManagerOption[R]) (*DocumentManager[R], error) {
	if compiler == nil || repo == nil {
		return nil, fmt.Errorf("new document manager: %w: compiler and repository are required", ErrInvalidDefinition)
	}
	def, err := def.Validate()
	if err != nil {
		return nil, fmt.Errorf("new document manager: %w", err)
	}

	m := &DocumentManager[R]{
		def:      def,
		compiler: compiler,
		repo:     repo,
		enabled:  NewSwitch(true),
		logger:   log.NewNoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Compute returns the current search vector of rec.
func (m *DocumentManager[R]) Compute(ctx context.Context, rec R) (Vector, error) {
	return compute(ctx, m.compiler, m.def, rec)
}

// Sync brings the document of rec in line with the existence predicates and
// returns the action taken.
func (m *DocumentManager[R]) Sync(ctx context.Context, rec R) (Action, error) {
	if !m.enabled.Enabled() {
		m.logger.Debug("multisearch disabled, skipping document sync", "type", m.def.Type)
		return ActionNoChange, nil
	}
	return m.sync(ctx, rec)
}

func (m *DocumentManager[R]) sync(ctx context.Context, rec R) (Action, error) {
	id := m.def.ID(rec)
	state := DocumentPresent
	existing, err := m.repo.Find(ctx, m.def.Type, id)
	if errors.Is(err, ErrDocumentNotFound) {
		state = DocumentAbsent
	} else if err != nil {
		return ActionNoChange, fmt.Errorf("sync %s %q: find document: %w", m.def.Type, id, err)
	}

	action, err := Decide(rec, m.def.Predicates, state)
	if err != nil {
		return ActionNoChange, fmt.Errorf("sync %s %q: %w", m.def.Type, id, err)
	}

	if err := m.apply(ctx, rec, id, action, existing); err != nil {
		return ActionNoChange, fmt.Errorf("sync %s %q: %s document: %w", m.def.Type, id, action, err)
	}
	return action, nil
}

func (m *DocumentManager[R]) apply(ctx context.Context, rec R, id string, action Action, existing Document) error {
	switch action {
	case ActionCreate:
		doc, err := m.Document(ctx, rec)
		if err != nil {
			return err
		}
		_, err = m.repo.Create(ctx, doc)
		return err

	case ActionUpdate:
		doc, err := m.Document(ctx, rec)
		if err != nil {
			return err
		}
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
		if err := m.repo.Update(ctx, doc); errors.Is(err, ErrDocumentNotFound) {
			m.logger.Debug("document removed before update", "type", m.def.Type, "id", id)
			return nil
		} else if err != nil {
			return err
		}
		return nil

	case ActionDestroy:
		return m.delete(ctx, id)
	}
	return nil
}

// Document builds the attributes of rec's document without persisting it.
func (m *DocumentManager[R]) Document(ctx context.Context, rec R) (Document, error) {
	doc := Document{
		SearchableType: m.def.Type,
		SearchableID:   m.def.ID(rec),
	}

	content, err := SearchableText(rec, m.def.Against, m.def.Accessors)
	if err != nil {
		return Document{}, err
	}
	doc.Content = content

	if len(m.def.AdditionalAttributes) > 0 {
		doc.Attributes = make(map[string]any, len(m.def.AdditionalAttributes))
		for name, fn := range m.def.AdditionalAttributes {
			v, err := fn(rec)
			if err != nil {
				return Document{}, FieldError{Field: name, Err: err}
			}
			doc.Attributes[name] = v
		}
	}

	if doc.Vector, err = m.Compute(ctx, rec); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Destroy removes the document of rec. It ignores the switch and the
// predicates: a deleted record never keeps its document.
func (m *DocumentManager[R]) Destroy(ctx context.Context, rec R) error {
	id := m.def.ID(rec)
	if err := m.delete(ctx, id); err != nil {
		return fmt.Errorf("destroy %s %q document: %w", m.def.Type, id, err)
	}
	return nil
}

func (m *DocumentManager[R]) delete(ctx context.Context, id string) error {
	err := m.repo.Delete(ctx, m.def.Type, id)
	if errors.Is(err, ErrDocumentNotFound) {
		return nil
	}
	return err
}

type RebuildStats struct {
	Deleted int64
	Actions map[Action]int
}

// Rebuild drops every document of the definition's type and syncs recs from
// scratch. It runs regardless of the switch.
func (m *DocumentManager[R]) Rebuild(ctx context.Context, recs []R) (RebuildStats, error) {
	stats := RebuildStats{Actions: make(map[Action]int)}

	deleted, err := m.Reset(ctx)
	if err != nil {
		return stats, err
	}
	stats.Deleted = deleted

	err = m.Reindex(ctx, recs, stats.Actions)
	return stats, err
}

// Reset deletes every document of the definition's type.
func (m *DocumentManager[R]) Reset(ctx context.Context) (int64, error) {
	deleted, err := m.repo.DeleteByType(ctx, m.def.Type)
	if err != nil {
		return 0, fmt.Errorf("reset %s documents: %w", m.def.Type, err)
	}
	return deleted, nil
}

// Reindex syncs recs in order regardless of the switch, counting actions
// into counts. It stops at the first failure.
func (m *DocumentManager[R]) Reindex(ctx context.Context, recs []R, counts map[Action]int) error {
	for _, rec := range recs {
		action, err := m.sync(ctx, rec)
		if err != nil {
			return fmt.Errorf("reindex %s: %w", m.def.Type, err)
		}
		if counts != nil {
			counts[action]++
		}
	}
	return nil
}

// Register subscribes Sync to after-save and Destroy to after-destroy.
func (m *DocumentManager[R]) Register(hooks *Hooks[R]) error {
	err := hooks.Subscribe(EventAfterSave, func(ctx context.Context, rec R) error {
		_, err := m.Sync(ctx, rec)
		return err
	})
	if err != nil {
		return err
	}
	return hooks.Subscribe(EventAfterDestroy, m.Destroy)
}

func (m *DocumentManager[R]) Type() string {
	return m.def.Type
}
