package searchable

// Action is the outcome of the document existence policy.
type Action int

const (
	ActionNoChange Action = iota
	ActionCreate
	ActionUpdate
	ActionDestroy
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDestroy:
		return "destroy"
	default:
		return "no_change"
	}
}

type DocumentState int

const (
	DocumentAbsent DocumentState = iota
	DocumentPresent
	// DocumentDestroyed is a document already removed or being removed. It is
	// never mutated again. DocumentManager only sees Absent or Present; callers
	// of Decide that track deletions in flight supply this state themselves.
	DocumentDestroyed
)

// Predicate is a boolean condition evaluated against a record.
type Predicate[R any] func(R) (bool, error)

// Predicates gate the existence of a satellite document. Empty lists are
// vacuously satisfied.
type Predicates[R any] struct {
	// If must all hold for the document to exist.
	If []Predicate[R]
	// Unless must all be false for the document to exist.
	Unless []Predicate[R]
	// UpdateIf must all hold for an existing document to be refreshed.
	UpdateIf []Predicate[R]
}

// ShouldExist reports whether every If predicate holds and no Unless
// predicate does.
func (p Predicates[R]) ShouldExist(rec R) (bool, error) {
	ok, err := all(rec, "if", p.If, true)
	if err != nil || !ok {
		return false, err
	}
	return all(rec, "unless", p.Unless, false)
}

func (p Predicates[R]) ShouldUpdate(rec R) (bool, error) {
	return all(rec, "update_if", p.UpdateIf, true)
}

// Decide picks what should happen to the satellite document of rec given
// the current state of that document.
func Decide[R any](rec R, preds Predicates[R], state DocumentState) (Action, error) {
	if state == DocumentDestroyed {
		return ActionNoChange, nil
	}

	exist, err := preds.ShouldExist(rec)
	if err != nil {
		return ActionNoChange, err
	}

	switch {
	case !exist && state == DocumentPresent:
		return ActionDestroy, nil
	case !exist:
		return ActionNoChange, nil
	case state == DocumentAbsent:
		return ActionCreate, nil
	}

	update, err := preds.ShouldUpdate(rec)
	if err != nil {
		return ActionNoChange, err
	}
	if update {
		return ActionUpdate, nil
	}
	return ActionNoChange, nil
}

func all[R any](rec R, kind string, preds []Predicate[R], want bool) (bool, error) {
	for i, p := range preds {
		got, err := p(rec)
		if err != nil {
			return false, PredicateError{Kind: kind, Index: i, Err: err}
		}
		if got != want {
			return false, nil
		}
	}
	return true, nil
}
