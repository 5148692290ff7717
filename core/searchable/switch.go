package searchable

import "sync/atomic"

// Switch gates satellite document synchronization. Operators turn it off
// around bulk imports.
type Switch struct {
	disabled atomic.Bool
}

func NewSwitch(enabled bool) *Switch {
	s := &Switch{}
	s.disabled.Store(!enabled)
	return s
}

func (s *Switch) Enabled() bool {
	if s == nil {
		return true
	}
	return !s.disabled.Load()
}

func (s *Switch) Enable()  { s.disabled.Store(false) }
func (s *Switch) Disable() { s.disabled.Store(true) }

// Without runs fn with synchronization disabled and restores the previous
// state afterwards.
func (s *Switch) Without(fn func() error) error {
	prev := s.disabled.Swap(true)
	defer s.disabled.Store(prev)

	return fn()
}
