package searchable

import (
	"fmt"
	"strings"
)

// Weight is the ranking tier of a text fragment, A being the strongest.
type Weight string

const (
	WeightA Weight = "A"
	WeightB Weight = "B"
	WeightC Weight = "C"
	WeightD Weight = "D"

	DefaultWeight = WeightA
)

func (w Weight) String() string {
	return string(w)
}

func (w Weight) IsValid() bool {
	switch w {
	case WeightA, WeightB, WeightC, WeightD:
		return true
	}
	return false
}

// ParseWeight accepts a weight label in either case. An empty label
// yields DefaultWeight.
func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultWeight, nil
	}

	w := Weight(strings.ToUpper(s))
	if !w.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	return w, nil
}
