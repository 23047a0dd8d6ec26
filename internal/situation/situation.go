package situation

import (
	"errors"
	"fmt"
	"sort"

	"babel.openfisca.ca/internal/periods"
	"babel.openfisca.ca/internal/variables"
)

// ErrCycle is returned when a formula depends on its own value
var ErrCycle = errors.New("circular variable definition")

type key struct {
	person string
	name   string
	period periods.Period
}

// Situation holds the known facts about a set of persons and resolves variables for them.
// A variable resolves to its explicit input when one is set, otherwise to its formula,
// otherwise to its default value. Computed values are memoised.
//
// A Situation is request scoped and not safe for concurrent use.
type Situation struct {
	registry *variables.Registry
	inputs   map[key]float64
	computed map[key]float64
	pending  map[key]bool
	persons  map[string]struct{}
}

func New(registry *variables.Registry) *Situation {
	return &Situation{
		registry: registry,
		inputs:   make(map[key]float64),
		computed: make(map[key]float64),
		pending:  make(map[key]bool),
		persons:  make(map[string]struct{}),
	}
}

// AddPerson declares a person with no inputs
func (s *Situation) AddPerson(person string) {
	s.persons[person] = struct{}{}
}

// Persons returns the declared person ids in sorted order
func (s *Situation) Persons() []string {
	ids := make([]string, 0, len(s.persons))
	for id := range s.persons {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetInput records an explicit value, which takes precedence over any formula.
func (s *Situation) SetInput(person, name string, period periods.Period, value float64) error {
	v, err := s.registry.Get(name)
	if err != nil {
		return err
	}
	if err := v.CheckPeriod(period); err != nil {
		return err
	}

	s.AddPerson(person)
	k := key{person: person, name: name, period: period}
	s.inputs[k] = value
	// inputs can change what dependent formulas produce
	clear(s.computed)
	return nil
}

// Calculate resolves a variable for a person and period
func (s *Situation) Calculate(person, name string, period periods.Period) (float64, error) {
	v, err := s.registry.Get(name)
	if err != nil {
		return 0, err
	}
	if err := v.CheckPeriod(period); err != nil {
		return 0, err
	}

	k := key{person: person, name: name, period: period}
	if value, ok := s.inputs[k]; ok {
		return value, nil
	}
	if value, ok := s.computed[k]; ok {
		return value, nil
	}
	if v.Formula == nil {
		return v.DefaultValue, nil
	}

	if s.pending[k] {
		return 0, fmt.Errorf("%w: %s for %s at %s", ErrCycle, name, person, period)
	}
	s.pending[k] = true
	defer delete(s.pending, k)

	value, err := v.Formula(person, period, s.For(person))
	if err != nil {
		return 0, fmt.Errorf("computing %s for %s at %s: %w", name, person, period, err)
	}
	s.computed[k] = value
	return value, nil
}

// For returns a lookup bound to one person
func (s *Situation) For(person string) variables.Lookup {
	return variables.LookupFunc(func(name string, period periods.Period) (float64, error) {
		return s.Calculate(person, name, period)
	})
}
