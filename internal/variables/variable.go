package variables

import (
	"errors"
	"fmt"

	"babel.openfisca.ca/internal/periods"
)

var (
	ErrUnknownVariable   = errors.New("unknown variable")
	ErrDuplicateVariable = errors.New("variable already registered")
	ErrInvalidVariable   = errors.New("invalid variable declaration")
	ErrPeriodMismatch    = errors.New("period does not match variable definition period")
)

// ValueType is the declared type of a variable's values. Only float values are supported.
type ValueType string

const ValueTypeFloat ValueType = "float"

// Entity is the kind of subject a variable is defined for
type Entity struct {
	Key    string `json:"key"`
	Plural string `json:"plural"`
	Label  string `json:"label"`
}

// Person is the only entity the maternity rules are defined on
var Person = Entity{Key: "person", Plural: "persons", Label: "An individual"}

// Lookup resolves the value of a variable for a single person.
// Unset inputs resolve to the variable's default value.
type Lookup interface {
	ValueOf(name string, period periods.Period) (float64, error)
}

// LookupFunc adapts a function to the Lookup interface
type LookupFunc func(name string, period periods.Period) (float64, error)

func (f LookupFunc) ValueOf(name string, period periods.Period) (float64, error) {
	return f(name, period)
}

// Formula computes a variable for one person and period from other variables
type Formula func(person string, period periods.Period, lookup Lookup) (float64, error)

// Variable declares a named value: what it applies to, over which period, and how it is derived.
// Variables without a formula are pure inputs.
type Variable struct {
	Name             string
	Label            string
	Reference        string
	ValueType        ValueType
	Entity           Entity
	DefinitionPeriod periods.Unit
	DefaultValue     float64
	Formula          Formula
}

// IsInput reports whether the variable can only be set, never computed
func (v Variable) IsInput() bool {
	return v.Formula == nil
}

// CheckPeriod verifies that the period has the variable's definition unit
func (v Variable) CheckPeriod(period periods.Period) error {
	if period.Unit() != v.DefinitionPeriod {
		return fmt.Errorf("%w: %s is defined per %s, got %s",
			ErrPeriodMismatch, v.Name, v.DefinitionPeriod, period)
	}
	return nil
}

func (v Variable) validate() error {
	if v.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidVariable)
	}
	if v.ValueType != ValueTypeFloat {
		return fmt.Errorf("%w: %s has unsupported value type %q", ErrInvalidVariable, v.Name, v.ValueType)
	}
	if v.Entity.Key == "" {
		return fmt.Errorf("%w: %s has no entity", ErrInvalidVariable, v.Name)
	}
	switch v.DefinitionPeriod {
	case periods.UnitMonth, periods.UnitEternity:
	default:
		return fmt.Errorf("%w: %s has unsupported definition period %q", ErrInvalidVariable, v.Name, v.DefinitionPeriod)
	}
	return nil
}
