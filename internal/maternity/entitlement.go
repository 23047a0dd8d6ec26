package maternity

import (
	"math"

	"babel.openfisca.ca/internal/periods"
	"babel.openfisca.ca/internal/variables"
)

// Breakdown holds the intermediate values of an entitlement calculation
type Breakdown struct {
	AverageIncome     float64
	Percentage        float64
	MaxWeeklyAmount   float64
	NumWeeks          float64
	PotentialWeekly   float64
	Weekly            float64
	EntitlementAmount float64
}

// ComputeEntitlement returns the monthly maternity benefit for a person.
// Lookup errors are returned unchanged.
func ComputeEntitlement(person string, period periods.Period, lookup variables.Lookup) (float64, error) {
	b, err := Compute(person, period, lookup)
	if err != nil {
		return 0, err
	}
	return b.EntitlementAmount, nil
}

// Compute is ComputeEntitlement with every intermediate value kept
func Compute(_ string, period periods.Period, lookup variables.Lookup) (Breakdown, error) {
	var b Breakdown
	var err error

	if b.AverageIncome, err = lookup.ValueOf(AverageIncome, period); err != nil {
		return Breakdown{}, err
	}
	if b.Percentage, err = lookup.ValueOf(Percentage, period); err != nil {
		return Breakdown{}, err
	}
	b.PotentialWeekly = b.AverageIncome * b.Percentage / 100

	if b.MaxWeeklyAmount, err = lookup.ValueOf(MaxWeeklyAmount, period); err != nil {
		return Breakdown{}, err
	}
	b.Weekly = math.Min(b.PotentialWeekly, b.MaxWeeklyAmount)

	if b.NumWeeks, err = lookup.ValueOf(NumWeeks, period); err != nil {
		return Breakdown{}, err
	}
	b.EntitlementAmount = b.Weekly * b.NumWeeks

	return b, nil
}
