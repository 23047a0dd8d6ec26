package maternity

import (
	"fmt"

	"babel.openfisca.ca/internal/parameters"
	"babel.openfisca.ca/internal/periods"
	"babel.openfisca.ca/internal/variables"
)

const namespace = "maternity_benefits__"

const (
	AverageIncome     = namespace + "average_income"
	Percentage        = namespace + "percentage"
	MaxWeeklyAmount   = namespace + "max_weekly_amount"
	NumWeeks          = namespace + "num_weeks"
	EntitlementAmount = namespace + "entitlement_amount"
)

const (
	DefaultPercentage      = 55.0
	DefaultMaxWeeklyAmount = 595.00
)

const reference = "https://www.canada.ca/en/services/benefits/ei/ei-maternity-parental.html"

// Variables returns the declarations of the maternity benefit rule set.
// The percentage and cap formulas read the given parameter table.
func Variables(params parameters.Table) []variables.Variable {
	return []variables.Variable{
		monthly(AverageIncome, "Average monthly insurable earnings", 0, nil),
		monthly(Percentage, "Benefit rate applied to average earnings, in percent", DefaultPercentage,
			parameterFormula(params, parameters.MaternityPercentage)),
		monthly(MaxWeeklyAmount, "Maximum weekly benefit amount", DefaultMaxWeeklyAmount,
			parameterFormula(params, parameters.MaternityMaxWeeklyAmount)),
		monthly(NumWeeks, "Number of weeks of benefit paid in the month", 0, nil),
		monthly(EntitlementAmount, "Maternity benefit entitlement for the month", 0, entitlementFormula),
	}
}

// Register adds the maternity benefit variables to the registry
func Register(reg *variables.Registry, params parameters.Table) error {
	for _, v := range Variables(params) {
		if err := reg.Register(v); err != nil {
			return fmt.Errorf("registering maternity benefit variables: %w", err)
		}
	}
	return nil
}

func monthly(name, label string, defaultValue float64, formula variables.Formula) variables.Variable {
	return variables.Variable{
		Name:             name,
		Label:            label,
		Reference:        reference,
		ValueType:        variables.ValueTypeFloat,
		Entity:           variables.Person,
		DefinitionPeriod: periods.UnitMonth,
		DefaultValue:     defaultValue,
		Formula:          formula,
	}
}

// parameterFormula returns the parameter value in force for the period, whatever the person
func parameterFormula(params parameters.Table, name string) variables.Formula {
	return func(_ string, period periods.Period, _ variables.Lookup) (float64, error) {
		return params.Value(name, period)
	}
}

func entitlementFormula(person string, period periods.Period, lookup variables.Lookup) (float64, error) {
	return ComputeEntitlement(person, period, lookup)
}
