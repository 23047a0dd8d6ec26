package models

// PeriodValues maps a period string to a value. A nil value asks for the value to be calculated.
type PeriodValues map[string]*float64

// PersonSituation maps variable names to their values per period
type PersonSituation map[string]PeriodValues

// CalculationRequest is the body of a batch calculation.
// The response has the same shape with every requested value filled in.
type CalculationRequest struct {
	Persons map[string]PersonSituation `json:"persons"`
}

type CalculationResult struct {
	Persons map[string]PersonSituation `json:"persons"`
}
