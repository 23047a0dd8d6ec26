package models

import "babel.openfisca.ca/internal/variables"

// Variable describes a declared variable to API clients
type Variable struct {
	Name             string           `json:"name"`
	Label            string           `json:"label"`
	Reference        string           `json:"reference,omitempty"`
	ValueType        string           `json:"valueType"`
	Entity           variables.Entity `json:"entity"`
	DefinitionPeriod string           `json:"definitionPeriod"`
	DefaultValue     float64          `json:"defaultValue"`
	HasFormula       bool             `json:"hasFormula"`
}

func NewVariable(v variables.Variable) Variable {
	return Variable{
		Name:             v.Name,
		Label:            v.Label,
		Reference:        v.Reference,
		ValueType:        string(v.ValueType),
		Entity:           v.Entity,
		DefinitionPeriod: string(v.DefinitionPeriod),
		DefaultValue:     v.DefaultValue,
		HasFormula:       !v.IsInput(),
	}
}
