package models

import "babel.openfisca.ca/internal/parameters"

// Parameter lists the dated values of one benefit parameter
type Parameter struct {
	Name   string             `json:"name"`
	Values []parameters.Entry `json:"values"`
}

func NewParameters(table *parameters.MemoryTable) []Parameter {
	names := table.Names()
	list := make([]Parameter, 0, len(names))
	for _, name := range names {
		list = append(list, Parameter{Name: name, Values: table.Entries(name)})
	}
	return list
}
