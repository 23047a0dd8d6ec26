package models

import "babel.openfisca.ca/internal/maternity"

// Entitlement is the maternity benefit calculation for one person and month
type Entitlement struct {
	Person                string  `json:"person"`
	Period                string  `json:"period"`
	AverageIncome         float64 `json:"averageIncome"`
	Percentage            float64 `json:"percentage"`
	MaxWeeklyAmount       float64 `json:"maxWeeklyAmount"`
	NumWeeks              float64 `json:"numWeeks"`
	PotentialWeeklyAmount float64 `json:"potentialWeeklyAmount"`
	WeeklyAmount          float64 `json:"weeklyAmount"`
	EntitlementAmount     float64 `json:"entitlementAmount"`
}

func NewEntitlement(person, period string, b maternity.Breakdown) Entitlement {
	return Entitlement{
		Person:                person,
		Period:                period,
		AverageIncome:         b.AverageIncome,
		Percentage:            b.Percentage,
		MaxWeeklyAmount:       b.MaxWeeklyAmount,
		NumWeeks:              b.NumWeeks,
		PotentialWeeklyAmount: b.PotentialWeekly,
		WeeklyAmount:          b.Weekly,
		EntitlementAmount:     b.EntitlementAmount,
	}
}
