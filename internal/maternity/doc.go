// Package maternity declares the employment insurance maternity benefit variables
// and the formula computing a person's monthly entitlement.
//
// The entitlement for a person and month is
//
//	min(average_income * percentage / 100, max_weekly_amount) * num_weeks
//
// Every value is a pure function of same-period inputs. The benefit rate and weekly
// cap are read from a parameter table keyed by period, so historical rates can be
// added without touching the formula.
package maternity
