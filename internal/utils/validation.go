package utils

import (
	"errors"
	"math"
	"regexp"
	"time"

	"babel.openfisca.ca/internal/periods"
)

// Limits on request inputs
const (
	MaxAmount             = 1_000_000_000.0
	MaxPercentage         = 100.0
	MaxWeeks              = 52.0
	MaxPersonsPerRequest  = 100
	MaxCalculationBodyLen = 1 << 20
)

var (
	// Allow alphanumeric, underscore, hyphen, dot
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	validVariablePattern = regexp.MustCompile(`^[a-z][a-z0-9_.]*$`)
)

// ValidateID validates that a person ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateVariableName validates the shape of a variable name, not whether it exists
func ValidateVariableName(name string) error {
	if name == "" {
		return errors.New("variable name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("variable name too long (max 100 characters)")
	}

	if !validVariablePattern.MatchString(name) {
		return errors.New("variable name contains invalid characters")
	}

	return nil
}

// ValidateAmount validates monetary amounts
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errors.New("amount must be a finite number")
	}
	if amount < 0 {
		return errors.New("amount must be non-negative")
	}
	if amount > MaxAmount {
		return errors.New("amount too large (max 1000000000)")
	}
	return nil
}

// ValidatePercentage validates a rate expressed in percent
func ValidatePercentage(percentage float64) error {
	if math.IsNaN(percentage) || percentage < 0 || percentage > MaxPercentage {
		return errors.New("percentage must be between 0 and 100")
	}
	return nil
}

// ValidateWeeks validates a number of benefit weeks
func ValidateWeeks(weeks float64) error {
	if math.IsNaN(weeks) || weeks < 0 || weeks > MaxWeeks {
		return errors.New("weeks must be between 0 and 52")
	}
	return nil
}

// ParseMonthParam parses a YYYY-MM period. An empty value means the current month.
func ParseMonthParam(value string, now time.Time) (periods.Period, error) {
	if value == "" {
		return periods.MonthOf(now), nil
	}

	period, err := periods.Parse(value)
	if err != nil {
		return periods.Period{}, errors.New("invalid period format, use YYYY-MM")
	}
	if period.IsEternity() {
		return periods.Period{}, errors.New("period must be a month, use YYYY-MM")
	}
	return period, nil
}
