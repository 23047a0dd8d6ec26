package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseOptionalFloatParam retrieves a float64 value from the URL query parameters.
// It returns nil when the key is absent, and records a field error when the value is not a number.
func ParseOptionalFloatParam(params url.Values, key string, fieldErrors map[string][]string) (*float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return nil, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return nil, fieldErrors
	}
	return &f, fieldErrors
}

// CheckFloatParam parses an optional float parameter and applies a validator to it
func CheckFloatParam(params url.Values, key string, validate func(float64) error, fieldErrors map[string][]string) (*float64, map[string][]string) {
	value, fieldErrors := ParseOptionalFloatParam(params, key, fieldErrors)
	if value == nil {
		return nil, fieldErrors
	}

	if err := validate(*value); err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
		return nil, fieldErrors
	}
	return value, fieldErrors
}
