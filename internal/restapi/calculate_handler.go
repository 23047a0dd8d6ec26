package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"

	"babel.openfisca.ca/internal/logging"
	"babel.openfisca.ca/internal/models"
	"babel.openfisca.ca/internal/periods"
	"babel.openfisca.ca/internal/situation"
	"babel.openfisca.ca/internal/utils"
	"babel.openfisca.ca/internal/variables"
)

// requestedValue is a variable the client asked to have calculated
type requestedValue struct {
	person   string
	variable string
	period   periods.Period
	raw      string
}

// calculateHandler evaluates a batch situation. Numbers in the body are inputs, nulls are
// filled in with calculated values.
func (api *RestAPI) calculateHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxCalculationBodyLen)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var request models.CalculationRequest
	if err := decoder.Decode(&request); err != nil {
		message := "request body must be a JSON situation"
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			message = fmt.Sprintf("request body too large (max %d bytes)", maxBytesErr.Limit)
		}
		api.validationErrorResponse(w, r, map[string][]string{"body": {message}})
		return
	}

	s, requested, fieldErrors := api.buildSituation(request)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	logger := logging.FromContext(r.Context())
	result := models.CalculationResult{Persons: request.Persons}
	overflows := make(map[string][]string)
	for _, req := range requested {
		if err := r.Context().Err(); err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}

		value, err := s.Calculate(req.person, req.variable, req.period)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		// JSON has no encoding for infinities, finite inputs can still overflow
		if math.IsInf(value, 0) || math.IsNaN(value) {
			field := strings.Join([]string{"persons", req.person, req.variable, req.raw}, ".")
			overflows[field] = append(overflows[field], "calculated value is not a finite number, check the input magnitudes")
			continue
		}
		logging.LogCalculation(logger, req.person, req.variable, req.raw, value)

		result.Persons[req.person][req.variable][req.raw] = &value
	}

	if len(overflows) > 0 {
		api.validationErrorResponse(w, r, overflows)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(result))
}

// buildSituation validates the request and loads its inputs. It returns the values to calculate
// in a stable order.
func (api *RestAPI) buildSituation(request models.CalculationRequest) (*situation.Situation, []requestedValue, map[string][]string) {
	fieldErrors := make(map[string][]string)

	if len(request.Persons) == 0 {
		fieldErrors["persons"] = append(fieldErrors["persons"], "at least one person is required")
		return nil, nil, fieldErrors
	}
	if len(request.Persons) > utils.MaxPersonsPerRequest {
		fieldErrors["persons"] = append(fieldErrors["persons"],
			fmt.Sprintf("too many persons (max %d)", utils.MaxPersonsPerRequest))
		return nil, nil, fieldErrors
	}

	s := situation.New(api.Variables)
	var requested []requestedValue

	for _, person := range sortedKeys(request.Persons) {
		field := "persons." + person
		if err := utils.ValidateID(person); err != nil {
			fieldErrors[field] = append(fieldErrors[field], err.Error())
			continue
		}
		s.AddPerson(person)

		for _, name := range sortedKeys(request.Persons[person]) {
			variableField := strings.Join([]string{"persons", person, name}, ".")

			v, err := api.Variables.Get(name)
			if err != nil {
				fieldErrors[variableField] = append(fieldErrors[variableField], "unknown variable")
				continue
			}

			for _, raw := range sortedKeys(request.Persons[person][name]) {
				periodField := variableField + "." + raw

				period, err := periods.Parse(raw)
				if err != nil {
					fieldErrors[periodField] = append(fieldErrors[periodField], "invalid period, use YYYY-MM or ETERNITY")
					continue
				}
				if err := v.CheckPeriod(period); err != nil {
					fieldErrors[periodField] = append(fieldErrors[periodField],
						fmt.Sprintf("variable is defined per %s", v.DefinitionPeriod))
					continue
				}

				value := request.Persons[person][name][raw]
				if value == nil {
					requested = append(requested, requestedValue{person: person, variable: name, period: period, raw: raw})
					continue
				}
				if err := s.SetInput(person, name, period, *value); err != nil {
					fieldErrors[periodField] = append(fieldErrors[periodField], errorText(err))
				}
			}
		}
	}

	return s, requested, fieldErrors
}

func errorText(err error) string {
	switch {
	case errors.Is(err, variables.ErrUnknownVariable):
		return "unknown variable"
	case errors.Is(err, variables.ErrPeriodMismatch):
		return "period does not match the variable definition period"
	default:
		return err.Error()
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
