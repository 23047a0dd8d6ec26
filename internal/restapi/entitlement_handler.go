package restapi

import (
	"net/http"

	"babel.openfisca.ca/internal/logging"
	"babel.openfisca.ca/internal/maternity"
	"babel.openfisca.ca/internal/models"
	"babel.openfisca.ca/internal/situation"
	"babel.openfisca.ca/internal/utils"
)

const defaultPerson = "person"

// entitlementParams maps query parameters to the variables they set, with their validators
var entitlementParams = []struct {
	param    string
	variable string
	validate func(float64) error
}{
	{"average_income", maternity.AverageIncome, utils.ValidateAmount},
	{"percentage", maternity.Percentage, utils.ValidatePercentage},
	{"max_weekly_amount", maternity.MaxWeeklyAmount, utils.ValidateAmount},
	{"num_weeks", maternity.NumWeeks, utils.ValidateWeeks},
}

// entitlementHandler computes the maternity benefit for one person and month from query parameters.
// Omitted parameters resolve to their formula or default value.
func (api *RestAPI) entitlementHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fieldErrors := make(map[string][]string)

	person := query.Get("person")
	if person == "" {
		person = defaultPerson
	}
	if err := utils.ValidateID(person); err != nil {
		fieldErrors["person"] = append(fieldErrors["person"], err.Error())
	}

	period, err := utils.ParseMonthParam(query.Get("period"), api.clock())
	if err != nil {
		fieldErrors["period"] = append(fieldErrors["period"], err.Error())
	}

	inputs := make(map[string]float64)
	for _, p := range entitlementParams {
		var value *float64
		value, fieldErrors = utils.CheckFloatParam(query, p.param, p.validate, fieldErrors)
		if value != nil {
			inputs[p.variable] = *value
		}
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	s := situation.New(api.Variables)
	for name, value := range inputs {
		if err := s.SetInput(person, name, period, value); err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
	}

	breakdown, err := maternity.Compute(person, period, s.For(person))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	logging.LogCalculation(logging.FromContext(r.Context()), person, maternity.EntitlementAmount, period.String(), breakdown.EntitlementAmount)

	api.sendResponse(w, r, models.NewEntryResponse(models.NewEntitlement(person, period.String(), breakdown)))
}
