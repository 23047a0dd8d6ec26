package restapi

import (
	"errors"
	"net/http"

	"babel.openfisca.ca/internal/models"
	"babel.openfisca.ca/internal/utils"
	"babel.openfisca.ca/internal/variables"
)

func (api *RestAPI) variablesHandler(w http.ResponseWriter, r *http.Request) {
	declared := api.Variables.List()

	list := make([]models.Variable, 0, len(declared))
	for _, v := range declared {
		list = append(list, models.NewVariable(v))
	}

	api.sendResponse(w, r, models.NewListResponse(list, false))
}

func (api *RestAPI) variableHandler(w http.ResponseWriter, r *http.Request) {
	name := utils.ExtractIDFromParams(r, "name")

	if err := utils.ValidateVariableName(name); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"name": {err.Error()},
		})
		return
	}

	v, err := api.Variables.Get(name)
	if errors.Is(err, variables.ErrUnknownVariable) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewVariable(v)))
}
