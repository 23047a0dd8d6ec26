package restapi

import (
	"net/http"

	"babel.openfisca.ca/internal/models"
)

func (api *RestAPI) parametersHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(models.NewParameters(api.Parameters), false))
}
