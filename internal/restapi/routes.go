package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/variables.json", validateAPIKey(api, api.variablesHandler))
	router.Handler(http.MethodGet, "/api/variable/:name", validateAPIKey(api, api.variableHandler))
	router.Handler(http.MethodGet, "/api/parameters.json", validateAPIKey(api, api.parametersHandler))
	router.Handler(http.MethodGet, "/api/maternity-benefits/entitlement.json", validateAPIKey(api, api.entitlementHandler))
	router.Handler(http.MethodPost, "/api/calculate.json", validateAPIKey(api, api.calculateHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}
