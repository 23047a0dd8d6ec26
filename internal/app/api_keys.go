package app

import (
	"crypto/subtle"
	"net/http"
)

// RequestHasInvalidAPIKey checks the "key" query parameter of a request
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return app.IsInvalidAPIKey(r.URL.Query().Get("key"))
}

// IsInvalidAPIKey reports whether key matches none of the configured keys.
// Every configured key is compared in constant time, so timing does not reveal a near match.
func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}

	matched := 0
	for _, validKey := range app.Config.ApiKeys {
		if validKey == "" {
			continue
		}
		matched |= subtle.ConstantTimeCompare([]byte(key), []byte(validKey))
	}

	return matched == 0
}
