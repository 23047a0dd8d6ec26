package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babel.openfisca.ca/internal/maternity"
	"babel.openfisca.ca/internal/models"
)

func TestVariablesHandler(t *testing.T) {
	api := createTestApi(t)

	var body listEnvelope[models.Variable]
	resp := serveAndDecode(t, api, http.MethodGet, "/api/variables.json?key=TEST", "", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, body.Code)
	assert.False(t, body.Data.LimitExceeded)

	names := make([]string, 0, len(body.Data.List))
	for _, v := range body.Data.List {
		names = append(names, v.Name)
		assert.Equal(t, "person", v.Entity.Key)
		assert.Equal(t, "month", v.DefinitionPeriod)
		assert.Equal(t, "float", v.ValueType)
	}
	assert.Equal(t, []string{
		maternity.AverageIncome,
		maternity.EntitlementAmount,
		maternity.MaxWeeklyAmount,
		maternity.NumWeeks,
		maternity.Percentage,
	}, names)
}

func TestVariableHandler(t *testing.T) {
	api := createTestApi(t)

	t.Run("with json suffix", func(t *testing.T) {
		var body entryEnvelope[models.Variable]
		resp := serveAndDecode(t, api, http.MethodGet, "/api/variable/maternity_benefits__percentage.json?key=TEST", "", &body)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, maternity.Percentage, body.Data.Entry.Name)
		assert.Equal(t, 55.0, body.Data.Entry.DefaultValue)
		assert.True(t, body.Data.Entry.HasFormula)
	})

	t.Run("input variable", func(t *testing.T) {
		var body entryEnvelope[models.Variable]
		resp := serveAndDecode(t, api, http.MethodGet, "/api/variable/maternity_benefits__num_weeks?key=TEST", "", &body)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, 0.0, body.Data.Entry.DefaultValue)
		assert.False(t, body.Data.Entry.HasFormula)
	})

	t.Run("unknown variable", func(t *testing.T) {
		var body entryEnvelope[any]
		resp := serveAndDecode(t, api, http.MethodGet, "/api/variable/housing_benefit.json?key=TEST", "", &body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, http.StatusNotFound, body.Code)
	})

	t.Run("invalid name", func(t *testing.T) {
		var body fieldErrorsBody
		resp := serveAndDecode(t, api, http.MethodGet, "/api/variable/Income.json?key=TEST", "", &body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{"variable name contains invalid characters"}, body.FieldErrors["name"])
	})
}
