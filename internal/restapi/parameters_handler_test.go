package restapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babel.openfisca.ca/internal/models"
	"babel.openfisca.ca/internal/parameters"
	"babel.openfisca.ca/internal/periods"
)

func TestParametersHandler(t *testing.T) {
	api := createTestApi(t)
	api.Parameters.Set(parameters.MaternityMaxWeeklyAmount, periods.Month(2025, time.January), 695)

	var body listEnvelope[models.Parameter]
	resp := serveAndDecode(t, api, http.MethodGet, "/api/parameters.json?key=TEST", "", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Data.List, 2)

	maxWeekly := body.Data.List[0]
	assert.Equal(t, parameters.MaternityMaxWeeklyAmount, maxWeekly.Name)
	require.Len(t, maxWeekly.Values, 2)
	assert.True(t, maxWeekly.Values[0].Start.IsEternity())
	assert.Equal(t, 595.0, maxWeekly.Values[0].Value)
	assert.Equal(t, "2025-01", maxWeekly.Values[1].Start.String())
	assert.Equal(t, 695.0, maxWeekly.Values[1].Value)

	percentage := body.Data.List[1]
	assert.Equal(t, parameters.MaternityPercentage, percentage.Name)
	require.Len(t, percentage.Values, 1)
	assert.Equal(t, 55.0, percentage.Values[0].Value)
}
