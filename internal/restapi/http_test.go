package restapi

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babel.openfisca.ca/internal/app"
	"babel.openfisca.ca/internal/appconf"
	"babel.openfisca.ca/internal/logging"
	"babel.openfisca.ca/internal/parameters"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

// createTestApi creates a new RestAPI with the default parameter table and a fixed clock.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithParameters(t, parameters.Defaults())
}

func createTestApiWithParameters(t *testing.T, params *parameters.MemoryTable) *RestAPI {
	t.Helper()

	application, err := app.New(appconf.Config{
		Env:       appconf.Test,
		ApiKeys:   []string{"TEST"},
		RateLimit: 100,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), params)
	require.NoError(t, err)

	api := NewRestAPI(application)
	api.clock = func() time.Time { return testNow }
	t.Cleanup(api.Shutdown)

	return api
}

type entryEnvelope[T any] struct {
	Code int    `json:"code"`
	Text string `json:"text"`
	Data struct {
		Entry T `json:"entry"`
	} `json:"data"`
}

type listEnvelope[T any] struct {
	Code int `json:"code"`
	Data struct {
		List          []T  `json:"list"`
		LimitExceeded bool `json:"limitExceeded"`
	} `json:"data"`
}

type fieldErrorsBody struct {
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// serveAndDecode runs a request against the full handler chain and decodes the JSON body into out.
func serveAndDecode(t *testing.T, api *RestAPI, method, endpoint, body string, out any) *http.Response {
	t.Helper()

	server := httptest.NewServer(api.Handler())
	defer server.Close()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+endpoint, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestInvalidAPIKey(t *testing.T) {
	api := createTestApi(t)

	for _, endpoint := range []string{
		"/api/variables.json",
		"/api/variables.json?key=WRONG",
		"/api/variable/maternity_benefits__num_weeks.json",
		"/api/parameters.json",
		"/api/maternity-benefits/entitlement.json?period=2024-03",
	} {
		t.Run(endpoint, func(t *testing.T) {
			var body entryEnvelope[any]
			resp := serveAndDecode(t, api, http.MethodGet, endpoint, "", &body)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, http.StatusUnauthorized, body.Code)
			assert.Equal(t, "permission denied", body.Text)
		})
	}
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	api := createTestApi(t)

	var body entryEnvelope[any]
	resp := serveAndDecode(t, api, http.MethodGet, "/api/where/agencies.json?key=TEST", "", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", body.Text)
}

func TestHandlerChainSetsHeaders(t *testing.T) {
	api := createTestApi(t)

	resp := serveAndDecode(t, api, http.MethodGet, "/api/parameters.json?key=TEST", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestCompressionMiddleware(t *testing.T) {
	largeResponse := strings.Repeat(`{"test": "data"}`, 1000)
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(largeResponse))
	})

	t.Run("compresses response when gzip accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		recorder := httptest.NewRecorder()

		CompressionMiddleware(testHandler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))

		reader, err := gzip.NewReader(bytes.NewReader(recorder.Body.Bytes()))
		require.NoError(t, err)
		defer func() { _ = reader.Close() }()

		decompressed, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, largeResponse, string(decompressed))
		assert.Less(t, recorder.Body.Len(), len(largeResponse))
	})

	t.Run("does not compress when gzip not accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		recorder := httptest.NewRecorder()

		CompressionMiddleware(testHandler).ServeHTTP(recorder, req)

		assert.Empty(t, recorder.Header().Get("Content-Encoding"))
		assert.Equal(t, largeResponse, recorder.Body.String())
	})

	t.Run("handles empty responses", func(t *testing.T) {
		emptyHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		recorder := httptest.NewRecorder()

		CompressionMiddleware(emptyHandler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})
}

func TestCompressionConfig(t *testing.T) {
	config := DefaultCompressionConfig()
	assert.Equal(t, 1024, config.MinSize)
	assert.Equal(t, 6, config.Level)

	handler := NewCompressionMiddleware(CompressionConfig{MinSize: 2048, Level: 9})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"small":true}`))
		}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Empty(t, recorder.Header().Get("Content-Encoding"), "responses under MinSize stay uncompressed")
	assert.Equal(t, `{"small":true}`, recorder.Body.String())
}
