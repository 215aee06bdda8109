package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/spendlens/backend/internal/router"
	"github.com/stretchr/testify/require"
)

// Request executes an HTTP request against a freshly configured router
// and returns the recorder holding the response.
//
// The body can be a string, a *bytes.Buffer (e.g. for multipart
// uploads) or any value that marshals to JSON. The base URL is taken
// from the API_URL environment variable.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	switch b := body.(type) {
	case string:
		buf = bytes.NewBufferString(b)
	case *bytes.Buffer:
		buf = b
	default:
		marshalled, err := json.Marshal(body)
		require.NoError(t, err, "request body could not be marshalled to JSON")
		buf = bytes.NewBuffer(marshalled)
	}

	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.NoError(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	require.NoError(t, err, "router could not be initialized")
	defer teardown()

	router.AttachRoutes(r.Group("/"))

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(method, reqURL, buf)
	require.NoError(t, err)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	t.Helper()

	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		require.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is one of the
// expected statuses.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	t.Helper()

	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
