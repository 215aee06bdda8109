package v1_test

import (
	"net/http"

	v1 "github.com/spendlens/backend/internal/controllers/v1"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetCategories() {
	_, headers := suite.registerUser("jane@example.com")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 10)

	// Ordered by name
	assert.Equal(suite.T(), "Bills & Payments", response.Data[0].Name)
	assert.Equal(suite.T(), "Utilities", response.Data[9].Name)
	assert.NotEmpty(suite.T(), response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestOptionsCategories() {
	_, headers := suite.registerUser("jane@example.com")

	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}
