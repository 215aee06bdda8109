package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/spendlens/backend/internal/controllers/v1"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transactions returns the transaction list for the query string.
func (suite *TestSuiteStandard) transactions(query string, headers map[string]string) v1.TransactionListResponse {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions"+query, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

// categoryID returns the ID of the category with the name that is passed.
func (suite *TestSuiteStandard) categoryID(name string, headers map[string]string) string {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	for _, category := range response.Data {
		if category.Name == name {
			return category.ID.String()
		}
	}

	suite.Assert().FailNowf("Category does not exist", "No category with name %s", name)
	return ""
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	_, headers := suite.registerUser("jane@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	response := suite.transactions("", headers)

	require.Len(suite.T(), response.Data, 4)
	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), int64(4), response.Pagination.Total)
	assert.Equal(suite.T(), 100, response.Pagination.Limit)

	// Newest first
	assert.Equal(suite.T(), "NEFT JOHN DOE", response.Data[0].Description)

	// The categorizer has assigned categories during the import
	zomato := response.Data[3]
	assert.Equal(suite.T(), "Zomato order", zomato.Description)
	require.NotNil(suite.T(), zomato.Category)
	assert.Equal(suite.T(), "Food & Dining", *zomato.Category)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	_, headers := suite.registerUser("jane@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	tests := []struct {
		query string
		count int
	}{
		{"?type=debit", 4},
		{"?type=credit", 0},
		{"?startDate=2024-01-07", 2},
		{"?endDate=2024-01-06", 2},
		{"?startDate=2024-01-06&endDate=2024-01-07", 2},
		{"?limit=2", 2},
		{"?limit=2&offset=3", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			response := suite.transactions(tt.query, headers)
			assert.Len(t, response.Data, tt.count, "Wrong number of transactions for query %s", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsCategoryFilter() {
	_, headers := suite.registerUser("jane@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	id := suite.categoryID("Food & Dining", headers)
	response := suite.transactions("?categoryId="+id, headers)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidType() {
	_, headers := suite.registerUser("jane@example.com")

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?type=refund", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// Transactions of other users are never returned.
func (suite *TestSuiteStandard) TestGetTransactionsScoped() {
	_, headers := suite.registerUser("jane@example.com")
	_, otherHeaders := suite.registerUser("john@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	response := suite.transactions("", otherHeaders)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestGetTransactionSummary() {
	_, headers := suite.registerUser("jane@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/summary", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// All categories are part of the summary, also those without spending
	require.Len(suite.T(), response.Summary, 10)
	assert.True(suite.T(), response.TotalSpending.Equal(decimalFromString(suite.T(), "51700.50")), "total spending is %s", response.TotalSpending)

	// Highest spending first
	assert.Equal(suite.T(), "Other", response.Summary[0].CategoryName)
	assert.Equal(suite.T(), 2, response.Summary[0].TransactionCount)
	assert.Equal(suite.T(), "Food & Dining", response.Summary[1].CategoryName)
	assert.True(suite.T(), response.Summary[1].TotalAmount.Equal(decimalFromString(suite.T(), "700.50")))
}

func (suite *TestSuiteStandard) TestGetTransactionSummaryDateRange() {
	_, headers := suite.registerUser("jane@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/summary?startDate=2024-01-05&endDate=2024-01-05", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.TotalSpending.Equal(decimalFromString(suite.T(), "450")), "total spending is %s", response.TotalSpending)
}

func (suite *TestSuiteStandard) TestUpdateTransactionCategory() {
	_, headers := suite.registerUser("jane@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	transaction := suite.transactions("", headers).Data[0]
	travel := suite.categoryID("Travel", headers)

	recorder := test.Request(suite.T(), http.MethodPatch,
		fmt.Sprintf("http://example.com/v1/transactions/%s/category", transaction.ID),
		fmt.Sprintf(`{ "categoryId": "%s" }`, travel), headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	require.NotNil(suite.T(), response.Data.Category)
	assert.Equal(suite.T(), "Travel", *response.Data.Category)
}

func (suite *TestSuiteStandard) TestUpdateTransactionCategoryClear() {
	_, headers := suite.registerUser("jane@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	// Data[3] is the Zomato transaction, which has a category
	transaction := suite.transactions("", headers).Data[3]

	recorder := test.Request(suite.T(), http.MethodPatch,
		fmt.Sprintf("http://example.com/v1/transactions/%s/category", transaction.ID),
		`{ "categoryId": null }`, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Nil(suite.T(), response.Data.Category)
	assert.Nil(suite.T(), response.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestUpdateTransactionCategoryNotFound() {
	_, headers := suite.registerUser("jane@example.com")

	recorder := test.Request(suite.T(), http.MethodPatch,
		"http://example.com/v1/transactions/4e8c7862-1fb5-4f1c-a542-fcdb75dabb94/category",
		`{ "categoryId": null }`, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

// Updating a transaction of another user behaves as if it does not exist.
func (suite *TestSuiteStandard) TestUpdateTransactionCategoryScoped() {
	_, headers := suite.registerUser("jane@example.com")
	_, otherHeaders := suite.registerUser("john@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	transaction := suite.transactions("", headers).Data[0]

	recorder := test.Request(suite.T(), http.MethodPatch,
		fmt.Sprintf("http://example.com/v1/transactions/%s/category", transaction.ID),
		`{ "categoryId": null }`, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	_, headers := suite.registerUser("jane@example.com")
	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	transaction := suite.transactions("", headers).Data[0]

	recorder := test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Deleting again returns a 404
	recorder = test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	assert.Len(suite.T(), suite.transactions("", headers).Data, 3)
}

func (suite *TestSuiteStandard) TestDeleteTransactionInvalidID() {
	_, headers := suite.registerUser("jane@example.com")

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/transactions/not-a-uuid", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
