package v1_test

import (
	"net/http"

	v1 "github.com/spendlens/backend/internal/controllers/v1"
	"github.com/spendlens/backend/internal/models"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// importFile uploads a file from the testdata directory for the user
// authenticated with the headers.
func (suite *TestSuiteStandard) importFile(file string, headers map[string]string, expectedStatus int) v1.ImportResponse {
	body, fileHeaders := test.LoadTestFile(suite.T(), file)
	for k, v := range headers {
		fileHeaders[k] = v
	}

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, fileHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, expectedStatus)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestImport() {
	_, headers := suite.registerUser("jane@example.com")

	response := suite.importFile("statement.csv", headers, http.StatusCreated)

	assert.Equal(suite.T(), 4, response.TransactionCount)
	assert.Empty(suite.T(), response.Warnings)
	assert.Nil(suite.T(), response.Error)
	assert.NotZero(suite.T(), response.UploadID)

	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(4), count)
}

func (suite *TestSuiteStandard) TestImportTwiceSkipsDuplicates() {
	_, headers := suite.registerUser("jane@example.com")

	first := suite.importFile("statement.csv", headers, http.StatusCreated)
	second := suite.importFile("statement.csv", headers, http.StatusCreated)

	// The candidate count is reported for both runs, but no new
	// transactions are created by the second one
	assert.Equal(suite.T(), first.TransactionCount, second.TransactionCount)

	var transactionCount, uploadCount int64
	require.NoError(suite.T(), models.DB.Model(&models.Transaction{}).Count(&transactionCount).Error)
	require.NoError(suite.T(), models.DB.Model(&models.Upload{}).Count(&uploadCount).Error)
	assert.Equal(suite.T(), int64(4), transactionCount)
	assert.Equal(suite.T(), int64(2), uploadCount)
}

func (suite *TestSuiteStandard) TestImportWarnings() {
	_, headers := suite.registerUser("jane@example.com")

	response := suite.importFile("statement-mixed.csv", headers, http.StatusCreated)

	assert.Equal(suite.T(), 1, response.TransactionCount)
	assert.Len(suite.T(), response.Warnings, 2)
}

func (suite *TestSuiteStandard) TestImportNoValidRows() {
	_, headers := suite.registerUser("jane@example.com")

	response := suite.importFile("statement-invalid.csv", headers, http.StatusBadRequest)

	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "no valid transactions found in CSV", *response.Error)
	assert.Len(suite.T(), response.Warnings, 1)

	var uploadCount int64
	require.NoError(suite.T(), models.DB.Model(&models.Upload{}).Count(&uploadCount).Error)
	assert.Equal(suite.T(), int64(0), uploadCount)
}

func (suite *TestSuiteStandard) TestImportCreditColumn() {
	_, headers := suite.registerUser("jane@example.com")

	_ = suite.importFile("statement-credit.csv", headers, http.StatusCreated)

	var transaction models.Transaction
	require.NoError(suite.T(), models.DB.First(&transaction).Error)
	assert.Equal(suite.T(), models.TransactionTypeCredit, transaction.Type)
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	_, headers := suite.registerUser("jane@example.com")

	response := suite.importFile("statement.txt", headers, http.StatusBadRequest)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, ".csv")
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	_, headers := suite.registerUser("jane@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetUploads() {
	_, headers := suite.registerUser("jane@example.com")

	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/uploads", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UploadListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "statement.csv", response.Data[0].Filename)
	assert.Equal(suite.T(), 4, response.Data[0].TransactionCount)
}

// Uploads of other users are not part of the history.
func (suite *TestSuiteStandard) TestGetUploadsScoped() {
	_, headers := suite.registerUser("jane@example.com")
	_, otherHeaders := suite.registerUser("john@example.com")

	_ = suite.importFile("statement.csv", headers, http.StatusCreated)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/uploads", "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UploadListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Empty(suite.T(), response.Data)
}
