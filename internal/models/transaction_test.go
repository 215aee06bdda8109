package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	user := suite.createTestUser("jane@example.com")

	transaction := models.Transaction{
		UserID:      user.ID,
		Date:        time.Date(2024, 1, 5, 14, 30, 12, 0, time.UTC),
		Description: "  Zomato order  ",
		Amount:      decimal.NewFromFloat(450),
		Type:        models.TransactionTypeDebit,
	}
	suite.Require().NoError(models.DB.Create(&transaction).Error)

	assert.Equal(suite.T(), "Zomato order", transaction.Description, "Description needs to be trimmed")
	assert.Equal(suite.T(), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), transaction.Date, "Date needs to be truncated to midnight UTC")
	assert.NotZero(suite.T(), transaction.ID)
}

func (suite *TestSuiteStandard) TestTransactionAmountNotPositive() {
	user := suite.createTestUser("jane@example.com")

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-1)} {
		transaction := models.Transaction{
			UserID:      user.ID,
			Date:        time.Now(),
			Description: "Test",
			Amount:      amount,
			Type:        models.TransactionTypeDebit,
		}

		err := models.DB.Create(&transaction).Error
		assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive, "amount %s must be rejected", amount)
	}
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	user := suite.createTestUser("jane@example.com")

	transaction := models.Transaction{
		UserID:      user.ID,
		Date:        time.Now(),
		Description: "Test",
		Amount:      decimal.NewFromFloat(10),
		Type:        "refund",
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

// A pointer to the nil UUID is stored as NULL so that "no category" has
// exactly one representation in the database.
func (suite *TestSuiteStandard) TestTransactionNilCategory() {
	user := suite.createTestUser("jane@example.com")

	nilID := uuid.Nil
	transaction := models.Transaction{
		UserID:      user.ID,
		Date:        time.Now(),
		Description: "Test",
		Amount:      decimal.NewFromFloat(10),
		Type:        models.TransactionTypeDebit,
		CategoryID:  &nilID,
	}
	suite.Require().NoError(models.DB.Create(&transaction).Error)

	assert.Nil(suite.T(), transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionZeroDate() {
	user := suite.createTestUser("jane@example.com")

	transaction := models.Transaction{
		UserID:      user.ID,
		Description: "Test",
		Amount:      decimal.NewFromFloat(10),
		Type:        models.TransactionTypeDebit,
	}
	suite.Require().NoError(models.DB.Create(&transaction).Error)

	assert.Equal(suite.T(), models.DateOf(time.Now()), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionAfterFindUTC() {
	user := suite.createTestUser("jane@example.com")

	transaction := models.Transaction{
		UserID:      user.ID,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Description: "Test",
		Amount:      decimal.NewFromFloat(10),
		Type:        models.TransactionTypeDebit,
	}
	suite.Require().NoError(models.DB.Create(&transaction).Error)

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, transaction.ID).Error)

	assert.Equal(suite.T(), time.UTC, reloaded.Date.Location())
	assert.Equal(suite.T(), time.UTC, reloaded.CreatedAt.Location())
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	var transaction models.Transaction
	err := models.DB.First(&transaction, uuid.New()).Error

	suite.Require().Error(err)
	assert.Equal(suite.T(), "there is no transaction matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDateOf() {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2024, 1, 5, 23, 59, 59, 0, time.UTC), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		// 01:30 IST on the 6th is still the 5th in UTC
		{time.Date(2024, 1, 6, 1, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.want, models.DateOf(tt.in))
	}
}
