package models_test

import (
	"github.com/spendlens/backend/internal/models"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectSeedsCategories() {
	var categories []models.Category
	suite.Require().NoError(models.DB.Order("name ASC").Find(&categories).Error)

	suite.Require().Len(categories, 10)
	assert.Equal(suite.T(), "Bills & Payments", categories[0].Name)
	assert.Equal(suite.T(), "Utilities", categories[9].Name)
}

// Seeding is idempotent, connecting to an existing database does not
// duplicate the categories.
func (suite *TestSuiteStandard) TestConnectSeedIdempotent() {
	dsn := test.TmpFile(suite.T())

	suite.Require().NoError(models.Connect(dsn))
	suite.Require().NoError(models.Connect(dsn))

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(10), count)
}

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	assert.Error(suite.T(), models.Connect("/does/not/exist/db.sqlite"))

	// Reconnect so that the teardown has a connection to close
	suite.Require().NoError(models.Connect(test.TmpFile(suite.T())))
}

// Database errors that have no user friendly representation are
// replaced with a general error message.
func (suite *TestSuiteStandard) TestGeneralError() {
	suite.CloseDB()

	var categories []models.Category
	err := models.DB.Find(&categories).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	suite.Require().NoError(models.Connect(test.TmpFile(suite.T())))
}
