package models_test

import (
	"github.com/spendlens/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := models.User{
		Email:        "  Jane@Example.COM ",
		Name:         " Jane ",
		PasswordHash: "not-a-real-hash",
	}
	suite.Require().NoError(models.DB.Create(&user).Error)

	assert.Equal(suite.T(), "jane@example.com", user.Email)
	assert.Equal(suite.T(), "Jane", user.Name)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser("jane@example.com")

	user := models.User{Email: "Jane@example.com", PasswordHash: "not-a-real-hash"}
	err := models.DB.Create(&user).Error

	assert.ErrorIs(suite.T(), err, models.ErrEmailNotUnique)
}

func (suite *TestSuiteStandard) TestUserNotFound() {
	var user models.User
	err := models.DB.Where("email = ?", "nobody@example.com").First(&user).Error

	suite.Require().Error(err)
	assert.Equal(suite.T(), "there is no user matching your query", err.Error())
}
