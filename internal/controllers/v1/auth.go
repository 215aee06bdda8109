package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendlens/backend/internal/auth"
	"github.com/spendlens/backend/internal/httputil"
	"github.com/spendlens/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for registration and login
// with the RouterGroup that is passed. These routes do not require
// authentication.
func RegisterAuthRoutes(r *gin.RouterGroup, tokens *auth.Tokens) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register(tokens))

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login(tokens))
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
	Name     string `json:"name" example:"Jane"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// UserObject is the API representation of a user.
type UserObject struct {
	models.DefaultModel
	Email string `json:"email" example:"jane@example.com"`
	Name  string `json:"name" example:"Jane"`
}

type AuthResponse struct {
	Token string     `json:"token"` // Bearer token for the Authorization header
	User  UserObject `json:"user"`
}

func newUserObject(user models.User) UserObject {
	return UserObject{
		DefaultModel: user.DefaultModel,
		Email:        user.Email,
		Name:         user.Name,
	}
}

// @Summary		Register
// @Description	Registers a new user and returns a token for it
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	AuthResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/auth/register [post]
func Register(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request RegisterRequest
		if err := httputil.BindData(c, &request); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}

		if request.Password == "" {
			c.JSON(http.StatusBadRequest, httpError{Error: errPasswordRequired.Error()})
			return
		}

		hash, err := auth.HashPassword(request.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}

		user := models.User{
			Email:        request.Email,
			Name:         request.Name,
			PasswordHash: hash,
		}

		if err := models.DB.Create(&user).Error; err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		token, err := tokens.Generate(user.ID, user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{Token: token, User: newUserObject(user)})
	}
}

// @Summary		Login
// @Description	Verifies the credentials and returns a token for the user
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	AuthResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request LoginRequest
		if err := httputil.BindData(c, &request); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}

		var user models.User
		email := strings.ToLower(strings.TrimSpace(request.Email))
		err := models.DB.Where(&models.User{Email: email}).First(&user).Error
		if err != nil {
			// Do not leak whether the email exists
			c.JSON(http.StatusUnauthorized, httpError{Error: errCredentialsInvalid.Error()})
			return
		}

		if err := auth.VerifyPassword(user.PasswordHash, request.Password); err != nil {
			c.JSON(http.StatusUnauthorized, httpError{Error: errCredentialsInvalid.Error()})
			return
		}

		token, err := tokens.Generate(user.ID, user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{Token: token, User: newUserObject(user)})
	}
}
