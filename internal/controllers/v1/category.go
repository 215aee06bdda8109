package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendlens/backend/internal/httputil"
	"github.com/spendlens/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	Name        string `json:"name" example:"Food & Dining"`
	Description string `json:"description" example:"Restaurants, groceries, food delivery"`
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`            // List of categories
	Error *string    `json:"error,omitempty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the list of spending categories, ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category
	err := models.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, Category{
			DefaultModel: category.DefaultModel,
			Name:         category.Name,
			Description:  category.Description,
		})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}
