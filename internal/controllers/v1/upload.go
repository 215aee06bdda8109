package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendlens/backend/internal/httputil"
	"github.com/spendlens/backend/internal/models"
)

// RegisterUploadRoutes registers the routes for the import history with
// the RouterGroup that is passed.
func RegisterUploadRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsUploads)
	r.GET("", GetUploads)
}

// Upload is the API representation of an Upload.
type Upload struct {
	models.DefaultModel
	Filename         string `json:"filename" example:"statement-january.csv"` // Name of the imported file
	TransactionCount int    `json:"transactionCount" example:"38"`            // Number of rows that were candidates for insertion
}

type UploadListResponse struct {
	Data  []Upload `json:"data"`            // List of uploads, newest first
	Error *string  `json:"error,omitempty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/uploads [options]
func OptionsUploads(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get uploads
// @Description	Returns the import history of the authenticated user, newest first
// @Tags			Import
// @Produce		json
// @Success		200	{object}	UploadListResponse
// @Failure		500	{object}	UploadListResponse
// @Router			/v1/uploads [get]
func GetUploads(c *gin.Context) {
	var uploads []models.Upload
	err := models.DB.Where("user_id = ?", userID(c)).Order("created_at DESC").Find(&uploads).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UploadListResponse{Error: &e})
		return
	}

	data := make([]Upload, 0, len(uploads))
	for _, upload := range uploads {
		data = append(data, Upload{
			DefaultModel:     upload.DefaultModel,
			Filename:         upload.Filename,
			TransactionCount: upload.TransactionCount,
		})
	}

	c.JSON(http.StatusOK, UploadListResponse{Data: data})
}
