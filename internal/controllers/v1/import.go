package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendlens/backend/internal/categorizer"
	"github.com/spendlens/backend/internal/httputil"
	"github.com/spendlens/backend/internal/importer"
	"github.com/spendlens/backend/internal/models"
	ez_uuid "github.com/spendlens/backend/internal/uuid"
)

// maxImportSize is the upper bound for uploaded statement files.
const maxImportSize = 10 << 20

// defaultCategorizer holds the built-in keyword rules. It is stateless
// and safe for concurrent use.
var defaultCategorizer = categorizer.New(categorizer.DefaultRules())

// RegisterImportRoutes registers the routes for imports with the
// RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", CreateImport)
}

type ImportResponse struct {
	UploadID         ez_uuid.UUID `json:"uploadId"`                   // ID of the created upload record
	TransactionCount int          `json:"transactionCount"`           // Number of rows that were candidates for insertion
	Warnings         []string     `json:"warnings,omitempty"`         // Per-row issues that did not abort the import
	Error            *string      `json:"error,omitempty"`            // The error, if any occurred
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, string, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, "", errNoFilePost
	}

	if err != nil {
		return nil, "", err
	}

	if formFile.Size > maxImportSize {
		return nil, "", errFileTooLarge
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, "", fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, "", err
	}

	return f, formFile.Filename, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import bank statement
// @Description	Parses a CSV bank statement and creates the transactions it contains. Duplicates are skipped.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"The CSV file to import"
// @Router			/v1/import [post]
func CreateImport(c *gin.Context) {
	file, filename, err := getUploadedFile(c, ".csv")
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &e})
		return
	}
	defer file.Close()

	result, err := importer.Ingest(models.DB, userID(c), filename, file, defaultCategorizer)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Warnings: result.Warnings,
			Error:    &e,
		})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{
		UploadID:         ez_uuid.UUID{UUID: result.UploadID},
		TransactionCount: result.TransactionCount,
		Warnings:         result.Warnings,
	})
}
