package v1

import (
	"errors"
	"net/http"

	"github.com/spendlens/backend/internal/importer"
	"github.com/spendlens/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, importer.ErrPersistenceFailure) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errCredentialsInvalid = errors.New("the email or password is incorrect")
	errPasswordRequired   = errors.New("the password must not be empty")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
	errFileTooLarge    = errors.New("the file is too large, the maximum size is 10 MiB")
)

// Transaction errors
var (
	errTransactionTypeInvalid = errors.New("the specified transaction type is invalid")
)
