// Package v1 implements the handlers for API v1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendlens/backend/internal/models"
	ez_uuid "github.com/spendlens/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Total  int64 `json:"total"`  // The total number of records matching the filter
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum number of records returned
}

// userID returns the ID of the authenticated user. The auth middleware
// guarantees that it is set on all routes using these handlers.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(string(models.ContextUserID)).(uuid.UUID)
}
