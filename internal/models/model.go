package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base for all models in SpendLens.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"927fb2a0-8c3f-4d3a-9a27-7e6bb6a7d78a"` // UUID for the resource
	Timestamps
}

// Timestamps contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time       `json:"createdAt" example:"2024-01-05T09:12:44.491514Z"`                                             // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2024-01-17T20:14:01.048145Z"`                                             // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"deletedAt" gorm:"index" example:"2024-01-22T21:01:05.058161Z" swaggertype:"primitive,string"` // Time the resource was marked as deleted
}

// AfterFind normalizes the timestamps to the UTC location. They are
// stored in UTC, but the driver reads them back with a +0000 fixed zone,
// which breaks equality checks against times constructed with time.UTC.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}

// BeforeCreate generates the UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	m.ID = uuid.New()
	return nil
}

// Context is the type for keys the backend sets on request contexts.
type Context string

const (
	// ContextURL is the key for the base URL the API is reachable at.
	ContextURL Context = "spendlens-backend-url"

	// ContextUserID is the key for the ID of the authenticated user.
	ContextUserID Context = "spendlens-user-id"
)
