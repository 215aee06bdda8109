package models

import (
	"github.com/google/uuid"
)

// Upload is the audit record for one ingested CSV file.
//
// It is created once per ingestion call and never mutated afterwards.
// TransactionCount is the number of rows that were candidates for
// insertion, before duplicate detection.
type Upload struct {
	DefaultModel
	UserID           uuid.UUID `gorm:"index"`
	User             User
	Filename         string
	TransactionCount int
}
