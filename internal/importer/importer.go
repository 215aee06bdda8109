// Package importer runs the ingestion pipeline for uploaded bank
// statements: parse, normalize, categorize, deduplicate, persist.
package importer

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spendlens/backend/internal/categorizer"
	"github.com/spendlens/backend/internal/importer/parser/bankcsv"
	"github.com/spendlens/backend/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNoValidRows is returned when not a single row of the file
	// survives normalization. Nothing is persisted in that case.
	ErrNoValidRows = errors.New("no valid transactions found in CSV")

	// ErrPersistenceFailure is returned when the database transaction
	// wrapping the ingestion fails. All writes are rolled back.
	ErrPersistenceFailure = errors.New("the import could not be saved, no data has been changed")
)

// Result is returned for a successful ingestion.
type Result struct {
	UploadID uuid.UUID

	// TransactionCount is the number of rows that were candidates for
	// insertion. Duplicates that were skipped are included, so this can
	// be higher than the number of rows actually written.
	TransactionCount int

	Warnings []string
}

// Ingest parses a statement file and persists its transactions for the
// user.
//
// Row-level problems are collected as warnings and never abort the
// run. The upload record and all inserted transactions are written in
// one database transaction, so a failure leaves the store unchanged.
// Rows matching an existing transaction on (user, date, description,
// amount) are skipped silently.
func Ingest(db *gorm.DB, userID uuid.UUID, filename string, file io.Reader, c *categorizer.Categorizer) (Result, error) {
	rows, warnings, err := bankcsv.Parse(file)
	if err != nil {
		return Result{}, err
	}

	var transactions []bankcsv.Transaction
	for i, row := range rows {
		transaction, err := bankcsv.Normalize(row)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d skipped: %v", i+1, err))
			continue
		}

		transactions = append(transactions, transaction)
	}

	if len(transactions) == 0 {
		return Result{Warnings: warnings}, ErrNoValidRows
	}

	// One category snapshot per run, resolved by exact name. Names that
	// are not in the snapshot leave the transaction uncategorized.
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return Result{Warnings: warnings}, errors.Join(ErrPersistenceFailure, err)
	}

	categoryIDs := make(map[string]uuid.UUID, len(categories))
	for _, category := range categories {
		categoryIDs[category.Name] = category.ID
	}

	upload := models.Upload{
		UserID:           userID,
		Filename:         filename,
		TransactionCount: len(transactions),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&upload).Error; err != nil {
			return err
		}

		for _, transaction := range transactions {
			var count int64
			err := tx.Model(&models.Transaction{}).
				Where("user_id = ? AND date = ? AND description = ? AND amount = ?",
					userID, transaction.Date, transaction.Description, transaction.Amount).
				Count(&count).Error
			if err != nil {
				return err
			}

			if count > 0 {
				continue
			}

			var categoryID *uuid.UUID
			if name := c.Categorize(transaction.SourceDescription); name != "" {
				if id, ok := categoryIDs[name]; ok {
					categoryID = &id
				}
			}

			create := models.Transaction{
				UserID:      userID,
				Date:        transaction.Date,
				Description: transaction.Description,
				Amount:      transaction.Amount,
				Type:        transaction.Type,
				CategoryID:  categoryID,
			}

			if err := tx.Create(&create).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Result{Warnings: warnings}, errors.Join(ErrPersistenceFailure, err)
	}

	return Result{
		UploadID:         upload.ID,
		TransactionCount: len(transactions),
		Warnings:         warnings,
	}, nil
}
