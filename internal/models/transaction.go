package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"golang.org/x/exp/slices"
)

// TransactionType is the direction of a transaction: money leaving the
// user (debit) or entering (credit).
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// TransactionTypes are all valid transaction types.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeDebit, TransactionTypeCredit}
}

// Transaction represents a single bank transaction of a user.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	User        User
	Date        time.Time       // Calendar date of the transaction, stored as midnight UTC
	Description string          `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	Type        TransactionType
	CategoryID  *uuid.UUID // nil means the transaction is uncategorized
	Category    *Category
	Note        string
}

// AfterFind normalizes the date to the UTC location, like the
// timestamps of DefaultModel.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - truncates the date to midnight UTC since only the calendar date is relevant
//   - trims whitespace from string fields
//   - verifies the transaction invariants: amount > 0, valid type
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)
	t.Note = strings.TrimSpace(t.Note)

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !slices.Contains(TransactionTypes(), t.Type) {
		return ErrTransactionTypeInvalid
	}

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	}
	t.Date = DateOf(t.Date)

	return nil
}

// DateOf truncates a timestamp to its calendar date, midnight UTC.
func DateOf(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
