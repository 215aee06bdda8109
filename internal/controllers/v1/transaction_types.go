package v1

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/internal/models"
	ez_uuid "github.com/spendlens/backend/internal/uuid"
)

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	Date        time.Time              `json:"date" example:"2024-01-05T00:00:00Z"`   // Calendar date of the transaction
	Description string                 `json:"description" example:"Zomato order"`    // Description from the bank statement
	Amount      decimal.Decimal        `json:"amount" example:"450"`                  // The amount, always positive
	Type        models.TransactionType `json:"type" example:"debit"`                  // Whether money left (debit) or entered (credit) the account
	CategoryID  *ez_uuid.UUID          `json:"categoryId"`                            // ID of the category, null when uncategorized
	Category    *string                `json:"category" example:"Food & Dining"`      // Name of the category, null when uncategorized
	Note        string                 `json:"note" example:"Dinner with friends"`    // A note
}

func newTransaction(model models.Transaction) Transaction {
	t := Transaction{
		DefaultModel: model.DefaultModel,
		Date:         model.Date,
		Description:  model.Description,
		Amount:       model.Amount,
		Type:         model.Type,
		Note:         model.Note,
	}

	if model.CategoryID != nil {
		t.CategoryID = &ez_uuid.UUID{UUID: *model.CategoryID}
	}

	if model.Category != nil {
		t.Category = &model.Category.Name
	}

	return t
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`            // List of transactions
	Error      *string       `json:"error,omitempty"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`      // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`            // The transaction
	Error *string      `json:"error,omitempty"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	StartDate  time.Time              `form:"startDate" time_format:"2006-01-02" time_utc:"1"` // Transactions at and after this date
	EndDate    time.Time              `form:"endDate" time_format:"2006-01-02" time_utc:"1"`   // Transactions before and at this date
	CategoryID ez_uuid.UUID           `form:"categoryId"`                                      // Filter by category ID
	Type       models.TransactionType `form:"type"`                                            // Filter by transaction type
	Offset     uint                   `form:"offset"`                                          // The offset of the first transaction returned. Defaults to 0.
	Limit      int                    `form:"limit,default=100"`                               // Maximum number of transactions to return. Defaults to 100.
}

// CategoryUpdateRequest sets or clears the category of a transaction.
type CategoryUpdateRequest struct {
	CategoryID *ez_uuid.UUID `json:"categoryId"` // ID of the category, null to mark the transaction uncategorized
}

// CategorySummary is the spending aggregate for one category.
type CategorySummary struct {
	CategoryID       ez_uuid.UUID    `json:"categoryId"`                           // ID of the category
	CategoryName     string          `json:"categoryName" example:"Food & Dining"` // Name of the category
	TotalAmount      decimal.Decimal `json:"totalAmount" example:"1250.50"`        // Sum of all debits in this category
	TransactionCount int             `json:"transactionCount" example:"17"`        // Number of debits in this category
}

type SummaryResponse struct {
	Summary       []CategorySummary `json:"summary"`                            // Per-category spending, highest first
	TotalSpending decimal.Decimal   `json:"totalSpending" example:"3456.78"`    // Sum of all debits in the date range
	Error         *string           `json:"error,omitempty"`                    // The error, if any occurred
}
