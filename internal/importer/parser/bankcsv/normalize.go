package bankcsv

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/internal/models"
)

// Column names that are probed, in order, to locate the relevant fields
// in a statement. The first name with a non-empty value wins, so a
// statement carrying both an empty "debit" and a filled "credit" column
// resolves to the credit value.
var (
	dateColumns        = []string{"date", "Date", "DATE", "transaction_date", "Transaction Date"}
	descriptionColumns = []string{"description", "Description", "DESCRIPTION", "narration", "Narration", "remarks"}
	amountColumns      = []string{"amount", "Amount", "AMOUNT", "debit", "Debit", "credit", "Credit", "balance", "Balance"}
	creditColumns      = []string{"credit", "Credit"}
)

// Layouts tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"01/02/06",
	"02-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

var (
	ErrMissingColumn = errors.New("missing date or amount column")
	ErrInvalidDate   = errors.New("the date could not be parsed")
	ErrInvalidAmount = errors.New("the amount is zero or not a number")
)

// Transaction is a single normalized statement row, ready for
// categorization and persistence.
type Transaction struct {
	Date        time.Time
	Description string

	// SourceDescription is the description exactly as it appears in the
	// file, without any cleanup. Categorization works on this value so
	// that a row without a description column stays uncategorized
	// instead of matching keyword rules against the "Unknown"
	// placeholder.
	SourceDescription string

	Amount decimal.Decimal
	Type   models.TransactionType
}

// Normalize converts a raw CSV row into a Transaction.
//
// The direction of the transaction is inferred heuristically:
//   - a positive amount in a row with a filled credit column is a credit
//   - a negative amount is a debit, stored as its absolute value
//   - everything else is a debit
//
// A positive amount without any credit or debit column therefore
// defaults to debit. This is a known ambiguity of bank exports that
// only carry an "amount" column, not something to fix here.
func Normalize(row Row) (Transaction, error) {
	dateValue, ok := probe(row, dateColumns)
	if !ok {
		return Transaction{}, ErrMissingColumn
	}

	amountValue, ok := probe(row, amountColumns)
	if !ok {
		return Transaction{}, ErrMissingColumn
	}

	date, err := parseDate(dateValue)
	if err != nil {
		return Transaction{}, err
	}

	amount, err := parseAmount(amountValue)
	if err != nil {
		return Transaction{}, err
	}

	source, _ := probe(row, descriptionColumns)
	description := strings.TrimSpace(source)
	if description == "" {
		description = "Unknown"
	}

	transactionType := models.TransactionTypeDebit
	if _, isCredit := probe(row, creditColumns); amount.IsPositive() && isCredit {
		transactionType = models.TransactionTypeCredit
	} else if amount.IsNegative() {
		amount = amount.Abs()
	}

	return Transaction{
		Date:              models.DateOf(date),
		Description:       description,
		SourceDescription: source,
		Amount:            amount,
		Type:              transactionType,
	}, nil
}

// probe returns the value of the first column from names that is
// present in the row with a non-empty value.
func probe(row Row, names []string) (string, bool) {
	for _, name := range names {
		if value := row[name]; value != "" {
			return value, true
		}
	}

	return "", false
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// parseAmount strips everything that is not a digit, a decimal point or
// a minus sign, so that currency symbols and thousands separators do
// not break parsing.
func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, value)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil || amount.IsZero() {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	return amount, nil
}
