package v1

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/internal/httputil"
	"github.com/spendlens/backend/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RegisterExportRoutes registers the routes for exports with the
// RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/csv", OptionsExportCSV)
	r.GET("/csv", GetExportCSV)

	r.OPTIONS("/pdf", OptionsExportPDF)
	r.GET("/pdf", GetExportPDF)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export/csv [options]
func OptionsExportCSV(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export/pdf [options]
func OptionsExportPDF(c *gin.Context) {
	httputil.OptionsGet(c)
}

// categoryName returns the display name for the category of a
// transaction. Uncategorized transactions export as "Uncategorized".
func categoryName(transaction models.Transaction) string {
	if transaction.Category != nil {
		return transaction.Category.Name
	}

	return "Uncategorized"
}

// @Summary		Export transactions as CSV
// @Description	Returns the transactions of the authenticated user as a CSV file
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/export/csv [get]
// @Param			startDate	query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			endDate		query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
// @Param			categoryId	query	string	false	"Filter by category ID"
func GetExportCSV(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var transactions []models.Transaction
	err := filtered(userID(c), filter).
		Preload("Category").
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=expenses-%d.csv", time.Now().UnixMilli()))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Date", "Description", "Amount", "Type", "Category"})

	for _, transaction := range transactions {
		_ = w.Write([]string{
			transaction.Date.Format("2006-01-02"),
			transaction.Description,
			transaction.Amount.String(),
			string(transaction.Type),
			categoryName(transaction),
		})
	}

	w.Flush()
}

// @Summary		Export expense report as PDF
// @Description	Returns a PDF report of the spending of the authenticated user. Only debits are part of the report.
// @Tags			Export
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/export/pdf [get]
// @Param			startDate	query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			endDate		query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
func GetExportPDF(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	// The report only covers spending
	filter.Type = models.TransactionTypeDebit

	var transactions []models.Transaction
	err := filtered(userID(c), filter).
		Preload("Category").
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// Spending by category, leaving out categories without any spending
	totals := make(map[string]decimal.Decimal)
	var names []string
	var total decimal.Decimal

	for _, transaction := range transactions {
		name := categoryName(transaction)
		if _, seen := totals[name]; !seen {
			names = append(names, name)
		}

		totals[name] = totals[name].Add(transaction.Amount)
		total = total.Add(transaction.Amount)
	}

	printer := message.NewPrinter(language.English)
	amount := func(d decimal.Decimal) string {
		return printer.Sprintf("%.2f", d.InexactFloat64())
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Expense Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	if !filter.StartDate.IsZero() || !filter.EndDate.IsZero() {
		from := "Beginning"
		if !filter.StartDate.IsZero() {
			from = filter.StartDate.Format("2006-01-02")
		}

		until := "Today"
		if !filter.EndDate.IsZero() {
			until = filter.EndDate.Format("2006-01-02")
		}

		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Period: %s to %s", from, until), "", 1, "C", false, 0, "")
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "BU", 16)
	pdf.CellFormat(0, 10, "Summary by Category", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 10)
	for _, name := range names {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", name, amount(totals[name])), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total Spending: %s", amount(total)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "BU", 16)
	pdf.CellFormat(0, 10, "Transaction Details", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 9)
	for _, transaction := range transactions {
		// Truncate on runes, slicing bytes could cut a multi-byte
		// character in half
		description := transaction.Description
		if runes := []rune(description); len(runes) > 40 {
			description = string(runes[:40])
		}

		line := fmt.Sprintf("%s | %s | %s | %s",
			transaction.Date.Format("2006-01-02"),
			description,
			amount(transaction.Amount),
			categoryName(transaction),
		)
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}

	if pdf.Err() {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=expense-report-%d.pdf", time.Now().UnixMilli()))
	c.Status(http.StatusOK)

	if err := pdf.Output(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}
}
