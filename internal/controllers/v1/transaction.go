package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/internal/httputil"
	"github.com/spendlens/backend/internal/models"
	ez_uuid "github.com/spendlens/backend/internal/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
	}

	// Spending summary
	{
		r.OPTIONS("/summary", OptionsTransactionSummary)
		r.GET("/summary", GetTransactionSummary)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.DELETE("/:id", DeleteTransaction)

		r.OPTIONS("/:id/category", OptionsTransactionCategory)
		r.PATCH("/:id/category", UpdateTransactionCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/summary [options]
func OptionsTransactionSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id}/category [options]
func OptionsTransactionCategory(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// filtered returns the transaction query for the user with all filters
// of the request applied.
func filtered(userID any, filter TransactionQueryFilter) *gorm.DB {
	q := models.DB.Model(&models.Transaction{}).Where("transactions.user_id = ?", userID)

	if !filter.StartDate.IsZero() {
		q = q.Where("transactions.date >= date(?)", models.DateOf(filter.StartDate))
	}

	if !filter.EndDate.IsZero() {
		// The end date is inclusive, so everything before the next day matches
		q = q.Where("transactions.date < date(?)", models.DateOf(filter.EndDate).AddDate(0, 0, 1))
	}

	if filter.CategoryID != ez_uuid.Nil {
		q = q.Where("transactions.category_id = ?", filter.CategoryID.UUID)
	}

	if filter.Type != "" {
		q = q.Where("transactions.type = ?", filter.Type)
	}

	return q
}

// @Summary		Get transactions
// @Description	Returns a list of transactions of the authenticated user
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			startDate	query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			endDate		query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
// @Param			categoryId	query	string	false	"Filter by category ID"
// @Param			type		query	string	false	"Filter by transaction type"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 100."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	if filter.Type != "" && !slices.Contains(models.TransactionTypes(), filter.Type) {
		e := errTransactionTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	q := filtered(userID(c), filter).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Offset(int(filter.Offset)).
		Limit(filter.Limit)

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	var count int64
	if err := q.Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// @Summary		Spending summary
// @Description	Returns the spending by category for the authenticated user. Only debits count as spending.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/transactions/summary [get]
// @Param			startDate	query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			endDate		query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
func GetTransactionSummary(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &e})
		return
	}

	// All categories are part of the summary, also those without any
	// spending. The join condition scopes the transactions, not the
	// where clause, so that empty categories survive the LEFT JOIN.
	join := "LEFT JOIN transactions ON transactions.category_id = categories.id AND transactions.user_id = ? AND transactions.type = ?"
	joinArgs := []any{userID(c), models.TransactionTypeDebit}

	if !filter.StartDate.IsZero() {
		join += " AND transactions.date >= date(?)"
		joinArgs = append(joinArgs, models.DateOf(filter.StartDate))
	}

	if !filter.EndDate.IsZero() {
		join += " AND transactions.date < date(?)"
		joinArgs = append(joinArgs, models.DateOf(filter.EndDate).AddDate(0, 0, 1))
	}

	var rows []struct {
		CategoryID       string
		CategoryName     string
		TotalAmount      decimal.Decimal
		TransactionCount int
	}

	err := models.DB.Table("categories").
		Select("categories.id AS category_id, categories.name AS category_name, COALESCE(SUM(transactions.amount), 0) AS total_amount, COUNT(transactions.id) AS transaction_count").
		Joins(join, joinArgs...).
		Group("categories.id, categories.name").
		Order("total_amount DESC").
		Scan(&rows).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	summary := make([]CategorySummary, 0, len(rows))
	for _, row := range rows {
		var id ez_uuid.UUID
		if err := id.UnmarshalParam(row.CategoryID); err != nil {
			e := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, SummaryResponse{Error: &e})
			return
		}

		summary = append(summary, CategorySummary{
			CategoryID:       id,
			CategoryName:     row.CategoryName,
			TotalAmount:      row.TotalAmount,
			TransactionCount: row.TransactionCount,
		})
	}

	var total decimal.Decimal
	err = filtered(userID(c), filter).
		Where("transactions.type = ?", models.TransactionTypeDebit).
		Select("COALESCE(SUM(transactions.amount), 0)").
		Scan(&total).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Summary:       summary,
		TotalSpending: total,
	})
}

// @Summary		Update category
// @Description	Sets or clears the category of a transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			update	body		CategoryUpdateRequest	true	"Category update"
// @Router			/v1/transactions/{id}/category [patch]
func UpdateTransactionCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	var update CategoryUpdateRequest
	if err := httputil.BindData(c, &update); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	var transaction models.Transaction
	err := models.DB.Where("id = ? AND user_id = ?", uri.ID.UUID, userID(c)).First(&transaction).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	var categoryID *string
	if update.CategoryID != nil && *update.CategoryID != ez_uuid.Nil {
		// The category has to exist
		var category models.Category
		err := models.DB.First(&category, "id = ?", update.CategoryID.UUID).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TransactionResponse{Error: &e})
			return
		}

		s := category.ID.String()
		categoryID = &s
	}

	err = models.DB.Model(&transaction).Update("category_id", categoryID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	// Reload into a fresh struct for the response. gorm does not zero
	// the stale CategoryID on the loaded struct when the column is NULL.
	var updated models.Transaction
	err = models.DB.Preload("Category").First(&updated, "id = ?", transaction.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(updated)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var transaction models.Transaction
	err := models.DB.Where("id = ? AND user_id = ?", uri.ID.UUID, userID(c)).First(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}
