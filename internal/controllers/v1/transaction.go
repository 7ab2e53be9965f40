package v1

import (
	"net/http"
	"strings"

	"github.com/dojo-ledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransactions)
	}
	{
		r.OPTIONS("/summary", co.OptionsSummary)
		r.GET("/summary", co.GetSummary)
	}
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.ledger.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Record transactions
// @Description	Records new transactions. Transactions cannot be changed or deleted afterwards.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		if strings.TrimSpace(editable.RecordedBy) == "" {
			status = r.appendError(errActorMissing, status)
			continue
		}

		transaction, err := co.ledger.Record(c.Request.Context(), editable.draft())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := co.newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			fromDate		query	string	false	"Transactions on or after this date"
// @Param			untilDate		query	string	false	"Transactions on or before this date"
// @Param			kind			query	string	false	"Filter by kind, income or expense"
// @Param			category		query	string	false	"Filter by category"
// @Param			recurringItem	query	string	false	"Filter by the recurring item the transactions were generated from"
// @Param			offset			query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of transactions to return. Defaults to 50."
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	where, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(httputil.GetURLFields(c.Request.URL, filter), "Limit") {
		limit = filter.Limit
	}
	where.Limit = limit

	transactions, total, err := co.ledger.List(c.Request.Context(), where)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, co.newTransaction(c, t))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	transaction, err := co.ledger.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	apiResource := co.newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{
		Data: &apiResource,
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns total income, total expense and the balance for a date range. Both ends of the range are optional.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	SummaryResponse
// @Failure		400			{object}	SummaryResponse
// @Failure		500			{object}	SummaryResponse
// @Param			fromDate	query		string	false	"Start of the range, inclusive"
// @Param			untilDate	query		string	false	"End of the range, inclusive"
// @Router			/v1/transactions/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	var query SummaryQuery
	if err := c.BindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	filter, err := TransactionQueryFilter{FromDate: query.FromDate, UntilDate: query.UntilDate}.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	totals, err := co.ledger.Summary(c.Request.Context(), filter.FromDate, filter.UntilDate)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Data: &Summary{
			FromDate:              filter.FromDate,
			UntilDate:             filter.UntilDate,
			Currency:              co.formatter.Currency(),
			TotalIncome:           totals.TotalIncome,
			TotalExpense:          totals.TotalExpense,
			Balance:               totals.Balance,
			FormattedTotalIncome:  co.formatter.Format(totals.TotalIncome),
			FormattedTotalExpense: co.formatter.Format(totals.TotalExpense),
			FormattedBalance:      co.formatter.Format(totals.Balance),
		},
	})
}
