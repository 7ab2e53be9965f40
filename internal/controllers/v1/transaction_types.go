package v1

import (
	"fmt"

	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/types"
	ez_uuid "github.com/dojo-ledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable contains the fields of a transaction that are set when recording it.
// The recording actor is set with recordedBy.
type TransactionEditable struct {
	Kind          models.Kind `json:"kind" example:"income" enums:"income,expense"`               // Income or expense
	Date          types.Date  `json:"date" swaggertype:"string" example:"2024-01-10"`             // Date of the transaction
	Description   string      `json:"description" example:"Personal training, 10 sessions"`      // Description
	Category      string      `json:"category" example:"Servicios de Entrenamiento Personal"`     // Category
	Amount        Amount      `json:"amount" swaggertype:"string" example:"350,00"`               // Amount. Accepts "," and "." as decimal separator
	PaymentMethod string      `json:"paymentMethod" example:"card"`                               // How the transaction was paid
	Reference     string      `json:"reference" example:"INV-2024-0012"`                          // External reference, e.g. an invoice number
	Notes         string      `json:"notes" example:"Paid in advance"`                            // Free text notes
	RecordedBy    string      `json:"recordedBy" example:"admin"`                                 // Who recorded the transaction
}

// draft returns the ledger draft for the API representation of the editable fields
func (editable TransactionEditable) draft() models.TransactionDraft {
	return models.TransactionDraft{
		Kind:          normalizeKind(editable.Kind),
		Date:          editable.Date,
		Description:   editable.Description,
		Category:      editable.Category,
		Amount:        editable.Amount.Decimal,
		PaymentMethod: editable.PaymentMethod,
		Reference:     editable.Reference,
		Notes:         editable.Notes,
		RecordedBy:    editable.RecordedBy,
	}
}

type TransactionLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/transactions/2a5b8c1e-06f5-4dd1-8a47-34fbb5e04bd1"`                   // The transaction itself
	RecurringItem string `json:"recurringItem,omitempty" example:"https://example.com/api/v1/recurring-items/65392deb-5e92-4268-b114-297faad6cdce"` // The recurring item the transaction was generated from
}

type Transaction struct {
	models.DefaultModel
	InternalID        string           `json:"internalId" example:"TRN-3F2A9C1B7D4E"` // Human readable ID
	Kind              models.Kind      `json:"kind" example:"income"`
	Date              types.Date       `json:"date" swaggertype:"string" example:"2024-01-10"`
	Description       string           `json:"description" example:"Personal training, 10 sessions"`
	Category          string           `json:"category" example:"Servicios de Entrenamiento Personal"`
	Amount            decimal.Decimal  `json:"amount" example:"350"`
	FormattedAmount   string           `json:"formattedAmount" example:"350,00 €"` // Amount formatted for display
	PaymentMethod     string           `json:"paymentMethod" example:"card"`
	Reference         string           `json:"reference" example:"INV-2024-0012"`
	Notes             string           `json:"notes" example:"Paid in advance"`
	RecordedBy        string           `json:"recordedBy" example:"admin"`
	SourceRecurringID *uuid.UUID       `json:"sourceRecurringId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the recurring item the transaction was generated from
	Links             TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func (co Controller) newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.ContextURL))

	t := Transaction{
		DefaultModel:      model.DefaultModel,
		InternalID:        model.InternalID,
		Kind:              model.Kind,
		Date:              model.Date,
		Description:       model.Description,
		Category:          model.Category,
		Amount:            model.Amount,
		FormattedAmount:   co.formatter.Format(model.Amount),
		PaymentMethod:     model.PaymentMethod,
		Reference:         model.Reference,
		Notes:             model.Notes,
		RecordedBy:        model.RecordedBy,
		SourceRecurringID: model.SourceRecurringID,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	if model.SourceRecurringID != nil {
		t.Links.RecurringItem = fmt.Sprintf("%s/v1/recurring-items/%s", url, *model.SourceRecurringID)
	}

	return t
}

type TransactionQueryFilter struct {
	FromDate        types.Date   `form:"fromDate"`      // On or after this date
	UntilDate       types.Date   `form:"untilDate"`     // On or before this date
	Kind            string       `form:"kind"`          // "income" or "expense"
	Category        string       `form:"category"`      // Category contains this string
	RecurringItemID ez_uuid.UUID `form:"recurringItem"` // ID of the recurring item the transactions were generated from
	Offset          uint         `form:"offset"`        // The offset of the first transaction returned. Defaults to 0.
	Limit           int          `form:"limit"`         // Maximum number of transactions to return. Defaults to 50.
}

// model returns the ledger filter for the query
func (f TransactionQueryFilter) model() (models.TransactionFilter, error) {
	filter := models.TransactionFilter{
		Category:          f.Category,
		SourceRecurringID: f.RecurringItemID.Pointer(),
		Offset:            int(f.Offset),
	}

	if !f.FromDate.IsZero() {
		from := f.FromDate
		filter.FromDate = &from
	}

	if !f.UntilDate.IsZero() {
		until := f.UntilDate
		filter.UntilDate = &until
	}

	if filter.FromDate != nil && filter.UntilDate != nil && filter.FromDate.After(*filter.UntilDate) {
		return models.TransactionFilter{}, errDateRangeInvalid
	}

	if f.Kind != "" {
		kind, err := models.ParseKind(f.Kind)
		if err != nil {
			return models.TransactionFilter{}, errKindInvalid
		}
		filter.Kind = kind
	}

	return filter, nil
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if recording was successful
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of recorded transactions
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	errStatus := status(err)
	if errStatus > currentStatus {
		return errStatus
	}

	return currentStatus
}

type SummaryQuery struct {
	FromDate  types.Date `form:"fromDate"`  // On or after this date
	UntilDate types.Date `form:"untilDate"` // On or before this date
}

type Summary struct {
	FromDate              *types.Date     `json:"fromDate" swaggertype:"string" example:"2024-01-01"` // Start of the range, if any
	UntilDate             *types.Date     `json:"untilDate" swaggertype:"string" example:"2024-01-31"` // End of the range, if any
	Currency              string          `json:"currency" example:"EUR"`                              // ISO 4217 code of the amounts
	TotalIncome           decimal.Decimal `json:"totalIncome" example:"4200"`
	TotalExpense          decimal.Decimal `json:"totalExpense" example:"3150.5"`
	Balance               decimal.Decimal `json:"balance" example:"1049.5"`
	FormattedTotalIncome  string          `json:"formattedTotalIncome" example:"4.200,00 €"`
	FormattedTotalExpense string          `json:"formattedTotalExpense" example:"3.150,50 €"`
	FormattedBalance      string          `json:"formattedBalance" example:"1.049,50 €"`
}

type SummaryResponse struct {
	Data  *Summary `json:"data"`                                                  // Totals for the range
	Error *string  `json:"error" example:"fromDate must not be after untilDate"` // The error, if any occurred
}
