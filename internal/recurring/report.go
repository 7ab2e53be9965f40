package recurring

import (
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report is the outcome of a processing run.
type Report struct {
	AsOf      types.Date    `json:"asOf" example:"2024-01-10"`
	Actor     string        `json:"actor" example:"admin"`
	Processed int           `json:"processed" example:"2"` // Items recorded in the ledger and advanced
	Generated []Generated   `json:"generated"`             // Details for the processed items
	Failed    []ItemFailure `json:"failed"`                // Items left unchanged
	Warnings  []ItemWarning `json:"warnings"`              // Items recorded in the ledger, but not advanced
}

// Generated describes a processed item.
type Generated struct {
	ID            uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Description   string          `json:"description" example:"Rent"`
	Occurrence    types.Date      `json:"occurrence" example:"2024-01-05"`
	NextDue       types.Date      `json:"nextDue" example:"2024-02-05"`
	Amount        decimal.Decimal `json:"amount" example:"1200.5"`
	TransactionID string          `json:"transactionId" example:"EXP-3F2A9C1B7D4E"`
}

// ItemFailure is an item that was not processed.
type ItemFailure struct {
	ID          uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Description string    `json:"description" example:"Rent"`
	Reason      string    `json:"reason" example:"the transaction could not be recorded: invalid data: the amount must be larger than zero"`
}

// ItemWarning is an item whose transaction was recorded, but whose next due date
// could not be saved.
type ItemWarning struct {
	ID            uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Description   string    `json:"description" example:"Rent"`
	TransactionID string    `json:"transactionId" example:"EXP-3F2A9C1B7D4E"`
	Reason        string    `json:"reason" example:"the transaction was recorded, but the next due date could not be saved"`
}

// OK reports if every due item was processed completely.
func (r Report) OK() bool {
	return len(r.Failed) == 0 && len(r.Warnings) == 0
}

func (r *Report) fail(item models.RecurringItem, err error) {
	r.Failed = append(r.Failed, ItemFailure{
		ID:          item.ID,
		Description: item.Description,
		Reason:      err.Error(),
	})
}
