package v1

import (
	"fmt"
	"strings"

	"github.com/dojo-ledger/backend/internal/httputil"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/schedule"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// upcomingCount is the number of upcoming occurrences included with an item.
const upcomingCount = 3

type RecurringItemEditable struct {
	Kind          models.Kind        `json:"kind" example:"expense" enums:"income,expense"`                                                                // Income or expense
	Description   string             `json:"description" example:"Rent"`                                                                                   // Description of the item
	Category      string             `json:"category" example:"Alquiler/Hipoteca del Local"`                                                               // Category of the generated transactions
	DefaultAmount Amount             `json:"defaultAmount" swaggertype:"string" example:"1200.50"`                                                         // Amount of the generated transactions. Accepts "," and "." as decimal separator
	Frequency     schedule.Frequency `json:"frequency" example:"monthly" enums:"daily,weekly,bi-weekly,monthly,quarterly,semi-annually,annually"`         // How often the item is due
	DayOfMonth    *int               `json:"dayOfMonth" example:"5" minimum:"1" maximum:"31"`                                                              // Day of the month for monthly and longer frequencies. Defaults to the day of the start date
	DayOfWeek     *int               `json:"dayOfWeek" example:"0" minimum:"0" maximum:"6"`                                                                // Day of the week for weekly frequencies, 0 is Monday. Defaults to the weekday of the start date
	StartDate     types.Date         `json:"startDate" swaggertype:"string" example:"2024-01-05"`                                                          // First day of the schedule
	EndDate       *types.Date        `json:"endDate" swaggertype:"string" example:"2025-12-31"`                                                            // Last day of the schedule, if any
	Active        *bool              `json:"active" example:"true" default:"true"`                                                                         // Inactive items are never processed
	AutoGenerate  bool               `json:"autoGenerate" example:"true" default:"false"`                                                                  // If the item is meant to be processed automatically
	Notes         string             `json:"notes" example:"Paid to the landlord by bank transfer"`                                                        // Free text notes
}

// draft returns the store draft for the API representation of the editable fields
func (editable RecurringItemEditable) draft() models.RecurringItemDraft {
	return models.RecurringItemDraft{
		Kind:          normalizeKind(editable.Kind),
		Description:   editable.Description,
		Category:      editable.Category,
		DefaultAmount: editable.DefaultAmount.Decimal,
		Frequency:     normalizeFrequency(editable.Frequency),
		DayOfMonth:    editable.DayOfMonth,
		DayOfWeek:     editable.DayOfWeek,
		StartDate:     editable.StartDate,
		EndDate:       editable.EndDate,
		Active:        editable.Active,
		AutoGenerate:  editable.AutoGenerate,
		Notes:         editable.Notes,
	}
}

func normalizeKind(k models.Kind) models.Kind {
	return models.Kind(strings.ToLower(strings.TrimSpace(string(k))))
}

// normalizeFrequency returns the canonical frequency. Unknown values are
// passed on unchanged so that validation reports them.
func normalizeFrequency(f schedule.Frequency) schedule.Frequency {
	parsed, err := schedule.ParseFrequency(string(f))
	if err != nil {
		return f
	}
	return parsed
}

// RecurringItemPatch contains the fields that can be updated. Fields not
// sent are left unchanged, dayOfMonth, dayOfWeek and endDate are removed
// when sent as null.
type RecurringItemPatch struct {
	Kind          *models.Kind        `json:"kind" example:"expense"`
	Description   *string             `json:"description" example:"Rent"`
	Category      *string             `json:"category" example:"Alquiler/Hipoteca del Local"`
	DefaultAmount *Amount             `json:"defaultAmount" swaggertype:"string" example:"1250"`
	Frequency     *schedule.Frequency `json:"frequency" example:"quarterly"`
	DayOfMonth    *int                `json:"dayOfMonth" example:"1"`
	DayOfWeek     *int                `json:"dayOfWeek" example:"4"`
	StartDate     *types.Date         `json:"startDate" swaggertype:"string" example:"2024-01-01"`
	EndDate       *types.Date         `json:"endDate" swaggertype:"string" example:"2025-12-31"`
	NextDueDate   *types.Date         `json:"nextDueDate" swaggertype:"string" example:"2024-03-01"` // Overrides the computed next due date
	Active        *bool               `json:"active" example:"false"`
	AutoGenerate  *bool               `json:"autoGenerate" example:"true"`
	Notes         *string             `json:"notes" example:"New contract from March"`
}

// update returns the store update for the patch
func (patch RecurringItemPatch) update(fields httputil.BodyFields) models.RecurringItemUpdate {
	u := models.RecurringItemUpdate{
		Description:     patch.Description,
		Category:        patch.Category,
		DayOfMonth:      patch.DayOfMonth,
		ClearDayOfMonth: fields.IsNull("DayOfMonth"),
		DayOfWeek:       patch.DayOfWeek,
		ClearDayOfWeek:  fields.IsNull("DayOfWeek"),
		StartDate:       patch.StartDate,
		EndDate:         patch.EndDate,
		ClearEndDate:    fields.IsNull("EndDate"),
		NextDueDate:     patch.NextDueDate,
		Active:          patch.Active,
		AutoGenerate:    patch.AutoGenerate,
		Notes:           patch.Notes,
	}

	if patch.Kind != nil {
		k := normalizeKind(*patch.Kind)
		u.Kind = &k
	}

	if patch.Frequency != nil {
		f := normalizeFrequency(*patch.Frequency)
		u.Frequency = &f
	}

	if patch.DefaultAmount != nil {
		d := patch.DefaultAmount.Decimal
		u.DefaultAmount = &d
	}

	return u
}

type RecurringItemLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/recurring-items/65392deb-5e92-4268-b114-297faad6cdce"`                       // The item itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?recurringItem=65392deb-5e92-4268-b114-297faad6cdce"` // Transactions generated from the item
}

type RecurringItem struct {
	models.DefaultModel
	Kind          models.Kind        `json:"kind" example:"expense"`
	Description   string             `json:"description" example:"Rent"`
	Category      string             `json:"category" example:"Alquiler/Hipoteca del Local"`
	DefaultAmount decimal.Decimal    `json:"defaultAmount" example:"1200.5"`
	Frequency     schedule.Frequency `json:"frequency" example:"monthly"`
	DayOfMonth    *int               `json:"dayOfMonth" example:"5"`
	DayOfWeek     *int               `json:"dayOfWeek" example:"0"`
	StartDate     types.Date         `json:"startDate" swaggertype:"string" example:"2024-01-05"`
	EndDate       *types.Date        `json:"endDate" swaggertype:"string" example:"2025-12-31"`
	NextDueDate   types.Date         `json:"nextDueDate" swaggertype:"string" example:"2024-02-05"` // The date of the next occurrence
	Active        bool               `json:"active" example:"true"`
	AutoGenerate  bool               `json:"autoGenerate" example:"false"`
	Notes         string             `json:"notes" example:"Paid to the landlord by bank transfer"`
	Upcoming      []types.Date       `json:"upcoming" swaggertype:"array,string" example:"2024-02-05,2024-03-05,2024-04-05"` // The next occurrences, starting with the next due date
	Links         RecurringItemLinks `json:"links"`
}

// newRecurringItem returns the API v1 representation of the resource
func newRecurringItem(c *gin.Context, model models.RecurringItem) RecurringItem {
	url := c.GetString(string(models.ContextURL))

	upcoming, err := model.Upcoming(upcomingCount)
	if err != nil {
		upcoming = []types.Date{}
	}

	return RecurringItem{
		DefaultModel:  model.DefaultModel,
		Kind:          model.Kind,
		Description:   model.Description,
		Category:      model.Category,
		DefaultAmount: model.DefaultAmount,
		Frequency:     model.Frequency,
		DayOfMonth:    model.DayOfMonth,
		DayOfWeek:     model.DayOfWeek,
		StartDate:     model.StartDate,
		EndDate:       model.EndDate,
		NextDueDate:   model.NextDueDate,
		Active:        model.Active,
		AutoGenerate:  model.AutoGenerate,
		Notes:         model.Notes,
		Upcoming:      upcoming,
		Links: RecurringItemLinks{
			Self:         fmt.Sprintf("%s/v1/recurring-items/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?recurringItem=%s", url, model.ID),
		},
	}
}

type RecurringItemQueryFilter struct {
	Kind      string `form:"kind"`      // Filter by kind, "income" or "expense"
	Frequency string `form:"frequency"` // Filter by frequency
	Active    bool   `form:"active"`    // Filter by active state
	Category  string `form:"category"`  // Filter by category, matches substrings
	Search    string `form:"search"`    // Search for this text in description and notes
	Offset    uint   `form:"offset"`    // The offset of the first item returned. Defaults to 0.
	Limit     int    `form:"limit"`     // Maximum number of items to return. Defaults to 50.
}

// model returns the store filter for the query
func (f RecurringItemQueryFilter) model(setFields []string) (models.RecurringItemFilter, error) {
	filter := models.RecurringItemFilter{
		Category: f.Category,
		Search:   f.Search,
		Offset:   int(f.Offset),
	}

	if f.Kind != "" {
		kind, err := models.ParseKind(f.Kind)
		if err != nil {
			return models.RecurringItemFilter{}, errKindInvalid
		}
		filter.Kind = kind
	}

	if f.Frequency != "" {
		frequency, err := schedule.ParseFrequency(f.Frequency)
		if err != nil {
			return models.RecurringItemFilter{}, err
		}
		filter.Frequency = frequency
	}

	if slices.Contains(setFields, "Active") {
		active := f.Active
		filter.Active = &active
	}

	return filter, nil
}

type RecurringItemResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this item
	Data  *RecurringItem `json:"data"`                                                          // The item data, if creation was successful
}

type RecurringItemListResponse struct {
	Data       []RecurringItem `json:"data"`                                                          // List of resources
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type RecurringItemCreateResponse struct {
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RecurringItemResponse `json:"data"`                                                          // List of created resources
}

// appendError appends the error for one item and returns the new overall status.
// The highest status of all items wins.
func (r *RecurringItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecurringItemResponse{Error: &s})

	errStatus := status(err)
	if errStatus > currentStatus {
		return errStatus
	}

	return currentStatus
}
