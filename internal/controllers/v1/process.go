package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dojo-ledger/backend/internal/calendar"
	"github.com/dojo-ledger/backend/internal/httputil"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/recurring"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// defaultOccurrences is the number of occurrences per item in the calendar feed.
const defaultOccurrences = 12

type DueQuery struct {
	AsOf types.Date `form:"asOf" swaggertype:"string" example:"2024-01-10"` // The date to check, defaults to today
}

type DueOccurrence struct {
	ID              string          `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`     // ID of the recurring item
	Kind            models.Kind     `json:"kind" example:"expense"`                                // Income or expense
	Description     string          `json:"description" example:"(Recurring) Rent"`                // Description the transaction will have
	Category        string          `json:"category" example:"Alquiler/Hipoteca del Local"`        // Category of the transaction
	Amount          decimal.Decimal `json:"amount" example:"1200.5"`                               // Amount of the transaction
	FormattedAmount string          `json:"formattedAmount" example:"1.200,50 €"`                  // Amount for display
	Occurrence      types.Date      `json:"occurrence" swaggertype:"string" example:"2024-01-05"` // Date of the transaction
	NextDue         types.Date      `json:"nextDue" swaggertype:"string" example:"2024-02-05"`    // Next due date after processing
	Link            string          `json:"link" example:"https://example.com/api/v1/recurring-items/65392deb-5e92-4268-b114-297faad6cdce"`
}

type DueResponse struct {
	Data  []DueOccurrence `json:"data"`                                 // Occurrences a run would generate
	AsOf  *types.Date     `json:"asOf" swaggertype:"string"`            // The date the preview was computed for
	Error *string         `json:"error" example:"invalid date format"` // The error, if any occurred
}

type ProcessRequest struct {
	AsOf  *types.Date `json:"asOf" swaggertype:"string" example:"2024-01-10"` // Process items due on or before this date, defaults to today
	Actor string      `json:"actor" example:"admin"`                          // Who triggered the run, recorded on every transaction
}

type ProcessResponse struct {
	Data    *recurring.Report `json:"data"`                                                      // The report of the run
	Summary string            `json:"summary" example:"Processed 2 recurring items as of 10/01/2024."` // Localized summary of the report
	Error   *string           `json:"error" example:"due items are already being processed"`     // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Items
// @Success		204
// @Router			/v1/recurring-items/due [options]
func (co Controller) OptionsDue(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Preview due items
// @Description	Returns the occurrences that processing as of the date would generate, without changing anything
// @Tags			Recurring Items
// @Produce		json
// @Success		200		{object}	DueResponse
// @Failure		400		{object}	DueResponse
// @Failure		500		{object}	DueResponse
// @Param			asOf	query		string	false	"Date in YYYY-MM-DD format, defaults to today"
// @Router			/v1/recurring-items/due [get]
func (co Controller) GetDue(c *gin.Context) {
	var query DueQuery
	if err := c.BindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DueResponse{
			Error: &s,
		})
		return
	}

	asOf := query.AsOf
	if asOf.IsZero() {
		asOf = co.clock.Today()
	}

	occurrences, err := co.processor.Preview(c.Request.Context(), asOf)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DueResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.ContextURL))
	data := make([]DueOccurrence, 0, len(occurrences))
	for _, o := range occurrences {
		data = append(data, DueOccurrence{
			ID:              o.Item.ID.String(),
			Kind:            o.Item.Kind,
			Description:     recurring.DescriptionPrefix + o.Item.Description,
			Category:        o.Item.Category,
			Amount:          o.Item.DefaultAmount,
			FormattedAmount: co.formatter.Format(o.Item.DefaultAmount),
			Occurrence:      o.Date,
			NextDue:         o.NextDue,
			Link:            fmt.Sprintf("%s/v1/recurring-items/%s", url, o.Item.ID),
		})
	}

	c.JSON(http.StatusOK, DueResponse{
		Data: data,
		AsOf: &asOf,
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Items
// @Success		204
// @Router			/v1/recurring-items/process [options]
func (co Controller) OptionsProcess(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Process due items
// @Description	Records a transaction for every active item due as of the date and advances its schedule.
// @Description	Items failing to process are part of the report and do not abort the run.
// @Tags			Recurring Items
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProcessResponse
// @Failure		400		{object}	ProcessResponse
// @Failure		409		{object}	ProcessResponse
// @Failure		500		{object}	ProcessResponse
// @Param			request	body		ProcessRequest	true	"Run parameters"
// @Router			/v1/recurring-items/process [post]
func (co Controller) Process(c *gin.Context) {
	var request ProcessRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProcessResponse{
			Error: &s,
		})
		return
	}

	actor := strings.TrimSpace(request.Actor)
	if actor == "" {
		s := errActorMissing.Error()
		c.JSON(http.StatusBadRequest, ProcessResponse{
			Error: &s,
		})
		return
	}

	asOf := co.clock.Today()
	if request.AsOf != nil && !request.AsOf.IsZero() {
		asOf = *request.AsOf
	}

	var report recurring.Report
	err = co.guard.Do(func() error {
		var err error
		report, err = co.processor.ProcessDue(c.Request.Context(), asOf, actor)
		return err
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProcessResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ProcessResponse{
		Data:    &report,
		Summary: co.printer.SummaryText(report),
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Items
// @Success		204
// @Router			/v1/recurring-items/calendar.ics [options]
func (co Controller) OptionsCalendar(c *gin.Context) {
	httputil.OptionsGet(c)
}

type CalendarQuery struct {
	Occurrences int `form:"occurrences" example:"12"` // Number of occurrences per item
}

// @Summary		Calendar feed
// @Description	Returns the upcoming occurrences of all active recurring items as iCalendar feed
// @Tags			Recurring Items
// @Produce		text/calendar
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			occurrences	query		int	false	"Number of occurrences per item, 1 to 100. Defaults to 12."
// @Router			/v1/recurring-items/calendar.ics [get]
func (co Controller) GetCalendar(c *gin.Context) {
	query := CalendarQuery{Occurrences: defaultOccurrences}
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	if query.Occurrences < 1 || query.Occurrences > 100 {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errOccurrencesInvalid.Error(),
		})
		return
	}

	active := true
	items, err := co.listAll(c, models.RecurringItemFilter{Active: &active})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data, err := calendar.Feed(items, query.Occurrences, time.Now(), co.formatter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, calendar.ContentType, data)
}
