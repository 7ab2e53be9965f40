package v1

import (
	"net/http"

	"github.com/dojo-ledger/backend/internal/httputil"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterRecurringItemRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsRecurringItems)
		r.GET("", co.GetRecurringItems)
		r.POST("", co.CreateRecurringItems)
	}
	{
		r.OPTIONS("/due", co.OptionsDue)
		r.GET("/due", co.GetDue)
		r.OPTIONS("/process", co.OptionsProcess)
		r.POST("/process", co.Process)
		r.OPTIONS("/calendar.ics", co.OptionsCalendar)
		r.GET("/calendar.ics", co.GetCalendar)
	}
	{
		r.OPTIONS("/:id", co.OptionsRecurringItemDetail)
		r.GET("/:id", co.GetRecurringItem)
		r.PATCH("/:id", co.UpdateRecurringItem)
		r.DELETE("/:id", co.DeleteRecurringItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Items
// @Success		204
// @Router			/v1/recurring-items [options]
func (co Controller) OptionsRecurringItems(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-items/{id} [options]
func (co Controller) OptionsRecurringItemDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.store.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create recurring items
// @Description	Creates new recurring items. The next due date is the first occurrence after the start date.
// @Tags			Recurring Items
// @Produce		json
// @Success		201				{object}	RecurringItemCreateResponse
// @Failure		400				{object}	RecurringItemCreateResponse
// @Failure		500				{object}	RecurringItemCreateResponse
// @Param			recurringItems	body		[]RecurringItemEditable	true	"Recurring items"
// @Router			/v1/recurring-items [post]
func (co Controller) CreateRecurringItems(c *gin.Context) {
	var editables []RecurringItemEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringItemCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RecurringItemCreateResponse{}

	for _, editable := range editables {
		item, err := co.store.Create(c.Request.Context(), editable.draft())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newRecurringItem(c, item)
		r.Data = append(r.Data, RecurringItemResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get recurring items
// @Description	Returns a list of recurring items
// @Tags			Recurring Items
// @Produce		json
// @Success		200	{object}	RecurringItemListResponse
// @Failure		400	{object}	RecurringItemListResponse
// @Failure		500	{object}	RecurringItemListResponse
// @Router			/v1/recurring-items [get]
// @Param			kind		query	string	false	"Filter by kind, income or expense"
// @Param			frequency	query	string	false	"Filter by frequency"
// @Param			active		query	bool	false	"Is the item active?"
// @Param			category	query	string	false	"Filter by category"
// @Param			search		query	string	false	"Search for this text in description and notes"
// @Param			offset		query	uint	false	"The offset of the first item returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of items to return. Defaults to 50."
func (co Controller) GetRecurringItems(c *gin.Context) {
	var filter RecurringItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RecurringItemListResponse{
			Error: &s,
		})
		return
	}

	setFields := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model(setFields)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringItemListResponse{
			Error: &s,
		})
		return
	}

	// Default to 50 items and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	where.Limit = limit

	items, total, err := co.store.List(c.Request.Context(), where)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringItemListResponse{
			Error: &s,
		})
		return
	}

	data := make([]RecurringItem, 0, len(items))
	for _, item := range items {
		data = append(data, newRecurringItem(c, item))
	}

	c.JSON(http.StatusOK, RecurringItemListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get recurring item
// @Description	Returns a specific recurring item with its next occurrences
// @Tags			Recurring Items
// @Produce		json
// @Success		200	{object}	RecurringItemResponse
// @Failure		400	{object}	RecurringItemResponse
// @Failure		404	{object}	RecurringItemResponse
// @Failure		500	{object}	RecurringItemResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/recurring-items/{id} [get]
func (co Controller) GetRecurringItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &s,
		})
		return
	}

	item, err := co.store.Get(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &s,
		})
		return
	}

	apiResource := newRecurringItem(c, item)
	c.JSON(http.StatusOK, RecurringItemResponse{
		Data: &apiResource,
	})
}

// @Summary		Update recurring item
// @Description	Updates an existing recurring item. Only values to be updated need to be specified.
// @Description	Changing the frequency, the day of month, the day of week or the start date recomputes
// @Description	the next due date from the start date, unless nextDueDate is sent explicitly.
// @Description	Occurrences already recorded in the ledger are not generated again.
// @Tags			Recurring Items
// @Accept			json
// @Produce		json
// @Success		200				{object}	RecurringItemResponse
// @Failure		400				{object}	RecurringItemResponse
// @Failure		404				{object}	RecurringItemResponse
// @Failure		500				{object}	RecurringItemResponse
// @Param			id				path		URIID				true	"ID formatted as string"
// @Param			recurringItem	body		RecurringItemPatch	true	"Recurring item"
// @Router			/v1/recurring-items/{id} [patch]
func (co Controller) UpdateRecurringItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &s,
		})
		return
	}

	fields, err := httputil.GetBodyFields(c, RecurringItemPatch{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &s,
		})
		return
	}

	var patch RecurringItemPatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &s,
		})
		return
	}

	item, err := co.store.Update(c.Request.Context(), uri.ID.UUID, patch.update(fields))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringItemResponse{
			Error: &s,
		})
		return
	}

	apiResource := newRecurringItem(c, item)
	c.JSON(http.StatusOK, RecurringItemResponse{
		Data: &apiResource,
	})
}

// @Summary		Delete recurring item
// @Description	Deletes a recurring item. Transactions generated from it are kept.
// @Tags			Recurring Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/recurring-items/{id} [delete]
func (co Controller) DeleteRecurringItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.store.Delete(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// listAll returns all items matching the filter, ignoring pagination.
func (co Controller) listAll(c *gin.Context, filter models.RecurringItemFilter) ([]models.RecurringItem, error) {
	filter.Offset = 0
	filter.Limit = 0

	items, _, err := co.store.List(c.Request.Context(), filter)
	return items, err
}
