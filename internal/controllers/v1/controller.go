package v1

import (
	"net/http"

	"github.com/dojo-ledger/backend/internal/config"
	"github.com/dojo-ledger/backend/internal/httputil"
	"github.com/dojo-ledger/backend/internal/messages"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/money"
	"github.com/dojo-ledger/backend/internal/recurring"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller serves the v1 API.
type Controller struct {
	store     models.RecurringStore
	ledger    models.Ledger
	processor recurring.Processor
	guard     *recurring.Guard
	clock     recurring.Clock
	formatter money.Formatter
	printer   messages.Printer
	config    config.Config
}

// New returns a Controller working on the database.
func New(db *gorm.DB, cfg config.Config, clock recurring.Clock) (Controller, error) {
	formatter, err := money.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		return Controller{}, err
	}

	store := models.NewRecurringStore(db)
	ledger := models.NewLedger(db)

	return Controller{
		store:     store,
		ledger:    ledger,
		processor: recurring.NewProcessor(store, ledger),
		guard:     &recurring.Guard{},
		clock:     clock,
		formatter: formatter,
		printer:   messages.NewPrinter(cfg.Locale, formatter, cfg.DisplayDateFormat),
		config:    cfg,
	}, nil
}

// RegisterRoutes registers all v1 routes on the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterRecurringItemRoutes(r.Group("/recurring-items"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	RecurringItems string `json:"recurringItems" example:"https://example.com/api/v1/recurring-items"` // URL of recurring item list endpoint
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions"`      // URL of transaction list endpoint
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`          // URL of category list endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			RecurringItems: url + "/v1/recurring-items",
			Transactions:   url + "/v1/transactions",
			Categories:     url + "/v1/categories",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
