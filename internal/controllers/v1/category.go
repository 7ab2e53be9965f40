package v1

import (
	"net/http"
	"strings"

	"github.com/dojo-ledger/backend/internal/httputil"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategories)
	r.GET("", co.GetCategories)
}

type CategoryQueryFilter struct {
	Kind  string `form:"kind"`  // "income" or "expense". Both lists when not set
	Match string `form:"match"` // Only return categories matching this pattern. "*" matches any text, case is ignored
}

type Category struct {
	Name string      `json:"name" example:"Primas de Seguros del Negocio"` // Name of the category
	Kind models.Kind `json:"kind" example:"expense"`                       // The kind of transactions the category is for
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                                 // List of categories
	Error *string    `json:"error" example:"the kind parameter must be \"income\" or \"expense\""` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the configured categories, sorted by kind and name
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Param			kind	query		string	false	"Filter by kind, income or expense"
// @Param			match	query		string	false	"Pattern the name must match, e.g. *seguros*"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.BindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	kinds := []models.Kind{models.KindIncome, models.KindExpense}
	if filter.Kind != "" {
		kind, err := models.ParseKind(filter.Kind)
		if err != nil {
			s := errKindInvalid.Error()
			c.JSON(http.StatusBadRequest, CategoryListResponse{
				Error: &s,
			})
			return
		}
		kinds = []models.Kind{kind}
	}

	pattern := strings.ToLower(strings.TrimSpace(filter.Match))

	data := []Category{}
	for _, kind := range kinds {
		names := slices.Clone(co.config.Categories(string(kind)))
		slices.Sort(names)

		for _, name := range names {
			if pattern != "" && !glob.Glob(pattern, strings.ToLower(name)) {
				continue
			}
			data = append(data, Category{Name: name, Kind: kind})
		}
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
	})
}
