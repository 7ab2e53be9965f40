package v1_test

import (
	"net/http"

	"github.com/dojo-ledger/backend/internal/config"
	v1 "github.com/dojo-ledger/backend/internal/controllers/v1"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/test"
)

func (suite *TestSuiteStandard) TestCategories() {
	income := len(config.DefaultIncomeCategories)
	expense := len(config.DefaultExpenseCategories)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", income + expense},
		{"Income", "kind=income", income},
		{"Expense", "kind=EXPENSE", expense},
		{"Match ignores case", "match=*SEGUROS*", 1},
		{"Match with kind", "kind=income&match=ingresos%20por%20cuotas*", 2},
		{"Match on other kind", "kind=income&match=*seguros*", 0},
		{"Exact match", "match=Alquiler/Hipoteca%20del%20Local", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "/v1/categories?"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().NotNil(response.Data)
			suite.Assert().Len(response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesOrder() {
	r := suite.request(http.MethodGet, "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotEmpty(response.Data)
	suite.Assert().Equal(models.KindIncome, response.Data[0].Kind, "income categories come first")
	suite.Assert().Equal(models.KindExpense, response.Data[len(response.Data)-1].Kind)
	suite.Assert().Equal("Alquiler de Taquillas Personales", response.Data[0].Name)

	r = suite.request(http.MethodGet, "/v1/categories?match=*seguros*", nil)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(v1.Category{Name: "Primas de Seguros del Negocio", Kind: models.KindExpense}, response.Data[0])
}

func (suite *TestSuiteStandard) TestCategoriesInvalidKind() {
	r := suite.request(http.MethodGet, "/v1/categories?kind=refund", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the kind parameter must be \"income\" or \"expense\"", *response.Error)
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	r := suite.request(http.MethodOptions, "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
