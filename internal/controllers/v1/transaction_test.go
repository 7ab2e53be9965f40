package v1_test

import (
	"fmt"
	"net/http"
	"strings"

	v1 "github.com/dojo-ledger/backend/internal/controllers/v1"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/dojo-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// training returns an income transaction on 2024-01-10.
func training() v1.TransactionEditable {
	return v1.TransactionEditable{
		Kind:        models.KindIncome,
		Date:        types.NewDate(2024, 1, 10),
		Description: "Personal training, 10 sessions",
		Category:    "Servicios de Entrenamiento Personal",
		Amount:      v1.Amount{Decimal: decimal.NewFromInt(350)},
		RecordedBy:  "admin",
	}
}

func (suite *TestSuiteStandard) createTestTransaction(editable v1.TransactionEditable, expectedStatus ...int) v1.Transaction {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(http.MethodPost, "/v1/transactions", []v1.TransactionEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if r.Code != http.StatusCreated {
		return v1.Transaction{}
	}

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	transaction := suite.createTestTransaction(training())

	suite.Assert().NotEqual(uuid.Nil, transaction.ID)
	suite.Assert().True(strings.HasPrefix(transaction.InternalID, "TRN-"), transaction.InternalID)
	suite.Assert().Len(transaction.InternalID, len("TRN-")+12)
	suite.Assert().Equal("admin", transaction.RecordedBy)
	suite.Assert().Nil(transaction.SourceRecurringID)
	suite.Assert().Empty(transaction.Links.RecurringItem)
	suite.Assert().Equal(fmt.Sprintf("%s/v1/transactions/%s", baseURL, transaction.ID), transaction.Links.Self)
	suite.Assert().Contains(transaction.FormattedAmount, "€")

	expense := training()
	expense.Kind = models.KindExpense
	expense.Description = "Cleaning"
	expense.Category = "Servicios de Limpieza Regulares"
	transaction = suite.createTestTransaction(expense)
	suite.Assert().True(strings.HasPrefix(transaction.InternalID, "EXP-"), transaction.InternalID)
}

func (suite *TestSuiteStandard) TestTransactionsCreateLocalizedAmount() {
	body := []map[string]any{
		{
			"kind":        "Expense",
			"date":        "2024-01-08",
			"description": "Insurance",
			"category":    "Primas de Seguros del Negocio",
			"amount":      "1.234,56 €",
			"recordedBy":  "admin",
		},
	}

	r := suite.request(http.MethodPost, "/v1/transactions", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	transaction := response.Data[0].Data
	suite.Require().NotNil(transaction)
	suite.Assert().Equal(models.KindExpense, transaction.Kind)
	suite.Assert().True(decimal.RequireFromString("1234.56").Equal(transaction.Amount), transaction.Amount.String())
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name   string
		modify func(*v1.TransactionEditable)
	}{
		{"Missing actor", func(e *v1.TransactionEditable) { e.RecordedBy = " " }},
		{"Zero amount", func(e *v1.TransactionEditable) { e.Amount = v1.Amount{Decimal: decimal.Zero} }},
		{"Negative amount", func(e *v1.TransactionEditable) { e.Amount = v1.Amount{Decimal: decimal.NewFromInt(-5)} }},
		{"Missing description", func(e *v1.TransactionEditable) { e.Description = "" }},
		{"Missing category", func(e *v1.TransactionEditable) { e.Category = "" }},
		{"Invalid kind", func(e *v1.TransactionEditable) { e.Kind = "refund" }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			editable := training()
			tt.modify(&editable)
			suite.createTestTransaction(editable, http.StatusBadRequest)
		})
	}

	r := suite.request(http.MethodGet, "/v1/transactions", nil)
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0, "no invalid transaction was recorded")
}

func (suite *TestSuiteStandard) TestTransactionsCreatePartialFailure() {
	broken := training()
	broken.RecordedBy = ""

	r := suite.request(http.MethodPost, "/v1/transactions", []v1.TransactionEditable{training(), broken})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().Nil(response.Data[1].Data)
	suite.Require().NotNil(response.Data[1].Error)
	suite.Assert().Equal("the actor must be set", *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestTransactionsCreateBrokenBody() {
	for _, body := range []string{"", `{"kind": "income"}`, `[{"amount": "lots"}]`} {
		suite.Run(body, func() {
			r := suite.request(http.MethodPost, "/v1/transactions", body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	item := suite.createTestRecurringItem(rent())

	suite.createTestTransaction(training())

	january := training()
	january.Date = types.NewDate(2024, 1, 2)
	january.Description = "Monthly fees"
	january.Category = "Ingresos por Cuotas Mensuales"
	suite.createTestTransaction(january)

	r := suite.request(http.MethodPost, "/v1/recurring-items/process", v1.ProcessRequest{Actor: "admin"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"From date", "fromDate=2024-01-05", 2},
		{"Until date", "untilDate=2024-01-05", 2},
		{"Single day", "fromDate=2024-01-05&untilDate=2024-01-05", 1},
		{"Income", "kind=income", 2},
		{"Expense", "kind=Expense", 1},
		{"Category", "category=Cuotas", 1},
		{"Recurring item", fmt.Sprintf("recurringItem=%s", item.ID), 1},
		{"Unknown recurring item", fmt.Sprintf("recurringItem=%s", uuid.New()), 0},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
		{"No limit", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "/v1/transactions?"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}

	// Newest first
	r = suite.request(http.MethodGet, "/v1/transactions", nil)
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal([]string{"2024-01-10", "2024-01-05", "2024-01-02"}, []string{
		response.Data[0].Date.String(),
		response.Data[1].Date.String(),
		response.Data[2].Date.String(),
	})
	suite.Assert().Equal(int64(3), response.Pagination.Total)
	suite.Assert().Equal(50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestTransactionsListInvalid() {
	for _, query := range []string{
		"fromDate=2024-02-01&untilDate=2024-01-01",
		"kind=refund",
		"fromDate=yesterday",
		"recurringItem=not-a-uuid",
	} {
		suite.Run(query, func() {
			r := suite.request(http.MethodGet, "/v1/transactions?"+query, nil)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var response v1.TransactionListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	transaction := suite.createTestTransaction(training())

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", transaction.ID.String(), http.StatusOK},
		{"Unknown", uuid.New().String(), http.StatusNotFound},
		{"Invalid", "TRN-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "/v1/transactions/"+tt.id, nil)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(suite.T(), &r, &response)

			if tt.status == http.StatusOK {
				suite.Require().NotNil(response.Data)
				suite.Assert().Equal(transaction.InternalID, response.Data.InternalID)
				return
			}
			suite.Assert().NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsSummary() {
	suite.createTestTransaction(training())

	fees := training()
	fees.Date = types.NewDate(2024, 2, 1)
	fees.Amount = v1.Amount{Decimal: decimal.RequireFromString("1000.50")}
	suite.createTestTransaction(fees)

	r := suite.request(http.MethodPost, "/v1/recurring-items/process", v1.ProcessRequest{Actor: "admin"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name    string
		query   string
		income  string
		expense string
		balance string
	}{
		{"All", "", "1350.5", "1200", "150.5"},
		{"January", "fromDate=2024-01-01&untilDate=2024-01-31", "350", "1200", "-850"},
		{"From February", "fromDate=2024-02-01", "1000.5", "0", "1000.5"},
		{"Empty range", "untilDate=2023-12-31", "0", "0", "0"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "/v1/transactions/summary?"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.SummaryResponse
			test.DecodeResponse(suite.T(), &r, &response)
			summary := response.Data
			suite.Require().NotNil(summary)

			suite.Assert().Equal("EUR", summary.Currency)
			suite.Assert().True(decimal.RequireFromString(tt.income).Equal(summary.TotalIncome), summary.TotalIncome.String())
			suite.Assert().True(decimal.RequireFromString(tt.expense).Equal(summary.TotalExpense), summary.TotalExpense.String())
			suite.Assert().True(decimal.RequireFromString(tt.balance).Equal(summary.Balance), summary.Balance.String())
			suite.Assert().Contains(summary.FormattedBalance, "€")
		})
	}

	r = suite.request(http.MethodGet, "/v1/transactions/summary?fromDate=2024-01-01", nil)
	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data.FromDate)
	suite.Assert().Equal("2024-01-01", response.Data.FromDate.String())
	suite.Assert().Nil(response.Data.UntilDate)
}

func (suite *TestSuiteStandard) TestTransactionsSummaryInvalid() {
	r := suite.request(http.MethodGet, "/v1/transactions/summary?fromDate=2024-02-01&untilDate=2024-01-01", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("fromDate must not be after untilDate", *response.Error)
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	transaction := suite.createTestTransaction(training())

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "/v1/transactions", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Summary", "/v1/transactions/summary", http.StatusNoContent, "OPTIONS, GET"},
		{"Detail", "/v1/transactions/" + transaction.ID.String(), http.StatusNoContent, "OPTIONS, GET"},
		{"Unknown", "/v1/transactions/" + uuid.New().String(), http.StatusNotFound, ""},
		{"Invalid", "/v1/transactions/nope", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodOptions, tt.path, nil)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)

			if tt.allow != "" {
				suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsImmutable() {
	transaction := suite.createTestTransaction(training())

	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		suite.Run(method, func() {
			r := suite.request(method, "/v1/transactions/"+transaction.ID.String(), nil)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
		})
	}
}
