package v1_test

import (
	"fmt"
	"net/http"
	"strings"

	v1 "github.com/dojo-ledger/backend/internal/controllers/v1"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/schedule"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/dojo-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// rent returns a monthly expense that is due on 2024-01-05.
func rent() v1.RecurringItemEditable {
	return v1.RecurringItemEditable{
		Kind:          models.KindExpense,
		Description:   "Rent",
		Category:      "Alquiler/Hipoteca del Local",
		DefaultAmount: v1.Amount{Decimal: decimal.NewFromInt(1200)},
		Frequency:     schedule.Monthly,
		StartDate:     types.NewDate(2023, 12, 5),
	}
}

func (suite *TestSuiteStandard) createTestRecurringItem(editable v1.RecurringItemEditable, expectedStatus ...int) v1.RecurringItem {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(http.MethodPost, "/v1/recurring-items", []v1.RecurringItemEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.RecurringItemCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if r.Code != http.StatusCreated {
		return v1.RecurringItem{}
	}

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestRecurringItemsCreate() {
	item := suite.createTestRecurringItem(rent())

	suite.Assert().NotEqual(uuid.Nil, item.ID)
	suite.Assert().True(item.Active, "items are active by default")
	suite.Assert().Equal("2024-01-05", item.NextDueDate.String())
	suite.Assert().Equal([]string{"2024-01-05", "2024-02-05", "2024-03-05"}, dates(item.Upcoming))
	suite.Assert().Equal(fmt.Sprintf("%s/v1/recurring-items/%s", baseURL, item.ID), item.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("%s/v1/transactions?recurringItem=%s", baseURL, item.ID), item.Links.Transactions)
}

func (suite *TestSuiteStandard) TestRecurringItemsCreateLocalizedInput() {
	body := []map[string]any{
		{
			"kind":          " Income ",
			"description":   "Monthly fees",
			"category":      "Ingresos por Cuotas Mensuales",
			"defaultAmount": "1.234,56 €",
			"frequency":     "Monthly",
			"dayOfMonth":    1,
			"startDate":     "2024-01-01",
		},
	}

	r := suite.request(http.MethodPost, "/v1/recurring-items", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.RecurringItemCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	item := response.Data[0].Data
	suite.Require().NotNil(item)
	suite.Assert().Equal(models.KindIncome, item.Kind)
	suite.Assert().Equal(schedule.Monthly, item.Frequency)
	suite.Assert().True(decimal.RequireFromString("1234.56").Equal(item.DefaultAmount), item.DefaultAmount.String())
	suite.Assert().Equal("2024-02-01", item.NextDueDate.String())
}

func (suite *TestSuiteStandard) TestRecurringItemsCreatePartialFailure() {
	broken := rent()
	broken.Frequency = "fortnightly"

	r := suite.request(http.MethodPost, "/v1/recurring-items", []v1.RecurringItemEditable{rent(), broken})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.RecurringItemCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Require().NotNil(response.Data[1].Error)
	suite.Assert().Contains(*response.Data[1].Error, "fortnightly")

	// The valid item is stored
	r = suite.request(http.MethodGet, "/v1/recurring-items", nil)
	var list v1.RecurringItemListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1)
}

func (suite *TestSuiteStandard) TestRecurringItemsCreateInvalid() {
	tests := []struct {
		name  string
		apply func(*v1.RecurringItemEditable)
	}{
		{"Zero amount", func(e *v1.RecurringItemEditable) { e.DefaultAmount = v1.Amount{Decimal: decimal.Zero} }},
		{"No description", func(e *v1.RecurringItemEditable) { e.Description = "" }},
		{"Invalid kind", func(e *v1.RecurringItemEditable) { e.Kind = "transfer" }},
		{"End before start", func(e *v1.RecurringItemEditable) {
			end := types.NewDate(2023, 1, 1)
			e.EndDate = &end
		}},
		{"Day of week for monthly", func(e *v1.RecurringItemEditable) {
			day := 3
			e.DayOfWeek = &day
		}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			editable := rent()
			tt.apply(&editable)
			suite.createTestRecurringItem(editable, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringItemsCreateBrokenBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Not JSON", "Rent, 1200, monthly"},
		{"Not an array", `{"description": "Rent"}`},
		{"Invalid amount", `[{"defaultAmount": "twelve"}]`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "/v1/recurring-items", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringItemsList() {
	suite.createTestRecurringItem(rent())

	insurance := rent()
	insurance.Description = "Insurance"
	insurance.Category = "Primas de Seguros del Negocio"
	insurance.DefaultAmount = v1.Amount{Decimal: decimal.NewFromInt(80)}
	insurance.Frequency = schedule.Quarterly
	insurance.Notes = "Renewed every year"
	suite.createTestRecurringItem(insurance)

	fees := rent()
	fees.Kind = models.KindIncome
	fees.Description = "Monthly fees"
	fees.Category = "Ingresos por Cuotas Mensuales"
	suite.createTestRecurringItem(fees)

	inactive := false
	lease := rent()
	lease.Description = "Old lease"
	lease.Active = &inactive
	suite.createTestRecurringItem(lease)

	tests := []struct {
		query string
		count int
		total int64
	}{
		{"", 4, 4},
		{"kind=income", 1, 1},
		{"kind=EXPENSE", 3, 3},
		{"active=false", 1, 1},
		{"active=true", 3, 3},
		{"frequency=quarterly", 1, 1},
		{"category=Seguros", 1, 1},
		{"search=rent", 1, 1},
		{"search=renewed", 1, 1},
		{"limit=2", 2, 4},
		{"offset=3", 1, 4},
		{"limit=0", 4, 4},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := suite.request(http.MethodGet, "/v1/recurring-items?"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.RecurringItemListResponse
			test.DecodeResponse(suite.T(), &r, &response)

			suite.Assert().Len(response.Data, tt.count)
			suite.Assert().Equal(tt.count, response.Pagination.Count)
			suite.Assert().Equal(tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringItemsListInvalidFilter() {
	for _, query := range []string{"kind=transfer", "frequency=sometimes", "active=maybe", "offset=-1"} {
		suite.Run(query, func() {
			r := suite.request(http.MethodGet, "/v1/recurring-items?"+query, nil)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringItemsListDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "/v1/recurring-items", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestRecurringItemGet() {
	item := suite.createTestRecurringItem(rent())

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", item.ID.String(), http.StatusOK},
		{"Missing", uuid.NewString(), http.StatusNotFound},
		{"Not a UUID", "rent", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "/v1/recurring-items/"+tt.id, nil)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)

			var response v1.RecurringItemResponse
			test.DecodeResponse(suite.T(), &r, &response)

			if tt.status == http.StatusOK {
				suite.Assert().Equal(item.ID, response.Data.ID)
				suite.Assert().Equal("Rent", response.Data.Description)
				return
			}
			suite.Assert().NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringItemUpdate() {
	item := suite.createTestRecurringItem(rent())
	path := "/v1/recurring-items/" + item.ID.String()

	r := suite.request(http.MethodPatch, path, map[string]any{
		"defaultAmount": "1.250,00",
		"notes":         "New contract",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(1250).Equal(response.Data.DefaultAmount))
	suite.Assert().Equal("New contract", response.Data.Notes)
	suite.Assert().Equal("Rent", response.Data.Description, "fields not sent stay unchanged")
	suite.Assert().Equal("2024-01-05", response.Data.NextDueDate.String(), "the schedule stays unchanged")
}

func (suite *TestSuiteStandard) TestRecurringItemUpdateSchedule() {
	item := suite.createTestRecurringItem(rent())
	path := "/v1/recurring-items/" + item.ID.String()

	r := suite.request(http.MethodPatch, path, map[string]any{
		"frequency":  "quarterly",
		"dayOfMonth": 15,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(schedule.Quarterly, response.Data.Frequency)
	suite.Assert().Equal("2024-03-15", response.Data.NextDueDate.String(), "the next due date is recomputed from the start date")

	r = suite.request(http.MethodPatch, path, map[string]any{
		"nextDueDate": "2024-01-08",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("2024-01-08", response.Data.NextDueDate.String())
}

func (suite *TestSuiteStandard) TestRecurringItemUpdateClearFields() {
	editable := rent()
	end := types.NewDate(2024, 12, 31)
	day := 5
	editable.EndDate = &end
	editable.DayOfMonth = &day

	item := suite.createTestRecurringItem(editable)
	suite.Require().NotNil(item.EndDate)

	r := suite.request(http.MethodPatch, "/v1/recurring-items/"+item.ID.String(), `{"endDate": null, "dayOfMonth": null}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.EndDate)
	suite.Assert().Nil(response.Data.DayOfMonth)
}

func (suite *TestSuiteStandard) TestRecurringItemUpdateFails() {
	item := suite.createTestRecurringItem(rent())
	path := "/v1/recurring-items/" + item.ID.String()

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Zero amount", path, map[string]any{"defaultAmount": 0}, http.StatusBadRequest},
		{"Invalid frequency", path, map[string]any{"frequency": "sometimes"}, http.StatusBadRequest},
		{"Empty body", path, "", http.StatusBadRequest},
		{"Broken body", path, `{"description": 5}`, http.StatusBadRequest},
		{"Missing item", "/v1/recurring-items/" + uuid.NewString(), map[string]any{"notes": "x"}, http.StatusNotFound},
		{"Not a UUID", "/v1/recurring-items/rent", map[string]any{"notes": "x"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	// Nothing was changed
	r := suite.request(http.MethodGet, path, nil)
	var response v1.RecurringItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(1200).Equal(response.Data.DefaultAmount))
	suite.Assert().Equal(schedule.Monthly, response.Data.Frequency)
}

func (suite *TestSuiteStandard) TestRecurringItemDelete() {
	item := suite.createTestRecurringItem(rent())
	path := "/v1/recurring-items/" + item.ID.String()

	r := suite.request(http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRecurringItemOptions() {
	item := suite.createTestRecurringItem(rent())

	tests := []struct {
		path   string
		status int
		allow  string
	}{
		{"/v1/recurring-items", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"/v1/recurring-items/" + item.ID.String(), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"/v1/recurring-items/" + uuid.NewString(), http.StatusNotFound, ""},
		{"/v1/recurring-items/due", http.StatusNoContent, "OPTIONS, GET"},
		{"/v1/recurring-items/process", http.StatusNoContent, "OPTIONS, POST"},
		{"/v1/recurring-items/calendar.ics", http.StatusNoContent, "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.Run(strings.TrimPrefix(tt.path, "/v1/"), func() {
			r := suite.request(http.MethodOptions, tt.path, nil)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}

func dates(ds []types.Date) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.String())
	}
	return out
}
