package models_test

import (
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/schedule"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRecurringItemCreate() {
	item := suite.createTestRecurringItem(draft())

	suite.Assert().NotEqual(uuid.Nil, item.ID)
	suite.Assert().True(item.Active, "items are active by default")
	suite.Assert().Equal("2024-02-05", item.NextDueDate.String(), "the first due date is one period after the start date")

	stored, err := models.NewRecurringStore(models.DB).Get(suite.ctx, item.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(item.ID, stored.ID)
	suite.Assert().True(item.DefaultAmount.Equal(stored.DefaultAmount))
	suite.Assert().True(stored.NextDueDate.Equal(types.NewDate(2024, 2, 5)))
	suite.Assert().Nil(stored.EndDate)
	suite.Assert().Nil(stored.DayOfMonth)
}

func (suite *TestSuiteStandard) TestRecurringItemCreateFutureStart() {
	d := draft()
	d.Frequency = schedule.Weekly
	d.DayOfWeek = ptr(0)
	d.StartDate = types.NewDate(2030, 6, 5)

	item := suite.createTestRecurringItem(d)
	suite.Assert().Equal("2030-06-10", item.NextDueDate.String())
}

func (suite *TestSuiteStandard) TestRecurringItemCreateInactive() {
	d := draft()
	d.Active = ptr(false)

	item := suite.createTestRecurringItem(d)
	suite.Assert().False(item.Active)
}

func (suite *TestSuiteStandard) TestRecurringItemValidation() {
	tests := []struct {
		name  string
		apply func(*models.RecurringItemDraft)
	}{
		{"Invalid kind", func(d *models.RecurringItemDraft) { d.Kind = "transfer" }},
		{"Invalid frequency", func(d *models.RecurringItemDraft) { d.Frequency = "fortnightly" }},
		{"Empty description", func(d *models.RecurringItemDraft) { d.Description = "   " }},
		{"Empty category", func(d *models.RecurringItemDraft) { d.Category = "" }},
		{"Zero amount", func(d *models.RecurringItemDraft) { d.DefaultAmount = decimal.Zero }},
		{"Negative amount", func(d *models.RecurringItemDraft) { d.DefaultAmount = decimal.NewFromInt(-5) }},
		{"Day of month too small", func(d *models.RecurringItemDraft) { d.DayOfMonth = ptr(0) }},
		{"Day of month too large", func(d *models.RecurringItemDraft) { d.DayOfMonth = ptr(32) }},
		{"Day of month for weekly", func(d *models.RecurringItemDraft) {
			d.Frequency = schedule.Weekly
			d.DayOfMonth = ptr(5)
		}},
		{"Day of week out of range", func(d *models.RecurringItemDraft) {
			d.Frequency = schedule.Weekly
			d.DayOfWeek = ptr(7)
		}},
		{"Day of week for monthly", func(d *models.RecurringItemDraft) { d.DayOfWeek = ptr(2) }},
		{"No start date", func(d *models.RecurringItemDraft) { d.StartDate = types.Date{} }},
		{"End before start", func(d *models.RecurringItemDraft) { d.EndDate = ptr(types.NewDate(2023, 12, 31)) }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			d := draft()
			tt.apply(&d)

			_, err := models.NewRecurringStore(models.DB).Create(suite.ctx, d)
			suite.Assert().ErrorIs(err, models.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringItemValidationInvalidFrequency() {
	d := draft()
	d.Frequency = "sometimes"

	_, err := models.NewRecurringStore(models.DB).Create(suite.ctx, d)
	suite.Assert().ErrorIs(err, models.ErrValidation)
	suite.Assert().ErrorIs(err, schedule.ErrInvalidFrequency)
}

func (suite *TestSuiteStandard) TestRecurringItemUpdate() {
	store := models.NewRecurringStore(models.DB)
	item := suite.createTestRecurringItem(draft())

	updated, err := store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{
		Description:   ptr("Rent for the main hall"),
		DefaultAmount: ptr(decimal.RequireFromString("1250.50")),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("Rent for the main hall", updated.Description)
	suite.Assert().True(decimal.RequireFromString("1250.5").Equal(updated.DefaultAmount))
	suite.Assert().Equal("2024-02-05", updated.NextDueDate.String(), "the schedule does not change when no schedule fields are updated")

	stored, err := store.Get(suite.ctx, item.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Rent for the main hall", stored.Description)
}

func (suite *TestSuiteStandard) TestRecurringItemUpdateRecomputesSchedule() {
	store := models.NewRecurringStore(models.DB)
	item := suite.createTestRecurringItem(draft())

	updated, err := store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{
		Frequency:  ptr(schedule.Quarterly),
		DayOfMonth: ptr(31),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-04-30", updated.NextDueDate.String())

	updated, err = store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{
		Frequency: ptr(schedule.Weekly),
	})
	suite.Require().Nil(err)
	suite.Assert().Nil(updated.DayOfMonth, "the day of month is dropped for weekly schedules")

	// 2024-01-05 is a Friday
	suite.Assert().Equal("2024-01-12", updated.NextDueDate.String())
}

func (suite *TestSuiteStandard) TestRecurringItemUpdateStartDateLater() {
	store := models.NewRecurringStore(models.DB)
	item := suite.createTestRecurringItem(draft())

	updated, err := store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{
		StartDate: ptr(types.NewDate(2024, 6, 5)),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-07-05", updated.NextDueDate.String())
}

func (suite *TestSuiteStandard) TestRecurringItemUpdateKeepsRecordedOccurrences() {
	store := models.NewRecurringStore(models.DB)
	item := suite.createTestRecurringItem(draft())

	// Three occurrences were recorded, the item is due next on 2024-05-05
	for _, date := range []types.Date{types.NewDate(2024, 2, 5), types.NewDate(2024, 3, 5), types.NewDate(2024, 4, 5)} {
		t := transactionDraft(models.KindExpense, date, "1200")
		t.SourceRecurringID = &item.ID
		suite.createTestTransaction(t)
	}
	suite.Require().Nil(store.Advance(suite.ctx, item.ID, types.NewDate(2024, 5, 5)))

	updated, err := store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{
		DayOfMonth: ptr(10),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-04-10", updated.NextDueDate.String(), "the new schedule continues after the last recorded occurrence")

	updated, err = store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{
		Frequency: ptr(schedule.Quarterly),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-04-10", updated.NextDueDate.String(), "2024-04-10 is a quarterly occurrence that was not recorded yet")

	// A start date after the last recorded occurrence is used as is
	updated, err = store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{
		StartDate: ptr(types.NewDate(2024, 9, 1)),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-12-10", updated.NextDueDate.String())
}

func (suite *TestSuiteStandard) TestRecurringItemUpdateExplicitNextDueDate() {
	store := models.NewRecurringStore(models.DB)
	item := suite.createTestRecurringItem(draft())

	updated, err := store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{
		NextDueDate: ptr(types.NewDate(2024, 1, 5)),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-01-05", updated.NextDueDate.String())

	_, err = store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{
		NextDueDate: ptr(types.NewDate(2023, 1, 5)),
	})
	suite.Assert().ErrorIs(err, models.ErrValidation, "the next due date must not be before the start date")
}

func (suite *TestSuiteStandard) TestRecurringItemUpdateClearEndDate() {
	store := models.NewRecurringStore(models.DB)

	d := draft()
	d.EndDate = ptr(types.NewDate(2024, 12, 31))
	item := suite.createTestRecurringItem(d)
	suite.Require().NotNil(item.EndDate)

	updated, err := store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{ClearEndDate: true})
	suite.Require().Nil(err)
	suite.Assert().Nil(updated.EndDate)

	stored, err := store.Get(suite.ctx, item.ID)
	suite.Require().Nil(err)
	suite.Assert().Nil(stored.EndDate)
}

func (suite *TestSuiteStandard) TestRecurringItemUpdateInvalid() {
	store := models.NewRecurringStore(models.DB)
	item := suite.createTestRecurringItem(draft())

	_, err := store.Update(suite.ctx, item.ID, models.RecurringItemUpdate{DefaultAmount: ptr(decimal.Zero)})
	suite.Assert().ErrorIs(err, models.ErrValidation)

	_, err = store.Update(suite.ctx, uuid.New(), models.RecurringItemUpdate{Description: ptr("Nothing")})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRecurringItemDelete() {
	store := models.NewRecurringStore(models.DB)
	item := suite.createTestRecurringItem(draft())

	t := suite.createTestTransaction(models.TransactionDraft{
		Kind:              models.KindExpense,
		Date:              item.NextDueDate,
		Description:       "(Recurring) Rent",
		Category:          item.Category,
		Amount:            item.DefaultAmount,
		SourceRecurringID: &item.ID,
	})

	suite.Require().Nil(store.Delete(suite.ctx, item.ID))

	_, err := store.Get(suite.ctx, item.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// The transaction stays, but loses the reference
	stored, err := models.NewLedger(models.DB).Get(suite.ctx, t.ID)
	suite.Require().Nil(err)
	suite.Assert().Nil(stored.SourceRecurringID)

	suite.Assert().ErrorIs(store.Delete(suite.ctx, item.ID), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRecurringItemList() {
	store := models.NewRecurringStore(models.DB)

	suite.createTestRecurringItem(draft())

	fees := draft()
	fees.Kind = models.KindIncome
	fees.Description = "Membership fees"
	fees.Category = "Ingresos por Cuotas Mensuales"
	suite.createTestRecurringItem(fees)

	cleaning := draft()
	cleaning.Description = "Cleaning"
	cleaning.Category = "Servicios de Limpieza Regulares"
	cleaning.Frequency = schedule.Weekly
	cleaning.Active = ptr(false)
	suite.createTestRecurringItem(cleaning)

	tests := []struct {
		name   string
		filter models.RecurringItemFilter
		want   []string
		total  int64
	}{
		{"All", models.RecurringItemFilter{}, []string{"Cleaning", "Rent", "Membership fees"}, 3},
		{"Expenses", models.RecurringItemFilter{Kind: models.KindExpense}, []string{"Cleaning", "Rent"}, 2},
		{"Weekly", models.RecurringItemFilter{Frequency: schedule.Weekly}, []string{"Cleaning"}, 1},
		{"Active", models.RecurringItemFilter{Active: ptr(true)}, []string{"Rent", "Membership fees"}, 2},
		{"Category", models.RecurringItemFilter{Category: "Cuotas"}, []string{"Membership fees"}, 1},
		{"Search", models.RecurringItemFilter{Search: "ent"}, []string{"Rent"}, 1},
		{"Limit", models.RecurringItemFilter{Limit: 1}, []string{"Cleaning"}, 3},
		{"Offset", models.RecurringItemFilter{Offset: 1, Limit: 1}, []string{"Rent"}, 3},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			items, total, err := store.List(suite.ctx, tt.filter)
			suite.Require().Nil(err)
			suite.Assert().Equal(tt.total, total)

			got := make([]string, 0, len(items))
			for _, i := range items {
				got = append(got, i.Description)
			}
			suite.Assert().Equal(tt.want, got)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringItemDueAsOf() {
	store := models.NewRecurringStore(models.DB)

	// Due on 2024-02-05
	rent := suite.createTestRecurringItem(draft())

	// Due on 2024-01-06
	daily := draft()
	daily.Description = "Towels"
	daily.Frequency = schedule.Daily
	towels := suite.createTestRecurringItem(daily)

	// Ended before the processing date
	ended := draft()
	ended.Description = "Old lease"
	ended.EndDate = ptr(types.NewDate(2024, 2, 1))
	suite.createTestRecurringItem(ended)

	// Inactive
	inactive := draft()
	inactive.Description = "Paused"
	inactive.Active = ptr(false)
	suite.createTestRecurringItem(inactive)

	// Not due yet
	later := draft()
	later.Description = "Insurance"
	later.Frequency = schedule.Annually
	suite.createTestRecurringItem(later)

	items, err := store.DueAsOf(suite.ctx, types.NewDate(2024, 2, 10))
	suite.Require().Nil(err)
	suite.Require().Len(items, 2)
	suite.Assert().Equal(towels.ID, items[0].ID, "items are ordered by next due date")
	suite.Assert().Equal(rent.ID, items[1].ID)

	items, err = store.DueAsOf(suite.ctx, types.NewDate(2024, 1, 6))
	suite.Require().Nil(err)
	suite.Require().Len(items, 1, "the due date itself is included")
	suite.Assert().Equal(towels.ID, items[0].ID)

	items, err = store.DueAsOf(suite.ctx, types.NewDate(2024, 1, 5))
	suite.Require().Nil(err)
	suite.Assert().Len(items, 0)
}

func (suite *TestSuiteStandard) TestRecurringItemDueAsOfEndDateInclusive() {
	store := models.NewRecurringStore(models.DB)

	d := draft()
	d.EndDate = ptr(types.NewDate(2024, 2, 5))
	item := suite.createTestRecurringItem(d)

	items, err := store.DueAsOf(suite.ctx, types.NewDate(2024, 2, 5))
	suite.Require().Nil(err)
	suite.Require().Len(items, 1)
	suite.Assert().Equal(item.ID, items[0].ID)

	items, err = store.DueAsOf(suite.ctx, types.NewDate(2024, 2, 6))
	suite.Require().Nil(err)
	suite.Assert().Len(items, 0, "items past their end date are never due")
}

func (suite *TestSuiteStandard) TestRecurringItemAdvance() {
	store := models.NewRecurringStore(models.DB)
	item := suite.createTestRecurringItem(draft())

	suite.Require().Nil(store.Advance(suite.ctx, item.ID, types.NewDate(2024, 3, 5)))

	stored, err := store.Get(suite.ctx, item.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("2024-03-05", stored.NextDueDate.String())
}

func (suite *TestSuiteStandard) TestRecurringItemAdvanceNotFound() {
	store := models.NewRecurringStore(models.DB)

	err := store.Advance(suite.ctx, uuid.New(), types.NewDate(2024, 3, 5))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	d := draft()
	d.Active = ptr(false)
	item := suite.createTestRecurringItem(d)

	err = store.Advance(suite.ctx, item.ID, types.NewDate(2024, 3, 5))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "inactive items cannot be advanced")
}
