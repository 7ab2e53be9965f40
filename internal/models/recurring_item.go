package models

import (
	"fmt"
	"strings"

	"github.com/dojo-ledger/backend/internal/schedule"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringItem is a template for an income or expense that repeats on a schedule.
type RecurringItem struct {
	DefaultModel
	Kind          Kind               `gorm:"not null"`
	Description   string             `gorm:"not null"`
	Category      string             `gorm:"not null"`
	DefaultAmount decimal.Decimal    `gorm:"type:DECIMAL(20,8)"`
	Frequency     schedule.Frequency `gorm:"not null"`
	DayOfMonth    *int               // 1 to 31, for monthly and longer frequencies
	DayOfWeek     *int               // 0 (Monday) to 6 (Sunday), for weekly and bi-weekly frequencies
	StartDate     types.Date         `gorm:"not null"`
	EndDate       *types.Date
	NextDueDate   types.Date `gorm:"not null;index"`
	Active        bool       `gorm:"index"`
	AutoGenerate  bool
	Notes         string
}

// BeforeSave trims whitespace and validates the item.
func (r *RecurringItem) BeforeSave(_ *gorm.DB) error {
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
	r.Notes = strings.TrimSpace(r.Notes)

	return r.Validate()
}

// AfterFind normalizes values read from the database.
func (r *RecurringItem) AfterFind(tx *gorm.DB) error {
	if err := r.DefaultModel.AfterFind(tx); err != nil {
		return err
	}

	if r.EndDate != nil && r.EndDate.IsZero() {
		r.EndDate = nil
	}

	return nil
}

// Validate checks that the item describes a valid schedule.
// All errors wrap ErrValidation.
func (r RecurringItem) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: kind must be %q or %q", ErrValidation, KindIncome, KindExpense)
	}

	if !r.Frequency.Valid() {
		return fmt.Errorf("%w: %w %q", ErrValidation, schedule.ErrInvalidFrequency, r.Frequency)
	}

	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("%w: the description must not be empty", ErrValidation)
	}

	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("%w: the category must not be empty", ErrValidation)
	}

	if !r.DefaultAmount.IsPositive() {
		return fmt.Errorf("%w: the default amount must be larger than zero", ErrValidation)
	}

	if r.DayOfMonth != nil {
		if !r.Frequency.UsesDayOfMonth() {
			return fmt.Errorf("%w: a day of month cannot be set for frequency %q", ErrValidation, r.Frequency)
		}

		if *r.DayOfMonth < 1 || *r.DayOfMonth > 31 {
			return fmt.Errorf("%w: the day of month must be between 1 and 31, got %d", ErrValidation, *r.DayOfMonth)
		}
	}

	if r.DayOfWeek != nil {
		if !r.Frequency.UsesDayOfWeek() {
			return fmt.Errorf("%w: a day of week cannot be set for frequency %q", ErrValidation, r.Frequency)
		}

		if *r.DayOfWeek < 0 || *r.DayOfWeek > 6 {
			return fmt.Errorf("%w: the day of week must be between 0 (Monday) and 6 (Sunday), got %d", ErrValidation, *r.DayOfWeek)
		}
	}

	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: the start date must be set", ErrValidation)
	}

	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("%w: the end date %s is before the start date %s", ErrValidation, r.EndDate, r.StartDate)
	}

	if !r.NextDueDate.IsZero() && r.NextDueDate.Before(r.StartDate) {
		return fmt.Errorf("%w: the next due date %s is before the start date %s", ErrValidation, r.NextDueDate, r.StartDate)
	}

	return nil
}

// NextAfter returns the occurrence following anchor for this item's schedule.
func (r RecurringItem) NextAfter(anchor types.Date) (types.Date, error) {
	return schedule.NextDue(anchor, r.Frequency, r.DayOfMonth, r.DayOfWeek, r.StartDate)
}

// Upcoming returns up to n occurrences starting with the next due date,
// ending at the end date if the item has one.
func (r RecurringItem) Upcoming(n int) ([]types.Date, error) {
	return schedule.Upcoming(r.NextDueDate, r.Frequency, r.DayOfMonth, r.DayOfWeek, r.StartDate, r.EndDate, n)
}

// RecurringItemDraft contains the fields to create a recurring item.
type RecurringItemDraft struct {
	Kind          Kind
	Description   string
	Category      string
	DefaultAmount decimal.Decimal
	Frequency     schedule.Frequency
	DayOfMonth    *int
	DayOfWeek     *int
	StartDate     types.Date
	EndDate       *types.Date
	Active        *bool // defaults to true
	AutoGenerate  bool
	Notes         string
}

// RecurringItemUpdate contains the fields to update on a recurring item.
// Nil fields are left unchanged.
//
// ClearDayOfMonth, ClearDayOfWeek and ClearEndDate remove the respective value.
// NextDueDate sets the next due date explicitly instead of recomputing it.
type RecurringItemUpdate struct {
	Kind            *Kind
	Description     *string
	Category        *string
	DefaultAmount   *decimal.Decimal
	Frequency       *schedule.Frequency
	DayOfMonth      *int
	ClearDayOfMonth bool
	DayOfWeek       *int
	ClearDayOfWeek  bool
	StartDate       *types.Date
	EndDate         *types.Date
	ClearEndDate    bool
	NextDueDate     *types.Date
	Active          *bool
	AutoGenerate    *bool
	Notes           *string
}

// affectsSchedule reports if the update changes how due dates are computed.
func (u RecurringItemUpdate) affectsSchedule() bool {
	return u.Frequency != nil ||
		u.DayOfMonth != nil || u.ClearDayOfMonth ||
		u.DayOfWeek != nil || u.ClearDayOfWeek ||
		u.StartDate != nil
}

// apply writes the set fields of the update to the item.
func (u RecurringItemUpdate) apply(r *RecurringItem) {
	if u.Kind != nil {
		r.Kind = *u.Kind
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Category != nil {
		r.Category = *u.Category
	}
	if u.DefaultAmount != nil {
		r.DefaultAmount = *u.DefaultAmount
	}
	if u.Frequency != nil {
		r.Frequency = *u.Frequency
	}
	if u.ClearDayOfMonth {
		r.DayOfMonth = nil
	} else if u.DayOfMonth != nil {
		r.DayOfMonth = u.DayOfMonth
	}
	if u.ClearDayOfWeek {
		r.DayOfWeek = nil
	} else if u.DayOfWeek != nil {
		r.DayOfWeek = u.DayOfWeek
	}
	// Anchors of the previous frequency are dropped unless they were sent again
	if u.Frequency != nil {
		if !r.Frequency.UsesDayOfMonth() && u.DayOfMonth == nil {
			r.DayOfMonth = nil
		}
		if !r.Frequency.UsesDayOfWeek() && u.DayOfWeek == nil {
			r.DayOfWeek = nil
		}
	}
	if u.StartDate != nil {
		r.StartDate = *u.StartDate
	}
	if u.ClearEndDate {
		r.EndDate = nil
	} else if u.EndDate != nil {
		r.EndDate = u.EndDate
	}
	if u.Active != nil {
		r.Active = *u.Active
	}
	if u.AutoGenerate != nil {
		r.AutoGenerate = *u.AutoGenerate
	}
	if u.Notes != nil {
		r.Notes = *u.Notes
	}
}
