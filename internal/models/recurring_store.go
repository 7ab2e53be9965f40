package models

import (
	"context"
	"fmt"
	"time"

	"github.com/dojo-ledger/backend/internal/schedule"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurringStore persists recurring items.
type RecurringStore struct {
	db *gorm.DB
}

func NewRecurringStore(db *gorm.DB) RecurringStore {
	return RecurringStore{db: db}
}

// RecurringItemFilter restricts the items returned by List.
type RecurringItemFilter struct {
	Kind      Kind
	Frequency schedule.Frequency
	Active    *bool
	Category  string // matches substrings
	Search    string // matches substrings of description and notes
	Offset    int
	Limit     int // 0 means no limit
}

// Create validates the draft, computes the first due date and stores the item.
//
// The first due date is the first occurrence after the start date.
func (s RecurringStore) Create(ctx context.Context, draft RecurringItemDraft) (RecurringItem, error) {
	active := true
	if draft.Active != nil {
		active = *draft.Active
	}

	item := RecurringItem{
		Kind:          draft.Kind,
		Description:   draft.Description,
		Category:      draft.Category,
		DefaultAmount: draft.DefaultAmount,
		Frequency:     draft.Frequency,
		DayOfMonth:    draft.DayOfMonth,
		DayOfWeek:     draft.DayOfWeek,
		StartDate:     draft.StartDate,
		EndDate:       draft.EndDate,
		Active:        active,
		AutoGenerate:  draft.AutoGenerate,
		Notes:         draft.Notes,
	}

	// Validate before computing the due date so that an invalid
	// frequency is reported as a validation error
	if err := item.Validate(); err != nil {
		return RecurringItem{}, err
	}

	next, err := item.NextAfter(item.StartDate)
	if err != nil {
		return RecurringItem{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	item.NextDueDate = next

	err = s.db.WithContext(ctx).Create(&item).Error
	if err != nil {
		return RecurringItem{}, err
	}

	return item, nil
}

// Get returns the item with the ID.
func (s RecurringStore) Get(ctx context.Context, id uuid.UUID) (RecurringItem, error) {
	var item RecurringItem
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return RecurringItem{}, err
	}

	return item, nil
}

// List returns the items matching the filter, ordered by kind and description,
// and the total number of matching items ignoring offset and limit.
func (s RecurringStore) List(ctx context.Context, filter RecurringItemFilter) ([]RecurringItem, int64, error) {
	q := s.db.WithContext(ctx).Model(&RecurringItem{})

	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}

	if filter.Frequency != "" {
		q = q.Where("frequency = ?", filter.Frequency)
	}

	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}

	if filter.Category != "" {
		q = q.Where("category LIKE ?", "%"+filter.Category+"%")
	}

	if filter.Search != "" {
		q = q.Where("(description LIKE ? OR notes LIKE ?)", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	var total int64
	err := q.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	q = q.Order("kind ASC, description ASC, id ASC").Offset(filter.Offset)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var items []RecurringItem
	err = q.Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update applies the update to the item with the ID.
//
// When the frequency, an anchor or the start date change, the next due date is
// recomputed from the start date unless the update sets it explicitly. The
// recomputed date is never on or before the last occurrence already recorded
// in the ledger.
func (s RecurringStore) Update(ctx context.Context, id uuid.UUID, update RecurringItemUpdate) (RecurringItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return RecurringItem{}, err
	}

	update.apply(&item)

	recompute := update.NextDueDate == nil && update.affectsSchedule()
	switch {
	case update.NextDueDate != nil:
		item.NextDueDate = *update.NextDueDate
	case recompute:
		// The previous due date is meaningless for the new schedule
		item.NextDueDate = types.Date{}
	}

	if err := item.Validate(); err != nil {
		return RecurringItem{}, err
	}

	if recompute {
		next, err := s.firstDue(ctx, item)
		if err != nil {
			return RecurringItem{}, err
		}
		item.NextDueDate = next
	}

	err = s.db.WithContext(ctx).Save(&item).Error
	if err != nil {
		return RecurringItem{}, err
	}

	return item, nil
}

// firstDue returns the first occurrence of the item's schedule after its start
// date and after the last transaction generated from it.
func (s RecurringStore) firstDue(ctx context.Context, item RecurringItem) (types.Date, error) {
	var generated []types.Date
	err := s.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("source_recurring_id = ?", item.ID).
		Order("date DESC").
		Limit(1).
		Pluck("date", &generated).Error
	if err != nil {
		return types.Date{}, err
	}

	next, err := item.NextAfter(item.StartDate)
	if err != nil {
		return types.Date{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	// Occurrences up to the last generated one have been recorded already
	for len(generated) > 0 && !next.After(generated[0]) {
		next, err = item.NextAfter(next)
		if err != nil {
			return types.Date{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return next, nil
}

// Delete removes the item with the ID. Transactions generated from it
// keep existing without the reference.
func (s RecurringStore) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&item).Error
}

// DueAsOf returns all active items with a next due date on or before the date
// that have not ended before the date, ordered by next due date and ID.
func (s RecurringStore) DueAsOf(ctx context.Context, date types.Date) ([]RecurringItem, error) {
	var items []RecurringItem
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Where("next_due_date <= ?", date).
		Where("(end_date IS NULL OR end_date >= ?)", date).
		Order("next_due_date ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Advance sets the next due date of the active item with the ID.
func (s RecurringStore) Advance(ctx context.Context, id uuid.UUID, next types.Date) error {
	tx := s.db.WithContext(ctx).
		Model(&RecurringItem{}).
		Where("id = ? AND active = ?", id, true).
		UpdateColumns(map[string]any{
			"next_due_date": next,
			"updated_at":    time.Now().In(time.UTC),
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w active recurring item with ID %s", ErrResourceNotFound, id)
	}

	return nil
}
