package models

import (
	"context"

	"github.com/dojo-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ledger is the append only store of transactions.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) Ledger {
	return Ledger{db: db}
}

// TransactionFilter restricts the transactions returned by List.
type TransactionFilter struct {
	FromDate          *types.Date // On or after this date
	UntilDate         *types.Date // On or before this date
	Kind              Kind
	Category          string // matches substrings
	SourceRecurringID *uuid.UUID
	Offset            int
	Limit             int // 0 means no limit
}

// Summary contains the totals of the transactions in a date range.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal // TotalIncome - TotalExpense
}

// Record validates the draft and appends it to the ledger.
func (l Ledger) Record(ctx context.Context, draft TransactionDraft) (Transaction, error) {
	t := Transaction{
		InternalID:        internalID(draft.Kind),
		Kind:              draft.Kind,
		Date:              draft.Date,
		Description:       draft.Description,
		Category:          draft.Category,
		Amount:            draft.Amount,
		PaymentMethod:     draft.PaymentMethod,
		Reference:         draft.Reference,
		Notes:             draft.Notes,
		RecordedBy:        draft.RecordedBy,
		SourceRecurringID: draft.SourceRecurringID,
	}

	err := l.db.WithContext(ctx).Create(&t).Error
	if err != nil {
		return Transaction{}, err
	}

	return t, nil
}

// Get returns the transaction with the ID.
func (l Ledger) Get(ctx context.Context, id uuid.UUID) (Transaction, error) {
	var t Transaction
	err := l.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return Transaction{}, err
	}

	return t, nil
}

// List returns the transactions matching the filter, newest first,
// and the total number of matching transactions ignoring offset and limit.
func (l Ledger) List(ctx context.Context, filter TransactionFilter) ([]Transaction, int64, error) {
	q := l.filter(l.db.WithContext(ctx).Model(&Transaction{}), filter)

	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}

	if filter.Category != "" {
		q = q.Where("category LIKE ?", "%"+filter.Category+"%")
	}

	if filter.SourceRecurringID != nil {
		q = q.Where("source_recurring_id = ?", *filter.SourceRecurringID)
	}

	var total int64
	err := q.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	q = q.Order("date DESC, created_at DESC").Offset(filter.Offset)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var transactions []Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// Summary returns the income and expense totals for the date range.
// Nil dates leave the range open on that side.
func (l Ledger) Summary(ctx context.Context, from, until *types.Date) (Summary, error) {
	var rows []struct {
		Kind   Kind
		Amount decimal.Decimal
	}

	// Amounts are summed in Go to keep them exact
	err := l.filter(l.db.WithContext(ctx).Model(&Transaction{}), TransactionFilter{FromDate: from, UntilDate: until}).
		Select("kind", "amount").
		Find(&rows).Error
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, r := range rows {
		switch r.Kind {
		case KindIncome:
			s.TotalIncome = s.TotalIncome.Add(r.Amount)
		case KindExpense:
			s.TotalExpense = s.TotalExpense.Add(r.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	return s, nil
}

// filter applies the date range of the filter.
func (Ledger) filter(q *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.FromDate != nil {
		q = q.Where("date >= ?", *filter.FromDate)
	}

	if filter.UntilDate != nil {
		q = q.Where("date <= ?", *filter.UntilDate)
	}

	return q
}
