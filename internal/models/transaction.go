package models

import (
	"fmt"
	"strings"

	"github.com/dojo-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a money movement recorded in the ledger.
// Transactions cannot be changed once they are recorded.
type Transaction struct {
	DefaultModel
	InternalID        string          `gorm:"uniqueIndex;not null"` // Human readable ID, e.g. TRN-3F2A9C1B7D4E
	Kind              Kind            `gorm:"not null;index"`
	Date              types.Date      `gorm:"not null;index"`
	Description       string          `gorm:"not null"`
	Category          string          `gorm:"not null"`
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaymentMethod     string
	Reference         string
	Notes             string
	RecordedBy        string
	SourceRecurringID *uuid.UUID     `gorm:"index"`
	SourceRecurring   *RecurringItem `gorm:"constraint:OnDelete:SET NULL"`
}

// BeforeSave trims whitespace and validates the transaction.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	t.PaymentMethod = strings.TrimSpace(t.PaymentMethod)
	t.Reference = strings.TrimSpace(t.Reference)
	t.Notes = strings.TrimSpace(t.Notes)
	t.RecordedBy = strings.TrimSpace(t.RecordedBy)

	if t.SourceRecurringID != nil && *t.SourceRecurringID == uuid.Nil {
		t.SourceRecurringID = nil
	}

	return t.Validate()
}

func (t *Transaction) BeforeUpdate(_ *gorm.DB) error {
	return ErrTransactionImmutable
}

func (t *Transaction) BeforeDelete(_ *gorm.DB) error {
	return ErrTransactionImmutable
}

// Validate checks the transaction. All errors wrap ErrValidation.
func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return fmt.Errorf("%w: kind must be %q or %q", ErrValidation, KindIncome, KindExpense)
	}

	if t.Date.IsZero() {
		return fmt.Errorf("%w: the date must be set", ErrValidation)
	}

	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: the description must not be empty", ErrValidation)
	}

	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: the category must not be empty", ErrValidation)
	}

	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: the amount must be larger than zero", ErrValidation)
	}

	return nil
}

// TransactionDraft contains the fields to record a transaction.
type TransactionDraft struct {
	Kind              Kind
	Date              types.Date
	Description       string
	Category          string
	Amount            decimal.Decimal
	PaymentMethod     string
	Reference         string
	Notes             string
	RecordedBy        string     // The actor recording the transaction
	SourceRecurringID *uuid.UUID // The recurring item the transaction was generated from
}

// internalID returns a new internal ID for a transaction of the kind.
func internalID(kind Kind) string {
	prefix := "EXP"
	if kind == KindIncome {
		prefix = "TRN"
	}

	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(hex[:12]))
}
