// Package recurring turns due recurring items into ledger transactions.
//
// A processing run fetches all items due as of a date and handles them one by
// one in due date order. For each item, the transaction is recorded first and
// the schedule is advanced only after the ledger accepted it:
//
//   - when the ledger rejects the transaction, the item is reported as failed
//     and stays due, so the next run retries it
//   - when the ledger accepts the transaction, but the schedule cannot be
//     advanced, the transaction exists and the item is reported with a warning.
//     It is still due and a later run records it again.
//
// A failing item never aborts the run.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dojo-ledger/backend/internal/metrics"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DescriptionPrefix is prepended to the description of generated transactions.
const DescriptionPrefix = "(Recurring) "

var (
	ErrLedgerWriteFailed = errors.New("the transaction could not be recorded")
	ErrStoreWriteFailed  = errors.New("the transaction was recorded, but the next due date could not be saved")
	ErrRunInProgress     = errors.New("due items are already being processed")
)

// Store is the part of the recurring item store the processor needs.
type Store interface {
	DueAsOf(ctx context.Context, date types.Date) ([]models.RecurringItem, error)
	Advance(ctx context.Context, id uuid.UUID, next types.Date) error
}

// Ledger records transactions.
type Ledger interface {
	Record(ctx context.Context, draft models.TransactionDraft) (models.Transaction, error)
}

// Processor processes due recurring items.
type Processor struct {
	store  Store
	ledger Ledger
	log    zerolog.Logger
}

func NewProcessor(store Store, ledger Ledger) Processor {
	return Processor{
		store:  store,
		ledger: ledger,
		log:    log.Logger.With().Str("component", "recurring").Logger(),
	}
}

// Occurrence is a due item together with the date it is generated for and the
// date its schedule moves to afterwards.
type Occurrence struct {
	Item    models.RecurringItem
	Date    types.Date
	NextDue types.Date
}

// Preview returns the occurrences a run as of the date would generate without
// changing anything.
func (p Processor) Preview(ctx context.Context, asOf types.Date) ([]Occurrence, error) {
	items, err := p.store.DueAsOf(ctx, asOf)
	if err != nil {
		return nil, err
	}

	occurrences := make([]Occurrence, 0, len(items))
	for _, item := range items {
		next, err := item.NextAfter(item.NextDueDate)
		if err != nil {
			return nil, fmt.Errorf("recurring item %s: %w", item.ID, err)
		}

		occurrences = append(occurrences, Occurrence{
			Item:    item,
			Date:    item.NextDueDate,
			NextDue: next,
		})
	}

	return occurrences, nil
}

// ProcessDue records a transaction for every item due as of the date and
// advances each item's schedule.
//
// The returned error is only set when the due items cannot be loaded.
// Failures of single items are part of the report.
func (p Processor) ProcessDue(ctx context.Context, asOf types.Date, actor string) (Report, error) {
	start := time.Now()

	report := Report{
		AsOf:      asOf,
		Actor:     actor,
		Generated: []Generated{},
		Failed:    []ItemFailure{},
		Warnings:  []ItemWarning{},
	}

	items, err := p.store.DueAsOf(ctx, asOf)
	if err != nil {
		return Report{}, fmt.Errorf("loading due recurring items: %w", err)
	}

	for _, item := range items {
		p.process(ctx, item, actor, &report)
	}

	metrics.ObserveRun(report.Processed, len(report.Failed), len(report.Warnings), time.Since(start))

	p.log.Info().
		Str("asOf", asOf.String()).
		Str("actor", actor).
		Int("due", len(items)).
		Int("processed", report.Processed).
		Int("failed", len(report.Failed)).
		Int("warnings", len(report.Warnings)).
		Dur("duration", time.Since(start)).
		Msg("processed due recurring items")

	return report, nil
}

// process handles a single item and writes the outcome to the report.
func (p Processor) process(ctx context.Context, item models.RecurringItem, actor string, report *Report) {
	occurrence := item.NextDueDate
	logger := p.log.With().
		Str("recurringItem", item.ID.String()).
		Str("occurrence", occurrence.String()).
		Logger()

	// The next due date is computed before anything is written so that an
	// item with a broken schedule does not produce a transaction
	next, err := item.NextAfter(occurrence)
	if err != nil {
		logger.Error().Err(err).Msg("computing next due date")
		report.fail(item, err)
		return
	}

	transaction, err := p.ledger.Record(ctx, models.TransactionDraft{
		Kind:              item.Kind,
		Date:              occurrence,
		Description:       DescriptionPrefix + item.Description,
		Category:          item.Category,
		Amount:            item.DefaultAmount,
		RecordedBy:        actor,
		SourceRecurringID: &item.ID,
	})
	if err != nil {
		logger.Error().Err(err).Msg("recording transaction")
		report.fail(item, fmt.Errorf("%w: %w", ErrLedgerWriteFailed, err))
		return
	}

	err = p.store.Advance(ctx, item.ID, next)
	if err != nil {
		logger.Warn().Err(err).Str("transaction", transaction.InternalID).Msg("advancing schedule")
		report.Warnings = append(report.Warnings, ItemWarning{
			ID:            item.ID,
			Description:   item.Description,
			TransactionID: transaction.InternalID,
			Reason:        fmt.Errorf("%w: %w", ErrStoreWriteFailed, err).Error(),
		})
		return
	}

	logger.Debug().
		Str("transaction", transaction.InternalID).
		Str("nextDue", next.String()).
		Msg("processed recurring item")

	report.Processed++
	report.Generated = append(report.Generated, Generated{
		ID:            item.ID,
		Description:   item.Description,
		Occurrence:    occurrence,
		NextDue:       next,
		Amount:        item.DefaultAmount,
		TransactionID: transaction.InternalID,
	})
}
