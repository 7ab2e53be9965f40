package schedule

import (
	"fmt"
	"time"

	"github.com/dojo-ledger/backend/internal/types"
)

// NextDue returns the first occurrence strictly after anchor.
//
// anchor is usually the previous due date, or the start date when the first
// due date of an item is computed. start is the immutable origin of the
// schedule: it supplies the default anchors and the result is never before it.
//
// dayOfMonth pins monthly, quarterly, semi-annual and annual schedules to a day,
// clamped to the last day of shorter months. dayOfWeek (Monday = 0) pins weekly
// and bi-weekly schedules. When nil, the respective value of start is used.
func NextDue(anchor types.Date, freq Frequency, dayOfMonth, dayOfWeek *int, start types.Date) (types.Date, error) {
	next, err := step(anchor, freq, dayOfMonth, dayOfWeek, start)
	if err != nil {
		return types.Date{}, err
	}

	// Schedules starting in the future bootstrap from their start date
	if next.Before(start) {
		return NextDue(start, freq, dayOfMonth, dayOfWeek, start)
	}

	for !next.After(anchor) {
		next, err = step(next, freq, dayOfMonth, dayOfWeek, start)
		if err != nil {
			return types.Date{}, err
		}
	}

	return next, nil
}

// Upcoming returns up to n occurrences beginning with first, which is included.
// Occurrences after end are omitted when end is set.
func Upcoming(first types.Date, freq Frequency, dayOfMonth, dayOfWeek *int, start types.Date, end *types.Date, n int) ([]types.Date, error) {
	if !freq.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, freq)
	}

	dates := make([]types.Date, 0, n)
	current := first
	for len(dates) < n {
		if end != nil && current.After(*end) {
			break
		}
		dates = append(dates, current)

		next, err := NextDue(current, freq, dayOfMonth, dayOfWeek, start)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return dates, nil
}

// step advances anchor by one period without enforcing the start date floor.
func step(anchor types.Date, freq Frequency, dayOfMonth, dayOfWeek *int, start types.Date) (types.Date, error) {
	switch freq {
	case Daily:
		return anchor.AddDays(1), nil

	case Weekly:
		return anchor.AddDays(daysUntilWeekday(anchor, targetWeekday(dayOfWeek, start), 7)), nil

	case BiWeekly:
		return anchor.AddDays(daysUntilWeekday(anchor, targetWeekday(dayOfWeek, start), 14)), nil

	case Monthly, Quarterly, SemiAnnually, Annually:
		day := start.Day()
		if dayOfMonth != nil {
			day = *dayOfMonth
		}
		return addMonthsOnDay(anchor, freq.months(), day), nil
	}

	return types.Date{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, freq)
}

func targetWeekday(dayOfWeek *int, start types.Date) int {
	if dayOfWeek == nil {
		return start.Weekday()
	}
	return ((*dayOfWeek % 7) + 7) % 7
}

// daysUntilWeekday returns the days from anchor to the next target weekday.
// If anchor already is on the target weekday, a full period is returned.
func daysUntilWeekday(anchor types.Date, target, period int) int {
	delta := (target - anchor.Weekday() + 7) % 7
	if delta == 0 {
		return period
	}
	return delta
}

// addMonthsOnDay moves months forward from the month of anchor and returns the
// given day in that month, clamped to the month's length.
func addMonthsOnDay(anchor types.Date, months, day int) types.Date {
	index := int(anchor.Month()) - 1 + months
	year := anchor.Year() + index/12
	month := time.Month(index%12 + 1)

	day = max(1, min(day, types.DaysIn(year, month)))
	return types.NewDate(year, month, day)
}
