// Package money parses user input into exact amounts and formats amounts for display.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrInvalidAmount = errors.New("the amount is not a valid number")

// Parse converts user input to an exact decimal.
//
// The currency symbol and all whitespace are removed. Both "," and "." are
// accepted as decimal separator:
//
//	"12,50"     -> 12.50
//	"1,234.56"  -> 1234.56
//	"1.234,56"  -> 1234.56
func Parse(s, symbol string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if symbol != "" {
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}
	cleaned = strings.Join(strings.Fields(cleaned), "")

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}

	commas := strings.Count(cleaned, ",")
	dots := strings.Count(cleaned, ".")

	switch {
	// "1234,56"
	case commas == 1 && dots == 0:
		cleaned = strings.Replace(cleaned, ",", ".", 1)

	// "1,234.56" and "1,234,567.89"
	case dots == 1 && commas > 0 && strings.LastIndex(cleaned, ",") < strings.Index(cleaned, "."):
		cleaned = strings.ReplaceAll(cleaned, ",", "")

	// "1.234,56" and "1.234.567,89"
	case commas == 1 && dots > 0 && strings.LastIndex(cleaned, ".") < strings.Index(cleaned, ","):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return d, nil
}

// Formatter renders amounts for display in a locale and currency.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter returns a Formatter for the ISO 4217 currency code and the locale.
func NewFormatter(code string, locale language.Tag) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	return Formatter{
		unit:    unit,
		printer: message.NewPrinter(locale),
	}, nil
}

// Currency returns the ISO 4217 code of the formatter's currency.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Symbol returns the narrow symbol of the currency, e.g. "€".
func (f Formatter) Symbol() string {
	return f.printer.Sprint(currency.NarrowSymbol(f.unit))
}

// Format returns the amount prefixed with the currency symbol, rounded to the
// currency's scale and grouped for the locale, e.g. "€ 1,234.50".
//
// The conversion to float64 only affects display. Stored amounts stay exact.
func (f Formatter) Format(amount decimal.Decimal) string {
	value := amount.Round(4).InexactFloat64()
	return f.printer.Sprint(currency.NarrowSymbol(f.unit.Amount(value)))
}
