// Package messages renders user facing texts in the configured locale.
//
// English texts are the defaults defined in this file, other languages are
// loaded from the embedded locales directory.
package messages

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/dojo-ledger/backend/internal/money"
	"github.com/dojo-ledger/backend/internal/recurring"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	nothingDue = &i18n.Message{
		ID:    "RunNothingDue",
		Other: "No recurring items are due as of {{.Date}}.",
	}
	processed = &i18n.Message{
		ID:    "RunProcessed",
		One:   "Processed {{.Count}} recurring item as of {{.Date}}.",
		Other: "Processed {{.Count}} recurring items as of {{.Date}}.",
	}
	failed = &i18n.Message{
		ID:    "RunFailed",
		One:   "{{.Count}} item could not be processed:",
		Other: "{{.Count}} items could not be processed:",
	}
	warnings = &i18n.Message{
		ID:    "RunWarnings",
		One:   "{{.Count}} item was recorded, but its next due date could not be saved:",
		Other: "{{.Count}} items were recorded, but their next due dates could not be saved:",
	}
	generated = &i18n.Message{
		ID:    "RunGenerated",
		Other: "{{.Description}}: {{.Amount}} on {{.Date}}, next due {{.NextDue}} ({{.TransactionID}})",
	}
	itemProblem = &i18n.Message{
		ID:    "RunItemProblem",
		Other: "{{.Description}}: {{.Reason}}",
	}
)

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// Bundle returns the message bundle with all embedded translations.
func Bundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			log.Error().Err(err).Msg("reading embedded locales")
			return
		}

		for _, entry := range entries {
			_, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name())
			if err != nil {
				log.Error().Err(err).Str("file", entry.Name()).Msg("loading locale")
			}
		}
	})

	return bundle
}

// Printer renders texts for one locale.
type Printer struct {
	localizer  *i18n.Localizer
	money      money.Formatter
	dateLayout string
}

// NewPrinter returns a Printer for the locale. Dates are formatted with
// dateLayout and amounts with the formatter.
func NewPrinter(locale language.Tag, formatter money.Formatter, dateLayout string) Printer {
	return Printer{
		localizer:  i18n.NewLocalizer(Bundle(), locale.String()),
		money:      formatter,
		dateLayout: dateLayout,
	}
}

func (p Printer) date(d types.Date) string {
	return d.Format(p.dateLayout)
}

// localize renders the message. Missing translations fall back to English.
func (p Printer) localize(message *i18n.Message, data map[string]any, count int) string {
	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   data,
	}

	if message.One != "" {
		config.PluralCount = count
	}

	text, err := p.localizer.Localize(config)
	if err != nil {
		log.Debug().Err(err).Str("message", message.ID).Msg("translation missing")
	}

	return text
}

// Summary renders the report of a processing run as lines of text.
func (p Printer) Summary(report recurring.Report) []string {
	date := p.date(report.AsOf)

	if report.Processed == 0 && report.OK() {
		return []string{p.localize(nothingDue, map[string]any{"Date": date}, 0)}
	}

	lines := []string{p.localize(processed, map[string]any{"Count": report.Processed, "Date": date}, report.Processed)}

	for _, g := range report.Generated {
		lines = append(lines, "  "+p.localize(generated, map[string]any{
			"Description":   g.Description,
			"Amount":        p.money.Format(g.Amount),
			"Date":          p.date(g.Occurrence),
			"NextDue":       p.date(g.NextDue),
			"TransactionID": g.TransactionID,
		}, 0))
	}

	if len(report.Failed) > 0 {
		lines = append(lines, p.localize(failed, map[string]any{"Count": len(report.Failed)}, len(report.Failed)))
		for _, f := range report.Failed {
			lines = append(lines, "  "+p.localize(itemProblem, map[string]any{"Description": f.Description, "Reason": f.Reason}, 0))
		}
	}

	if len(report.Warnings) > 0 {
		lines = append(lines, p.localize(warnings, map[string]any{"Count": len(report.Warnings)}, len(report.Warnings)))
		for _, w := range report.Warnings {
			reason := fmt.Sprintf("%s (%s)", w.Reason, w.TransactionID)
			lines = append(lines, "  "+p.localize(itemProblem, map[string]any{"Description": w.Description, "Reason": reason}, 0))
		}
	}

	return lines
}

// SummaryText is Summary joined with newlines.
func (p Printer) SummaryText(report recurring.Report) string {
	return strings.Join(p.Summary(report), "\n")
}
