// Package calendar exports upcoming occurrences of recurring items as an iCalendar feed.
package calendar

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/money"
	"github.com/emersion/go-ical"
)

const (
	prodID  = "-//Dojo Ledger//Recurring Items//EN"
	name    = "Recurring items"
	domain  = "dojo-ledger"
	refresh = 6 * time.Hour
)

// ContentType is the media type of the feed.
const ContentType = "text/calendar; charset=utf-8"

// Feed renders up to n upcoming occurrences for each item as an iCalendar
// document. Inactive items are skipped.
//
// Event UIDs only depend on the item and the occurrence date so that
// calendar clients update events instead of duplicating them.
func Feed(items []models.RecurringItem, n int, now time.Time, formatter money.Formatter) ([]byte, error) {
	cal := ical.NewCalendar()
	props := calendarProps()
	for _, prop := range props {
		cal.Props.Set(prop)
	}

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(now.UTC())

	for _, item := range items {
		if !item.Active {
			continue
		}

		dates, err := item.Upcoming(n)
		if err != nil {
			return nil, fmt.Errorf("recurring item %s: %w", item.ID, err)
		}

		for _, date := range dates {
			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s@%s", item.ID, date, domain))
			event.Props.SetText(ical.PropSummary, fmt.Sprintf("%s (%s)", item.Description, formatter.Format(item.DefaultAmount)))
			event.Props.SetText(ical.PropCategories, item.Category)
			event.Props.SetText(ical.PropDescription, fmt.Sprintf("%s, %s", item.Kind, item.Frequency))
			event.Props.Set(stamp)

			start := ical.NewProp(ical.PropDateTimeStart)
			start.SetDate(date.Time())
			event.Props.Set(start)

			cal.Children = append(cal.Children, event.Component)
		}
	}

	// ical.Encoder fails with "calendar is empty" for a VCALENDAR without
	// components, but clients expect an empty feed rather than an error
	if len(cal.Children) == 0 {
		return emptyFeed(props), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encoding calendar: %w", err)
	}

	return buf.Bytes(), nil
}

// calendarProps returns the properties of the VCALENDAR component in output order.
func calendarProps() []*ical.Prop {
	text := func(name, value string) *ical.Prop {
		prop := ical.NewProp(name)
		prop.SetText(value)
		return prop
	}

	refreshProp := ical.NewProp("REFRESH-INTERVAL")
	refreshProp.SetDuration(refresh)

	return []*ical.Prop{
		text(ical.PropVersion, "2.0"),
		text(ical.PropProductID, prodID),
		text("CALSCALE", "GREGORIAN"),
		text(ical.PropMethod, "PUBLISH"),
		text("X-WR-CALNAME", name),
		refreshProp,
	}
}

// emptyFeed writes a VCALENDAR with the properties and no components.
func emptyFeed(props []*ical.Prop) []byte {
	var buf bytes.Buffer
	buf.WriteString("BEGIN:VCALENDAR\r\n")

	for _, prop := range props {
		buf.WriteString(prop.Name)

		params := make([]string, 0, len(prop.Params))
		for param := range prop.Params {
			params = append(params, param)
		}
		sort.Strings(params)

		for _, param := range params {
			fmt.Fprintf(&buf, ";%s=%s", param, strings.Join(prop.Params[param], ","))
		}

		fmt.Fprintf(&buf, ":%s\r\n", prop.Value)
	}

	buf.WriteString("END:VCALENDAR\r\n")
	return buf.Bytes()
}
