// Package types implements special types for the ledger backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// StorageLayout is the layout dates are stored and exchanged in.
const StorageLayout = "2006-01-02"

// DisplayLayout is the default layout dates are shown to users in.
const DisplayLayout = "02/01/2006"

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// Date is a calendar day. The underlying time is always midnight UTC.
type Date time.Time

// NewDate returns a new Date.
//
// Values out of range are normalized the same way time.Date does it.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which t occurs in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in the storage layout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(StorageLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// ParseDateLayouts tries the layouts in order and returns the first successful parse.
//
// Without layouts, the storage layout and then the display layout are tried.
func ParseDateLayouts(s string, layouts ...string) (Date, error) {
	if len(layouts) == 0 {
		layouts = []string{StorageLayout, DisplayLayout}
	}

	s = strings.TrimSpace(s)

	var err error
	for _, layout := range layouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, err
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String returns the date in the storage layout.
func (d Date) String() string {
	return time.Time(d).Format(StorageLayout)
}

// Format returns the date formatted with the layout.
func (d Date) Format(layout string) string {
	return time.Time(d).Format(layout)
}

// Time returns the date as time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) Year() int {
	return time.Time(d).Year()
}

func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

func (d Date) Day() int {
	return time.Time(d).Day()
}

// Weekday returns the day of the week with Monday = 0 and Sunday = 6.
func (d Date) Weekday() int {
	return (int(time.Time(d).Weekday()) + 6) % 7
}

// AddDays returns the date n days later. n may be negative.
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Compare returns -1 if d is before e, 0 if they are the same day and +1 if d is after e.
func (d Date) Compare(e Date) int {
	return time.Time(d).Compare(time.Time(e))
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the date in the storage layout.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected either in the storage layout or as RFC3339 timestamp.
// For timestamps, everything except the date is ignored.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	if fullDate.MatchString(value) {
		pattern = StorageLayout
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so dates
// can be used in query strings.
func (d *Date) UnmarshalParam(p string) error {
	if p == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(p)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	}

	nullTime := &sql.NullTime{}
	err := nullTime.Scan(value)
	if err != nil {
		return err
	}

	if !nullTime.Valid {
		*d = Date{}
		return nil
	}

	*d = DateOf(nullTime.Time)
	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) > len(StorageLayout) {
		s = s[:len(StorageLayout)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}
