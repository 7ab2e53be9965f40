// Package schedule computes due dates of recurring financial items.
package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidFrequency = errors.New("invalid frequency")

// Frequency is how often a recurring item falls due.
type Frequency string

const (
	Daily        Frequency = "daily"
	Weekly       Frequency = "weekly"
	BiWeekly     Frequency = "bi-weekly"
	Monthly      Frequency = "monthly"
	Quarterly    Frequency = "quarterly"
	SemiAnnually Frequency = "semi-annually"
	Annually     Frequency = "annually"
)

// Frequencies lists all valid frequencies from shortest to longest period.
var Frequencies = []Frequency{Daily, Weekly, BiWeekly, Monthly, Quarterly, SemiAnnually, Annually}

// ParseFrequency returns the Frequency for s, ignoring case and surrounding whitespace.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q, valid values are %s", ErrInvalidFrequency, s, frequencyList())
	}

	return f, nil
}

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, BiWeekly, Monthly, Quarterly, SemiAnnually, Annually:
		return true
	}
	return false
}

// UsesDayOfMonth reports whether a day of month anchor applies to f.
func (f Frequency) UsesDayOfMonth() bool {
	return f.months() > 0
}

// UsesDayOfWeek reports whether a day of week anchor applies to f.
func (f Frequency) UsesDayOfWeek() bool {
	return f == Weekly || f == BiWeekly
}

// months returns the number of months in one period, 0 for day based frequencies.
func (f Frequency) months() int {
	switch f {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case SemiAnnually:
		return 6
	case Annually:
		return 12
	}
	return 0
}

func frequencyList() string {
	s := make([]string, 0, len(Frequencies))
	for _, f := range Frequencies {
		s = append(s, string(f))
	}
	return strings.Join(s, ", ")
}
