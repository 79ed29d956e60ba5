package datafiles

import (
	"errors"
	"fmt"
	"strings"
)

// Frequency is the declared update cadence of a dataset.
type Frequency string

const (
	FrequencyNever         Frequency = "never"
	FrequencyDaily         Frequency = "daily"
	FrequencyWeekly        Frequency = "weekly"
	FrequencyMonthly       Frequency = "monthly"
	FrequencyQuarterly     Frequency = "quarterly"
	FrequencyAnnually      Frequency = "annually"
	FrequencyFinancialYear Frequency = "financial-year"
)

// ErrUnknownFrequency indicates a frequency code outside the supported set.
var ErrUnknownFrequency = errors.New("datafiles: unknown frequency")

var frequencyOrder = []Frequency{
	FrequencyNever,
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyAnnually,
	FrequencyFinancialYear,
}

var frequencyLabels = map[Frequency]string{
	FrequencyNever:         "One-off",
	FrequencyDaily:         "Daily",
	FrequencyWeekly:        "Weekly",
	FrequencyMonthly:       "Monthly",
	FrequencyQuarterly:     "Quarterly",
	FrequencyAnnually:      "Annually",
	FrequencyFinancialYear: "Financial year",
}

// Frequencies lists every supported frequency in picker order.
func Frequencies() []Frequency {
	out := make([]Frequency, len(frequencyOrder))
	copy(out, frequencyOrder)
	return out
}

// ParseFrequency converts a raw code into a Frequency.
func ParseFrequency(raw string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := rules[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, raw)
	}
	return f, nil
}

// Valid reports whether f is one of the supported codes.
func (f Frequency) Valid() bool {
	_, ok := rules[f]
	return ok
}

// Label returns the human readable name shown on the frequency picker.
func (f Frequency) Label() string {
	return frequencyLabels[f]
}

// Dated reports whether datafiles of this frequency carry a time period.
func (f Frequency) Dated() bool {
	return len(rules[f].fields) > 0
}

func (f Frequency) String() string {
	return string(f)
}
