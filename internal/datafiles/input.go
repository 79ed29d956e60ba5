package datafiles

import (
	"bytes"
	"encoding/json"
	"net/url"
)

// Field names a date-part input, a link input, or the synthetic composite
// start_date.
type Field string

const (
	FieldURL        Field = "url"
	FieldName       Field = "name"
	FieldStartDay   Field = "start_day"
	FieldStartMonth Field = "start_month"
	FieldStartYear  Field = "start_year"
	FieldEndDay     Field = "end_day"
	FieldEndMonth   Field = "end_month"
	FieldEndYear    Field = "end_year"
	FieldQuarter    Field = "quarter"
	FieldStartDate  Field = "start_date"
)

// fieldOrder is the canonical reporting order for validation errors.
var fieldOrder = []Field{
	FieldURL,
	FieldName,
	FieldStartDay,
	FieldStartMonth,
	FieldStartYear,
	FieldEndDay,
	FieldEndMonth,
	FieldEndYear,
	FieldQuarter,
	FieldStartDate,
}

func fieldRank(f Field) int {
	for i, candidate := range fieldOrder {
		if candidate == f {
			return i
		}
	}
	return len(fieldOrder)
}

func (f Field) String() string {
	return string(f)
}

// formScopes are the param prefixes used by the datafile forms.
var formScopes = []string{"link", "datafile"}

// Part is one raw date-part value. In JSON it may be a string or a number;
// any other value is kept as its JSON text so it fails parsing like any
// other malformed part.
type Part string

// UnmarshalJSON accepts "2020", 2020 and null.
func (p *Part) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Part(s)
	default:
		*p = Part(data)
	}
	return nil
}

// String returns the raw value.
func (p Part) String() string {
	return string(p)
}

// Set implements flag.Value.
func (p *Part) Set(value string) error {
	*p = Part(value)
	return nil
}

// DatePartInput carries the raw date-part values exactly as submitted.
type DatePartInput struct {
	StartDay   Part `json:"start_day"`
	StartMonth Part `json:"start_month"`
	StartYear  Part `json:"start_year"`
	EndDay     Part `json:"end_day"`
	EndMonth   Part `json:"end_month"`
	EndYear    Part `json:"end_year"`
	Quarter    Part `json:"quarter"`
}

// DatePartInputFromValues reads date parts from form values. Bare keys win over
// scoped keys such as link[start_day].
func DatePartInputFromValues(values url.Values) DatePartInput {
	var in DatePartInput
	for _, f := range fieldOrder {
		if _, ok := fieldKinds[f]; !ok {
			continue
		}
		in.Set(f, lookupValue(values, string(f)))
	}
	return in
}

func lookupValue(values url.Values, key string) string {
	if _, ok := values[key]; ok {
		return values.Get(key)
	}
	for _, scope := range formScopes {
		scoped := scope + "[" + key + "]"
		if _, ok := values[scoped]; ok {
			return values.Get(scoped)
		}
	}
	return ""
}

// Get returns the raw value of a field.
func (in DatePartInput) Get(f Field) string {
	switch f {
	case FieldStartDay:
		return string(in.StartDay)
	case FieldStartMonth:
		return string(in.StartMonth)
	case FieldStartYear:
		return string(in.StartYear)
	case FieldEndDay:
		return string(in.EndDay)
	case FieldEndMonth:
		return string(in.EndMonth)
	case FieldEndYear:
		return string(in.EndYear)
	case FieldQuarter:
		return string(in.Quarter)
	}
	return ""
}

// Set replaces the raw value of a field. Unknown fields are ignored.
func (in *DatePartInput) Set(f Field, value string) {
	switch f {
	case FieldStartDay:
		in.StartDay = Part(value)
	case FieldStartMonth:
		in.StartMonth = Part(value)
	case FieldStartYear:
		in.StartYear = Part(value)
	case FieldEndDay:
		in.EndDay = Part(value)
	case FieldEndMonth:
		in.EndMonth = Part(value)
	case FieldEndYear:
		in.EndYear = Part(value)
	case FieldQuarter:
		in.Quarter = Part(value)
	}
}
