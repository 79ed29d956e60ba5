package datafiles

import (
	"strconv"
	"strings"

	"github.com/publish-data/publish-data/internal/shared"
)

// FormScope prefixes input names on the rendered form, e.g. link[start_day].
const FormScope = "link"

// FormField is one rendered input.
type FormField struct {
	Name    Field
	Param   string
	Label   string
	Value   string
	Error   string
	Options []string
}

// Radio reports whether the field renders as a radio group.
func (f FormField) Radio() bool {
	return len(f.Options) > 0
}

// FormGroup is a fieldset of related inputs.
type FormGroup struct {
	Legend string
	Anchor string
	Error  string
	Fields []FormField
}

// Form is the view-model for the datafile link page: the link inputs and the
// time-period inputs of the frequency.
type Form struct {
	Frequency    Frequency
	Heading      string
	SummaryTitle string
	Link         []FormField
	Groups       []FormGroup
	Errors       ValidationErrors
}

// HasErrors reports whether the form carries validation messages.
func (f Form) HasErrors() bool {
	return len(f.Errors) > 0
}

// Summary lists every message for the error banner, in field order.
func (f Form) Summary() []FieldError {
	return f.Errors
}

// Value returns the submitted value of a field as it will be rendered.
func (f Form) Value(name Field) string {
	for _, field := range f.Link {
		if field.Name == name {
			return field.Value
		}
	}
	for _, g := range f.Groups {
		for _, field := range g.Fields {
			if field.Name == name {
				return field.Value
			}
		}
	}
	return ""
}

// groupLayout describes the fieldsets rendered for a frequency.
type groupLayout struct {
	legend string
	fields []Field
	// composite marks the group that shows the start_date message inline.
	composite bool
}

var formLayouts = map[Frequency][]groupLayout{
	FrequencyWeekly: {
		{legend: labelStartDate, fields: dayMonthYearStart, composite: true},
		{legend: labelEndDate, fields: dayMonthYearEnd},
	},
	FrequencyMonthly: {
		{fields: []Field{FieldStartMonth, FieldStartYear}, composite: true},
	},
	FrequencyQuarterly: {
		{fields: []Field{FieldQuarter, FieldStartYear}, composite: true},
	},
	FrequencyAnnually: {
		{fields: []Field{FieldStartYear}, composite: true},
	},
	FrequencyFinancialYear: {
		{fields: []Field{FieldStartYear}, composite: true},
	},
}

var fieldLabels = map[Field]string{
	FieldURL:        labelURL,
	FieldName:       labelName,
	FieldStartDay:   labelDay,
	FieldStartMonth: labelMonth,
	FieldStartYear:  labelYear,
	FieldEndDay:     labelDay,
	FieldEndMonth:   labelMonth,
	FieldEndYear:    labelYear,
	FieldQuarter:    labelQuarter,
}

// NewForm builds the view-model for freq. The clock supplies the default year
// of the quarter picker when no year was submitted and none was rejected.
func NewForm(freq Frequency, in DatePartInput, errs ValidationErrors, clock shared.Clock) Form {
	printer := NewPrinter()
	text := func(key string) string { return printer.Sprintf(key) }

	if freq == FrequencyQuarterly && strings.TrimSpace(string(in.StartYear)) == "" && !errs.Has(FieldStartYear) && clock != nil {
		in.StartYear = Part(strconv.Itoa(clock.Now().Year()))
	}

	form := Form{
		Frequency:    freq,
		SummaryTitle: text(labelErrorSummary),
		Errors:       errs,
	}
	layouts := formLayouts[freq]
	if len(layouts) > 0 && freq != FrequencyWeekly {
		form.Heading = text(labelTimePeriod)
	}
	for _, layout := range layouts {
		group := FormGroup{}
		if layout.legend != "" {
			group.Legend = text(layout.legend)
		}
		if layout.composite {
			group.Anchor = string(FieldStartDate)
			group.Error = errs.Message(FieldStartDate)
		}
		for _, name := range layout.fields {
			field := FormField{
				Name:  name,
				Param: FormScope + "[" + string(name) + "]",
				Label: text(fieldLabels[name]),
				Value: in.Get(name),
				Error: errs.Message(name),
			}
			if name == FieldQuarter {
				field.Options = []string{"1", "2", "3", "4"}
			}
			group.Fields = append(group.Fields, field)
		}
		form.Groups = append(form.Groups, group)
	}
	return form
}

// WithLink fills the link inputs from in, attaching any link messages already
// carried in f.Errors.
func (f Form) WithLink(in LinkInput) Form {
	printer := NewPrinter()
	f.Link = make([]FormField, 0, 2)
	for _, name := range []Field{FieldURL, FieldName} {
		f.Link = append(f.Link, FormField{
			Name:  name,
			Param: FormScope + "[" + string(name) + "]",
			Label: printer.Sprintf(fieldLabels[name]),
			Value: in.Get(name),
			Error: f.Errors.Message(name),
		})
	}
	return f
}
