package datafiles

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for the datafile link form.
const (
	msgStartDay       = "datafile.start_day.invalid"
	msgStartMonth     = "datafile.start_month.invalid"
	msgStartYear      = "datafile.start_year.invalid"
	msgEndDay         = "datafile.end_day.invalid"
	msgEndMonth       = "datafile.end_month.invalid"
	msgEndYear        = "datafile.end_year.invalid"
	msgMonth          = "datafile.month.invalid"
	msgYear           = "datafile.year.invalid"
	msgQuarter        = "datafile.quarter.missing"
	msgStartDate      = "datafile.start_date.invalid"
	msgURL            = "link.url.invalid"
	msgName           = "link.name.invalid"
	labelURL          = "link.label.url"
	labelName         = "link.label.name"
	labelStartDate    = "datafile.label.start_date"
	labelEndDate      = "datafile.label.end_date"
	labelDay          = "datafile.label.day"
	labelMonth        = "datafile.label.month"
	labelYear         = "datafile.label.year"
	labelQuarter      = "datafile.label.quarter"
	labelTimePeriod   = "datafile.label.time_period"
	labelErrorSummary = "datafile.label.error_summary"
)

// Language is the locale of the built-in catalogue.
var Language = language.BritishEnglish

var catalogue = map[string]string{
	msgStartDay:       "Please enter a valid start day",
	msgStartMonth:     "Please enter a valid start month",
	msgStartYear:      "Please enter a valid start year",
	msgEndDay:         "Please enter a valid end day",
	msgEndMonth:       "Please enter a valid end month",
	msgEndYear:        "Please enter a valid end year",
	msgMonth:          "Please enter a valid month",
	msgYear:           "Please enter a valid year",
	msgQuarter:        "Please select a quarter",
	msgStartDate:      "Please enter a valid start date",
	msgURL:            "Please enter a valid URL",
	msgName:           "Please enter a valid name",
	labelURL:          "URL",
	labelName:         "Name",
	labelStartDate:    "Start Date",
	labelEndDate:      "End Date",
	labelDay:          "Day",
	labelMonth:        "Month",
	labelYear:         "Year",
	labelQuarter:      "Quarter",
	labelTimePeriod:   "Time period for this link",
	labelErrorSummary: "There was a problem",
}

func init() {
	for key, msg := range catalogue {
		if err := message.SetString(Language, key, msg); err != nil {
			panic("datafiles: register message " + key + ": " + err.Error())
		}
	}
}

// NewPrinter returns a printer bound to the catalogue language.
func NewPrinter() *message.Printer {
	return message.NewPrinter(Language)
}
