package datafiles

import "time"

// parts holds the parsed value of every field that passed format checks.
type parts map[Field]int

func (p parts) has(fields []Field) bool {
	for _, f := range fields {
		if _, ok := p[f]; !ok {
			return false
		}
	}
	return true
}

// half is one logical date built from a subset of fields.
type half struct {
	fields []Field
	date   func(p parts) (Date, bool)
}

// rule describes how a frequency collects and combines date parts.
type rule struct {
	fields   []Field
	messages map[Field]string
	halves   []half
	span     func(dates []Date) (DateRange, bool)
}

var (
	dayMonthYearStart = []Field{FieldStartDay, FieldStartMonth, FieldStartYear}
	dayMonthYearEnd   = []Field{FieldEndDay, FieldEndMonth, FieldEndYear}
)

// rules is the per-frequency strategy table. Adding a frequency means adding a row.
var rules = map[Frequency]rule{
	FrequencyNever: {},
	FrequencyDaily: {},
	FrequencyWeekly: {
		fields: append(append([]Field{}, dayMonthYearStart...), dayMonthYearEnd...),
		messages: map[Field]string{
			FieldStartDay:   msgStartDay,
			FieldStartMonth: msgStartMonth,
			FieldStartYear:  msgStartYear,
			FieldEndDay:     msgEndDay,
			FieldEndMonth:   msgEndMonth,
			FieldEndYear:    msgEndYear,
		},
		halves: []half{
			{fields: dayMonthYearStart, date: exactDate(FieldStartYear, FieldStartMonth, FieldStartDay)},
			{fields: dayMonthYearEnd, date: exactDate(FieldEndYear, FieldEndMonth, FieldEndDay)},
		},
		span: func(dates []Date) (DateRange, bool) {
			start, end := dates[0], dates[1]
			if end.Before(start) {
				return DateRange{}, false
			}
			return newRange(start, end), true
		},
	},
	FrequencyMonthly: {
		fields:   []Field{FieldStartMonth, FieldStartYear},
		messages: map[Field]string{FieldStartMonth: msgMonth, FieldStartYear: msgYear},
		halves: []half{{
			fields: []Field{FieldStartMonth, FieldStartYear},
			date: func(p parts) (Date, bool) {
				return firstOfMonth(p[FieldStartYear], time.Month(p[FieldStartMonth])), true
			},
		}},
		span: func(dates []Date) (DateRange, bool) {
			start := dates[0]
			return newRange(start, lastOfMonth(start.Year, start.Month)), true
		},
	},
	FrequencyQuarterly: {
		fields:   []Field{FieldQuarter, FieldStartYear},
		messages: map[Field]string{FieldQuarter: msgQuarter, FieldStartYear: msgYear},
		halves: []half{{
			fields: []Field{FieldQuarter, FieldStartYear},
			date: func(p parts) (Date, bool) {
				return quarterStart(p[FieldStartYear], p[FieldQuarter]), true
			},
		}},
		span: func(dates []Date) (DateRange, bool) {
			start := dates[0]
			return newRange(start, lastOfMonth(start.Year, start.Month+2)), true
		},
	},
	FrequencyAnnually: {
		fields:   []Field{FieldStartYear},
		messages: map[Field]string{FieldStartYear: msgYear},
		halves: []half{{
			fields: []Field{FieldStartYear},
			date: func(p parts) (Date, bool) {
				return firstOfMonth(p[FieldStartYear], time.January), true
			},
		}},
		span: func(dates []Date) (DateRange, bool) {
			start := dates[0]
			return newRange(start, lastOfMonth(start.Year, time.December)), true
		},
	},
	FrequencyFinancialYear: {
		fields:   []Field{FieldStartYear},
		messages: map[Field]string{FieldStartYear: msgYear},
		halves: []half{{
			fields: []Field{FieldStartYear},
			date: func(p parts) (Date, bool) {
				return firstOfMonth(p[FieldStartYear], time.April), true
			},
		}},
		span: func(dates []Date) (DateRange, bool) {
			start := dates[0]
			return newRange(start, lastOfMonth(start.Year+1, time.March)), true
		},
	},
}

func exactDate(year, month, day Field) func(p parts) (Date, bool) {
	return func(p parts) (Date, bool) {
		return NewDate(p[year], time.Month(p[month]), p[day])
	}
}

// quarterStart maps fiscal quarters onto calendar months: Q1 starts in April,
// Q4 runs January to March of the following year.
func quarterStart(year, quarter int) Date {
	return firstOfMonth(year, time.Month(3*quarter+1))
}

// RequiredFields lists the inputs a frequency collects, in form order.
func RequiredFields(f Frequency) []Field {
	fields := rules[f].fields
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
