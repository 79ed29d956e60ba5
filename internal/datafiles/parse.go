package datafiles

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type partKind int

const (
	partDay partKind = iota
	partMonth
	partYear
	partQuarter
)

// partRules are validator tags applied after the digit check.
var partRules = map[partKind]string{
	partDay:     "min=1,max=31",
	partMonth:   "min=1,max=12",
	partYear:    "min=1000,max=9999",
	partQuarter: "min=1,max=4",
}

// partWidth caps the digit count so values like "0002020" are not read as a year.
var partWidth = map[partKind]int{
	partDay:     2,
	partMonth:   2,
	partYear:    4,
	partQuarter: 1,
}

var fieldKinds = map[Field]partKind{
	FieldStartDay:   partDay,
	FieldStartMonth: partMonth,
	FieldStartYear:  partYear,
	FieldEndDay:     partDay,
	FieldEndMonth:   partMonth,
	FieldEndYear:    partYear,
	FieldQuarter:    partQuarter,
}

// partParser turns raw strings into bounded integers. It does not know about
// calendars: day 30 of month 2 passes here and fails at date construction.
type partParser struct {
	validate *validator.Validate
}

func newPartParser() partParser {
	return partParser{validate: validator.New()}
}

func (p partParser) parse(f Field, raw string) (int, bool) {
	kind, ok := fieldKinds[f]
	if !ok {
		return 0, false
	}
	value := strings.TrimSpace(raw)
	if value == "" || len(value) > partWidth[kind] {
		return 0, false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	if err := p.validate.Var(n, partRules[kind]); err != nil {
		return 0, false
	}
	return n, true
}
