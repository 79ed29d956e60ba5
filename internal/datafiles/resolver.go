package datafiles

import (
	"fmt"
	"sync"
)

// Resolver validates date-part input against a frequency and computes the
// covered period. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	parser   partParser
	messages map[string]string
}

// NewResolver constructs a Resolver using the built-in message catalogue.
func NewResolver() *Resolver {
	printer := NewPrinter()
	messages := make(map[string]string, len(catalogue))
	for key := range catalogue {
		messages[key] = printer.Sprintf(key)
	}
	return &Resolver{parser: newPartParser(), messages: messages}
}

// defaultResolver is built on first use so the catalogue is registered first.
var defaultResolver = sync.OnceValue(NewResolver)

// Resolve runs the package default Resolver.
func Resolve(freq Frequency, in DatePartInput) (DateRange, error) {
	return defaultResolver().Resolve(freq, in)
}

// Resolve returns the date range for in, or ValidationErrors describing why
// the input cannot form one. Undated frequencies always resolve to an empty
// range without reading the input.
func (r *Resolver) Resolve(freq Frequency, in DatePartInput) (DateRange, error) {
	rl, ok := rules[freq]
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, string(freq))
	}
	if len(rl.fields) == 0 {
		return DateRange{}, nil
	}

	var errs ValidationErrors
	parsed := make(parts, len(rl.fields))
	for _, f := range rl.fields {
		n, ok := r.parser.parse(f, in.Get(f))
		if !ok {
			errs.add(f, r.text(rl.messages[f]))
			continue
		}
		parsed[f] = n
	}

	// A half is only built when every one of its fields parsed; partial
	// halves report their per-field errors and nothing else.
	dates := make([]Date, 0, len(rl.halves))
	complete, composite := true, false
	for _, h := range rl.halves {
		if !parsed.has(h.fields) {
			complete = false
			continue
		}
		d, ok := h.date(parsed)
		if !ok {
			composite = true
			continue
		}
		dates = append(dates, d)
	}

	if !composite && complete {
		rng, ok := rl.span(dates)
		if ok && len(errs) == 0 {
			return rng, nil
		}
		composite = !ok
	}
	if composite {
		errs.add(FieldStartDate, r.text(msgStartDate))
	}
	return DateRange{}, errs.sorted()
}

func (r *Resolver) text(key string) string {
	if msg, ok := r.messages[key]; ok {
		return msg
	}
	return key
}
