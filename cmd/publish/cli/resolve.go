package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/publish-data/publish-data/internal/datafiles"
)

// Exit codes returned by ResolveCommand.
const (
	ExitOK      = 0
	ExitUsage   = 2
	ExitInvalid = 10
)

// ResolveOptions defines available flags for the resolve command.
type ResolveOptions struct {
	Frequency  string
	Input      datafiles.DatePartInput
	JSONOutput bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// ResolveSummary describes the JSON response for resolve.
type ResolveSummary struct {
	OK        bool                   `json:"ok"`
	Frequency string                 `json:"frequency"`
	Range     datafiles.DateRange    `json:"range"`
	Errors    []datafiles.FieldError `json:"errors"`
}

// ResolveCommand runs one date resolution and prints the outcome.
func ResolveCommand(resolver *datafiles.Resolver, opts ResolveOptions) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if resolver == nil {
		resolver = datafiles.NewResolver()
	}
	freq, err := datafiles.ParseFrequency(opts.Frequency)
	if err != nil {
		_, _ = fmt.Fprintf(opts.Stderr, "resolve: unknown --frequency %q (expected one of %s)\n", opts.Frequency, frequencyList())
		return ExitUsage
	}

	summary := ResolveSummary{Frequency: string(freq), Errors: []datafiles.FieldError{}}
	rng, err := resolver.Resolve(freq, opts.Input)
	if err != nil {
		verrs, ok := datafiles.AsValidationErrors(err)
		if !ok {
			_, _ = fmt.Fprintf(opts.Stderr, "resolve: %v\n", err)
			return ExitUsage
		}
		summary.Errors = verrs
	} else {
		summary.OK = true
		summary.Range = rng
	}

	if opts.JSONOutput {
		if err := json.NewEncoder(opts.Stdout).Encode(summary); err != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "resolve: encode json: %v\n", err)
			return ExitUsage
		}
	} else {
		renderResolveHuman(opts.Stdout, freq, summary)
	}
	if !summary.OK {
		return ExitInvalid
	}
	return ExitOK
}

func renderResolveHuman(out io.Writer, freq datafiles.Frequency, summary ResolveSummary) {
	_, _ = fmt.Fprintf(out, "Frequency: %s\n", freq.Label())
	if !summary.OK {
		_, _ = fmt.Fprintf(out, "%d problem(s):\n", len(summary.Errors))
		for _, fe := range summary.Errors {
			_, _ = fmt.Fprintf(out, " - %s: %s\n", fe.Field, fe.Message)
		}
		return
	}
	if summary.Range.IsEmpty() {
		_, _ = fmt.Fprintln(out, "No dates apply.")
		return
	}
	_, _ = fmt.Fprintf(out, "From: %s\n", summary.Range.Start)
	_, _ = fmt.Fprintf(out, "To:   %s\n", summary.Range.End)
}

func frequencyList() string {
	names := make([]string, 0, len(datafiles.Frequencies()))
	for _, f := range datafiles.Frequencies() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
