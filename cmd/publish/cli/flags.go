package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/publish-data/publish-data/internal/datafiles"
)

// ParseResolveFlags reads resolve options from command-line arguments.
func ParseResolveFlags(args []string, stderr io.Writer) (ResolveOptions, error) {
	var opts ResolveOptions
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Frequency, "frequency", "", "datafile frequency ("+frequencyList()+")")
	fs.Var(&opts.Input.StartDay, "start-day", "start day of month")
	fs.Var(&opts.Input.StartMonth, "start-month", "start month")
	fs.Var(&opts.Input.StartYear, "start-year", "start year")
	fs.Var(&opts.Input.EndDay, "end-day", "end day of month")
	fs.Var(&opts.Input.EndMonth, "end-month", "end month")
	fs.Var(&opts.Input.EndYear, "end-year", "end year")
	fs.Var(&opts.Input.Quarter, "quarter", "financial quarter (1-4)")
	fs.BoolVar(&opts.JSONOutput, "json", false, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return ResolveOptions{}, err
	}
	if fs.NArg() > 0 {
		return ResolveOptions{}, fmt.Errorf("resolve: unexpected arguments %v", fs.Args())
	}
	if opts.Frequency == "" {
		return ResolveOptions{}, fmt.Errorf("resolve: --frequency is required")
	}
	if _, err := datafiles.ParseFrequency(opts.Frequency); err != nil {
		return ResolveOptions{}, fmt.Errorf("resolve: %w", err)
	}
	return opts, nil
}
