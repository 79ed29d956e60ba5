package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/publish-data/publish-data/internal/datafiles"
)

func TestResolveCommandJSONSuccess(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := ResolveCommand(datafiles.NewResolver(), ResolveOptions{
		Frequency:  "quarterly",
		Input:      datafiles.DatePartInput{StartYear: "2018", Quarter: "4"},
		JSONOutput: true,
		Stdout:     stdout,
		Stderr:     stderr,
	})
	require.Equal(t, ExitOK, exitCode)
	require.Empty(t, stderr.String())

	var summary struct {
		OK    bool `json:"ok"`
		Range struct {
			Start string `json:"start_date"`
			End   string `json:"end_date"`
		} `json:"range"`
		Errors []datafiles.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &summary))
	require.True(t, summary.OK)
	require.Equal(t, "2019-01-01", summary.Range.Start)
	require.Equal(t, "2019-03-31", summary.Range.End)
	require.Empty(t, summary.Errors)
}

func TestResolveCommandJSONValidationErrors(t *testing.T) {
	stdout := new(bytes.Buffer)
	exitCode := ResolveCommand(nil, ResolveOptions{
		Frequency:  "monthly",
		Input:      datafiles.DatePartInput{StartMonth: "13", StartYear: "2019"},
		JSONOutput: true,
		Stdout:     stdout,
		Stderr:     new(bytes.Buffer),
	})
	require.Equal(t, ExitInvalid, exitCode)

	var summary ResolveSummary
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &summary))
	require.False(t, summary.OK)
	require.Equal(t, []datafiles.FieldError{
		{Field: datafiles.FieldStartMonth, Message: "Please enter a valid month"},
	}, summary.Errors)
}

func TestResolveCommandHumanOutput(t *testing.T) {
	stdout := new(bytes.Buffer)
	exitCode := ResolveCommand(nil, ResolveOptions{
		Frequency: "annually",
		Input:     datafiles.DatePartInput{StartYear: "2020"},
		Stdout:    stdout,
		Stderr:    new(bytes.Buffer),
	})
	require.Equal(t, ExitOK, exitCode)
	require.Contains(t, stdout.String(), "From: 2020-01-01")
	require.Contains(t, stdout.String(), "To:   2020-12-31")
}

func TestResolveCommandUndatedFrequency(t *testing.T) {
	stdout := new(bytes.Buffer)
	exitCode := ResolveCommand(nil, ResolveOptions{Frequency: "never", Stdout: stdout, Stderr: new(bytes.Buffer)})
	require.Equal(t, ExitOK, exitCode)
	require.Contains(t, stdout.String(), "One-off")
	require.Contains(t, stdout.String(), "No dates apply.")
}

func TestResolveCommandUnknownFrequency(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := ResolveCommand(nil, ResolveOptions{Frequency: "fortnightly", Stdout: new(bytes.Buffer), Stderr: stderr})
	require.Equal(t, ExitUsage, exitCode)
	require.Contains(t, stderr.String(), "fortnightly")
}

func TestParseResolveFlags(t *testing.T) {
	opts, err := ParseResolveFlags([]string{
		"--frequency", "weekly",
		"--start-day", "1", "--start-month", "2", "--start-year", "2019",
		"--end-day", "8", "--end-month", "2", "--end-year", "2019",
		"--json",
	}, new(bytes.Buffer))
	require.NoError(t, err)
	require.Equal(t, "weekly", opts.Frequency)
	require.True(t, opts.JSONOutput)
	require.Equal(t, datafiles.DatePartInput{
		StartDay: "1", StartMonth: "2", StartYear: "2019",
		EndDay: "8", EndMonth: "2", EndYear: "2019",
	}, opts.Input)

	_, err = ParseResolveFlags([]string{}, new(bytes.Buffer))
	require.Error(t, err)

	_, err = ParseResolveFlags([]string{"--frequency", "hourly"}, new(bytes.Buffer))
	require.ErrorIs(t, err, datafiles.ErrUnknownFrequency)
}
