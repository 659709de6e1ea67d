package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/reviewcritic/internal/ingest"
	"github.com/dshills/reviewcritic/internal/output"
	"github.com/dshills/reviewcritic/internal/redact"
	"github.com/dshills/reviewcritic/internal/render"
	"github.com/dshills/reviewcritic/internal/review"
)

type checkFlags struct {
	format     string
	out        string
	configPath string
	strict     bool
	redact     bool
	verbose    bool

	// set when the corresponding flag was given explicitly, so it can
	// override the config file
	hasOut    bool
	hasStrict bool
	hasRedact bool
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <review-file>",
		Short: "Score a review result document and generate a summary report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.hasOut = cmd.Flags().Changed("out")
			f.hasStrict = cmd.Flags().Changed("strict")
			f.hasRedact = cmd.Flags().Changed("redact")
			return runCheck(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "md", "Output format: md or json")
	flags.StringVar(&f.out, "out", "", "Report file path (default: stdout)")
	flags.StringVar(&f.configPath, "config", "", "Config file path")
	flags.BoolVar(&f.strict, "strict", false, "Strict mode (fail on warnings)")
	flags.BoolVar(&f.redact, "redact", true, "Redact secrets from issue text")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runCheck(inputPath string, f *checkFlags) error {
	ui := output.New()
	ui.Verbose = f.verbose

	initConfig(f.configPath)
	outPath := f.out
	if !f.hasOut {
		outPath = viper.GetString(cfgOutput)
	}
	strict := f.strict
	if !f.hasStrict {
		strict = viper.GetBool(cfgStrict)
	}
	redactEnabled := f.redact
	if !f.hasRedact {
		redactEnabled = viper.GetBool(cfgRedact)
	}

	// 1. Load and decode the review document
	ui.VerboseLog("Loading review data: %s", inputPath)
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return exitError(3, "failed to load review data: %v", err)
	}
	doc, err := ingest.Decode(data)
	if err != nil {
		return exitError(3, "failed to parse review data: %v", err)
	}

	// 2. Ingest: malformed records are dropped, never fatal
	result, recordErrs := ingest.Ingest(doc)
	for _, re := range recordErrs {
		ui.Warning("Skipping malformed issue: %v", re)
	}
	ui.VerboseLog("Ingested %d issues (%d skipped)", len(result.Issues), len(recordErrs))

	// 3. Score and verdict
	thresholds := review.DefaultThresholds()
	if strict {
		thresholds = review.StrictThresholds()
	}
	review.Evaluate(result, thresholds)

	// 4. Scrub secrets before anything is written
	if redactEnabled {
		redact.Issues(result.Issues)
	}

	// 5. Render
	report, err := render.Render(f.format, result, render.Options{
		Reviewer: viper.GetString(cfgReviewer),
		Version:  version,
	})
	if err != nil {
		return exitError(3, "%v", err)
	}

	// 6. Write report
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(report), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		ui.VerboseLog("Report written to %s", outPath)
	} else {
		fmt.Print(report)
	}

	// 7. Console summary and exit status
	ui.SeverityTable(result.Issues)
	ui.Result(result.Passed, result.Score)
	if !result.Passed {
		return &exitErr{code: 2}
	}
	return nil
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
