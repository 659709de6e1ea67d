// Package output provides colored console status lines and summary tables.
// The report itself goes elsewhere; this is operator feedback only.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/dshills/reviewcritic/internal/review"
)

// UI writes status output, respecting verbose mode.
type UI struct {
	Verbose bool
	Out     io.Writer
	ErrOut  io.Writer
}

// New creates a UI with default stdout/stderr writers.
func New() *UI {
	return &UI{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

var (
	successPrefix = color.New(color.FgHiGreen).Sprint("✓")
	warningPrefix = color.New(color.FgHiYellow).Sprint("⚠")
	errorPrefix   = color.New(color.FgHiRed).Sprint("✗")
	verbosePrefix = color.New(color.FgHiBlue).Sprint("  →")
	green         = color.New(color.FgHiGreen).SprintFunc()
	yellow        = color.New(color.FgHiYellow).SprintFunc()
	red           = color.New(color.FgHiRed).SprintFunc()
)

// ScoreColor returns the score string colored by band.
func ScoreColor(score float64) string {
	s := fmt.Sprintf("%.1f", score)
	switch {
	case score >= 80:
		return green(s)
	case score >= 50:
		return yellow(s)
	default:
		return red(s)
	}
}

func (u *UI) Success(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", successPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Warning(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", warningPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Error(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", errorPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) VerboseLog(format string, a ...any) {
	if u.Verbose {
		fmt.Fprintf(u.ErrOut, "%s %s\n", verbosePrefix, fmt.Sprintf(format, a...))
	}
}

// Result prints the final colored pass/fail line.
func (u *UI) Result(passed bool, score float64) {
	if passed {
		u.Success("Review PASSED (Score: %s/100)", ScoreColor(score))
		return
	}
	u.Error("Review FAILED (Score: %s/100)", ScoreColor(score))
}

// SeverityTable prints a per-severity issue count table in verbose mode.
func (u *UI) SeverityTable(issues []review.CodeIssue) {
	if !u.Verbose {
		return
	}
	counts := review.CountBySeverity(issues)
	table := u.table([]string{"Severity", "Count"})
	for _, sev := range review.Severities {
		_ = table.Append([]string{string(sev), fmt.Sprintf("%d", counts[sev])})
	}
	_ = table.Render()
}

// table creates a tablewriter configured with consistent styling.
func (u *UI) table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(u.ErrOut,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}
