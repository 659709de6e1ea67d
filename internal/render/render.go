// Package render produces report output from a review result.
package render

import (
	"fmt"

	"github.com/dshills/reviewcritic/internal/review"
)

// Options carries display-only metadata stamped into the report header.
type Options struct {
	Reviewer string
	Version  string
}

// Render formats the result in the given format ("md" or "json").
func Render(format string, r *review.ReviewResult, opts Options) (string, error) {
	switch format {
	case "md":
		return Markdown(r, opts), nil
	case "json":
		return JSON(r)
	default:
		return "", fmt.Errorf("render.Render: unknown format %q: supported formats are md, json", format)
	}
}
