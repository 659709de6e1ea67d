package render

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/reviewcritic/internal/review"
)

// JSON renders the result as indented JSON for machine consumers.
func JSON(r *review.ReviewResult) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render.JSON: %w", err)
	}
	return string(data) + "\n", nil
}
