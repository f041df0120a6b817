package renderer

import (
	"fmt"
	"os"
	"regexp"
)

// ListRenderedDays returns the set of days that already have a rendered
// document in outputDir, matched by the "YYYY-MM-DD <suffix>.md" convention.
// A missing directory yields an empty set.
func ListRenderedDays(outputDir, suffix string) (map[string]bool, error) {
	days := make(map[string]bool)

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return days, nil
		}
		return nil, fmt.Errorf("failed to list output directory %q: %w", outputDir, err)
	}

	pattern, err := regexp.Compile(`^(\d{4}-\d{2}-\d{2}) ` + regexp.QuoteMeta(suffix) + `\.md$`)
	if err != nil {
		return nil, fmt.Errorf("failed to build document pattern: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if m := pattern.FindStringSubmatch(entry.Name()); m != nil {
			days[m[1]] = true
		}
	}

	return days, nil
}
