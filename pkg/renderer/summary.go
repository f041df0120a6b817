package renderer

import "strings"

const maxSummaryLen = 140

// Summarize returns the first prose sentence of an entry body, capped at a
// short display length. Headings, list items, and quotes are skipped; a body
// with no prose yields an empty summary.
func Summarize(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line[0] {
		case '#', '-', '*', '>', '|', '`':
			continue
		}

		if i := strings.IndexAny(line, ".!?"); i >= 0 {
			line = line[:i+1]
		}
		if runes := []rune(line); len(runes) > maxSummaryLen {
			line = string(runes[:maxSummaryLen-1]) + "…"
		}
		return line
	}
	return ""
}
