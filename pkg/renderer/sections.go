package renderer

import (
	"regexp"
	"strings"
)

// SectionNotes are the best-effort text blocks pulled out of an entry body.
type SectionNotes struct {
	Decisions   []string
	ActionItems []string
	Risks       []string
}

const maxSectionLines = 10

var sectionHeading = regexp.MustCompile(`(?mi)^#{1,6}\s*(decisions?|action items?|next steps?|risks?)\s*$`)

var sectionKeywords = map[string][]string{
	"decisions": {"we decided", "decision:", "agreed to", "decided to"},
	"actions":   {"todo:", "action item", "will follow up", "needs to", "follow up on"},
	"risks":     {"risk:", "concern:", "blocker", "might break", "worried about"},
}

// ExtractSections scans an entry body for decision, action-item, and risk
// lines. Heading-delimited blocks are taken first, then keyword matches on
// individual lines. Heuristic only; misses are acceptable.
func ExtractSections(markdown string) SectionNotes {
	var notes SectionNotes
	if strings.TrimSpace(markdown) == "" {
		return notes
	}

	lines := strings.Split(markdown, "\n")
	seen := make(map[string]bool)

	add := func(bucket *[]string, line string) {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		if line == "" || seen[line] || len(*bucket) >= maxSectionLines {
			return
		}
		seen[line] = true
		*bucket = append(*bucket, line)
	}

	// Heading-delimited blocks: collect list lines until the next heading.
	var current *[]string
	for _, line := range lines {
		if m := sectionHeading.FindStringSubmatch(line); m != nil {
			switch heading := strings.ToLower(m[1]); {
			case strings.HasPrefix(heading, "decision"):
				current = &notes.Decisions
			case strings.HasPrefix(heading, "risk"):
				current = &notes.Risks
			default:
				current = &notes.ActionItems
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			current = nil
			continue
		}
		if current != nil {
			add(current, line)
		}
	}

	// Keyword scan over every line.
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range sectionKeywords["decisions"] {
			if strings.Contains(lower, kw) {
				add(&notes.Decisions, line)
				break
			}
		}
		for _, kw := range sectionKeywords["actions"] {
			if strings.Contains(lower, kw) {
				add(&notes.ActionItems, line)
				break
			}
		}
		for _, kw := range sectionKeywords["risks"] {
			if strings.Contains(lower, kw) {
				add(&notes.Risks, line)
				break
			}
		}
	}

	return notes
}
