package renderer

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"

	"lifelog-journal/models"
)

// categoryKeywords are English-only, so tagging is gated on language
// detection: non-English entries are tagged by language rather than
// mis-tagged on accidental substring hits.
var categoryKeywords = []struct {
	tag      string
	keywords []string
}{
	{"standup", []string{"standup", "stand-up", "daily sync"}},
	{"one-on-one", []string{"1:1", "one on one", "one-on-one"}},
	{"interview", []string{"interview", "candidate"}},
	{"meeting", []string{"meeting", "sync", "retro", "planning", "review"}},
	{"call", []string{"call", "phone"}},
}

const defaultCategory = "note"

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Portuguese,
				lingua.Japanese,
			).
			Build()
	})
	return detector
}

// languageOf detects the language of the text. Short texts default to
// English; the detector is unreliable below a few words.
func languageOf(text string) lingua.Language {
	if len(strings.Fields(text)) < 4 {
		return lingua.English
	}
	lang, ok := languageDetector().DetectLanguageOf(text)
	if !ok {
		return lingua.English
	}
	return lang
}

// Categorize derives a best-effort category tag from an entry's title and
// body text. Non-English entries are tagged with their language instead of
// being run through the English keyword lists.
func Categorize(e models.Entry) string {
	text := e.DisplayTitle() + " " + e.Markdown
	if lang := languageOf(text); lang != lingua.English {
		return strings.ToLower(lang.String())
	}

	lower := strings.ToLower(text)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.tag
			}
		}
	}
	return defaultCategory
}
