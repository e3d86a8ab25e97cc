package transcript

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"rsmf-lab/domain/manifest"
)

// Term is one body token and how often it occurs across a timeline.
type Term struct {
	Text  string
	Count int
}

// DetectLanguage guesses the dominant language of the event bodies and
// returns its ISO 639-1 code, or the empty string when nothing is written.
func DetectLanguage(events []manifest.Event) string {
	var sb strings.Builder
	for _, evt := range events {
		if evt.Body == "" {
			continue
		}
		sb.WriteString(evt.Body)
		sb.WriteString(" ")
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return ""
	}

	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391()
}

// TopTerms counts words of three runes or more across the event bodies,
// case-insensitive, punctuation trimmed. Ties break alphabetically so
// the result is deterministic.
func TopTerms(events []manifest.Event, n int) []Term {
	counts := make(map[string]int)
	for _, evt := range events {
		for _, field := range strings.Fields(evt.Body) {
			word := strings.ToLower(strings.TrimFunc(field, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsNumber(r)
			}))
			if utf8.RuneCountInString(word) < 3 {
				continue
			}
			counts[word]++
		}
	}

	terms := make([]Term, 0, len(counts))
	for text, count := range counts {
		terms = append(terms, Term{Text: text, Count: count})
	}
	slices.SortFunc(terms, func(a, b Term) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Text, b.Text)
	})

	if n > 0 && len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
