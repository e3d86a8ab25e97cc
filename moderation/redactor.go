// Package moderation redacts configured terms from rendered transcript
// text before it enters the container. The archive is never touched.
package moderation

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"

	errs "rsmf-lab/errors"
)

type Redactor struct {
	matcher *goahocorasick.Machine
	mask    rune
	log     *slog.Logger
}

type TextMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// NewRedactor initializes the Aho-Corasick automaton with a normalized version
// of the provided wordlist. Entries that normalize to nothing (pure noise) are
// dropped; an entirely unusable wordlist is an error.
func NewRedactor(words []string, mask rune, log *slog.Logger) (Redactor, error) {
	patterns := lo.FilterMap(words, func(word string, _ int) ([]rune, bool) {
		normalized := normalizeRunes([]rune(word))
		return normalized, len(normalized) > 0
	})
	patterns = lo.UniqBy(patterns, func(pattern []rune) string {
		return string(pattern)
	})
	if len(patterns) == 0 {
		return Redactor{}, errs.ErrEmptyWords
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Redactor{}, err
	}

	log.Debug("Redactor ready", "patterns", len(patterns))
	return Redactor{matcher: m, mask: mask, log: log}, nil
}

// Redact masks forbidden patterns while preserving spacing and reports the
// normalized form of every match, one entry per occurrence.
func (r *Redactor) Redact(original string) (string, []string) {
	mapping := r.normalize(original)
	if len(mapping.Normalized) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	spans := r.matcher.MultiPatternSearch(mapping.Normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	var matched []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)

		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}

		origStart := mapping.OrigIdx[normStart]
		lastCharOrigIdx := mapping.OrigIdx[normEnd-1]
		origEnd := lastCharOrigIdx + 1

		for i := origStart; i < origEnd; i++ {
			origRunes[i] = r.mask
		}
		matched = append(matched, string(span.Word))
	}

	return string(origRunes), matched
}

// LoadWordlist reads one pattern per line. Blank lines and #-comments are
// skipped; a file with no usable line is an error.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	if len(words) == 0 {
		return nil, errs.ErrEmptyWords
	}
	return words, nil
}

// normalize transforms the input string into a searchable format and tracks
// original rune positions.
func (r *Redactor) normalize(input string) TextMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, rn := range origRunes {
		clean := simplifyRune(rn)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return TextMapping{Normalized: norm, OrigIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, rn := range input {
		clean := simplifyRune(rn)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common Leet speak characters back to their standard
// alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
