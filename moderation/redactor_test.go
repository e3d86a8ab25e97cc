package moderation

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	errs "rsmf-lab/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const maskChar = '*'

// TestRedactor_Redact
// The wordlist uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestRedactor_Redact(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	wordlist := []string{"badger", "snake", "mushroom"}
	red, err := NewRedactor(wordlist, maskChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			words:    []string{"badger", "badger", "badger"},
		},
		{
			name: "Leet speak and internal punctuation",
			// B (index 9) . 4 . d . g . € r (index 20) -> 10 characters
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			words:    []string{"badger"},
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "S-N-A-K-E is a B.A.D.G.E.R",
			expected: "********* is a ***********",
			words:    []string{"snake", "badger"},
		},
		{
			name:     "Accents and special characters (UTF-8)",
			input:    "Un été avec un badger",
			expected: "Un été avec un ******",
			words:    []string{"badger"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "I love badger!",
			expected: "I love ******!",
			words:    []string{"badger"},
		},
		{
			name:     "Nothing to redact",
			input:    "The transcript is clean",
			expected: "The transcript is clean",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := red.Redact(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestRedactor_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise and not Leet Speak associated
	wordlist := []string{"...", ",,,", "", "badger"}

	red, err := NewRedactor(wordlist, maskChar, log)
	req.NoError(err)

	// Then the sentence is redacted
	input := "The badger is safe"
	expected := "The ****** is safe"
	content, words := red.Redact(input)
	req.Equal(expected, content)
	req.Equal([]string{"badger"}, words)

	// Then real noise is unredacted
	input = "Hello ..."
	expected = "Hello ..."
	content, words = red.Redact(input)
	req.Equal(expected, content)
	req.Nil(words)
}

func TestNewRedactor_RejectsUnusableWordlist(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	_, err := NewRedactor([]string{"...", ""}, maskChar, log)
	req.True(errors.Is(err, errs.ErrEmptyWords))

	_, err = NewRedactor(nil, maskChar, log)
	req.True(errors.Is(err, errs.ErrEmptyWords))
}

func TestLoadWordlist(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# project codenames\nbadger\n\n  snake  \n# trailing comment\n"
	req.NoError(os.WriteFile(path, []byte(content), 0644))

	words, err := LoadWordlist(path)
	req.NoError(err)
	req.Equal([]string{"badger", "snake"}, words)
}

func TestLoadWordlist_EmptyFile(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "words.txt")
	req.NoError(os.WriteFile(path, []byte("# only comments\n\n"), 0644))

	_, err := LoadWordlist(path)
	req.True(errors.Is(err, errs.ErrEmptyWords))
}

func TestLoadWordlist_MissingFile(t *testing.T) {
	req := require.New(t)

	_, err := LoadWordlist(filepath.Join(t.TempDir(), "nope.txt"))
	req.Error(err)
}
