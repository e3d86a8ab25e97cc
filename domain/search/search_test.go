package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSearchQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Query
	}{
		{
			name:  "plain terms",
			input: "invoice overdue",
			expected: Query{
				RawInput: "invoice overdue",
				Terms:    "invoice overdue",
				Limit:    10,
			},
		},
		{
			name:  "terms with language and limit flags",
			input: "invoice --lang en --limit 5",
			expected: Query{
				RawInput: "invoice --lang en --limit 5",
				Terms:    "invoice",
				Language: "en",
				Limit:    5,
			},
		},
		{
			name:  "flags in the middle of terms",
			input: "quarterly --limit 3 report",
			expected: Query{
				RawInput: "quarterly --limit 3 report",
				Terms:    "quarterly report",
				Limit:    3,
			},
		},
		{
			name:  "slash tokens are dropped",
			input: "/find invoice",
			expected: Query{
				RawInput: "/find invoice",
				Terms:    "invoice",
				Limit:    10,
			},
		},
		{
			name:  "broken limit keeps the default",
			input: "invoice --limit many",
			expected: Query{
				RawInput: "invoice --limit many",
				Terms:    "invoice",
				Limit:    10,
			},
		},
		{
			name:  "negative limit keeps the default",
			input: "invoice --limit -2",
			expected: Query{
				RawInput: "invoice --limit -2",
				Terms:    "invoice",
				Limit:    10,
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: Query{RawInput: "", Terms: "", Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, *NewSearchQuery(tt.input))
		})
	}
}
